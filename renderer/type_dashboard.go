package renderer

import "github.com/gmottier/patrimoine"

// Dashboard is the presentation view of a portfolio summary: every figure is
// already formatted, templates only lay them out.
type Dashboard struct {
	Date          string
	TotalValue    string
	TotalInvested string
	TotalGain     string
	GainPct       string
	CashAvailable string
	Holdings      []DashboardRow
	Anomalies     []string
}

// DashboardRow is one holding's line on the dashboard.
type DashboardRow struct {
	Name       string
	Value      string
	Invested   string
	Gain       string
	GainPct    string
	Allocation string
	Stale      string // date of the valuation used when it is not the as-of date
}

// NewDashboard builds the presentation view of a portfolio summary.
func NewDashboard(s *patrimoine.PortfolioSummary) *Dashboard {
	d := &Dashboard{
		Date:          s.Date.String(),
		TotalValue:    s.TotalValue.String(),
		TotalInvested: s.TotalInvested.String(),
		TotalGain:     s.TotalGain.SignedString(),
		GainPct:       s.GainPct.SignedString(),
		CashAvailable: s.CashAvailable.String(),
	}
	for _, h := range s.Holdings {
		row := DashboardRow{
			Name:       h.Holding.Name,
			Invested:   h.Position.NetInvested.String(),
			Value:      "n/a",
			Gain:       "-",
			GainPct:    "-",
			Allocation: "-",
		}
		if h.Valued {
			row.Value = h.CurrentValue.String()
			row.Gain = h.Performance.SignedString()
			row.GainPct = h.PerformancePct.SignedString()
			row.Allocation = h.AllocationPct.String()
			if !h.Valuation.Implicit && h.Valuation.Date != s.Date {
				row.Stale = h.Valuation.Date.String()
			}
		}
		d.Holdings = append(d.Holdings, row)
		for _, a := range h.Position.Anomalies {
			d.Anomalies = append(d.Anomalies, h.Holding.Name+": "+a.String())
		}
	}
	return d
}

// DashboardMarkdown renders a portfolio summary to a markdown string.
func DashboardMarkdown(s *patrimoine.PortfolioSummary) string {
	partials := map[string]string{
		"dashboard_summary":   "dashboard_summary.md",
		"dashboard_holdings":  "dashboard_holdings.md",
		"dashboard_anomalies": "dashboard_anomalies.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, NewDashboard(s))
}
