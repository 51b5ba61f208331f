package renderer

import (
	"strconv"

	"github.com/gmottier/patrimoine"
)

// Projection is the presentation view of a projection table.
type Projection struct {
	Title            string
	Rows             []ProjectionRow
	TotalContributed string
	TotalGains       string
	FinalValue       string
}

// ProjectionRow is one projected year.
type ProjectionRow struct {
	Year          string
	StartValue    string
	Contributions string
	Gains         string
	EndValue      string
}

// NewProjection builds the presentation view of a projection table.
func NewProjection(title string, t *patrimoine.ProjectionTable) *Projection {
	p := &Projection{
		Title:            title,
		TotalContributed: t.TotalContributed.String(),
		TotalGains:       t.TotalGains.SignedString(),
		FinalValue:       t.FinalValue.String(),
	}
	for _, r := range t.Rows {
		p.Rows = append(p.Rows, ProjectionRow{
			Year:          strconv.Itoa(r.Year),
			StartValue:    r.StartValue.String(),
			Contributions: r.Contributions.String(),
			Gains:         r.Gains.SignedString(),
			EndValue:      r.EndValue.String(),
		})
	}
	return p
}

// ProjectionMarkdown renders a projection table to a markdown string.
func ProjectionMarkdown(title string, t *patrimoine.ProjectionTable) string {
	return renderTemplate("projection", "projection.md", nil, NewProjection(title, t))
}
