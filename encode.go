package patrimoine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The journal is an append-only JSONL file. Each line is one record tagged by
// a "command" field: a holding declaration, one of the six movement kinds, a
// valuation ("value") or a savings rate entry ("rate"). Editing a past record
// is done by rewriting the journal (see EncodeLedger), never in place.

const (
	cmdDeclare = "declare"
	cmdValue   = "value"
	cmdRate    = "rate"
)

// EncodeHolding writes a holding declaration as a single JSONL line.
func EncodeHolding(w io.Writer, h Holding) error {
	var o jsonObjectWriter
	o.Append("command", cmdDeclare)
	o.Append("holding", h.ID)
	o.Append("name", h.Name)
	o.Append("type", string(h.Type))
	if h.Unit != UnitNone {
		o.Append("unit", h.Unit.String())
	}
	o.Optional("currency", h.Currency)
	return writeLine(w, &o)
}

// EncodeMovement writes a movement as a single JSONL line.
func EncodeMovement(w io.Writer, m Movement) error {
	var o jsonObjectWriter
	o.Append("command", m.Kind.String())
	o.Append("date", m.Date)
	o.Append("holding", m.Holding)
	o.Append("amount", m.Amount.value.RoundBank(2))
	if m.Kind.HasQuantity() {
		o.Append("quantity", m.Quantity)
		o.Append("price", m.Price.value)
	}
	o.Optional("memo", m.Memo)
	return writeLine(w, &o)
}

// EncodePrice writes a valuation record as a single JSONL line.
func EncodePrice(w io.Writer, p PriceRecord) error {
	var o jsonObjectWriter
	o.Append("command", cmdValue)
	o.Append("date", p.Date)
	o.Append("holding", p.Holding)
	if !p.Price.IsZero() {
		o.Append("price", p.Price.value)
	} else {
		o.Append("total", p.Total.value.RoundBank(2))
	}
	return writeLine(w, &o)
}

// EncodeRate writes a savings rate entry as a single JSONL line.
func EncodeRate(w io.Writer, r RateEntry) error {
	var o jsonObjectWriter
	o.Append("command", cmdRate)
	o.Append("date", r.Effective)
	o.Append("holding", r.Holding)
	o.Append("annual", r.AnnualRate)
	return writeLine(w, &o)
}

func writeLine(w io.Writer, o *jsonObjectWriter) error {
	data, err := o.MarshalJSON()
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// EncodeLedger writes the whole ledger in canonical form: declarations
// sorted by identifier, then movements in chronological order, then
// valuations, then rate entries.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, h := range l.Holdings() {
		if err := EncodeHolding(w, h); err != nil {
			return err
		}
	}
	for m := range l.All() {
		if err := EncodeMovement(w, m); err != nil {
			return err
		}
	}
	for _, p := range l.prices {
		if err := EncodePrice(w, p); err != nil {
			return err
		}
	}
	for _, r := range l.rates {
		if err := EncodeRate(w, r); err != nil {
			return err
		}
	}
	return nil
}

// journalLine has every field any journal record can carry. Irrelevant fields
// stay at their zero value.
type journalLine struct {
	Command  string          `json:"command"`
	Date     Date            `json:"date"`
	Holding  string          `json:"holding"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Unit     string          `json:"unit"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
	Quantity Quantity        `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
	Annual   decimal.Decimal `json:"annual"`
	Memo     string          `json:"memo"`
}

// DecodeLedger reads a JSONL journal and replays it into a Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var line journalLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("line %d: cannot decode record: %w", n, err)
		}
		if err := replay(ledger, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

func replay(ledger *Ledger, line journalLine) error {
	cur := line.Currency
	if cur == "" {
		cur = "EUR"
	}
	switch line.Command {
	case cmdDeclare:
		typ, err := ParseHoldingType(line.Type)
		if err != nil {
			return err
		}
		unit, err := ParseQuantityUnit(line.Unit)
		if err != nil {
			return err
		}
		return ledger.Declare(Holding{
			ID:       line.Holding,
			Name:     line.Name,
			Type:     typ,
			Unit:     unit,
			Currency: cur,
		})
	case cmdValue:
		return ledger.RecordPrice(PriceRecord{
			Holding: line.Holding,
			Date:    line.Date,
			Price:   M(line.Price, cur).exact(),
			Total:   M(line.Total, cur),
		})
	case cmdRate:
		return ledger.RecordRate(RateEntry{
			Holding:    line.Holding,
			Effective:  line.Date,
			AnnualRate: line.Annual,
		})
	default:
		kind, err := ParseMovementKind(line.Command)
		if err != nil {
			return err
		}
		return ledger.Record(Movement{
			Holding:  line.Holding,
			Date:     line.Date,
			Kind:     kind,
			Amount:   M(line.Amount, cur),
			Quantity: line.Quantity,
			Price:    M(line.Price, cur).exact(),
			Memo:     line.Memo,
		})
	}
}
