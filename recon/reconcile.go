package recon

import (
	"strings"
)

// Report lists the positions whose reported closing amount does not match the
// opening positions carried through the day's trades.
type Report struct {
	Positions []Position
}

// Reconcile replays in.Trades on the opening portfolio and compares the
// result with the closing one. Cash comes first in the report, symbols follow
// in alphabetical order.
func Reconcile(in *Input) (*Report, error) {
	expected, err := NewPortfolio(in.Opening)
	if err != nil {
		return nil, err
	}

	for _, t := range in.Trades {
		if err := expected.Apply(t); err != nil {
			return nil, err
		}
	}

	closing, err := NewPortfolio(in.Closing)
	if err != nil {
		return nil, err
	}

	diff, err := closing.Sub(expected)
	if err != nil {
		return nil, err
	}

	var r Report
	if !diff.Cash().IsZero() {
		r.Positions = append(r.Positions, Position{Symbol: CashSymbol, Amount: diff.Cash()})
	}

	for _, sym := range diff.Symbols() {
		if amount := diff.Shares(sym); !amount.IsZero() {
			r.Positions = append(r.Positions, Position{Symbol: sym, Amount: amount})
		}
	}

	return &r, nil
}

// OK reports whether every position reconciled.
func (r *Report) OK() bool {
	return len(r.Positions) == 0
}

func (r *Report) String() string {
	lines := make([]string, 0, len(r.Positions))
	for _, p := range r.Positions {
		lines = append(lines, p.String())
	}

	return strings.Join(lines, "\n")
}
