package recon

import (
	"errors"
	"fmt"
	"slices"

	"github.com/homier/probemap"
	"github.com/shopspring/decimal"
)

// CashSymbol is the symbol under which the cash balance is reported.
const CashSymbol = "Cash"

var ErrInvalidTrade = errors.New("invalid trade")

// Portfolio is a cash balance plus a number of shares per symbol.
type Portfolio struct {
	cash   decimal.Decimal
	shares *probemap.Map[decimal.Decimal]
}

// NewPortfolio loads positions into a new portfolio. Cash positions add up
// to the balance, a repeated symbol keeps its last amount.
func NewPortfolio(positions []Position) (*Portfolio, error) {
	shares, err := probemap.New[decimal.Decimal]()
	if err != nil {
		return nil, err
	}

	p := &Portfolio{shares: shares}
	for _, pos := range positions {
		if pos.Symbol == CashSymbol {
			p.cash = p.cash.Add(pos.Amount)
			continue
		}

		if err := p.shares.Set(pos.Symbol, pos.Amount); err != nil {
			return nil, fmt.Errorf("position %s: %w", pos.Symbol, err)
		}
	}

	return p, nil
}

func (p *Portfolio) Cash() decimal.Decimal {
	return p.cash
}

// Shares returns the number of shares held for symbol, zero if none.
func (p *Portfolio) Shares(symbol string) decimal.Decimal {
	v, _ := p.shares.Lookup(symbol)
	return v
}

func (p *Portfolio) Has(symbol string) bool {
	return p.shares.Contains(symbol)
}

// Symbols returns the held symbols in alphabetical order.
func (p *Portfolio) Symbols() []string {
	return slices.Sorted(p.shares.Keys())
}

// Apply books a trade: BUY and SELL move shares against cash, DEPOSIT and
// DIVIDEND credit cash, FEE debits it.
func (p *Portfolio) Apply(t Trade) error {
	switch t.Code {
	case Buy, Sell:
		if t.Symbol == CashSymbol {
			return fmt.Errorf("%w: cannot %s %s", ErrInvalidTrade, t.Code, CashSymbol)
		}

		shares, cash := t.Shares, t.Value.Neg()
		if t.Code == Sell {
			shares, cash = shares.Neg(), t.Value
		}

		if err := p.shares.Set(t.Symbol, p.Shares(t.Symbol).Add(shares)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTrade, err)
		}
		p.cash = p.cash.Add(cash)
	case Deposit, Dividend:
		p.cash = p.cash.Add(t.Value)
	case Fee:
		p.cash = p.cash.Sub(t.Value)
	default:
		return fmt.Errorf("%w: unknown code %q", ErrInvalidTrade, t.Code)
	}

	return nil
}

// Sub returns p - other over the union of both portfolios' symbols, missing
// symbols count as zero shares.
func (p *Portfolio) Sub(other *Portfolio) (*Portfolio, error) {
	symbols, err := probemap.NewSet()
	if err != nil {
		return nil, err
	}

	for _, src := range []*Portfolio{p, other} {
		for sym := range src.shares.Keys() {
			if err := symbols.Add(sym); err != nil {
				return nil, err
			}
		}
	}

	diff, err := NewPortfolio(nil)
	if err != nil {
		return nil, err
	}

	for sym := range symbols.All() {
		if err := diff.shares.Set(sym, p.Shares(sym).Sub(other.Shares(sym))); err != nil {
			return nil, err
		}
	}
	diff.cash = p.cash.Sub(other.cash)

	return diff, nil
}
