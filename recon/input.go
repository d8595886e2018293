package recon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Section headers of the reconciliation input.
const (
	OpeningHeader = "D0-POS"
	TradesHeader  = "D1-TRN"
	ClosingHeader = "D1-POS"
)

var ErrMalformed = errors.New("malformed input")

// Position is a holding of a symbol, or the cash balance when Symbol is
// CashSymbol.
type Position struct {
	Symbol string
	Amount decimal.Decimal
}

func (p Position) String() string {
	return p.Symbol + " " + p.Amount.String()
}

type Code string

const (
	Buy      Code = "BUY"
	Sell     Code = "SELL"
	Fee      Code = "FEE"
	Deposit  Code = "DEPOSIT"
	Dividend Code = "DIVIDEND"
)

func ParseCode(s string) (Code, error) {
	switch c := Code(s); c {
	case Buy, Sell, Fee, Deposit, Dividend:
		return c, nil
	default:
		return "", fmt.Errorf("unknown transaction code %q", s)
	}
}

// Trade is a single day-1 transaction.
type Trade struct {
	Symbol string
	Code   Code
	Shares decimal.Decimal
	Value  decimal.Decimal
}

// Input holds the three sections of a reconciliation file.
type Input struct {
	Opening []Position
	Trades  []Trade
	Closing []Position
}

// Parse reads a reconciliation file. The first line must be the opening
// header, blank lines are skipped.
func Parse(r io.Reader) (*Input, error) {
	var (
		in      Input
		section string
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if lineNo == 1 && line != OpeningHeader {
			return nil, fmt.Errorf("%w: line 1: expected %q, got %q", ErrMalformed, OpeningHeader, line)
		}

		switch line {
		case "":
			continue
		case OpeningHeader, TradesHeader, ClosingHeader:
			section = line
			continue
		}

		var err error
		switch section {
		case OpeningHeader:
			err = appendPosition(&in.Opening, line)
		case TradesHeader:
			err = appendTrade(&in.Trades, line)
		case ClosingHeader:
			err = appendPosition(&in.Closing, line)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo+1, err)
	}
	if lineNo == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	return &in, nil
}

func appendPosition(dst *[]Position, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("position %q: want 2 fields, got %d", line, len(fields))
	}

	amount, err := decimal.NewFromString(fields[1])
	if err != nil {
		return fmt.Errorf("position %q: %w", line, err)
	}

	*dst = append(*dst, Position{Symbol: fields[0], Amount: amount})
	return nil
}

func appendTrade(dst *[]Trade, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return fmt.Errorf("trade %q: want 4 fields, got %d", line, len(fields))
	}

	code, err := ParseCode(fields[1])
	if err != nil {
		return err
	}

	shares, err := decimal.NewFromString(fields[2])
	if err != nil {
		return fmt.Errorf("trade %q: shares: %w", line, err)
	}

	value, err := decimal.NewFromString(fields[3])
	if err != nil {
		return fmt.Errorf("trade %q: value: %w", line, err)
	}

	*dst = append(*dst, Trade{Symbol: fields[0], Code: code, Shares: shares, Value: value})
	return nil
}
