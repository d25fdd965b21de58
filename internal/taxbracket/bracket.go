package taxbracket

import (
	"net/http"

	"github.com/shopspring/decimal"

	"go-folha/internal/shared/apperror"
)

// ErrNoBracketMatched signals a salary no bracket covers: negative
// values, values below the table floor, or a gap in a mis-specified
// table. Callers treat it as a hard validation failure; the resolver
// never defaults to a zero rate.
var ErrNoBracketMatched = apperror.New(
	apperror.CodeNoBracketMatched,
	"salário fora das faixas da tabela",
	http.StatusUnprocessableEntity,
)

var ErrInvalidTable = apperror.New(
	apperror.CodeInvalidState,
	"tabela de faixas inválida",
	http.StatusUnprocessableEntity,
)

// Bracket is one salary range mapped to a withholding percentage.
// Max == nil marks the open-ended top bracket.
type Bracket struct {
	Min  decimal.Decimal
	Max  *decimal.Decimal
	Rate decimal.Decimal
}

// Table is an ordered set of brackets, lowest range first.
type Table []Bracket

var oneCent = decimal.New(1, -2)

// Validate checks the table invariants: at least one bracket, ranges
// ascending and well-formed, adjacent brackets either sharing a
// boundary or one cent apart (both conventions appear in published
// withholding tables), and exactly one open-ended bracket, in last
// position.
func (t Table) Validate() error {
	if len(t) == 0 {
		return apperror.New(ErrInvalidTable.Code, "tabela de faixas vazia", ErrInvalidTable.HTTPStatus)
	}

	for i, b := range t {
		last := i == len(t)-1
		if b.Max == nil {
			if !last {
				return apperror.New(ErrInvalidTable.Code, "faixa aberta deve ser a última", ErrInvalidTable.HTTPStatus)
			}
			continue
		}
		if b.Max.LessThan(b.Min) {
			return apperror.New(ErrInvalidTable.Code, "faixa com máximo menor que o mínimo", ErrInvalidTable.HTTPStatus)
		}
		if last {
			return apperror.New(ErrInvalidTable.Code, "última faixa deve ser aberta", ErrInvalidTable.HTTPStatus)
		}

		gap := t[i+1].Min.Sub(*b.Max)
		if gap.IsNegative() || gap.GreaterThan(oneCent) {
			return apperror.New(ErrInvalidTable.Code, "faixas não contíguas", ErrInvalidTable.HTTPStatus)
		}
	}

	return nil
}

// Resolve returns the withholding rate applicable to salary. Brackets
// are scanned in ascending order; the open-ended bracket matches
// salary >= Min, every other bracket matches Min <= salary <= Max with
// both ends inclusive. When adjacent brackets share an exact boundary
// the first match wins, so the boundary value resolves to the lower
// rate. The table is an explicit parameter so jurisdiction- or
// year-specific tables need no code change.
func Resolve(table Table, salary decimal.Decimal) (decimal.Decimal, error) {
	for _, b := range table {
		if b.Max == nil {
			if salary.GreaterThanOrEqual(b.Min) {
				return b.Rate, nil
			}
			continue
		}
		if salary.GreaterThanOrEqual(b.Min) && salary.LessThanOrEqual(*b.Max) {
			return b.Rate, nil
		}
	}

	return decimal.Zero, ErrNoBracketMatched
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// DefaultTable returns the built-in progressive withholding table used
// when a company has no tax-rate records of its own.
func DefaultTable() Table {
	return Table{
		{Min: dec("100.00"), Max: decPtr("2826.65"), Rate: dec("7.5")},
		{Min: dec("2826.65"), Max: decPtr("3751.05"), Rate: dec("15")},
		{Min: dec("3751.06"), Max: decPtr("4664.68"), Rate: dec("22.5")},
		{Min: dec("4664.68"), Max: nil, Rate: dec("27.5")},
	}
}
