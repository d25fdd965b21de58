package money

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"go-folha/internal/shared/apperror"
)

// ErrNotANumber is returned when a value does not parse as a finite
// decimal after normalization.
var ErrNotANumber = apperror.New(
	apperror.CodeInvalidInput,
	"valor numérico inválido",
	http.StatusBadRequest,
)

// Normalize converts a locale-formatted decimal string into parseable
// form by replacing the first decimal comma with a period. Every other
// character is left untouched: grouping dots, currency symbols and
// signs are NOT stripped. Input forms constrain values to comma-decimal
// without grouping, so a thousands separator surviving normalization is
// expected to fail the subsequent parse.
func Normalize(s string) string {
	return strings.Replace(s, ",", ".", 1)
}

// ParseDecimal normalizes then parses a monetary or percentage string.
// Parsing always runs on the normalized form; validating the raw string
// first rejects legitimate comma-decimal input.
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(Normalize(strings.TrimSpace(s)))
	if err != nil {
		return decimal.Zero, apperror.Wrap(err, ErrNotANumber.Code, ErrNotANumber.Message, ErrNotANumber.HTTPStatus)
	}
	return d, nil
}

// Round2 rounds half-up to two decimal places. Applied after every
// multiplication in the payroll calculations so intermediate values
// stay in cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatBR renders a decimal with two places and a comma separator,
// the display form the dashboard expects.
func FormatBR(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
