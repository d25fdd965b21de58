package thirteenth

import (
	"net/http"

	"github.com/shopspring/decimal"

	"go-folha/internal/money"
	"go-folha/internal/shared/apperror"
	"go-folha/internal/taxbracket"
)

// PaymentMode selects how the thirteenth salary is paid out. Parcial is
// accepted on the wire but currently computes the same amounts as
// Integral; no proration rule exists for it yet.
type PaymentMode string

const (
	ModeIntegral PaymentMode = "integral"
	ModeParcial  PaymentMode = "parcial"
)

func (m PaymentMode) Valid() bool {
	return m == ModeIntegral || m == ModeParcial
}

var (
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidSalary,
		"salário deve ser maior que zero",
		http.StatusBadRequest,
	)

	ErrInvalidMonthsWorked = apperror.New(
		apperror.CodeInvalidMonthsWorked,
		"meses trabalhados deve estar entre 0 e 12",
		http.StatusBadRequest,
	)

	ErrInvalidPaymentMode = apperror.New(
		apperror.CodeInvalidInput,
		"tipo de pagamento deve ser integral ou parcial",
		http.StatusBadRequest,
	)
)

// Input is one calculation request. Salary is the monthly salary, not
// the annual total.
type Input struct {
	EmployeeID   string
	Salary       decimal.Decimal
	MonthsWorked int
	Mode         PaymentMode
}

// Result carries the computed payment. All amounts are in cents
// precision (two decimal places, rounded half-up).
type Result struct {
	GrossThirteenth decimal.Decimal
	ApplicableRate  decimal.Decimal
	WithheldAmount  decimal.Decimal
	NetThirteenth   decimal.Decimal
	Mode            PaymentMode
}

var twelve = decimal.NewFromInt(12)
var hundred = decimal.NewFromInt(100)

// Calculate computes the proportional thirteenth salary and its
// bracket-based withholding. Pure and synchronous: the bracket table is
// an explicit parameter and no I/O happens here.
//
// The withholding rate is resolved against the PROPORTIONAL gross, not
// the full monthly salary. Input errors and resolver failures come back
// as structured AppError values; nothing is clamped or defaulted.
//
// MonthsWorked 0 is a valid input, but it makes the gross zero, which
// falls below the floor of the built-in table and so fails with
// ErrNoBracketMatched. There is no zero-rate fallback.
func Calculate(table taxbracket.Table, in Input) (Result, error) {
	if !in.Salary.IsPositive() {
		return Result{}, ErrInvalidSalary
	}
	if in.MonthsWorked < 0 || in.MonthsWorked > 12 {
		return Result{}, ErrInvalidMonthsWorked
	}
	if !in.Mode.Valid() {
		return Result{}, ErrInvalidPaymentMode
	}

	gross := money.Round2(in.Salary.Mul(decimal.NewFromInt(int64(in.MonthsWorked))).Div(twelve))

	rate, err := taxbracket.Resolve(table, gross)
	if err != nil {
		return Result{}, err
	}

	withheld := money.Round2(gross.Mul(rate).Div(hundred))
	net := gross.Sub(withheld)

	return Result{
		GrossThirteenth: gross,
		ApplicableRate:  rate,
		WithheldAmount:  withheld,
		NetThirteenth:   net,
		Mode:            in.Mode,
	}, nil
}
