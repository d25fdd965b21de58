package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Calculation-input errors (4xx, recoverable by the caller)
	CodeInvalidSalary       = "INVALID_SALARY"
	CodeInvalidMonthsWorked = "INVALID_MONTHS_WORKED"
	CodeNoBracketMatched    = "NO_BRACKET_MATCHED"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
