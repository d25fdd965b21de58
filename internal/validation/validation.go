// Package validation holds the declarative field contracts the cadastro
// forms enforce before a record reaches persistence or the payroll
// calculator. Rules are pure and synchronous; a Validate call touches
// no network or storage.
package validation

import (
	"net/http"
	"strings"

	"go-folha/internal/shared/apperror"
)

var ErrUnknownEntity = apperror.New(
	apperror.CodeInvalidInput,
	"entidade desconhecida",
	http.StatusBadRequest,
)

// Result reports every violation at once so a form can render all
// field errors in a single pass.
type Result struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// Validate checks record against the named entity's contract. All
// fields are evaluated; there is no short-circuit on the first failure.
// Numeric checks run on the normalized form of the value (comma decimal
// converted first), never on the raw input.
func Validate(entityKind string, record map[string]string) (Result, error) {
	schema, ok := schemas[strings.ToLower(entityKind)]
	if !ok {
		return Result{}, ErrUnknownEntity
	}

	errs := make(map[string][]string)
	for _, f := range schema {
		value := record[f.name]
		if f.optional && value == "" {
			continue
		}
		for _, check := range f.checks {
			if !check.ok(value) {
				errs[f.name] = append(errs[f.name], check.message)
			}
		}
	}

	if len(errs) > 0 {
		return Result{Valid: false, Errors: errs}, nil
	}
	return Result{Valid: true}, nil
}

// NormalizeRecord returns a copy of record with every numeric field of
// the entity's contract normalized (first decimal comma replaced by a
// period). Validation and persistence both consume the normalized copy;
// validating the raw form is the bug class this package exists to kill.
func NormalizeRecord(entityKind string, record map[string]string) (map[string]string, error) {
	schema, ok := schemas[strings.ToLower(entityKind)]
	if !ok {
		return nil, ErrUnknownEntity
	}

	out := make(map[string]string, len(record))
	for k, v := range record {
		out[k] = v
	}
	for _, f := range schema {
		if !f.numeric {
			continue
		}
		if v, present := out[f.name]; present {
			out[f.name] = normalizeNumeric(v)
		}
	}
	return out, nil
}
