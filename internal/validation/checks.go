package validation

import (
	"regexp"
	"time"

	"go-folha/internal/money"
)

type check struct {
	ok      func(string) bool
	message string
}

type field struct {
	name     string
	optional bool
	numeric  bool
	checks   []check
}

type schema []field

func minLength(n int, msg string) check {
	return check{
		ok:      func(v string) bool { return len([]rune(v)) >= n },
		message: msg,
	}
}

// nonEmpty is the contract for select fields: presence only, no closed
// value set.
func nonEmpty(msg string) check {
	return check{
		ok:      func(v string) bool { return v != "" },
		message: msg,
	}
}

func pattern(re *regexp.Regexp, msg string) check {
	return check{
		ok:      func(v string) bool { return re.MatchString(v) },
		message: msg,
	}
}

// numericValue accepts a value that parses as a finite decimal after
// normalization. ParseDecimal normalizes internally, which pins the
// normalize-then-validate order.
func numericValue(msg string) check {
	return check{
		ok: func(v string) bool {
			_, err := money.ParseDecimal(v)
			return err == nil
		},
		message: msg,
	}
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", time.RFC3339}

func parseableDate(msg string) check {
	return check{
		ok: func(v string) bool {
			for _, layout := range dateLayouts {
				if _, err := time.Parse(layout, v); err == nil {
					return true
				}
			}
			return false
		},
		message: msg,
	}
}

func normalizeNumeric(v string) string {
	return money.Normalize(v)
}

func required(name string, checks ...check) field {
	return field{name: name, checks: checks}
}

func numeric(name string, msg string) field {
	return field{name: name, numeric: true, checks: []check{numericValue(msg)}}
}

func optional(name string) field {
	return field{name: name, optional: true}
}
