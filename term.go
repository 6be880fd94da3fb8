package lexicon

import "strings"

// normalize is the only transformation applied to terms and definitions.
func normalize(s string) string {
	return strings.TrimSpace(s)
}

func checkTerm(op, term string) (string, error) {
	key := normalize(term)
	if key == "" {
		return "", invalidf(op, "term must not be empty or whitespace-only")
	}
	return key, nil
}

// CheckTerm validates an untyped lookup term and returns its normalised form.
// nil, a nil *string and any non-string value are rejected with
// ErrInvalidInput; no coercion is attempted.
func CheckTerm(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return checkTerm("check", t)
	case *string:
		if t == nil {
			return "", invalidf("check", "term must not be nil")
		}
		return checkTerm("check", *t)
	case nil:
		return "", invalidf("check", "term must not be nil")
	default:
		return "", invalidf("check", "term must be a string, got %T", v)
	}
}
