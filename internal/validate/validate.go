// Package validate normalizes raw JSON bodies against required and optional
// field lists. It only trims and defaults; numeric and date validity is the
// caller's business and is reported as a domain error, not here.
package validate

import (
	"strings"

	"github.com/Biagem01/Orizon/internal/domain"
)

// Fields checks input against the required field list and fills absent
// optional fields with their defaults. Required fields fail when missing,
// nil, or (for strings) empty after trimming. String values are trimmed;
// everything else passes through unchanged.
func Fields(input map[string]any, required []string, optional map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(required)+len(optional))

	for _, field := range required {
		v, ok := input[field]
		if !ok || v == nil {
			return nil, domain.Validationf("Field '%s' is required and cannot be empty", field)
		}
		if s, isStr := v.(string); isStr {
			s = strings.TrimSpace(s)
			if s == "" {
				return nil, domain.Validationf("Field '%s' is required and cannot be empty", field)
			}
			out[field] = s
			continue
		}
		out[field] = v
	}

	for field, def := range optional {
		v, ok := input[field]
		if !ok || v == nil {
			out[field] = def
			continue
		}
		if s, isStr := v.(string); isStr {
			out[field] = strings.TrimSpace(s)
			continue
		}
		out[field] = v
	}

	return out, nil
}
