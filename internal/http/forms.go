package http

import (
	"fmt"
	"net/url"
	"strings"

	"trackpense/internal/core"
)

// Field describes one form input: its name, whether it must be present,
// and an optional parse step applied after the presence check.
type Field struct {
	Name     string
	Required bool
	Parse    func(string) (any, error)
}

// Schema is the declared input shape of one submission endpoint.
type Schema []Field

// FormValues holds parsed form data keyed by field name. Fields without a
// parse function are stored as sanitized strings.
type FormValues map[string]any

func (v FormValues) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v FormValues) Int64(name string) int64 {
	n, _ := v[name].(int64)
	return n
}

// Parse validates form data against the schema. A blank required field
// fails with core.ErrMissingField before any parse function runs, so a
// submission either parses fully or reports its first problem; nothing
// partial escapes.
func (s Schema) Parse(form url.Values) (FormValues, error) {
	values := make(FormValues, len(s))

	for _, f := range s {
		raw := sanitizeInput(form.Get(f.Name))
		if raw == "" {
			if f.Required {
				return nil, fmt.Errorf("%w: %s", core.ErrMissingField, f.Name)
			}
			values[f.Name] = ""
			continue
		}
		if f.Parse == nil {
			values[f.Name] = raw
			continue
		}
		parsed, err := f.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		values[f.Name] = parsed
	}

	return values, nil
}

// sanitizeInput trims whitespace and strips control characters except tab,
// newline and carriage return.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// parseAmount adapts the money parser for schema use.
func parseAmount(raw string) (any, error) {
	cents, err := core.ParseAmountToCents(raw)
	if err != nil {
		return nil, err
	}
	return cents, nil
}

// parseStoredDate validates the date keeps the persisted format.
func parseStoredDate(raw string) (any, error) {
	if err := core.ValidateStoredDate(raw); err != nil {
		return nil, err
	}
	return raw, nil
}
