// Package forms converts entities to and from flat form field maps, the
// shape the CLI reads from field=value arguments.
package forms

import (
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "bizdesk/internal/errors"
)

// Values is a form: field name to raw string value.
type Values map[string]string

// Get returns the trimmed value of field.
func (v Values) Get(field string) string {
	return strings.TrimSpace(v[field])
}

// Set stores value under field. Empty values are dropped so that a round
// trip does not invent optional fields.
func (v Values) Set(field, value string) {
	if value == "" {
		delete(v, field)
		return
	}
	v[field] = value
}

// Merge overlays o onto a copy of v.
func (v Values) Merge(o Values) Values {
	out := make(Values, len(v)+len(o))
	for k, val := range v {
		out[k] = val
	}
	for k, val := range o {
		out[k] = val
	}
	return out
}

// Fields returns the field names in sorted order.
func (v Values) Fields() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parse reads "field=value" pairs.
func Parse(pairs []string) (Values, error) {
	v := Values{}
	var bad []apperrors.FieldError
	for _, p := range pairs {
		field, value, ok := strings.Cut(p, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			bad = append(bad, apperrors.Invalid(p, "field=value"))
			continue
		}
		v[field] = value
	}
	if len(bad) > 0 {
		return nil, apperrors.Validation(bad...)
	}
	return v, nil
}

// parser accumulates field errors while reading typed values.
type parser struct {
	v    Values
	errs []apperrors.FieldError
}

func (p *parser) int64(field string) int64 {
	s := p.v.Get(field)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.errs = append(p.errs, apperrors.Invalid(field, "integer"))
		return 0
	}
	return n
}

func (p *parser) optionalInt64(field string) *int64 {
	if p.v.Get(field) == "" {
		return nil
	}
	n := p.int64(field)
	return &n
}

func (p *parser) bool(field string) bool {
	switch strings.ToLower(p.v.Get(field)) {
	case "", "false", "0", "no", "off":
		return false
	case "true", "1", "yes", "on":
		return true
	default:
		p.errs = append(p.errs, apperrors.Invalid(field, "boolean"))
		return false
	}
}

func (p *parser) time(field string) time.Time {
	s := p.v.Get(field)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		p.errs = append(p.errs, apperrors.Invalid(field, "timestamp"))
		return time.Time{}
	}
	return t
}

func (p *parser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return apperrors.Validation(p.errs...)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
