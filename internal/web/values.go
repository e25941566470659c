package web

import (
	"strconv"
	"strings"

	"realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/models"
)

// values reads typed fields from a query string or a submitted form,
// collecting every malformed one.
type values struct {
	get    func(string) string
	errors map[string]string
}

func newValues(get func(string) string) *values {
	return &values{get: get, errors: map[string]string{}}
}

func (v *values) text(name string) string {
	return strings.TrimSpace(v.get(name))
}

// optional returns nil for a blank field.
func (v *values) optional(name string) *string {
	s := v.text(name)
	if s == "" {
		return nil
	}
	return &s
}

func (v *values) int64(name string) *int64 {
	raw := v.text(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		v.errors[name] = "ожидается целое число"
		return nil
	}
	return &n
}

func (v *values) int(name string) *int {
	n := v.int64(name)
	if n == nil {
		return nil
	}
	i := int(*n)
	return &i
}

func (v *values) float(name string) *float64 {
	raw := v.text(name)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		v.errors[name] = "ожидается число"
		return nil
	}
	return &f
}

func (v *values) date(name string) *models.Date {
	raw := v.text(name)
	if raw == "" {
		return nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		v.errors[name] = "ожидается дата в формате ГГГГ-ММ-ДД"
		return nil
	}
	return &d
}

// Readers for required add-form fields; a blank field is reported as missing.

func (v *values) missing(name string) {
	if _, bad := v.errors[name]; !bad {
		v.errors[name] = "поле обязательно"
	}
}

func (v *values) id(name string) int64 {
	n := v.int64(name)
	if n == nil {
		v.missing(name)
		return 0
	}
	return *n
}

func (v *values) number(name string) float64 {
	f := v.float(name)
	if f == nil {
		v.missing(name)
		return 0
	}
	return *f
}

func (v *values) day(name string) models.Date {
	d := v.date(name)
	if d == nil {
		v.missing(name)
		return models.Date{}
	}
	return *d
}

func (v *values) err() error {
	if len(v.errors) == 0 {
		return nil
	}
	return errors.Validation(v.errors)
}
