package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/models"
)

// Rule coerces a raw JSON value into its column type and checks it.
type Rule func(v interface{}) (interface{}, error)

// Fields resolves the rule of an updatable field. The repository field
// registries implement it, so one declaration drives both coercion and the
// UPDATE statement.
type Fields interface {
	Rule(name string) (Rule, bool)
}

// FieldRules is an ad hoc Fields.
type FieldRules map[string]Rule

func (rules FieldRules) Rule(name string) (Rule, bool) {
	rule, ok := rules[name]
	return rule, ok
}

// Coerce converts every recognized key of updates and drops unknown ones.
// All invalid fields are reported together.
func Coerce(fields Fields, updates map[string]interface{}) (map[string]interface{}, error) {
	out, errs := coerce(fields, updates)
	if len(errs) > 0 {
		return nil, apperrors.Validation(errs)
	}
	return out, nil
}

// Coerce is the package Coerce plus the rule that no stored date
// (deal or payment date) lies after today.
func (v *Validator) Coerce(fields Fields, updates map[string]interface{}) (map[string]interface{}, error) {
	out, errs := coerce(fields, updates)
	today := v.today()
	for name, val := range out {
		if d, ok := val.(models.Date); ok && d.After(today) {
			errs[name] = "дата не может быть в будущем"
		}
	}
	if len(errs) > 0 {
		return nil, apperrors.Validation(errs)
	}
	return out, nil
}

func coerce(fields Fields, updates map[string]interface{}) (map[string]interface{}, map[string]string) {
	out := make(map[string]interface{}, len(updates))
	errs := map[string]string{}
	for name, raw := range updates {
		rule, ok := fields.Rule(name)
		if !ok {
			continue
		}
		val, err := rule(raw)
		if err != nil {
			errs[name] = err.Error()
			continue
		}
		out[name] = val
	}
	return out, errs
}

func RequiredText(max int) Rule {
	return func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errors.New("ожидается строка")
		}
		if strings.TrimSpace(s) == "" {
			return nil, errors.New("поле не может быть пустым")
		}
		if max > 0 && utf8.RuneCountInString(s) > max {
			return nil, fmt.Errorf("значение должно быть не длиннее %d символов", max)
		}
		return s, nil
	}
}

// OptionalText maps null and "" to NULL.
func OptionalText(max int) Rule {
	return func(v interface{}) (interface{}, error) {
		if v == nil {
			return nil, nil
		}
		s, ok := v.(string)
		if !ok {
			return nil, errors.New("ожидается строка")
		}
		if s == "" {
			return nil, nil
		}
		if max > 0 && utf8.RuneCountInString(s) > max {
			return nil, fmt.Errorf("значение должно быть не длиннее %d символов", max)
		}
		return s, nil
	}
}

func Email() Rule {
	text := OptionalText(255)
	return func(v interface{}) (interface{}, error) {
		val, err := text(v)
		if err != nil || val == nil {
			return val, err
		}
		if !IsValidEmail(val.(string)) {
			return nil, errors.New("некорректный формат email адреса")
		}
		return val, nil
	}
}

func Phone() Rule {
	text := OptionalText(20)
	return func(v interface{}) (interface{}, error) {
		val, err := text(v)
		if err != nil || val == nil {
			return val, err
		}
		if !IsValidPhone(val.(string)) {
			return nil, errors.New("номер телефона должен содержать не менее 10 цифр")
		}
		return val, nil
	}
}

func IntRange(min, max int64) Rule {
	return func(v interface{}) (interface{}, error) {
		n, err := AsInt(v)
		if err != nil {
			return nil, err
		}
		if n < min || n > max {
			return nil, fmt.Errorf("значение должно быть от %d до %d", min, max)
		}
		return n, nil
	}
}

func PositiveID() Rule {
	return func(v interface{}) (interface{}, error) {
		n, err := AsInt(v)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, errors.New("идентификатор должен быть положительным")
		}
		return n, nil
	}
}

func PositiveNumber() Rule {
	return func(v interface{}) (interface{}, error) {
		f, err := AsFloat(v)
		if err != nil {
			return nil, err
		}
		if f <= 0 {
			return nil, errors.New("значение должно быть больше 0")
		}
		return f, nil
	}
}

func Date() Rule {
	return func(v interface{}) (interface{}, error) {
		d, err := AsDate(v)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// AsInt accepts JSON numbers without a fractional part and numeric strings.
func AsInt(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, errors.New("ожидается целое число")
		}
		return int64(n), nil
	case json.Number:
		return n.Int64()
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, errors.New("ожидается целое число")
		}
		return i, nil
	default:
		return 0, errors.New("ожидается целое число")
	}
}

func AsFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, errors.New("ожидается число")
		}
		return f, nil
	default:
		return 0, errors.New("ожидается число")
	}
}

func AsDate(v interface{}) (models.Date, error) {
	switch d := v.(type) {
	case models.Date:
		return d, nil
	case time.Time:
		return models.DateOf(d), nil
	case string:
		parsed, err := models.ParseDate(d)
		if err != nil {
			return models.Date{}, errors.New("ожидается дата в формате ГГГГ-ММ-ДД")
		}
		return parsed, nil
	default:
		return models.Date{}, errors.New("ожидается дата в формате ГГГГ-ММ-ДД")
	}
}
