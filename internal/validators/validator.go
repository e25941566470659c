package validators

import (
	"reflect"
	"regexp"
	"strings"

	apperrors "realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneStripper = regexp.MustCompile(`[^0-9+]`)
)

const minPhoneLength = 10

// Validator checks entities and partial updates before they reach the database.
type Validator struct {
	validate *validator.Validate
	today    func() models.Date
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterValidation("notblank", nonstandard.NotBlank)
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	v.RegisterValidation("agencyemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	return &Validator{validate: v, today: models.Today}
}

// WithToday overrides the clock used for "not in the future" checks.
func (v *Validator) WithToday(today func() models.Date) *Validator {
	v.today = today
	return v
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone accepts any punctuation as long as at least ten digits or '+' remain.
func IsValidPhone(phone string) bool {
	return len(phoneStripper.ReplaceAllString(phone, "")) >= minPhoneLength
}

func (v *Validator) check(s interface{}, extra map[string]string) error {
	fields := map[string]string{}
	if err := v.validate.Struct(s); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperrors.Internal(err)
		}
		for field, reason := range apperrors.FromValidator(verrs).FieldErrors {
			fields[field] = reason
		}
	}
	for field, reason := range extra {
		if _, seen := fields[field]; !seen {
			fields[field] = reason
		}
	}
	if len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}

// blankToNil stores empty optional text as NULL, as partial updates do.
func blankToNil(fields ...**string) {
	for _, f := range fields {
		if *f != nil && **f == "" {
			*f = nil
		}
	}
}

func (v *Validator) Client(c *models.Client) error {
	if c == nil {
		return apperrors.FieldValidation("client", "данные клиента обязательны")
	}
	blankToNil(&c.MiddleName, &c.Phone, &c.Email)
	return v.check(c, nil)
}

func (v *Validator) Realtor(r *models.Realtor) error {
	if r == nil {
		return apperrors.FieldValidation("realtor", "данные риелтора обязательны")
	}
	blankToNil(&r.MiddleName, &r.Phone, &r.Email)
	return v.check(r, nil)
}

func (v *Validator) Property(p *models.Property) error {
	if p == nil {
		return apperrors.FieldValidation("property", "данные объекта недвижимости обязательны")
	}
	return v.check(p, nil)
}

func (v *Validator) Deal(d *models.Deal) error {
	if d == nil {
		return apperrors.FieldValidation("deal", "данные сделки обязательны")
	}
	return v.check(d, v.dateNotInFuture("dealDate", d.DealDate))
}

func (v *Validator) Payment(p *models.Payment) error {
	if p == nil {
		return apperrors.FieldValidation("payment", "данные платежа обязательны")
	}
	return v.check(p, v.dateNotInFuture("paymentDate", p.PaymentDate))
}

func (v *Validator) dateNotInFuture(field string, d models.Date) map[string]string {
	if d.IsZero() {
		return map[string]string{field: "поле обязательно для заполнения"}
	}
	if d.After(v.today()) {
		return map[string]string{field: "дата не может быть в будущем"}
	}
	return nil
}

// DateRange rejects a start that falls after the end. Either bound may be absent.
func (v *Validator) DateRange(start, end *models.Date) error {
	if start != nil && end != nil && start.After(*end) {
		return apperrors.FieldValidation("startDate", "начальная дата не может быть позже конечной")
	}
	return nil
}

// Range rejects min > max for numeric filters.
func (v *Validator) Range(field string, min, max *float64) error {
	if min != nil && max != nil && *min > *max {
		return apperrors.FieldValidation(field, "минимальное значение не может превышать максимальное")
	}
	return nil
}

// Login checks operator credentials are present before hashing anything.
func (v *Validator) Login(username, password string) error {
	fields := map[string]string{}
	if strings.TrimSpace(username) == "" {
		fields["username"] = "поле обязательно для заполнения"
	}
	if password == "" {
		fields["password"] = "поле обязательно для заполнения"
	}
	if len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}
