package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"realestate-backoffice/pkg/database"

	"github.com/go-playground/validator/v10"
)

// MapError converts any error into an AppError suitable for a response.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var dbErr *database.Error
	if stderrors.As(err, &dbErr) {
		return FromDatabase(err, OpSelect, dbErr.Table, nil)
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		return FromValidator(verrs)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var numErr *strconv.NumError
	var timeErr *time.ParseError
	switch {
	case stderrors.As(err, &typeErr):
		appErr := FieldValidation(typeErr.Field, "некорректный тип значения")
		appErr.OriginalError = err
		return appErr
	case stderrors.As(err, &syntaxErr), stderrors.As(err, &numErr), stderrors.As(err, &timeErr):
		appErr := Validation(map[string]string{})
		appErr.TechnicalMessage = "malformed request"
		appErr.OriginalError = err
		return appErr
	}

	return Internal(err)
}

// FromDatabase translates a repository failure into the domain taxonomy.
// op is one of the Op* constants, entity and id describe the target row.
func FromDatabase(err error, op, entity string, id interface{}) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	target := entity
	if id != nil {
		target = fmt.Sprintf("%s id=%v", entity, id)
	}

	switch database.KindOf(err) {
	case database.KindNotFound:
		notFound := NotFound(entity, id)
		notFound.Operation = op
		notFound.OriginalError = err
		return notFound
	case database.KindIntegrityViolation:
		return &AppError{
			TechnicalMessage: fmt.Sprintf("data integrity violation during %s of %s", op, target),
			UserMessage:      userMessageForOperation(op),
			Code:             ErrCodeIntegrityViolation,
			HTTPStatus:       http.StatusConflict,
			OriginalError:    err,
			Operation:        op,
		}
	case database.KindSyntax:
		return &AppError{
			TechnicalMessage: fmt.Sprintf("SQL syntax error during %s of %s", op, target),
			UserMessage:      userMessageForOperation(op),
			Code:             ErrCodeSQLSyntax,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
			Operation:        op,
		}
	case database.KindConnection:
		return &AppError{
			TechnicalMessage: fmt.Sprintf("database connection failure during %s of %s", op, target),
			UserMessage:      MsgServiceUnavailable,
			Code:             ErrCodeDatabaseUnavailable,
			HTTPStatus:       http.StatusServiceUnavailable,
			OriginalError:    err,
			Operation:        op,
		}
	case database.KindOther:
		return &AppError{
			TechnicalMessage: fmt.Sprintf("database error during %s of %s", op, target),
			UserMessage:      userMessageForOperation(op),
			Code:             ErrCodeDatabase,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
			Operation:        op,
		}
	}
	return Internal(err)
}

// FromValidator converts struct validation failures into a field error map.
func FromValidator(verrs validator.ValidationErrors) *AppError {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = describeTag(fe)
	}
	return Validation(fields)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "поле обязательно для заполнения"
	case "email", "agencyemail":
		return "некорректный формат email адреса"
	case "phone":
		return "номер телефона должен содержать не менее 10 цифр"
	case "gt":
		return "значение должно быть больше " + fe.Param()
	case "gte", "min":
		return "значение должно быть не меньше " + fe.Param()
	case "lt", "lte", "max":
		return "значение должно быть не больше " + fe.Param()
	case "notblank":
		return "поле не может быть пустым"
	default:
		return fmt.Sprintf("некорректное значение (%s)", fe.Tag())
	}
}

// UserMessage returns the message safe to show to the end user.
func UserMessage(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.UserMessage != "" {
		return appErr.UserMessage
	}
	return MsgUnexpected
}

// IsCritical reports whether err is a database failure that needs attention.
func IsCritical(err error) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	switch appErr.Code {
	case ErrCodeDatabase, ErrCodeIntegrityViolation, ErrCodeSQLSyntax, ErrCodeDatabaseUnavailable:
		return true
	default:
		return false
	}
}
