package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
	// Operation is INSERT, UPDATE, DELETE or SELECT for database failures.
	Operation   string
	FieldErrors map[string]string
	Rule        string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError == nil {
		return e.TechnicalMessage
	}
	return fmt.Sprintf("%s: %v", e.TechnicalMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// Error codes
const (
	ErrCodeEntityNotFound      = "ENTITY_NOT_FOUND"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeRelatedNotFound     = "RELATED_ENTITY_NOT_FOUND"
	ErrCodeAlreadyExists       = "ENTITY_ALREADY_EXISTS"
	ErrCodeBusinessRule        = "BUSINESS_RULE_VIOLATION"
	ErrCodeDatabase            = "DATABASE_ERROR"
	ErrCodeIntegrityViolation  = "DATA_INTEGRITY_VIOLATION"
	ErrCodeSQLSyntax           = "SQL_SYNTAX_ERROR"
	ErrCodeDatabaseUnavailable = "DATABASE_CONNECTION_ERROR"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeRateLimited         = "RATE_LIMITED"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// Database operation types
const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
	OpSelect = "SELECT"
)

// Business rules
const (
	RulePropertyHasDeals        = "PROPERTY_HAS_RELATED_DEALS"
	RuleRealtorHasDeals         = "REALTOR_HAS_RELATED_DEALS"
	RuleClientHasDeals          = "CLIENT_HAS_RELATED_DEALS"
	RuleDealCostExceedsProperty = "DEAL_COST_EXCEEDS_PROPERTY_COST"
)

// NotFound reports a missing entity.
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		TechnicalMessage: fmt.Sprintf("%s with id %v not found", entity, id),
		UserMessage:      MsgNotFound,
		Code:             ErrCodeEntityNotFound,
		HTTPStatus:       http.StatusNotFound,
		Operation:        OpSelect,
	}
}

// Validation reports one or more invalid fields.
func Validation(fieldErrors map[string]string) *AppError {
	return &AppError{
		TechnicalMessage: fmt.Sprintf("validation failed: %v", fieldErrors),
		UserMessage:      MsgValidation,
		Code:             ErrCodeValidation,
		HTTPStatus:       http.StatusBadRequest,
		FieldErrors:      fieldErrors,
	}
}

// FieldValidation reports a single invalid field.
func FieldValidation(field, reason string) *AppError {
	return Validation(map[string]string{field: reason})
}

// RelatedNotFound reports a reference to a row that does not exist.
func RelatedNotFound(related string, id interface{}, entity string) *AppError {
	return &AppError{
		TechnicalMessage: fmt.Sprintf("related %s with id %v not found for %s", related, id, entity),
		UserMessage:      MsgValidation,
		Code:             ErrCodeRelatedNotFound,
		HTTPStatus:       http.StatusBadRequest,
		FieldErrors:      map[string]string{related: fmt.Sprintf("%s с id %v не существует", related, id)},
	}
}

// AlreadyExists reports a uniqueness violation detected before op writes.
func AlreadyExists(op, entity, field string, value interface{}) *AppError {
	return &AppError{
		TechnicalMessage: fmt.Sprintf("uniqueness violation on %s: %s with %s '%v' already exists", op, entity, field, value),
		UserMessage:      duplicateMessageForOperation(op),
		Code:             ErrCodeAlreadyExists,
		HTTPStatus:       http.StatusBadRequest,
		Operation:        op,
		FieldErrors:      map[string]string{field: fmt.Sprintf("значение '%v' уже используется", value)},
	}
}

// BusinessRule reports a violated application rule.
func BusinessRule(rule, message string) *AppError {
	return &AppError{
		TechnicalMessage: fmt.Sprintf("business rule %s violated: %s", rule, message),
		UserMessage:      message,
		Code:             ErrCodeBusinessRule,
		HTTPStatus:       http.StatusConflict,
		Rule:             rule,
	}
}

// Unauthorized reports missing or invalid credentials.
func Unauthorized(reason string) *AppError {
	return &AppError{
		TechnicalMessage: reason,
		UserMessage:      MsgUnauthorized,
		Code:             ErrCodeUnauthorized,
		HTTPStatus:       http.StatusUnauthorized,
	}
}

// Internal wraps an unexpected failure.
func Internal(err error) *AppError {
	return &AppError{
		TechnicalMessage: "unexpected error",
		UserMessage:      MsgUnexpected,
		Code:             ErrCodeInternal,
		HTTPStatus:       http.StatusInternalServerError,
		OriginalError:    err,
	}
}

// RateLimited reports a client exceeding its request budget.
func RateLimited() *AppError {
	return &AppError{
		TechnicalMessage: "rate limit exceeded",
		UserMessage:      MsgRateLimited,
		Code:             ErrCodeRateLimited,
		HTTPStatus:       http.StatusTooManyRequests,
	}
}
