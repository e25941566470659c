package utils

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"realestate-backoffice/internal/errors"
	"realestate-backoffice/pkg/logger"
)

// LogAndMapError translates a repository failure into an AppError and logs
// it with the operation, entity type and id it concerns. Expected outcomes
// (not found, validation, rule violations) go to WARN, everything else to ERROR.
func LogAndMapError(err error, operation, entity string, id interface{}) error {
	if err == nil {
		return nil
	}
	appErr := errors.FromDatabase(err, operation, entity, id)

	target := entity
	if id != nil {
		target = fmt.Sprintf("%s id=%v", entity, id)
	}
	switch {
	case IsExpected(appErr):
		logger.GlobalLogger.Warnf("%s %s: %s", operation, target, appErr.Error())
	case errors.IsCritical(appErr):
		logger.GlobalLogger.Errorf("CRITICAL %s %s failed [%s]: %s", operation, target, appErr.Code, appErr.Error())
	default:
		logger.GlobalLogger.Errorf("%s %s failed [%s]: %s", operation, target, appErr.Code, appErr.Error())
	}
	return appErr
}

// IsExpected reports whether err is an ordinary client-side outcome.
func IsExpected(err error) bool {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.HTTPStatus < http.StatusInternalServerError
}

// IsRetryableError determines if an error is transient and worth retrying.
func IsRetryableError(err error) bool {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.HTTPStatus == http.StatusServiceUnavailable
	}
	return false
}
