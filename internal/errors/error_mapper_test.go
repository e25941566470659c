package errors

import (
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"realestate-backoffice/pkg/database"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDatabaseTranslatesEveryKind(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		op         string
		wantCode   string
		wantStatus int
		wantMsg    string
	}{
		{"not found", database.Wrap("select", "clients", sql.ErrNoRows), OpSelect, ErrCodeEntityNotFound, http.StatusNotFound, MsgNotFound},
		{"integrity on insert", database.Wrap("insert", "deals", &mysql.MySQLError{Number: 1452}), OpInsert, ErrCodeIntegrityViolation, http.StatusConflict, MsgInsertFailedDuplicate},
		{"syntax on update", database.Wrap("update", "deals", &mysql.MySQLError{Number: 1064}), OpUpdate, ErrCodeSQLSyntax, http.StatusInternalServerError, MsgUpdateFailed},
		{"connection", database.Wrap("select", "deals", &mysql.MySQLError{Number: 2006}), OpSelect, ErrCodeDatabaseUnavailable, http.StatusServiceUnavailable, MsgServiceUnavailable},
		{"other on delete", database.Wrap("delete", "deals", stderrors.New("lock wait timeout")), OpDelete, ErrCodeDatabase, http.StatusInternalServerError, MsgDeleteFailed},
		{"other on select", stderrors.New("boom"), OpSelect, ErrCodeDatabase, http.StatusInternalServerError, MsgDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromDatabase(tt.err, tt.op, "Deal", 5)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
			assert.Equal(t, tt.wantMsg, UserMessage(appErr))
			assert.Equal(t, tt.op, appErr.Operation)
		})
	}
}

func TestFromDatabasePassesAppErrorThrough(t *testing.T) {
	rule := BusinessRule(RuleRealtorHasDeals, "Нельзя удалить риелтора, у которого есть сделки")
	assert.Same(t, rule, FromDatabase(rule, OpDelete, "Realtor", 1))
	assert.Nil(t, FromDatabase(nil, OpDelete, "Realtor", 1))
}

func TestUserMessageFallsBackForUnknownErrors(t *testing.T) {
	assert.Equal(t, MsgUnexpected, UserMessage(stderrors.New("panic")))
	assert.Equal(t, MsgValidation, UserMessage(FieldValidation("email", "bad")))
	assert.Equal(t, MsgNotFound, UserMessage(NotFound("Client", 3)))
}

func TestIsCritical(t *testing.T) {
	assert.True(t, IsCritical(FromDatabase(stderrors.New("x"), OpInsert, "Client", nil)))
	assert.False(t, IsCritical(NotFound("Client", 1)))
	assert.False(t, IsCritical(stderrors.New("plain")))
}

func TestMapError(t *testing.T) {
	assert.Nil(t, MapError(nil))

	existing := AlreadyExists(OpInsert, "Realtor", "email", "a@b.ru")
	assert.Same(t, existing, MapError(existing))

	dbErr := MapError(database.Wrap("select", "payments", sql.ErrNoRows))
	assert.Equal(t, ErrCodeEntityNotFound, dbErr.Code)

	var target struct {
		Cost float64 `json:"cost"`
	}
	jsonErr := json.Unmarshal([]byte(`{"cost":"abc"}`), &target)
	mapped := MapError(jsonErr)
	assert.Equal(t, ErrCodeValidation, mapped.Code)
	assert.Contains(t, mapped.FieldErrors, "cost")

	assert.Equal(t, ErrCodeInternal, MapError(stderrors.New("unexpected")).Code)
}

func TestAlreadyExistsCarriesOperation(t *testing.T) {
	onInsert := AlreadyExists(OpInsert, "Realtor", "phone", "+79001234567")
	assert.Equal(t, OpInsert, onInsert.Operation)
	assert.Equal(t, MsgInsertFailedDuplicate, onInsert.UserMessage)

	onUpdate := AlreadyExists(OpUpdate, "Realtor", "phone", "+79001234567")
	assert.Equal(t, OpUpdate, onUpdate.Operation)
	assert.Equal(t, MsgUpdateFailedDuplicate, onUpdate.UserMessage)
	assert.Equal(t, ErrCodeAlreadyExists, onUpdate.Code)
	assert.Equal(t, http.StatusBadRequest, onUpdate.HTTPStatus)
	assert.Contains(t, onUpdate.FieldErrors, "phone")
}

func TestFromValidator(t *testing.T) {
	type payload struct {
		LastName string  `validate:"required"`
		Cost     float64 `validate:"gt=0"`
	}
	err := validator.New().Struct(payload{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	appErr := FromValidator(verrs)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "поле обязательно для заполнения", appErr.FieldErrors["LastName"])
	assert.Equal(t, "значение должно быть больше 0", appErr.FieldErrors["Cost"])
}
