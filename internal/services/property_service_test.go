package services

import (
	"context"
	"testing"

	apperrors "realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/repositories"
	"realestate-backoffice/pkg/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPropertyService(db *database.DB) *PropertyService {
	return NewPropertyService(repositories.NewPropertyRepository(db), repositories.NewDealRepository(db), db, fixedValidator())
}

func TestPropertyService_DeleteWithDeals(t *testing.T) {
	db, mock := newMock(t)
	svc := newPropertyService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM deals WHERE id_property = \?`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	deleted, err := svc.Delete(context.Background(), 4)
	assert.False(t, deleted)
	appErr := requireAppError(t, err, apperrors.ErrCodeBusinessRule)
	assert.Equal(t, apperrors.RulePropertyHasDeals, appErr.Rule)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyService_DeleteWithoutDeals(t *testing.T) {
	db, mock := newMock(t)
	svc := newPropertyService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM deals WHERE id_property = \?`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM properties WHERE id_property = \?`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := svc.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyService_CreateValidates(t *testing.T) {
	db, mock := newMock(t)
	svc := newPropertyService(db)

	_, err := svc.Create(context.Background(), &models.Property{Area: 0, Cost: -1})
	appErr := requireAppError(t, err, apperrors.ErrCodeValidation)
	assert.Contains(t, appErr.FieldErrors, "area")
	assert.Contains(t, appErr.FieldErrors, "cost")
	assert.Contains(t, appErr.FieldErrors, "idStreet")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyService_UpdateRejectsBadValues(t *testing.T) {
	db, mock := newMock(t)
	svc := newPropertyService(db)

	_, err := svc.Update(context.Background(), 1, map[string]interface{}{"area": "много", "idCity": 0})
	appErr := requireAppError(t, err, apperrors.ErrCodeValidation)
	assert.Len(t, appErr.FieldErrors, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyService_PriceRange(t *testing.T) {
	db, mock := newMock(t)
	svc := newPropertyService(db)

	mock.ExpectQuery(`FROM properties WHERE cost BETWEEN \? AND \?`).
		WithArgs(100.0, 200.0).
		WillReturnRows(sqlmock.NewRows(propertyRowColumns).
			AddRow(1, 30.0, 100.0, nil, nil, nil, nil, nil, nil, 1, 1, 1, 1, 1, 1).
			AddRow(2, 40.0, 200.0, nil, nil, nil, nil, nil, nil, 1, 1, 1, 1, 1, 1))

	properties, err := svc.FindByPriceRange(context.Background(), 100, 200)
	require.NoError(t, err)
	assert.Len(t, properties, 2)

	_, err = svc.FindByPriceRange(context.Background(), 300, 200)
	requireAppError(t, err, apperrors.ErrCodeValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
