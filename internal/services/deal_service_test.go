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

var propertyRowColumns = []string{
	"id_property", "area", "cost", "description", "postal_code", "house_number", "house_letter",
	"building_number", "apartment_number", "id_property_type", "id_country", "id_region",
	"id_city", "id_district", "id_street",
}

var dealRowColumns = []string{"id_deal", "deal_date", "deal_cost", "id_property", "id_realtor", "id_client", "id_deal_type"}

func newDealService(db *database.DB) *DealService {
	return NewDealService(
		repositories.NewDealRepository(db),
		repositories.NewPropertyRepository(db),
		repositories.NewRealtorRepository(db),
		repositories.NewClientRepository(db),
		repositories.NewReferenceRepository(db),
		fixedValidator(),
	)
}

func propertyRow(id int64, cost float64) *sqlmock.Rows {
	return sqlmock.NewRows(propertyRowColumns).
		AddRow(id, 54.5, cost, nil, nil, "12", nil, nil, "7", 1, 1, 1, 1, 1, 1)
}

func expectExists(mock sqlmock.Sqlmock, pattern string, id int64, n int) {
	mock.ExpectQuery(pattern).WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
}

func validDeal() *models.Deal {
	return &models.Deal{
		DealDate:   models.NewDate(2024, 6, 1),
		DealCost:   4500000,
		PropertyID: 10,
		RealtorID:  2,
		ClientID:   3,
		DealTypeID: 1,
	}
}

func TestDealService_Create(t *testing.T) {
	db, mock := newMock(t)
	svc := newDealService(db)

	expectExists(mock, `FROM realtors WHERE id_realtor = \?`, 2, 1)
	expectExists(mock, `FROM clients WHERE id_client = \?`, 3, 1)
	expectExists(mock, `FROM deal_types WHERE id_deal_type = \?`, 1, 1)
	mock.ExpectQuery(`FROM properties WHERE id_property = \?`).
		WithArgs(int64(10)).
		WillReturnRows(propertyRow(10, 5000000))
	mock.ExpectExec(`INSERT INTO deals`).WillReturnResult(sqlmock.NewResult(77, 1))

	id, err := svc.Create(context.Background(), validDeal())
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealService_CreateCostAboveProperty(t *testing.T) {
	db, mock := newMock(t)
	svc := newDealService(db)

	expectExists(mock, `FROM realtors WHERE id_realtor = \?`, 2, 1)
	expectExists(mock, `FROM clients WHERE id_client = \?`, 3, 1)
	expectExists(mock, `FROM deal_types WHERE id_deal_type = \?`, 1, 1)
	mock.ExpectQuery(`FROM properties WHERE id_property = \?`).
		WithArgs(int64(10)).
		WillReturnRows(propertyRow(10, 4000000))

	_, err := svc.Create(context.Background(), validDeal())
	appErr := requireAppError(t, err, apperrors.ErrCodeBusinessRule)
	assert.Equal(t, apperrors.RuleDealCostExceedsProperty, appErr.Rule)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealService_CreateMissingClient(t *testing.T) {
	db, mock := newMock(t)
	svc := newDealService(db)

	expectExists(mock, `FROM realtors WHERE id_realtor = \?`, 2, 1)
	expectExists(mock, `FROM clients WHERE id_client = \?`, 3, 0)

	_, err := svc.Create(context.Background(), validDeal())
	appErr := requireAppError(t, err, apperrors.ErrCodeRelatedNotFound)
	assert.Contains(t, appErr.FieldErrors, "idClient")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealService_CreateMissingProperty(t *testing.T) {
	db, mock := newMock(t)
	svc := newDealService(db)

	expectExists(mock, `FROM realtors WHERE id_realtor = \?`, 2, 1)
	expectExists(mock, `FROM clients WHERE id_client = \?`, 3, 1)
	expectExists(mock, `FROM deal_types WHERE id_deal_type = \?`, 1, 1)
	mock.ExpectQuery(`FROM properties WHERE id_property = \?`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(propertyRowColumns))

	_, err := svc.Create(context.Background(), validDeal())
	appErr := requireAppError(t, err, apperrors.ErrCodeRelatedNotFound)
	assert.Contains(t, appErr.FieldErrors, "idProperty")
}

func TestDealService_CreateFutureDate(t *testing.T) {
	db, mock := newMock(t)
	svc := newDealService(db)

	deal := validDeal()
	deal.DealDate = models.NewDate(2024, 6, 16)

	_, err := svc.Create(context.Background(), deal)
	appErr := requireAppError(t, err, apperrors.ErrCodeValidation)
	assert.Contains(t, appErr.FieldErrors, "dealDate")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealService_UpdateCostChecksCurrentProperty(t *testing.T) {
	db, mock := newMock(t)
	svc := newDealService(db)

	mock.ExpectQuery(`FROM deals WHERE id_deal = \?`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(dealRowColumns).AddRow(5, "2024-05-01", 1000000.0, 10, 2, 3, 1))
	mock.ExpectQuery(`FROM properties WHERE id_property = \?`).
		WithArgs(int64(10)).
		WillReturnRows(propertyRow(10, 1500000))

	_, err := svc.Update(context.Background(), 5, map[string]interface{}{"dealCost": "2000000"})
	requireAppError(t, err, apperrors.ErrCodeBusinessRule)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealService_UpdateDateOnlySkipsCostRule(t *testing.T) {
	db, mock := newMock(t)
	svc := newDealService(db)

	mock.ExpectQuery(`FROM deals WHERE id_deal = \?`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(dealRowColumns).AddRow(5, "2024-05-01", 1000000.0, 10, 2, 3, 1))
	mock.ExpectExec(`UPDATE deals SET deal_date = \? WHERE id_deal = \?`).
		WithArgs(models.NewDate(2024, 5, 2), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := svc.Update(context.Background(), 5, map[string]interface{}{"dealDate": "2024-05-02"})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDealService_SearchRejectsInvertedRange(t *testing.T) {
	db, _ := newMock(t)
	svc := newDealService(db)

	start, end := models.NewDate(2024, 3, 1), models.NewDate(2024, 2, 1)
	_, err := svc.SearchForTable(context.Background(), models.DealSearch{StartDate: &start, EndDate: &end})
	requireAppError(t, err, apperrors.ErrCodeValidation)

	minCost, maxCost := 10.0, 5.0
	_, err = svc.FindByCostRange(context.Background(), minCost, maxCost)
	requireAppError(t, err, apperrors.ErrCodeValidation)
}
