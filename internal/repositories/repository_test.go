package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/models"
	"realestate-backoffice/pkg/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return database.NewDB(raw, "mysql"), mock
}

func strPtr(s string) *string { return &s }

func TestBuildUpdateFollowsRegistryOrder(t *testing.T) {
	query, args, ok, err := RealtorFields.buildUpdate(7, map[string]interface{}{
		"experienceYears": int64(3),
		"firstName":       "Иван",
		"nickname":        "ignored",
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "UPDATE realtors SET first_name = ?, experience_years = ? WHERE id_realtor = ?", query)
	assert.Equal(t, []interface{}{"Иван", int64(3), int64(7)}, args)
}

func TestBuildUpdateCoercesRawValues(t *testing.T) {
	query, args, ok, err := PaymentFields.buildUpdate(4, map[string]interface{}{
		"paymentDate": "2024-02-01",
		"amount":      "1500",
		"idDeal":      2.0,
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "UPDATE payments SET payment_date = ?, amount = ?, id_deal = ? WHERE id_payment = ?", query)
	assert.Equal(t, []interface{}{models.NewDate(2024, time.February, 1), 1500.0, int64(2), int64(4)}, args)
}

func TestBuildUpdateRejectsInvalidValues(t *testing.T) {
	_, _, ok, err := RealtorFields.buildUpdate(7, map[string]interface{}{
		"experienceYears": "много",
		"email":           "not-an-email",
	})
	assert.False(t, ok)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Len(t, appErr.FieldErrors, 2)
}

func TestFieldRegistryRule(t *testing.T) {
	rule, ok := ClientFields.Rule("middleName")
	require.True(t, ok)
	v, err := rule("")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, ok = ClientFields.Rule("experienceYears")
	assert.False(t, ok)
}

func TestBuildUpdateWithNothingRecognized(t *testing.T) {
	_, _, ok, err := ClientFields.buildUpdate(1, map[string]interface{}{})
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, ok, err = ClientFields.buildUpdate(1, map[string]interface{}{"unknown": 1})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.clause())

	minExp := 5
	var noCity *int64
	w.ilike("last_name", "пет")
	w.eqText("email", "")
	gte(&w, "experience_years", &minExp)
	eq(&w, "id_city", noCity)

	assert.Equal(t, " WHERE LOWER(last_name) LIKE LOWER(?) AND experience_years >= ?", w.clause())
	assert.Equal(t, []interface{}{"%пет%", 5}, w.args)
}

func TestClientRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO clients (first_name, last_name, middle_name, phone, email) VALUES (?, ?, ?, ?, ?)")).
		WithArgs("Анна", "Смирнова", nil, "+79991234567", nil).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Create(context.Background(), &models.Client{FirstName: "Анна", LastName: "Смирнова", Phone: strPtr("+79991234567")})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(`SELECT .* FROM clients WHERE id_client = \?`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id_client"}))

	client, err := repo.FindByID(context.Background(), 9)
	assert.Nil(t, client)
	assert.Equal(t, database.KindNotFound, database.KindOf(err))
}

func TestClientRepository_FindAllReturnsEmptySlice(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(`SELECT .* FROM clients ORDER BY last_name, first_name`).
		WillReturnRows(sqlmock.NewRows([]string{"id_client", "first_name", "last_name", "middle_name", "phone", "email"}))

	clients, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestClientRepository_UpdateWithoutKnownFieldsSendsNoSQL(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	updated, err := repo.Update(context.Background(), 1, map[string]interface{}{"foo": "bar"})
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE clients SET last_name = ?, email = ? WHERE id_client = ?")).
		WithArgs("Иванова", "anna@mail.ru", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.Update(context.Background(), 3, map[string]interface{}{"email": "anna@mail.ru", "lastName": "Иванова"})
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestClientRepository_DeleteMissingRow(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM clients WHERE id_client = ?")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestClientRepository_ExistsByEmailExcludesOwnRow(t *testing.T) {
	db, mock := newMock(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM clients WHERE email = ? AND id_client <> ?")).
		WithArgs("a@b.ru", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "a@b.ru", 2)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRealtorRepository_Search(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRealtorRepository(db)
	minExp := 3

	mock.ExpectQuery(regexp.QuoteMeta("FROM realtors WHERE LOWER(last_name) LIKE LOWER(?) AND experience_years >= ? ORDER BY last_name, first_name")).
		WithArgs("%Пет%", 3).
		WillReturnRows(sqlmock.NewRows([]string{"id_realtor", "first_name", "last_name", "middle_name", "phone", "email", "experience_years"}).
			AddRow(1, "Иван", "Петров", nil, "+79990000000", "ivan@agency.ru", 5))

	realtors, err := repo.Search(context.Background(), models.RealtorSearch{LastName: "Пет", MinExperience: &minExp})
	require.NoError(t, err)
	require.Len(t, realtors, 1)
	assert.Equal(t, "Петров", realtors[0].LastName)
	assert.Nil(t, realtors[0].MiddleName)
	assert.Equal(t, "ivan@agency.ru", *realtors[0].Email)
	assert.Equal(t, 5, realtors[0].ExperienceYears)
}

func TestRealtorRepository_FindByExperienceOrdersByExperience(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRealtorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE experience_years >= ? ORDER BY experience_years DESC")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id_realtor"}))

	_, err := repo.FindByExperience(context.Background(), 10)
	assert.NoError(t, err)
}

func TestDealRepository_TotalAmountOfEmptyTable(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDealRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT SUM(deal_cost) FROM deals")).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(nil))

	total, err := repo.TotalAmount(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestDealRepository_FindByCostRange(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDealRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM deals WHERE deal_cost BETWEEN ? AND ? ORDER BY deal_cost DESC")).
		WithArgs(100.0, 500.0).
		WillReturnRows(sqlmock.NewRows([]string{"id_deal", "deal_date", "deal_cost", "id_property", "id_realtor", "id_client", "id_deal_type"}).
			AddRow(1, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 300.0, 1, 2, 3, 1))

	deals, err := repo.FindByCostRange(context.Background(), 100, 500)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "2024-01-10", deals[0].DealDate.String())
}

func TestDealRepository_CountByRealtor(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDealRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM deals WHERE id_realtor = ?")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountByRealtor(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDealRepository_SearchForTable(t *testing.T) {
	db, mock := newMock(t)
	repo := NewDealRepository(db)
	realtorID := int64(2)
	minCost := 1000.0

	mock.ExpectQuery(regexp.QuoteMeta("WHERE d.id_realtor = ? AND d.deal_cost >= ? ORDER BY d.deal_date DESC")).
		WithArgs(int64(2), 1000.0).
		WillReturnRows(sqlmock.NewRows([]string{"deal_id", "deal_date", "deal_cost", "client_name", "client_phone",
			"realtor_name", "property_address", "property_type_name", "deal_type_name"}).
			AddRow(1, "2024-02-01", 1500.0, "Смирнова Анна", nil, "Петров Иван Сергеевич", "Ленина, 5-12", "Квартира", "Продажа"))

	deals, err := repo.SearchForTable(context.Background(), models.DealSearch{RealtorID: &realtorID, MinCost: &minCost})
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "Ленина, 5-12", deals[0].PropertyAddress)
	assert.Equal(t, models.NewDate(2024, time.February, 1), deals[0].DealDate)
}

func TestPaymentRepository_SearchIncludesWholeEndDay(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPaymentRepository(db)
	start := models.NewDate(2024, time.March, 1)
	end := models.NewDate(2024, time.March, 31)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.payment_date >= ? AND p.payment_date < ? ORDER BY p.payment_date DESC")).
		WithArgs(start.Time, models.NewDate(2024, time.April, 1).Time).
		WillReturnRows(sqlmock.NewRows([]string{"id_payment"}))

	_, err := repo.Search(context.Background(), models.PaymentSearch{StartDate: &start, EndDate: &end})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_UpdateOverwritesAllColumns(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPaymentRepository(db)
	date := models.NewDate(2024, time.May, 5)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE payments SET payment_date = ?, amount = ?, id_deal = ? WHERE id_payment = ?")).
		WithArgs(date.Time, 250.0, int64(3), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Update(context.Background(), &models.Payment{ID: 11, PaymentDate: date, Amount: 250, DealID: 3})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPropertyRepository_SearchForTable(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPropertyRepository(db)
	minPrice, maxPrice := 1e6, 5e6
	cityID := int64(1)

	mock.ExpectQuery(regexp.QuoteMeta("SUBSTRING(p.description, 1, 100) AS short_description")+
		".*"+regexp.QuoteMeta("WHERE p.cost >= ? AND p.cost <= ? AND p.id_city = ? ORDER BY p.cost")).
		WithArgs(1e6, 5e6, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"property_id", "property_type_name", "area", "cost", "short_description",
			"city_name", "district_name", "street_name", "house_number", "apartment_number", "house_letter", "building_number"}).
			AddRow(1, "Квартира", 54.5, 2500000.0, "Светлая квартира", "Москва", "Центральный", "Ленина", "5", "12", nil, nil))

	rows, err := repo.SearchForTable(context.Background(), models.PropertySearch{MinPrice: &minPrice, MaxPrice: &maxPrice, CityID: &cityID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Москва", rows[0].CityName)
	assert.Nil(t, rows[0].HouseLetter)
}

func TestPropertyRepository_CreateOnPostgresUsesReturning(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()
	repo := NewPropertyRepository(database.NewDB(raw, "postgres"))

	mock.ExpectQuery(`INSERT INTO properties .* VALUES \(\$1, .*\$14\) RETURNING id_property`).
		WillReturnRows(sqlmock.NewRows([]string{"id_property"}).AddRow(77))

	id, err := repo.Create(context.Background(), &models.Property{Area: 40, Cost: 1, PropertyTypeID: 1, CountryID: 1, RegionID: 1, CityID: 1, DistrictID: 1, StreetID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
}

func TestGeographyRepository_SearchRegionsMatchesCodeExactly(t *testing.T) {
	db, mock := newMock(t)
	repo := NewGeographyRepository(db)
	countryID := int64(1)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(r.name) LIKE LOWER(?) AND r.code = ? AND r.id_country = ? ORDER BY r.name")).
		WithArgs("%моск%", "77", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"region_id", "region_name", "region_code", "country_id", "country_name"}).
			AddRow(1, "Москва", "77", 1, "Россия"))

	regions, err := repo.SearchRegions(context.Background(), models.RegionSearch{NamePattern: "моск", Code: "77", CountryID: &countryID})
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, "77", *regions[0].RegionCode)
}

func TestGeographyRepository_FindCitiesByCountry(t *testing.T) {
	db, mock := newMock(t)
	repo := NewGeographyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.id_country = ? ORDER BY c.city_name")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id_city", "city_name", "id_region"}).AddRow(3, "Казань", 16))

	cities, err := repo.FindCitiesByCountry(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []models.City{{ID: 3, Name: "Казань", RegionID: 16}}, cities)
}

func TestReferenceRepository_FindDealTypesByName(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReferenceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM deal_types WHERE LOWER(deal_type_name) LIKE LOWER(?)")).
		WithArgs("%прод%").
		WillReturnRows(sqlmock.NewRows([]string{"id_deal_type", "deal_type_name"}).AddRow(1, "Продажа"))

	types, err := repo.FindDealTypesByName(context.Background(), "прод")
	require.NoError(t, err)
	assert.Equal(t, []models.DealType{{ID: 1, Name: "Продажа"}}, types)
}
