package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	apperrors "realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/middleware"
	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/repositories"
	"realestate-backoffice/internal/services"
	"realestate-backoffice/internal/validators"
	"realestate-backoffice/pkg/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var realtorColumns = []string{"id_realtor", "first_name", "last_name", "middle_name", "phone", "email", "experience_years"}

type errorBody struct {
	Error struct {
		Message     string            `json:"message"`
		Code        string            `json:"code"`
		FieldErrors map[string]string `json:"fieldErrors"`
	} `json:"error"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	router *gin.Engine
	mock   sqlmock.Sqlmock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	db := database.NewDB(raw, "mysql")

	v := validators.NewValidator().WithToday(func() models.Date { return models.NewDate(2024, 6, 15) })
	realtors := repositories.NewRealtorRepository(db)
	clients := repositories.NewClientRepository(db)
	properties := repositories.NewPropertyRepository(db)
	deals := repositories.NewDealRepository(db)
	payments := repositories.NewPaymentRepository(db)
	reference := repositories.NewReferenceRepository(db)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api")
	NewRealtorHandler(services.NewRealtorService(realtors, deals, db, v)).Register(api.Group("/realtors"))
	NewClientHandler(services.NewClientService(clients, deals, db, v)).Register(api.Group("/clients"))
	NewDealHandler(services.NewDealService(deals, properties, realtors, clients, reference, v)).Register(api.Group("/deals"))
	NewPaymentHandler(services.NewPaymentService(payments, deals, v)).Register(api.Group("/payments"))
	NewReferenceHandler(services.NewReferenceService(reference)).Register(api)
	NewGeographyHandler(services.NewGeographyService(repositories.NewGeographyRepository(db))).Register(api.Group("/geography"))

	return &fixture{router: r, mock: mock}
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func TestRealtorHandler_Create(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`FROM realtors WHERE email = \?`).
		WithArgs("ivanov@agency.ru", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	f.mock.ExpectExec(`INSERT INTO realtors`).WillReturnResult(sqlmock.NewResult(12, 1))

	w := f.do(http.MethodPost, "/api/realtors",
		`{"firstName":"Иван","lastName":"Иванов","email":"ivanov@agency.ru","experienceYears":5}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	decode(t, w, &body)
	assert.Equal(t, int64(12), body.ID)
	assert.Equal(t, "Риелтор успешно создан", body.Message)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestRealtorHandler_CreateInvalid(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/realtors", `{"firstName":"","lastName":"Иванов","email":"bad","experienceYears":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Equal(t, apperrors.ErrCodeValidation, body.Error.Code)
	assert.Contains(t, body.Error.FieldErrors, "firstName")
	assert.Contains(t, body.Error.FieldErrors, "email")
}

func TestRealtorHandler_MalformedInput(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/realtors/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/realtors/search?minExperience=много", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/realtors/search/by-experience", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/api/realtors/1", `{"firstName":`).Code)
}

func TestRealtorHandler_GetNotFound(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`FROM realtors WHERE id_realtor = \?`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(realtorColumns))

	w := f.do(http.MethodGet, "/api/realtors/404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Equal(t, apperrors.ErrCodeEntityNotFound, body.Error.Code)
	assert.Equal(t, apperrors.MsgNotFound, body.Error.Message)
}

func TestRealtorHandler_DeleteWithDeals(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectQuery(`FROM deals WHERE id_realtor = \?`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	f.mock.ExpectRollback()

	w := f.do(http.MethodDelete, "/api/realtors/1", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Equal(t, apperrors.ErrCodeBusinessRule, body.Error.Code)
	assert.Contains(t, body.Error.Message, "3")
}

func TestRealtorHandler_UpdateNothing(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPut, "/api/realtors/1", `{"unknown":"x"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "Нет данных для обновления", body["message"])
}

func TestRealtorHandler_ListEmpty(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`FROM realtors ORDER BY last_name, first_name`).
		WillReturnRows(sqlmock.NewRows(realtorColumns))

	w := f.do(http.MethodGet, "/api/realtors", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestClientHandler_DeleteMissing(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectQuery(`FROM deals WHERE id_client = \?`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	f.mock.ExpectExec(`DELETE FROM clients`).WillReturnResult(sqlmock.NewResult(0, 0))
	f.mock.ExpectCommit()

	w := f.do(http.MethodDelete, "/api/clients/9", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "Клиент не найден", body["message"])
}

func TestDealHandler_TotalAmount(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`SELECT SUM\(deal_cost\) FROM deals`).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(nil))

	w := f.do(http.MethodGet, "/api/deals/total-amount", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalAmount":0}`, w.Body.String())
}

func TestDealHandler_SearchBadDate(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/deals/search?startDate=01.02.2024", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Contains(t, body.Error.FieldErrors, "startDate")
}

func TestPaymentHandler_SearchInvertedRange(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/payments/search?startDate=2024-03-01&endDate=2024-02-01", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReferenceHandler_DealTypes(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`FROM deal_types`).
		WillReturnRows(sqlmock.NewRows([]string{"id_deal_type", "deal_type_name"}).AddRow(1, "Продажа").AddRow(2, "Аренда"))

	w := f.do(http.MethodGet, "/api/deal-types", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var types []models.DealType
	decode(t, w, &types)
	require.Len(t, types, 2)
	assert.Equal(t, "Продажа", types[0].Name)
}

func TestGeographyHandler_RegionByCodeRequired(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/geography/regions/search/by-code", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeographyHandler_StreetByNameAndCity(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`SELECT id_street, street_name, id_city FROM streets WHERE street_name = \? AND id_city = \?`).
		WithArgs("Тверская", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id_street", "street_name", "id_city"}).AddRow(10, "Тверская", 1))

	query := url.Values{"name": {"Тверская"}, "cityId": {"1"}}
	w := f.do(http.MethodGet, "/api/geography/streets/search/by-name-and-city?"+query.Encode(), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var street models.Street
	decode(t, w, &street)
	assert.Equal(t, int64(10), street.ID)
	assert.Equal(t, "Тверская", street.Name)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestGeographyHandler_RegionByNameAndCountryNotFound(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`SELECT id_region, name, code, id_country FROM regions WHERE name = \? AND id_country = \?`).
		WithArgs("Нигде", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id_region", "name", "code", "id_country"}))

	query := url.Values{"name": {"Нигде"}, "countryId": {"1"}}
	w := f.do(http.MethodGet, "/api/geography/regions/search/by-name-and-country?"+query.Encode(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeographyHandler_ByNameWithinRequiresBothParameters(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{
		"/api/geography/cities/search/by-name-and-region",
		"/api/geography/districts/search/by-name-and-city?cityId=abc",
	} {
		w := f.do(http.MethodGet, path, "")
		require.Equal(t, http.StatusBadRequest, w.Code, path)
		var body errorBody
		decode(t, w, &body)
		assert.Contains(t, body.Error.FieldErrors, "name", path)
	}

	w := f.do(http.MethodGet, "/api/geography/cities/search/by-name-and-region?name=x", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	decode(t, w, &body)
	assert.Equal(t, "параметр обязателен", body.Error.FieldErrors["regionId"])
}
