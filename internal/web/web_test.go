package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

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

	today := func() models.Date { return models.NewDate(2024, 6, 15) }
	v := validators.NewValidator().WithToday(today)
	realtors := repositories.NewRealtorRepository(db)
	clients := repositories.NewClientRepository(db)
	properties := repositories.NewPropertyRepository(db)
	deals := repositories.NewDealRepository(db)
	payments := repositories.NewPaymentRepository(db)
	reference := repositories.NewReferenceRepository(db)

	ctl := NewController(
		services.NewClientService(clients, deals, db, v),
		services.NewRealtorService(realtors, deals, db, v),
		services.NewPropertyService(properties, deals, db, v),
		services.NewDealService(deals, properties, realtors, clients, reference, v),
		services.NewPaymentService(payments, deals, v),
		services.NewReferenceService(reference),
		services.NewGeographyService(repositories.NewGeographyRepository(db)),
	)
	ctl.today = today

	tmpl, err := Templates()
	require.NoError(t, err)
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.ErrorHandler())
	ctl.Register(r)

	return &fixture{router: r, mock: mock}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	return f.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (f *fixture) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return f.do(req)
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestIndexShowsCounts(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM clients`).WillReturnRows(countRows(11))
	f.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM realtors`).WillReturnRows(countRows(4))
	f.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM properties`).WillReturnRows(countRows(27))
	f.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM deals`).WillReturnRows(countRows(9))
	f.mock.ExpectQuery(`SELECT SUM\(deal_cost\) FROM deals`).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(1500000.5))

	w := f.get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	for _, want := range []string{">11<", ">4<", ">27<", ">9<", "1 500 000,5"} {
		assert.Contains(t, body, want)
	}
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestRealtorListRendersRows(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`FROM realtors WHERE`).
		WillReturnRows(sqlmock.NewRows(realtorColumns).AddRow(1, "Иван", "Иванов", nil, "+79001234567", "ivanov@agency.ru", 5))

	w := f.get("/realtors?" + url.Values{"lastName": {"Иван"}, "minExperience": {"3"}}.Encode())
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Иванов")
	assert.Contains(t, body, "ivanov@agency.ru")
	assert.Contains(t, body, `value="3"`)
	assert.Contains(t, body, "/realtors/report")
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestRealtorListRejectsBadFilter(t *testing.T) {
	f := newFixture(t)

	w := f.get("/realtors?" + url.Values{"minExperience": {"много"}}.Encode())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "minExperience")
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestRealtorAddRedirects(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`FROM realtors WHERE email = \?`).
		WithArgs("ivanov@agency.ru", int64(0)).
		WillReturnRows(countRows(0))
	f.mock.ExpectExec(`INSERT INTO realtors`).WillReturnResult(sqlmock.NewResult(3, 1))

	w := f.postForm("/realtors/add", url.Values{
		"firstName":       {"Иван"},
		"lastName":        {"Иванов"},
		"email":           {"ivanov@agency.ru"},
		"experienceYears": {"5"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/realtors", w.Header().Get("Location"))
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestRealtorAddKeepsInputOnError(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`FROM realtors ORDER BY last_name, first_name`).
		WillReturnRows(sqlmock.NewRows(realtorColumns))

	w := f.postForm("/realtors/add", url.Values{
		"firstName":       {""},
		"lastName":        {"Петров"},
		"experienceYears": {"5"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="Петров"`)
	assert.Contains(t, body, "firstName")
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestDealAddRequiresFields(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`FROM deals d`).WillReturnRows(sqlmock.NewRows([]string{"deal_id"}))

	w := f.postForm("/deals/add", url.Values{"dealCost": {"abc"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "dealDate")
	assert.Contains(t, body, "ожидается число")
}

func TestRealtorDeleteWithDealsAnswersJSON(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectQuery(`FROM deals WHERE id_realtor = \?`).WillReturnRows(countRows(2))
	f.mock.ExpectRollback()

	w := f.do(httptest.NewRequest(http.MethodDelete, "/realtors/delete/1", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"message"`)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestClientDeleteAnswersEmptyBody(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectQuery(`FROM deals WHERE id_client = \?`).WillReturnRows(countRows(0))
	f.mock.ExpectExec(`DELETE FROM clients`).WillReturnResult(sqlmock.NewResult(0, 1))
	f.mock.ExpectCommit()

	w := f.do(httptest.NewRequest(http.MethodDelete, "/clients/delete/5", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestUpdateWithoutFieldsIsNoop(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/realtors/update/1", strings.NewReader(`{"unknown":1}`))
	req.Header.Set("Content-Type", "application/json")
	w := f.do(req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestUpdateRejectsBadID(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/payments/update/x", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	assert.Equal(t, http.StatusBadRequest, f.do(req).Code)
}

func TestRealtorReportDownload(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`FROM realtors ORDER BY last_name, first_name`).
		WillReturnRows(sqlmock.NewRows(realtorColumns).AddRow(1, "Иван", "Иванов", nil, nil, nil, 5))

	w := f.get("/realtors/report")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="realtors_report_2024-06-15.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\ufeff"))
	assert.Contains(t, w.Body.String(), `"Иванов"`)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestReferenceDealTypes(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectQuery(`FROM deal_types WHERE LOWER\(deal_type_name\) LIKE LOWER\(\?\)`).
		WithArgs("%прод%").
		WillReturnRows(sqlmock.NewRows([]string{"id_deal_type", "deal_type_name"}).AddRow(1, "Продажа"))

	w := f.get("/reference/deal-types?" + url.Values{"name": {"прод"}}.Encode())
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Продажа")
	assert.NotContains(t, body, "/reference/deal-types/add")
}
