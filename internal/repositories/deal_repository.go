package repositories

import (
	"context"
	"database/sql"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/pkg/database"
)

const dealColumns = "id_deal, deal_date, deal_cost, id_property, id_realtor, id_client, id_deal_type"

const dealDetailsSelect = `
	SELECT d.id_deal AS deal_id, d.deal_date, d.deal_cost,
		c.id_client AS client_id, c.first_name AS client_first_name, c.last_name AS client_last_name,
		c.middle_name AS client_middle_name, c.phone AS client_phone, c.email AS client_email,
		r.id_realtor AS realtor_id, r.first_name AS realtor_first_name, r.last_name AS realtor_last_name,
		r.middle_name AS realtor_middle_name, r.phone AS realtor_phone, r.email AS realtor_email,
		r.experience_years AS realtor_experience,
		p.id_property AS property_id, p.area AS property_area, p.cost AS property_cost,
		p.description AS property_description, p.postal_code AS property_postal_code,
		p.house_number AS property_house_number, p.house_letter AS property_house_letter,
		p.building_number AS property_building_number, p.apartment_number AS property_apartment_number,
		country.country_name, region.name AS region_name, city.city_name, district.district_name,
		street.street_name, pt.property_type_name, dt.deal_type_name
	FROM deals d
	JOIN clients c ON d.id_client = c.id_client
	JOIN realtors r ON d.id_realtor = r.id_realtor
	JOIN properties p ON d.id_property = p.id_property
	JOIN countries country ON p.id_country = country.id_country
	JOIN regions region ON p.id_region = region.id_region
	JOIN cities city ON p.id_city = city.id_city
	JOIN districts district ON p.id_district = district.id_district
	JOIN streets street ON p.id_street = street.id_street
	JOIN property_types pt ON p.id_property_type = pt.id_property_type
	JOIN deal_types dt ON d.id_deal_type = dt.id_deal_type`

var dealTableSelect = `
	SELECT d.id_deal AS deal_id, d.deal_date, d.deal_cost,
		` + fullName("c") + ` AS client_name, c.phone AS client_phone,
		` + fullName("r") + ` AS realtor_name,
		` + houseAddress("street", "p") + ` AS property_address,
		pt.property_type_name, dt.deal_type_name
	FROM deals d
	JOIN clients c ON d.id_client = c.id_client
	JOIN realtors r ON d.id_realtor = r.id_realtor
	JOIN properties p ON d.id_property = p.id_property
	JOIN streets street ON p.id_street = street.id_street
	JOIN property_types pt ON p.id_property_type = pt.id_property_type
	JOIN deal_types dt ON d.id_deal_type = dt.id_deal_type`

var dealReportSelect = `
	SELECT d.id_deal AS id, d.deal_date, d.deal_cost,
		` + cityAddress("city", "street", "p") + ` AS property_address,
		` + fullName("r") + ` AS realtor_full_name,
		` + fullName("c") + ` AS client_full_name,
		dt.deal_type_name
	FROM deals d
	JOIN clients c ON d.id_client = c.id_client
	JOIN realtors r ON d.id_realtor = r.id_realtor
	JOIN properties p ON d.id_property = p.id_property
	JOIN cities city ON p.id_city = city.id_city
	JOIN streets street ON p.id_street = street.id_street
	JOIN deal_types dt ON d.id_deal_type = dt.id_deal_type
	ORDER BY d.deal_date DESC`

type dealRepository struct {
	base
}

func NewDealRepository(q database.Querier) DealRepository {
	return &dealRepository{base{q: q, table: "deals"}}
}

func (r *dealRepository) WithQuerier(q database.Querier) DealRepository {
	return NewDealRepository(q)
}

func (r *dealRepository) Create(ctx context.Context, d *models.Deal) (int64, error) {
	return r.insert(ctx, "id_deal",
		"INSERT INTO deals (deal_date, deal_cost, id_property, id_realtor, id_client, id_deal_type) VALUES (?, ?, ?, ?, ?, ?)",
		d.DealDate, d.DealCost, d.PropertyID, d.RealtorID, d.ClientID, d.DealTypeID)
}

func (r *dealRepository) FindAll(ctx context.Context) ([]models.Deal, error) {
	return r.findWhere(ctx, "find_all", "", "deal_date DESC")
}

func (r *dealRepository) FindByID(ctx context.Context, id int64) (*models.Deal, error) {
	var d models.Deal
	if err := r.one(ctx, "find_by_id", &d, "SELECT "+dealColumns+" FROM deals WHERE id_deal = ?", id); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dealRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error) {
	return r.update(ctx, DealFields, id, updates)
}

func (r *dealRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "id_deal", id)
}

func (r *dealRepository) FindByDate(ctx context.Context, date models.Date) ([]models.Deal, error) {
	return r.findWhere(ctx, "find_by_date", "deal_date = ?", "deal_cost DESC", date)
}

func (r *dealRepository) FindByDateRange(ctx context.Context, start, end models.Date) ([]models.Deal, error) {
	return r.findWhere(ctx, "find_by_date_range", "deal_date BETWEEN ? AND ?", "deal_date DESC", start, end)
}

func (r *dealRepository) FindByRealtor(ctx context.Context, realtorID int64) ([]models.Deal, error) {
	return r.findWhere(ctx, "find_by_realtor", "id_realtor = ?", "deal_date DESC", realtorID)
}

func (r *dealRepository) FindByClient(ctx context.Context, clientID int64) ([]models.Deal, error) {
	return r.findWhere(ctx, "find_by_client", "id_client = ?", "deal_date DESC", clientID)
}

func (r *dealRepository) FindByProperty(ctx context.Context, propertyID int64) ([]models.Deal, error) {
	return r.findWhere(ctx, "find_by_property", "id_property = ?", "deal_date DESC", propertyID)
}

func (r *dealRepository) FindByDealType(ctx context.Context, dealTypeID int64) ([]models.Deal, error) {
	return r.findWhere(ctx, "find_by_type", "id_deal_type = ?", "deal_date DESC", dealTypeID)
}

func (r *dealRepository) FindByCostRange(ctx context.Context, minCost, maxCost float64) ([]models.Deal, error) {
	return r.findWhere(ctx, "find_by_cost_range", "deal_cost BETWEEN ? AND ?", "deal_cost DESC", minCost, maxCost)
}

func (r *dealRepository) findWhere(ctx context.Context, op, cond, order string, args ...interface{}) ([]models.Deal, error) {
	query := "SELECT " + dealColumns + " FROM deals"
	if cond != "" {
		query += " WHERE " + cond
	}
	query += " ORDER BY " + order

	deals := []models.Deal{}
	err := r.list(ctx, op, &deals, query, args...)
	return deals, err
}

// TotalAmount sums every deal cost; an empty table sums to zero.
func (r *dealRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	if err := r.one(ctx, "total_amount", &total, "SELECT SUM(deal_cost) FROM deals"); err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func (r *dealRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "count", "SELECT COUNT(*) FROM deals")
}

func (r *dealRepository) CountByProperty(ctx context.Context, propertyID int64) (int64, error) {
	return r.count(ctx, "count_by_property", "SELECT COUNT(*) FROM deals WHERE id_property = ?", propertyID)
}

func (r *dealRepository) CountByRealtor(ctx context.Context, realtorID int64) (int64, error) {
	return r.count(ctx, "count_by_realtor", "SELECT COUNT(*) FROM deals WHERE id_realtor = ?", realtorID)
}

func (r *dealRepository) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	return r.count(ctx, "count_by_client", "SELECT COUNT(*) FROM deals WHERE id_client = ?", clientID)
}

func (r *dealRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "SELECT COUNT(*) FROM deals WHERE id_deal = ?", id)
}

func (r *dealRepository) FindAllWithDetails(ctx context.Context) ([]models.DealWithDetails, error) {
	return r.SearchWithDetails(ctx, models.DealSearch{})
}

func (r *dealRepository) FindWithDetailsByID(ctx context.Context, id int64) (*models.DealWithDetails, error) {
	var d models.DealWithDetails
	if err := r.one(ctx, "find_details_by_id", &d, dealDetailsSelect+" WHERE d.id_deal = ?", id); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *dealRepository) SearchWithDetails(ctx context.Context, criteria models.DealSearch) ([]models.DealWithDetails, error) {
	w := dealWhere(criteria)
	deals := []models.DealWithDetails{}
	err := r.list(ctx, "search_details", &deals, dealDetailsSelect+w.clause()+" ORDER BY d.deal_date DESC", w.args...)
	return deals, err
}

func (r *dealRepository) FindAllForTable(ctx context.Context) ([]models.DealTable, error) {
	return r.SearchForTable(ctx, models.DealSearch{})
}

func (r *dealRepository) SearchForTable(ctx context.Context, criteria models.DealSearch) ([]models.DealTable, error) {
	w := dealWhere(criteria)
	deals := []models.DealTable{}
	err := r.list(ctx, "search_table", &deals, dealTableSelect+w.clause()+" ORDER BY d.deal_date DESC", w.args...)
	return deals, err
}

func (r *dealRepository) FindAllForReport(ctx context.Context) ([]models.DealReport, error) {
	rows := []models.DealReport{}
	err := r.list(ctx, "report", &rows, dealReportSelect)
	return rows, err
}

func dealWhere(criteria models.DealSearch) *whereBuilder {
	w := &whereBuilder{}
	gte(w, "d.deal_date", criteria.StartDate)
	lte(w, "d.deal_date", criteria.EndDate)
	eq(w, "d.id_realtor", criteria.RealtorID)
	eq(w, "d.id_client", criteria.ClientID)
	eq(w, "d.id_deal_type", criteria.DealTypeID)
	gte(w, "d.deal_cost", criteria.MinCost)
	lte(w, "d.deal_cost", criteria.MaxCost)
	return w
}
