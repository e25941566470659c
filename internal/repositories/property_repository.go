package repositories

import (
	"context"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/pkg/database"
)

const propertyColumns = `id_property, area, cost, description, postal_code, house_number, house_letter,
	building_number, apartment_number, id_property_type, id_country, id_region, id_city, id_district, id_street`

const propertyDetailsSelect = `
	SELECT p.id_property AS property_id, p.area, p.cost, p.description, p.postal_code,
		p.house_number, p.house_letter, p.building_number, p.apartment_number,
		country.id_country AS country_id, country.country_name,
		region.id_region AS region_id, region.name AS region_name, region.code AS region_code,
		city.id_city AS city_id, city.city_name,
		district.id_district AS district_id, district.district_name,
		street.id_street AS street_id, street.street_name,
		pt.id_property_type AS property_type_id, pt.property_type_name
	FROM properties p
	JOIN countries country ON p.id_country = country.id_country
	JOIN regions region ON p.id_region = region.id_region
	JOIN cities city ON p.id_city = city.id_city
	JOIN districts district ON p.id_district = district.id_district
	JOIN streets street ON p.id_street = street.id_street
	JOIN property_types pt ON p.id_property_type = pt.id_property_type`

const propertyTableSelect = `
	SELECT p.id_property AS property_id, pt.property_type_name, p.area, p.cost,
		SUBSTRING(p.description, 1, 100) AS short_description,
		city.city_name, district.district_name, street.street_name,
		p.house_number, p.apartment_number, p.house_letter, p.building_number
	FROM properties p
	JOIN cities city ON p.id_city = city.id_city
	JOIN districts district ON p.id_district = district.id_district
	JOIN streets street ON p.id_street = street.id_street
	JOIN property_types pt ON p.id_property_type = pt.id_property_type`

const propertyReportSelect = `
	SELECT p.id_property AS id, p.area, p.cost, p.description, pt.property_type_name,
		p.postal_code, p.house_number, p.house_letter, p.building_number, p.apartment_number,
		street.street_name, district.district_name, city.city_name,
		region.code AS region_code, region.name AS region_name, country.country_name
	FROM properties p
	JOIN countries country ON p.id_country = country.id_country
	JOIN regions region ON p.id_region = region.id_region
	JOIN cities city ON p.id_city = city.id_city
	JOIN districts district ON p.id_district = district.id_district
	JOIN streets street ON p.id_street = street.id_street
	JOIN property_types pt ON p.id_property_type = pt.id_property_type
	ORDER BY p.id_property`

type propertyRepository struct {
	base
}

func NewPropertyRepository(q database.Querier) PropertyRepository {
	return &propertyRepository{base{q: q, table: "properties"}}
}

func (r *propertyRepository) WithQuerier(q database.Querier) PropertyRepository {
	return NewPropertyRepository(q)
}

func (r *propertyRepository) Create(ctx context.Context, p *models.Property) (int64, error) {
	return r.insert(ctx, "id_property", `INSERT INTO properties (area, cost, description, postal_code,
		house_number, house_letter, building_number, apartment_number, id_property_type,
		id_country, id_region, id_city, id_district, id_street)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Area, p.Cost, p.Description, p.PostalCode, p.HouseNumber, p.HouseLetter, p.BuildingNumber,
		p.ApartmentNumber, p.PropertyTypeID, p.CountryID, p.RegionID, p.CityID, p.DistrictID, p.StreetID)
}

func (r *propertyRepository) FindAll(ctx context.Context) ([]models.Property, error) {
	properties := []models.Property{}
	err := r.list(ctx, "find_all", &properties, "SELECT "+propertyColumns+" FROM properties ORDER BY cost")
	return properties, err
}

func (r *propertyRepository) FindByID(ctx context.Context, id int64) (*models.Property, error) {
	var p models.Property
	if err := r.one(ctx, "find_by_id", &p, "SELECT "+propertyColumns+" FROM properties WHERE id_property = ?", id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error) {
	return r.update(ctx, PropertyFields, id, updates)
}

func (r *propertyRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "id_property", id)
}

func (r *propertyRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Property, error) {
	properties := []models.Property{}
	err := r.list(ctx, "find_by_price_range", &properties,
		"SELECT "+propertyColumns+" FROM properties WHERE cost BETWEEN ? AND ? ORDER BY cost", minPrice, maxPrice)
	return properties, err
}

func (r *propertyRepository) FindByCity(ctx context.Context, cityID int64) ([]models.Property, error) {
	properties := []models.Property{}
	err := r.list(ctx, "find_by_city", &properties,
		"SELECT "+propertyColumns+" FROM properties WHERE id_city = ? ORDER BY cost", cityID)
	return properties, err
}

func (r *propertyRepository) FindByPropertyType(ctx context.Context, typeID int64) ([]models.Property, error) {
	properties := []models.Property{}
	err := r.list(ctx, "find_by_type", &properties,
		"SELECT "+propertyColumns+" FROM properties WHERE id_property_type = ? ORDER BY cost", typeID)
	return properties, err
}

func (r *propertyRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "count", "SELECT COUNT(*) FROM properties")
}

func (r *propertyRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "SELECT COUNT(*) FROM properties WHERE id_property = ?", id)
}

func (r *propertyRepository) FindAllWithDetails(ctx context.Context) ([]models.PropertyWithDetails, error) {
	return r.SearchWithDetails(ctx, models.PropertySearch{})
}

func (r *propertyRepository) FindWithDetailsByID(ctx context.Context, id int64) (*models.PropertyWithDetails, error) {
	var p models.PropertyWithDetails
	if err := r.one(ctx, "find_details_by_id", &p, propertyDetailsSelect+" WHERE p.id_property = ?", id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepository) SearchWithDetails(ctx context.Context, criteria models.PropertySearch) ([]models.PropertyWithDetails, error) {
	w := propertyWhere(criteria)
	properties := []models.PropertyWithDetails{}
	err := r.list(ctx, "search_details", &properties, propertyDetailsSelect+w.clause()+" ORDER BY p.cost", w.args...)
	return properties, err
}

func (r *propertyRepository) FindAllForTable(ctx context.Context) ([]models.PropertyTable, error) {
	return r.SearchForTable(ctx, models.PropertySearch{})
}

func (r *propertyRepository) SearchForTable(ctx context.Context, criteria models.PropertySearch) ([]models.PropertyTable, error) {
	w := propertyWhere(criteria)
	properties := []models.PropertyTable{}
	err := r.list(ctx, "search_table", &properties, propertyTableSelect+w.clause()+" ORDER BY p.cost", w.args...)
	return properties, err
}

func (r *propertyRepository) FindAllForReport(ctx context.Context) ([]models.PropertyReport, error) {
	rows := []models.PropertyReport{}
	err := r.list(ctx, "report", &rows, propertyReportSelect)
	return rows, err
}

func propertyWhere(criteria models.PropertySearch) *whereBuilder {
	w := &whereBuilder{}
	gte(w, "p.cost", criteria.MinPrice)
	lte(w, "p.cost", criteria.MaxPrice)
	eq(w, "p.id_city", criteria.CityID)
	eq(w, "p.id_property_type", criteria.PropertyTypeID)
	eq(w, "p.id_district", criteria.DistrictID)
	eq(w, "p.id_street", criteria.StreetID)
	return w
}
