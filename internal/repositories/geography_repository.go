package repositories

import (
	"context"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/pkg/database"
)

const (
	regionColumns   = "id_region, name, code, id_country"
	cityColumns     = "id_city, city_name, id_region"
	districtColumns = "id_district, district_name, id_city"
	streetColumns   = "id_street, street_name, id_city"
)

const regionDetailsSelect = `
	SELECT r.id_region AS region_id, r.name AS region_name, r.code AS region_code,
		co.id_country AS country_id, co.country_name
	FROM regions r
	JOIN countries co ON r.id_country = co.id_country`

const cityDetailsSelect = `
	SELECT c.id_city AS city_id, c.city_name, r.id_region AS region_id, r.name AS region_name,
		r.code AS region_code, co.id_country AS country_id, co.country_name
	FROM cities c
	JOIN regions r ON c.id_region = r.id_region
	JOIN countries co ON r.id_country = co.id_country`

const districtDetailsSelect = `
	SELECT d.id_district AS district_id, d.district_name, c.id_city AS city_id, c.city_name,
		r.id_region AS region_id, r.name AS region_name, co.id_country AS country_id, co.country_name
	FROM districts d
	JOIN cities c ON d.id_city = c.id_city
	JOIN regions r ON c.id_region = r.id_region
	JOIN countries co ON r.id_country = co.id_country`

const streetDetailsSelect = `
	SELECT s.id_street AS street_id, s.street_name, c.id_city AS city_id, c.city_name,
		r.id_region AS region_id, r.name AS region_name, co.id_country AS country_id, co.country_name
	FROM streets s
	JOIN cities c ON s.id_city = c.id_city
	JOIN regions r ON c.id_region = r.id_region
	JOIN countries co ON r.id_country = co.id_country`

type geographyRepository struct {
	countries base
	regions   base
	cities    base
	districts base
	streets   base
}

func NewGeographyRepository(q database.Querier) GeographyRepository {
	return &geographyRepository{
		countries: base{q: q, table: "countries"},
		regions:   base{q: q, table: "regions"},
		cities:    base{q: q, table: "cities"},
		districts: base{q: q, table: "districts"},
		streets:   base{q: q, table: "streets"},
	}
}

// Countries

func (r *geographyRepository) FindAllCountries(ctx context.Context) ([]models.Country, error) {
	countries := []models.Country{}
	err := r.countries.list(ctx, "find_all", &countries, "SELECT id_country, country_name FROM countries ORDER BY country_name")
	return countries, err
}

func (r *geographyRepository) FindCountryByID(ctx context.Context, id int64) (*models.Country, error) {
	var c models.Country
	if err := r.countries.one(ctx, "find_by_id", &c,
		"SELECT id_country, country_name FROM countries WHERE id_country = ?", id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *geographyRepository) FindCountriesByName(ctx context.Context, name string) ([]models.Country, error) {
	countries := []models.Country{}
	err := r.countries.list(ctx, "find_by_name", &countries,
		"SELECT id_country, country_name FROM countries WHERE LOWER(country_name) LIKE LOWER(?) ORDER BY country_name",
		"%"+name+"%")
	return countries, err
}

// Regions

func (r *geographyRepository) FindAllRegions(ctx context.Context) ([]models.Region, error) {
	regions := []models.Region{}
	err := r.regions.list(ctx, "find_all", &regions, "SELECT "+regionColumns+" FROM regions ORDER BY name")
	return regions, err
}

func (r *geographyRepository) FindRegionByID(ctx context.Context, id int64) (*models.Region, error) {
	var region models.Region
	if err := r.regions.one(ctx, "find_by_id", &region,
		"SELECT "+regionColumns+" FROM regions WHERE id_region = ?", id); err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *geographyRepository) FindRegionByCode(ctx context.Context, code string) (*models.Region, error) {
	var region models.Region
	if err := r.regions.one(ctx, "find_by_code", &region,
		"SELECT "+regionColumns+" FROM regions WHERE code = ?", code); err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *geographyRepository) FindRegionsByCountry(ctx context.Context, countryID int64) ([]models.Region, error) {
	regions := []models.Region{}
	err := r.regions.list(ctx, "find_by_country", &regions,
		"SELECT "+regionColumns+" FROM regions WHERE id_country = ? ORDER BY name", countryID)
	return regions, err
}

func (r *geographyRepository) FindRegionByNameAndCountry(ctx context.Context, name string, countryID int64) (*models.Region, error) {
	var region models.Region
	if err := r.regions.one(ctx, "find_by_name_and_country", &region,
		"SELECT "+regionColumns+" FROM regions WHERE name = ? AND id_country = ?", name, countryID); err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *geographyRepository) FindRegionsWithDetails(ctx context.Context) ([]models.RegionWithDetails, error) {
	return r.SearchRegions(ctx, models.RegionSearch{})
}

// SearchRegions matches the region code exactly.
func (r *geographyRepository) SearchRegions(ctx context.Context, criteria models.RegionSearch) ([]models.RegionWithDetails, error) {
	w := &whereBuilder{}
	w.ilike("r.name", criteria.NamePattern)
	w.eqText("r.code", criteria.Code)
	eq(w, "r.id_country", criteria.CountryID)

	regions := []models.RegionWithDetails{}
	err := r.regions.list(ctx, "search", &regions, regionDetailsSelect+w.clause()+" ORDER BY r.name", w.args...)
	return regions, err
}

// Cities

func (r *geographyRepository) FindAllCities(ctx context.Context) ([]models.City, error) {
	cities := []models.City{}
	err := r.cities.list(ctx, "find_all", &cities, "SELECT "+cityColumns+" FROM cities ORDER BY city_name")
	return cities, err
}

func (r *geographyRepository) FindCityByID(ctx context.Context, id int64) (*models.City, error) {
	var c models.City
	if err := r.cities.one(ctx, "find_by_id", &c, "SELECT "+cityColumns+" FROM cities WHERE id_city = ?", id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *geographyRepository) FindCitiesByRegion(ctx context.Context, regionID int64) ([]models.City, error) {
	cities := []models.City{}
	err := r.cities.list(ctx, "find_by_region", &cities,
		"SELECT "+cityColumns+" FROM cities WHERE id_region = ? ORDER BY city_name", regionID)
	return cities, err
}

func (r *geographyRepository) FindCitiesByCountry(ctx context.Context, countryID int64) ([]models.City, error) {
	cities := []models.City{}
	err := r.cities.list(ctx, "find_by_country", &cities,
		`SELECT c.id_city, c.city_name, c.id_region FROM cities c
		JOIN regions r ON c.id_region = r.id_region
		WHERE r.id_country = ? ORDER BY c.city_name`, countryID)
	return cities, err
}

func (r *geographyRepository) FindCitiesByNamePattern(ctx context.Context, pattern string) ([]models.City, error) {
	cities := []models.City{}
	err := r.cities.list(ctx, "find_by_name_pattern", &cities,
		"SELECT "+cityColumns+" FROM cities WHERE LOWER(city_name) LIKE LOWER(?) ORDER BY city_name", "%"+pattern+"%")
	return cities, err
}

func (r *geographyRepository) FindCityByNameAndRegion(ctx context.Context, name string, regionID int64) (*models.City, error) {
	var c models.City
	if err := r.cities.one(ctx, "find_by_name_and_region", &c,
		"SELECT "+cityColumns+" FROM cities WHERE city_name = ? AND id_region = ?", name, regionID); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *geographyRepository) FindCitiesWithDetails(ctx context.Context) ([]models.CityWithDetails, error) {
	return r.SearchCities(ctx, models.CitySearch{})
}

func (r *geographyRepository) SearchCities(ctx context.Context, criteria models.CitySearch) ([]models.CityWithDetails, error) {
	w := &whereBuilder{}
	w.ilike("c.city_name", criteria.NamePattern)
	eq(w, "c.id_region", criteria.RegionID)
	eq(w, "r.id_country", criteria.CountryID)

	cities := []models.CityWithDetails{}
	err := r.cities.list(ctx, "search", &cities, cityDetailsSelect+w.clause()+" ORDER BY c.city_name", w.args...)
	return cities, err
}

// Districts

func (r *geographyRepository) FindAllDistricts(ctx context.Context) ([]models.District, error) {
	districts := []models.District{}
	err := r.districts.list(ctx, "find_all", &districts, "SELECT "+districtColumns+" FROM districts ORDER BY district_name")
	return districts, err
}

func (r *geographyRepository) FindDistrictByID(ctx context.Context, id int64) (*models.District, error) {
	var d models.District
	if err := r.districts.one(ctx, "find_by_id", &d,
		"SELECT "+districtColumns+" FROM districts WHERE id_district = ?", id); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *geographyRepository) FindDistrictsByCity(ctx context.Context, cityID int64) ([]models.District, error) {
	districts := []models.District{}
	err := r.districts.list(ctx, "find_by_city", &districts,
		"SELECT "+districtColumns+" FROM districts WHERE id_city = ? ORDER BY district_name", cityID)
	return districts, err
}

func (r *geographyRepository) FindDistrictsByRegion(ctx context.Context, regionID int64) ([]models.District, error) {
	districts := []models.District{}
	err := r.districts.list(ctx, "find_by_region", &districts,
		`SELECT d.id_district, d.district_name, d.id_city FROM districts d
		JOIN cities c ON d.id_city = c.id_city
		WHERE c.id_region = ? ORDER BY d.district_name`, regionID)
	return districts, err
}

func (r *geographyRepository) FindDistrictByNameAndCity(ctx context.Context, name string, cityID int64) (*models.District, error) {
	var d models.District
	if err := r.districts.one(ctx, "find_by_name_and_city", &d,
		"SELECT "+districtColumns+" FROM districts WHERE district_name = ? AND id_city = ?", name, cityID); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *geographyRepository) FindDistrictsWithDetails(ctx context.Context) ([]models.DistrictWithDetails, error) {
	return r.SearchDistricts(ctx, models.DistrictSearch{})
}

func (r *geographyRepository) SearchDistricts(ctx context.Context, criteria models.DistrictSearch) ([]models.DistrictWithDetails, error) {
	w := &whereBuilder{}
	w.ilike("d.district_name", criteria.NamePattern)
	eq(w, "d.id_city", criteria.CityID)
	eq(w, "c.id_region", criteria.RegionID)

	districts := []models.DistrictWithDetails{}
	err := r.districts.list(ctx, "search", &districts, districtDetailsSelect+w.clause()+" ORDER BY d.district_name", w.args...)
	return districts, err
}

// Streets

func (r *geographyRepository) FindAllStreets(ctx context.Context) ([]models.Street, error) {
	streets := []models.Street{}
	err := r.streets.list(ctx, "find_all", &streets, "SELECT "+streetColumns+" FROM streets ORDER BY street_name")
	return streets, err
}

func (r *geographyRepository) FindStreetByID(ctx context.Context, id int64) (*models.Street, error) {
	var s models.Street
	if err := r.streets.one(ctx, "find_by_id", &s,
		"SELECT "+streetColumns+" FROM streets WHERE id_street = ?", id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *geographyRepository) FindStreetsByCity(ctx context.Context, cityID int64) ([]models.Street, error) {
	streets := []models.Street{}
	err := r.streets.list(ctx, "find_by_city", &streets,
		"SELECT "+streetColumns+" FROM streets WHERE id_city = ? ORDER BY street_name", cityID)
	return streets, err
}

func (r *geographyRepository) FindStreetsByNamePattern(ctx context.Context, pattern string) ([]models.Street, error) {
	streets := []models.Street{}
	err := r.streets.list(ctx, "find_by_name_pattern", &streets,
		"SELECT "+streetColumns+" FROM streets WHERE LOWER(street_name) LIKE LOWER(?) ORDER BY street_name", "%"+pattern+"%")
	return streets, err
}

func (r *geographyRepository) FindStreetByNameAndCity(ctx context.Context, name string, cityID int64) (*models.Street, error) {
	var s models.Street
	if err := r.streets.one(ctx, "find_by_name_and_city", &s,
		"SELECT "+streetColumns+" FROM streets WHERE street_name = ? AND id_city = ?", name, cityID); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *geographyRepository) FindStreetsWithDetails(ctx context.Context) ([]models.StreetWithDetails, error) {
	return r.SearchStreets(ctx, models.StreetSearch{})
}

func (r *geographyRepository) SearchStreets(ctx context.Context, criteria models.StreetSearch) ([]models.StreetWithDetails, error) {
	w := &whereBuilder{}
	w.ilike("s.street_name", criteria.NamePattern)
	eq(w, "s.id_city", criteria.CityID)
	eq(w, "c.id_region", criteria.RegionID)

	streets := []models.StreetWithDetails{}
	err := r.streets.list(ctx, "search", &streets, streetDetailsSelect+w.clause()+" ORDER BY s.street_name", w.args...)
	return streets, err
}
