package repositories

import (
	"context"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/pkg/database"
)

// Every repository can be rebound to another querier, typically a
// transaction opened by the service layer.

type ClientRepository interface {
	WithQuerier(q database.Querier) ClientRepository
	Create(ctx context.Context, client *models.Client) (int64, error)
	FindAll(ctx context.Context) ([]models.Client, error)
	FindByID(ctx context.Context, id int64) (*models.Client, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindByLastName(ctx context.Context, lastName string) ([]models.Client, error)
	FindByPhone(ctx context.Context, phone string) (*models.Client, error)
	FindByEmail(ctx context.Context, email string) (*models.Client, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, criteria models.ClientSearch) ([]models.Client, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error)
}

type RealtorRepository interface {
	WithQuerier(q database.Querier) RealtorRepository
	Create(ctx context.Context, realtor *models.Realtor) (int64, error)
	FindAll(ctx context.Context) ([]models.Realtor, error)
	FindByID(ctx context.Context, id int64) (*models.Realtor, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindByLastName(ctx context.Context, lastName string) ([]models.Realtor, error)
	FindByPhone(ctx context.Context, phone string) (*models.Realtor, error)
	FindByEmail(ctx context.Context, email string) (*models.Realtor, error)
	FindByExperience(ctx context.Context, minYears int) ([]models.Realtor, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, criteria models.RealtorSearch) ([]models.Realtor, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error)
}

type PropertyRepository interface {
	WithQuerier(q database.Querier) PropertyRepository
	Create(ctx context.Context, property *models.Property) (int64, error)
	FindAll(ctx context.Context) ([]models.Property, error)
	FindByID(ctx context.Context, id int64) (*models.Property, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Property, error)
	FindByCity(ctx context.Context, cityID int64) ([]models.Property, error)
	FindByPropertyType(ctx context.Context, typeID int64) ([]models.Property, error)
	Count(ctx context.Context) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAllWithDetails(ctx context.Context) ([]models.PropertyWithDetails, error)
	FindWithDetailsByID(ctx context.Context, id int64) (*models.PropertyWithDetails, error)
	SearchWithDetails(ctx context.Context, criteria models.PropertySearch) ([]models.PropertyWithDetails, error)
	FindAllForTable(ctx context.Context) ([]models.PropertyTable, error)
	SearchForTable(ctx context.Context, criteria models.PropertySearch) ([]models.PropertyTable, error)
	FindAllForReport(ctx context.Context) ([]models.PropertyReport, error)
}

type DealRepository interface {
	WithQuerier(q database.Querier) DealRepository
	Create(ctx context.Context, deal *models.Deal) (int64, error)
	FindAll(ctx context.Context) ([]models.Deal, error)
	FindByID(ctx context.Context, id int64) (*models.Deal, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindByDate(ctx context.Context, date models.Date) ([]models.Deal, error)
	FindByDateRange(ctx context.Context, start, end models.Date) ([]models.Deal, error)
	FindByRealtor(ctx context.Context, realtorID int64) ([]models.Deal, error)
	FindByClient(ctx context.Context, clientID int64) ([]models.Deal, error)
	FindByProperty(ctx context.Context, propertyID int64) ([]models.Deal, error)
	FindByDealType(ctx context.Context, dealTypeID int64) ([]models.Deal, error)
	FindByCostRange(ctx context.Context, minCost, maxCost float64) ([]models.Deal, error)
	TotalAmount(ctx context.Context) (float64, error)
	Count(ctx context.Context) (int64, error)
	CountByProperty(ctx context.Context, propertyID int64) (int64, error)
	CountByRealtor(ctx context.Context, realtorID int64) (int64, error)
	CountByClient(ctx context.Context, clientID int64) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindAllWithDetails(ctx context.Context) ([]models.DealWithDetails, error)
	FindWithDetailsByID(ctx context.Context, id int64) (*models.DealWithDetails, error)
	SearchWithDetails(ctx context.Context, criteria models.DealSearch) ([]models.DealWithDetails, error)
	FindAllForTable(ctx context.Context) ([]models.DealTable, error)
	SearchForTable(ctx context.Context, criteria models.DealSearch) ([]models.DealTable, error)
	FindAllForReport(ctx context.Context) ([]models.DealReport, error)
}

type PaymentRepository interface {
	WithQuerier(q database.Querier) PaymentRepository
	Create(ctx context.Context, payment *models.Payment) (int64, error)
	FindAll(ctx context.Context) ([]models.Payment, error)
	FindByID(ctx context.Context, id int64) (*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) (bool, error)
	UpdateFields(ctx context.Context, id int64, updates map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindByDeal(ctx context.Context, dealID int64) ([]models.Payment, error)
	FindAllWithDetails(ctx context.Context) ([]models.PaymentTable, error)
	Search(ctx context.Context, criteria models.PaymentSearch) ([]models.PaymentTable, error)
	FindAllForReport(ctx context.Context) ([]models.PaymentReport, error)
}

// ReferenceRepository serves the small lookup tables.
type ReferenceRepository interface {
	FindAllDealTypes(ctx context.Context) ([]models.DealType, error)
	FindDealTypeByID(ctx context.Context, id int64) (*models.DealType, error)
	FindDealTypesByName(ctx context.Context, name string) ([]models.DealType, error)
	DealTypeExists(ctx context.Context, id int64) (bool, error)
	FindAllPropertyTypes(ctx context.Context) ([]models.PropertyType, error)
	FindPropertyTypeByID(ctx context.Context, id int64) (*models.PropertyType, error)
	FindPropertyTypesByName(ctx context.Context, name string) ([]models.PropertyType, error)
}

type GeographyRepository interface {
	FindAllCountries(ctx context.Context) ([]models.Country, error)
	FindCountryByID(ctx context.Context, id int64) (*models.Country, error)
	FindCountriesByName(ctx context.Context, name string) ([]models.Country, error)

	FindAllRegions(ctx context.Context) ([]models.Region, error)
	FindRegionByID(ctx context.Context, id int64) (*models.Region, error)
	FindRegionByCode(ctx context.Context, code string) (*models.Region, error)
	FindRegionsByCountry(ctx context.Context, countryID int64) ([]models.Region, error)
	FindRegionByNameAndCountry(ctx context.Context, name string, countryID int64) (*models.Region, error)
	FindRegionsWithDetails(ctx context.Context) ([]models.RegionWithDetails, error)
	SearchRegions(ctx context.Context, criteria models.RegionSearch) ([]models.RegionWithDetails, error)

	FindAllCities(ctx context.Context) ([]models.City, error)
	FindCityByID(ctx context.Context, id int64) (*models.City, error)
	FindCitiesByRegion(ctx context.Context, regionID int64) ([]models.City, error)
	FindCitiesByCountry(ctx context.Context, countryID int64) ([]models.City, error)
	FindCitiesByNamePattern(ctx context.Context, pattern string) ([]models.City, error)
	FindCityByNameAndRegion(ctx context.Context, name string, regionID int64) (*models.City, error)
	FindCitiesWithDetails(ctx context.Context) ([]models.CityWithDetails, error)
	SearchCities(ctx context.Context, criteria models.CitySearch) ([]models.CityWithDetails, error)

	FindAllDistricts(ctx context.Context) ([]models.District, error)
	FindDistrictByID(ctx context.Context, id int64) (*models.District, error)
	FindDistrictsByCity(ctx context.Context, cityID int64) ([]models.District, error)
	FindDistrictsByRegion(ctx context.Context, regionID int64) ([]models.District, error)
	FindDistrictByNameAndCity(ctx context.Context, name string, cityID int64) (*models.District, error)
	FindDistrictsWithDetails(ctx context.Context) ([]models.DistrictWithDetails, error)
	SearchDistricts(ctx context.Context, criteria models.DistrictSearch) ([]models.DistrictWithDetails, error)

	FindAllStreets(ctx context.Context) ([]models.Street, error)
	FindStreetByID(ctx context.Context, id int64) (*models.Street, error)
	FindStreetsByCity(ctx context.Context, cityID int64) ([]models.Street, error)
	FindStreetsByNamePattern(ctx context.Context, pattern string) ([]models.Street, error)
	FindStreetByNameAndCity(ctx context.Context, name string, cityID int64) (*models.Street, error)
	FindStreetsWithDetails(ctx context.Context) ([]models.StreetWithDetails, error)
	SearchStreets(ctx context.Context, criteria models.StreetSearch) ([]models.StreetWithDetails, error)
}
