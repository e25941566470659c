package services

import (
	"context"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/repositories"
)

// GeographyService is read-only access to the country > region > city >
// district/street hierarchy.
type GeographyService struct {
	repo repositories.GeographyRepository
}

func NewGeographyService(repo repositories.GeographyRepository) *GeographyService {
	return &GeographyService{repo: repo}
}

func many[T any](items []T, err error, entity string) ([]T, error) {
	if err != nil {
		return nil, selectErr(err, entity, nil)
	}
	return items, nil
}

func one[T any](item *T, err error, entity string, id interface{}) (*T, error) {
	if err != nil {
		return nil, selectErr(err, entity, id)
	}
	return item, nil
}

func (s *GeographyService) Countries(ctx context.Context) ([]models.Country, error) {
	items, err := s.repo.FindAllCountries(ctx)
	return many(items, err, entityCountry)
}

func (s *GeographyService) Country(ctx context.Context, id int64) (*models.Country, error) {
	item, err := s.repo.FindCountryByID(ctx, id)
	return one(item, err, entityCountry, id)
}

func (s *GeographyService) CountriesByName(ctx context.Context, name string) ([]models.Country, error) {
	if name == "" {
		return s.Countries(ctx)
	}
	items, err := s.repo.FindCountriesByName(ctx, name)
	return many(items, err, entityCountry)
}

func (s *GeographyService) Regions(ctx context.Context) ([]models.Region, error) {
	items, err := s.repo.FindAllRegions(ctx)
	return many(items, err, entityRegion)
}

func (s *GeographyService) Region(ctx context.Context, id int64) (*models.Region, error) {
	item, err := s.repo.FindRegionByID(ctx, id)
	return one(item, err, entityRegion, id)
}

func (s *GeographyService) RegionByCode(ctx context.Context, code string) (*models.Region, error) {
	item, err := s.repo.FindRegionByCode(ctx, code)
	return one(item, err, entityRegion, "code="+code)
}

func (s *GeographyService) RegionsByCountry(ctx context.Context, countryID int64) ([]models.Region, error) {
	items, err := s.repo.FindRegionsByCountry(ctx, countryID)
	return many(items, err, entityRegion)
}

func (s *GeographyService) RegionByNameAndCountry(ctx context.Context, name string, countryID int64) (*models.Region, error) {
	item, err := s.repo.FindRegionByNameAndCountry(ctx, name, countryID)
	return one(item, err, entityRegion, name)
}

func (s *GeographyService) RegionsWithDetails(ctx context.Context) ([]models.RegionWithDetails, error) {
	items, err := s.repo.FindRegionsWithDetails(ctx)
	return many(items, err, entityRegion)
}

func (s *GeographyService) SearchRegions(ctx context.Context, criteria models.RegionSearch) ([]models.RegionWithDetails, error) {
	items, err := s.repo.SearchRegions(ctx, criteria)
	return many(items, err, entityRegion)
}

func (s *GeographyService) Cities(ctx context.Context) ([]models.City, error) {
	items, err := s.repo.FindAllCities(ctx)
	return many(items, err, entityCity)
}

func (s *GeographyService) City(ctx context.Context, id int64) (*models.City, error) {
	item, err := s.repo.FindCityByID(ctx, id)
	return one(item, err, entityCity, id)
}

func (s *GeographyService) CitiesByRegion(ctx context.Context, regionID int64) ([]models.City, error) {
	items, err := s.repo.FindCitiesByRegion(ctx, regionID)
	return many(items, err, entityCity)
}

func (s *GeographyService) CitiesByCountry(ctx context.Context, countryID int64) ([]models.City, error) {
	items, err := s.repo.FindCitiesByCountry(ctx, countryID)
	return many(items, err, entityCity)
}

func (s *GeographyService) CitiesByName(ctx context.Context, pattern string) ([]models.City, error) {
	items, err := s.repo.FindCitiesByNamePattern(ctx, pattern)
	return many(items, err, entityCity)
}

func (s *GeographyService) CityByNameAndRegion(ctx context.Context, name string, regionID int64) (*models.City, error) {
	item, err := s.repo.FindCityByNameAndRegion(ctx, name, regionID)
	return one(item, err, entityCity, name)
}

func (s *GeographyService) CitiesWithDetails(ctx context.Context) ([]models.CityWithDetails, error) {
	items, err := s.repo.FindCitiesWithDetails(ctx)
	return many(items, err, entityCity)
}

func (s *GeographyService) SearchCities(ctx context.Context, criteria models.CitySearch) ([]models.CityWithDetails, error) {
	items, err := s.repo.SearchCities(ctx, criteria)
	return many(items, err, entityCity)
}

func (s *GeographyService) Districts(ctx context.Context) ([]models.District, error) {
	items, err := s.repo.FindAllDistricts(ctx)
	return many(items, err, entityDistrict)
}

func (s *GeographyService) District(ctx context.Context, id int64) (*models.District, error) {
	item, err := s.repo.FindDistrictByID(ctx, id)
	return one(item, err, entityDistrict, id)
}

func (s *GeographyService) DistrictsByCity(ctx context.Context, cityID int64) ([]models.District, error) {
	items, err := s.repo.FindDistrictsByCity(ctx, cityID)
	return many(items, err, entityDistrict)
}

func (s *GeographyService) DistrictsByRegion(ctx context.Context, regionID int64) ([]models.District, error) {
	items, err := s.repo.FindDistrictsByRegion(ctx, regionID)
	return many(items, err, entityDistrict)
}

func (s *GeographyService) DistrictByNameAndCity(ctx context.Context, name string, cityID int64) (*models.District, error) {
	item, err := s.repo.FindDistrictByNameAndCity(ctx, name, cityID)
	return one(item, err, entityDistrict, name)
}

func (s *GeographyService) DistrictsWithDetails(ctx context.Context) ([]models.DistrictWithDetails, error) {
	items, err := s.repo.FindDistrictsWithDetails(ctx)
	return many(items, err, entityDistrict)
}

func (s *GeographyService) SearchDistricts(ctx context.Context, criteria models.DistrictSearch) ([]models.DistrictWithDetails, error) {
	items, err := s.repo.SearchDistricts(ctx, criteria)
	return many(items, err, entityDistrict)
}

func (s *GeographyService) Streets(ctx context.Context) ([]models.Street, error) {
	items, err := s.repo.FindAllStreets(ctx)
	return many(items, err, entityStreet)
}

func (s *GeographyService) Street(ctx context.Context, id int64) (*models.Street, error) {
	item, err := s.repo.FindStreetByID(ctx, id)
	return one(item, err, entityStreet, id)
}

func (s *GeographyService) StreetsByCity(ctx context.Context, cityID int64) ([]models.Street, error) {
	items, err := s.repo.FindStreetsByCity(ctx, cityID)
	return many(items, err, entityStreet)
}

func (s *GeographyService) StreetsByName(ctx context.Context, pattern string) ([]models.Street, error) {
	items, err := s.repo.FindStreetsByNamePattern(ctx, pattern)
	return many(items, err, entityStreet)
}

func (s *GeographyService) StreetByNameAndCity(ctx context.Context, name string, cityID int64) (*models.Street, error) {
	item, err := s.repo.FindStreetByNameAndCity(ctx, name, cityID)
	return one(item, err, entityStreet, name)
}

func (s *GeographyService) StreetsWithDetails(ctx context.Context) ([]models.StreetWithDetails, error) {
	items, err := s.repo.FindStreetsWithDetails(ctx)
	return many(items, err, entityStreet)
}

func (s *GeographyService) SearchStreets(ctx context.Context, criteria models.StreetSearch) ([]models.StreetWithDetails, error) {
	items, err := s.repo.SearchStreets(ctx, criteria)
	return many(items, err, entityStreet)
}
