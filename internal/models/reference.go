package models

type DealType struct {
	ID   int64  `json:"idDealType" db:"id_deal_type"`
	Name string `json:"dealTypeName" db:"deal_type_name"`
}

type PropertyType struct {
	ID   int64  `json:"idPropertyType" db:"id_property_type"`
	Name string `json:"propertyTypeName" db:"property_type_name"`
}

type Country struct {
	ID   int64  `json:"idCountry" db:"id_country"`
	Name string `json:"countryName" db:"country_name"`
}

type Region struct {
	ID        int64   `json:"idRegion" db:"id_region"`
	Name      string  `json:"name" db:"name"`
	Code      *string `json:"code" db:"code"`
	CountryID int64   `json:"idCountry" db:"id_country"`
}

type City struct {
	ID       int64  `json:"idCity" db:"id_city"`
	Name     string `json:"cityName" db:"city_name"`
	RegionID int64  `json:"idRegion" db:"id_region"`
}

type District struct {
	ID     int64  `json:"idDistrict" db:"id_district"`
	Name   string `json:"districtName" db:"district_name"`
	CityID int64  `json:"idCity" db:"id_city"`
}

type Street struct {
	ID     int64  `json:"idStreet" db:"id_street"`
	Name   string `json:"streetName" db:"street_name"`
	CityID int64  `json:"idCity" db:"id_city"`
}

type RegionWithDetails struct {
	RegionID    int64   `json:"regionId" db:"region_id"`
	RegionName  string  `json:"regionName" db:"region_name"`
	RegionCode  *string `json:"regionCode" db:"region_code"`
	CountryID   int64   `json:"countryId" db:"country_id"`
	CountryName string  `json:"countryName" db:"country_name"`
}

type CityWithDetails struct {
	CityID      int64   `json:"cityId" db:"city_id"`
	CityName    string  `json:"cityName" db:"city_name"`
	RegionID    int64   `json:"regionId" db:"region_id"`
	RegionName  string  `json:"regionName" db:"region_name"`
	RegionCode  *string `json:"regionCode" db:"region_code"`
	CountryID   int64   `json:"countryId" db:"country_id"`
	CountryName string  `json:"countryName" db:"country_name"`
}

type DistrictWithDetails struct {
	DistrictID   int64  `json:"districtId" db:"district_id"`
	DistrictName string `json:"districtName" db:"district_name"`
	CityID       int64  `json:"cityId" db:"city_id"`
	CityName     string `json:"cityName" db:"city_name"`
	RegionID     int64  `json:"regionId" db:"region_id"`
	RegionName   string `json:"regionName" db:"region_name"`
	CountryID    int64  `json:"countryId" db:"country_id"`
	CountryName  string `json:"countryName" db:"country_name"`
}

type StreetWithDetails struct {
	StreetID    int64  `json:"streetId" db:"street_id"`
	StreetName  string `json:"streetName" db:"street_name"`
	CityID      int64  `json:"cityId" db:"city_id"`
	CityName    string `json:"cityName" db:"city_name"`
	RegionID    int64  `json:"regionId" db:"region_id"`
	RegionName  string `json:"regionName" db:"region_name"`
	CountryID   int64  `json:"countryId" db:"country_id"`
	CountryName string `json:"countryName" db:"country_name"`
}
