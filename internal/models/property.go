package models

type Property struct {
	ID              int64   `json:"idProperty" db:"id_property"`
	Area            float64 `json:"area" db:"area" validate:"gt=0"`
	Cost            float64 `json:"cost" db:"cost" validate:"gt=0"`
	Description     *string `json:"description" db:"description"`
	PostalCode      *string `json:"postalCode" db:"postal_code" validate:"omitempty,max=20"`
	HouseNumber     *string `json:"houseNumber" db:"house_number" validate:"omitempty,max=20"`
	HouseLetter     *string `json:"houseLetter" db:"house_letter" validate:"omitempty,max=10"`
	BuildingNumber  *string `json:"buildingNumber" db:"building_number" validate:"omitempty,max=20"`
	ApartmentNumber *string `json:"apartmentNumber" db:"apartment_number" validate:"omitempty,max=20"`
	PropertyTypeID  int64   `json:"idPropertyType" db:"id_property_type" validate:"gt=0"`
	CountryID       int64   `json:"idCountry" db:"id_country" validate:"gt=0"`
	RegionID        int64   `json:"idRegion" db:"id_region" validate:"gt=0"`
	CityID          int64   `json:"idCity" db:"id_city" validate:"gt=0"`
	DistrictID      int64   `json:"idDistrict" db:"id_district" validate:"gt=0"`
	StreetID        int64   `json:"idStreet" db:"id_street" validate:"gt=0"`
}

// PropertyWithDetails resolves every foreign key of a property to its name.
type PropertyWithDetails struct {
	PropertyID       int64   `json:"propertyId" db:"property_id"`
	Area             float64 `json:"area" db:"area"`
	Cost             float64 `json:"cost" db:"cost"`
	Description      *string `json:"description" db:"description"`
	PostalCode       *string `json:"postalCode" db:"postal_code"`
	HouseNumber      *string `json:"houseNumber" db:"house_number"`
	HouseLetter      *string `json:"houseLetter" db:"house_letter"`
	BuildingNumber   *string `json:"buildingNumber" db:"building_number"`
	ApartmentNumber  *string `json:"apartmentNumber" db:"apartment_number"`
	CountryID        int64   `json:"countryId" db:"country_id"`
	CountryName      string  `json:"countryName" db:"country_name"`
	RegionID         int64   `json:"regionId" db:"region_id"`
	RegionName       string  `json:"regionName" db:"region_name"`
	RegionCode       *string `json:"regionCode" db:"region_code"`
	CityID           int64   `json:"cityId" db:"city_id"`
	CityName         string  `json:"cityName" db:"city_name"`
	DistrictID       int64   `json:"districtId" db:"district_id"`
	DistrictName     string  `json:"districtName" db:"district_name"`
	StreetID         int64   `json:"streetId" db:"street_id"`
	StreetName       string  `json:"streetName" db:"street_name"`
	PropertyTypeID   int64   `json:"propertyTypeId" db:"property_type_id"`
	PropertyTypeName string  `json:"propertyTypeName" db:"property_type_name"`
}

// PropertyTable is the compact row shown in the properties list.
type PropertyTable struct {
	PropertyID       int64   `json:"propertyId" db:"property_id"`
	PropertyTypeName string  `json:"propertyTypeName" db:"property_type_name"`
	Area             float64 `json:"area" db:"area"`
	Cost             float64 `json:"cost" db:"cost"`
	ShortDescription *string `json:"shortDescription" db:"short_description"`
	CityName         string  `json:"cityName" db:"city_name"`
	DistrictName     string  `json:"districtName" db:"district_name"`
	StreetName       string  `json:"streetName" db:"street_name"`
	HouseNumber      *string `json:"houseNumber" db:"house_number"`
	ApartmentNumber  *string `json:"apartmentNumber" db:"apartment_number"`
	HouseLetter      *string `json:"houseLetter" db:"house_letter"`
	BuildingNumber   *string `json:"buildingNumber" db:"building_number"`
}

// PropertyReport is one CSV row of the properties report.
type PropertyReport struct {
	ID               int64   `db:"id"`
	Area             float64 `db:"area"`
	Cost             float64 `db:"cost"`
	Description      *string `db:"description"`
	PropertyTypeName string  `db:"property_type_name"`
	PostalCode       *string `db:"postal_code"`
	HouseNumber      *string `db:"house_number"`
	HouseLetter      *string `db:"house_letter"`
	BuildingNumber   *string `db:"building_number"`
	ApartmentNumber  *string `db:"apartment_number"`
	StreetName       string  `db:"street_name"`
	DistrictName     string  `db:"district_name"`
	CityName         string  `db:"city_name"`
	RegionCode       *string `db:"region_code"`
	RegionName       string  `db:"region_name"`
	CountryName      string  `db:"country_name"`
}
