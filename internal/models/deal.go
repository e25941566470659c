package models

type Deal struct {
	ID         int64   `json:"idDeal" db:"id_deal"`
	DealDate   Date    `json:"dealDate" db:"deal_date"`
	DealCost   float64 `json:"dealCost" db:"deal_cost" validate:"gt=0"`
	PropertyID int64   `json:"idProperty" db:"id_property" validate:"gt=0"`
	RealtorID  int64   `json:"idRealtor" db:"id_realtor" validate:"gt=0"`
	ClientID   int64   `json:"idClient" db:"id_client" validate:"gt=0"`
	DealTypeID int64   `json:"idDealType" db:"id_deal_type" validate:"gt=0"`
}

// DealWithDetails joins a deal with its client, realtor, property and types.
type DealWithDetails struct {
	DealID                  int64   `json:"dealId" db:"deal_id"`
	DealDate                Date    `json:"dealDate" db:"deal_date"`
	DealCost                float64 `json:"dealCost" db:"deal_cost"`
	ClientID                int64   `json:"clientId" db:"client_id"`
	ClientFirstName         string  `json:"clientFirstName" db:"client_first_name"`
	ClientLastName          string  `json:"clientLastName" db:"client_last_name"`
	ClientMiddleName        *string `json:"clientMiddleName" db:"client_middle_name"`
	ClientPhone             *string `json:"clientPhone" db:"client_phone"`
	ClientEmail             *string `json:"clientEmail" db:"client_email"`
	RealtorID               int64   `json:"realtorId" db:"realtor_id"`
	RealtorFirstName        string  `json:"realtorFirstName" db:"realtor_first_name"`
	RealtorLastName         string  `json:"realtorLastName" db:"realtor_last_name"`
	RealtorMiddleName       *string `json:"realtorMiddleName" db:"realtor_middle_name"`
	RealtorPhone            *string `json:"realtorPhone" db:"realtor_phone"`
	RealtorEmail            *string `json:"realtorEmail" db:"realtor_email"`
	RealtorExperience       int     `json:"realtorExperience" db:"realtor_experience"`
	PropertyID              int64   `json:"propertyId" db:"property_id"`
	PropertyArea            float64 `json:"propertyArea" db:"property_area"`
	PropertyCost            float64 `json:"propertyCost" db:"property_cost"`
	PropertyDescription     *string `json:"propertyDescription" db:"property_description"`
	PropertyPostalCode      *string `json:"propertyPostalCode" db:"property_postal_code"`
	PropertyHouseNumber     *string `json:"propertyHouseNumber" db:"property_house_number"`
	PropertyHouseLetter     *string `json:"propertyHouseLetter" db:"property_house_letter"`
	PropertyBuildingNumber  *string `json:"propertyBuildingNumber" db:"property_building_number"`
	PropertyApartmentNumber *string `json:"propertyApartmentNumber" db:"property_apartment_number"`
	CountryName             string  `json:"countryName" db:"country_name"`
	RegionName              string  `json:"regionName" db:"region_name"`
	CityName                string  `json:"cityName" db:"city_name"`
	DistrictName            string  `json:"districtName" db:"district_name"`
	StreetName              string  `json:"streetName" db:"street_name"`
	PropertyTypeName        string  `json:"propertyTypeName" db:"property_type_name"`
	DealTypeName            string  `json:"dealTypeName" db:"deal_type_name"`
}

// DealTable is the compact row shown in the deals list.
type DealTable struct {
	DealID           int64   `json:"dealId" db:"deal_id"`
	DealDate         Date    `json:"dealDate" db:"deal_date"`
	DealCost         float64 `json:"dealCost" db:"deal_cost"`
	ClientName       string  `json:"clientName" db:"client_name"`
	ClientPhone      *string `json:"clientPhone" db:"client_phone"`
	RealtorName      string  `json:"realtorName" db:"realtor_name"`
	PropertyAddress  string  `json:"propertyAddress" db:"property_address"`
	PropertyTypeName string  `json:"propertyTypeName" db:"property_type_name"`
	DealTypeName     string  `json:"dealTypeName" db:"deal_type_name"`
}

// DealReport is one CSV row of the deals report.
type DealReport struct {
	ID              int64   `db:"id"`
	DealDate        Date    `db:"deal_date"`
	DealCost        float64 `db:"deal_cost"`
	PropertyAddress string  `db:"property_address"`
	RealtorFullName string  `db:"realtor_full_name"`
	ClientFullName  string  `db:"client_full_name"`
	DealTypeName    string  `db:"deal_type_name"`
}
