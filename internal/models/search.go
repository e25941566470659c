package models

// Search criteria. Zero strings and nil pointers mean "no filter".

type ClientSearch struct {
	LastName string
	Email    string
	Phone    string
}

type RealtorSearch struct {
	LastName      string
	Email         string
	Phone         string
	MinExperience *int
}

type PropertySearch struct {
	MinPrice       *float64
	MaxPrice       *float64
	CityID         *int64
	PropertyTypeID *int64
	DistrictID     *int64
	StreetID       *int64
}

type DealSearch struct {
	StartDate  *Date
	EndDate    *Date
	RealtorID  *int64
	ClientID   *int64
	DealTypeID *int64
	MinCost    *float64
	MaxCost    *float64
}

// PaymentSearch treats EndDate as inclusive of the whole day.
type PaymentSearch struct {
	DealID    *int64
	StartDate *Date
	EndDate   *Date
}

type RegionSearch struct {
	NamePattern string
	Code        string
	CountryID   *int64
}

type CitySearch struct {
	NamePattern string
	RegionID    *int64
	CountryID   *int64
}

type DistrictSearch struct {
	NamePattern string
	CityID      *int64
	RegionID    *int64
}

type StreetSearch struct {
	NamePattern string
	CityID      *int64
	RegionID    *int64
}
