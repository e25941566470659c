package models

// Client is a buyer, seller or tenant served by the agency.
type Client struct {
	ID         int64   `json:"idClient" db:"id_client"`
	FirstName  string  `json:"firstName" db:"first_name" validate:"notblank,max=100"`
	LastName   string  `json:"lastName" db:"last_name" validate:"notblank,max=100"`
	MiddleName *string `json:"middleName" db:"middle_name" validate:"omitempty,max=100"`
	Phone      *string `json:"phone" db:"phone" validate:"omitempty,phone"`
	Email      *string `json:"email" db:"email" validate:"omitempty,max=255,agencyemail"`
}

// Realtor is an agent who closes deals.
type Realtor struct {
	ID              int64   `json:"idRealtor" db:"id_realtor"`
	FirstName       string  `json:"firstName" db:"first_name" validate:"notblank,max=100"`
	LastName        string  `json:"lastName" db:"last_name" validate:"notblank,max=100"`
	MiddleName      *string `json:"middleName" db:"middle_name" validate:"omitempty,max=100"`
	Phone           *string `json:"phone" db:"phone" validate:"omitempty,phone"`
	Email           *string `json:"email" db:"email" validate:"omitempty,max=255,agencyemail"`
	ExperienceYears int     `json:"experienceYears" db:"experience_years" validate:"gte=0,lte=100"`
}

// FullName renders "Last First Middle" the way reports print people.
func FullName(last, first string, middle *string) string {
	name := last + " " + first
	if middle != nil && *middle != "" {
		name += " " + *middle
	}
	return name
}
