package repositories

import (
	"fmt"
	"strings"

	"realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/validators"
)

type field struct {
	name   string
	column string
	rule   validators.Rule
}

// fieldRegistry declares which logical fields a partial update may touch,
// how each raw value is coerced and the column it writes. Declaration order
// fixes the SET clause order.
type fieldRegistry struct {
	table    string
	idColumn string
	fields   []field
}

// Rule makes the registry a validators.Fields.
func (r fieldRegistry) Rule(name string) (validators.Rule, bool) {
	for _, f := range r.fields {
		if f.name == name {
			return f.rule, true
		}
	}
	return nil, false
}

// buildUpdate coerces every recognized key through its rule, so values that
// skipped the service layer are still written with their column types.
func (r fieldRegistry) buildUpdate(id int64, updates map[string]interface{}) (string, []interface{}, bool, error) {
	sets := make([]string, 0, len(r.fields))
	args := make([]interface{}, 0, len(r.fields)+1)
	invalid := map[string]string{}
	for _, f := range r.fields {
		raw, ok := updates[f.name]
		if !ok {
			continue
		}
		v, err := f.rule(raw)
		if err != nil {
			invalid[f.name] = err.Error()
			continue
		}
		sets = append(sets, f.column+" = ?")
		args = append(args, v)
	}
	if len(invalid) > 0 {
		return "", nil, false, errors.Validation(invalid)
	}
	if len(sets) == 0 {
		return "", nil, false, nil
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", r.table, strings.Join(sets, ", "), r.idColumn)
	return query, args, true, nil
}

var ClientFields = fieldRegistry{
	table:    "clients",
	idColumn: "id_client",
	fields: []field{
		{"firstName", "first_name", validators.RequiredText(100)},
		{"lastName", "last_name", validators.RequiredText(100)},
		{"middleName", "middle_name", validators.OptionalText(100)},
		{"phone", "phone", validators.Phone()},
		{"email", "email", validators.Email()},
	},
}

var RealtorFields = fieldRegistry{
	table:    "realtors",
	idColumn: "id_realtor",
	fields: []field{
		{"firstName", "first_name", validators.RequiredText(100)},
		{"lastName", "last_name", validators.RequiredText(100)},
		{"middleName", "middle_name", validators.OptionalText(100)},
		{"phone", "phone", validators.Phone()},
		{"email", "email", validators.Email()},
		{"experienceYears", "experience_years", validators.IntRange(0, 100)},
	},
}

var PropertyFields = fieldRegistry{
	table:    "properties",
	idColumn: "id_property",
	fields: []field{
		{"area", "area", validators.PositiveNumber()},
		{"cost", "cost", validators.PositiveNumber()},
		{"description", "description", validators.OptionalText(0)},
		{"postalCode", "postal_code", validators.OptionalText(20)},
		{"houseNumber", "house_number", validators.OptionalText(20)},
		{"houseLetter", "house_letter", validators.OptionalText(10)},
		{"buildingNumber", "building_number", validators.OptionalText(20)},
		{"apartmentNumber", "apartment_number", validators.OptionalText(20)},
		{"idPropertyType", "id_property_type", validators.PositiveID()},
		{"idCountry", "id_country", validators.PositiveID()},
		{"idRegion", "id_region", validators.PositiveID()},
		{"idCity", "id_city", validators.PositiveID()},
		{"idDistrict", "id_district", validators.PositiveID()},
		{"idStreet", "id_street", validators.PositiveID()},
	},
}

var DealFields = fieldRegistry{
	table:    "deals",
	idColumn: "id_deal",
	fields: []field{
		{"dealDate", "deal_date", validators.Date()},
		{"dealCost", "deal_cost", validators.PositiveNumber()},
		{"idDealType", "id_deal_type", validators.PositiveID()},
		{"idProperty", "id_property", validators.PositiveID()},
		{"idClient", "id_client", validators.PositiveID()},
		{"idRealtor", "id_realtor", validators.PositiveID()},
	},
}

var PaymentFields = fieldRegistry{
	table:    "payments",
	idColumn: "id_payment",
	fields: []field{
		{"paymentDate", "payment_date", validators.Date()},
		{"amount", "amount", validators.PositiveNumber()},
		{"idDeal", "id_deal", validators.PositiveID()},
	},
}
