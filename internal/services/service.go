package services

import (
	"realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/utils"
)

// Entity names used in error messages and logs.
const (
	entityClient       = "Client"
	entityRealtor      = "Realtor"
	entityProperty     = "Property"
	entityDeal         = "Deal"
	entityPayment      = "Payment"
	entityDealType     = "DealType"
	entityPropertyType = "PropertyType"
	entityCountry      = "Country"
	entityRegion       = "Region"
	entityCity         = "City"
	entityDistrict     = "District"
	entityStreet       = "Street"
)

func selectErr(err error, entity string, id interface{}) error {
	return utils.LogAndMapError(err, errors.OpSelect, entity, id)
}

func insertErr(err error, entity string) error {
	return utils.LogAndMapError(err, errors.OpInsert, entity, nil)
}

func updateErr(err error, entity string, id interface{}) error {
	return utils.LogAndMapError(err, errors.OpUpdate, entity, id)
}

func deleteErr(err error, entity string, id interface{}) error {
	return utils.LogAndMapError(err, errors.OpDelete, entity, id)
}

// textValue returns the string carried by a coerced update value, if any.
func textValue(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}
