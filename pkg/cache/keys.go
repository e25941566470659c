package cache

import "fmt"

func DealTypeListKey() string {
	return "reference:deal-types:list"
}

func DealTypeKey(id int64) string {
	return fmt.Sprintf("reference:deal-type:%d", id)
}

func PropertyTypeListKey() string {
	return "reference:property-types:list"
}

func PropertyTypeKey(id int64) string {
	return fmt.Sprintf("reference:property-type:%d", id)
}

func CountryListKey() string {
	return "reference:countries:list"
}

func CountryKey(id int64) string {
	return fmt.Sprintf("reference:country:%d", id)
}

// ReferenceListKeys are the cached whole-table lists.
func ReferenceListKeys() []string {
	return []string{DealTypeListKey(), PropertyTypeListKey(), CountryListKey()}
}
