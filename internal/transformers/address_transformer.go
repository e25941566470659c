package transformers

import (
	"strings"
)

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

// NormalizeAddressComponent trims and collapses inner whitespace.
func (t *addressTransformer) NormalizeAddressComponent(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// Format prints "город, район, ул. улица, д. 1А к. 2, кв. 3", skipping
// blank parts. A building or letter without a house number is dropped.
func (t *addressTransformer) Format(a Address) string {
	var parts []string
	for _, p := range []string{a.City, a.District} {
		if p = t.NormalizeAddressComponent(p); p != "" {
			parts = append(parts, p)
		}
	}
	if street := t.NormalizeAddressComponent(a.Street); street != "" {
		parts = append(parts, "ул. "+street)
	}
	if house := t.optional(a.HouseNumber); house != "" {
		house = "д. " + house + t.optional(a.HouseLetter)
		if building := t.optional(a.BuildingNumber); building != "" {
			house += " к. " + building
		}
		parts = append(parts, house)
	}
	if apartment := t.optional(a.ApartmentNumber); apartment != "" {
		parts = append(parts, "кв. "+apartment)
	}
	return strings.Join(parts, ", ")
}

func (t *addressTransformer) optional(s *string) string {
	if s == nil {
		return ""
	}
	return t.NormalizeAddressComponent(*s)
}
