package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestFormat(t *testing.T) {
	tr := NewAddressTransformer()

	tests := []struct {
		name string
		in   Address
		want string
	}{
		{
			name: "full",
			in: Address{City: "Москва", District: "Тверской", Street: "Тверская",
				HouseNumber: ptr("12"), HouseLetter: ptr("А"), BuildingNumber: ptr("2"), ApartmentNumber: ptr("45")},
			want: "Москва, Тверской, ул. Тверская, д. 12А к. 2, кв. 45",
		},
		{
			name: "street only",
			in:   Address{City: "Казань", District: "Вахитовский", Street: "  Баумана "},
			want: "Казань, Вахитовский, ул. Баумана",
		},
		{
			name: "building without house",
			in:   Address{City: "Тверь", Street: "Советская", BuildingNumber: ptr("3"), ApartmentNumber: ptr("7")},
			want: "Тверь, ул. Советская, кв. 7",
		},
		{
			name: "blank pointers",
			in:   Address{City: "Сочи", Street: "Морская", HouseNumber: ptr(" ")},
			want: "Сочи, ул. Морская",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Format(tt.in))
		})
	}
}

func TestNormalizeAddressComponent(t *testing.T) {
	assert.Equal(t, "Нижний Новгород", NewAddressTransformer().NormalizeAddressComponent("  Нижний   Новгород "))
}
