package transformers

// Address is the printable part of a property location.
type Address struct {
	City            string
	District        string
	Street          string
	HouseNumber     *string
	HouseLetter     *string
	BuildingNumber  *string
	ApartmentNumber *string
}

type AddressTransformer interface {
	NormalizeAddressComponent(input string) string
	Format(a Address) string
}
