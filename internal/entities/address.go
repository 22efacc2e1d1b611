package entities

type Governorate string

const (
	GovernorateCapital         Governorate = "capital"
	GovernorateHawalli         Governorate = "hawalli"
	GovernorateFarwaniya       Governorate = "farwaniya"
	GovernorateMubarakAlKabeer Governorate = "mubarak_al_kabeer"
	GovernorateAhmadi          Governorate = "ahmadi"
	GovernorateJahra           Governorate = "jahra"
)

var Governorates = []Governorate{
	GovernorateCapital,
	GovernorateHawalli,
	GovernorateFarwaniya,
	GovernorateMubarakAlKabeer,
	GovernorateAhmadi,
	GovernorateJahra,
}

type Address struct {
	Governorate Governorate `validate:"required"`
	Area        string      `validate:"required"`
	Block       string      `validate:"required"`
	Street      string      `validate:"required"`
	Building    string      `validate:"required"`

	Floor     string
	Apartment string
	Notes     string
}

type AddressKind string

const (
	AddressShipping AddressKind = "shipping"
	AddressBilling  AddressKind = "billing"
)

type CustomerInfo struct {
	UserID string
	Name   string `validate:"required"`
	Email  string `validate:"required,email"`
	Phone  string `validate:"required"`
}
