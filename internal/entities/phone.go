package entities

import "github.com/shopspring/decimal"

type PhoneSpecs struct {
	Display   string
	Camera    string
	Battery   string
	Storage   string
	RAM       string
	Processor string
	OS        string
}

// Phone is the normalized record every catalog source produces.
type Phone struct {
	ID          string
	Name        string
	Brand       string
	ImageURL    string
	Price       *decimal.Decimal
	Specs       PhoneSpecs
	Features    []string
	ReleaseDate string
	Colors      []string
	Available   bool
	SourceURL   string
}
