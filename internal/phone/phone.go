package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Parsed is the subset of parsing output reported in trace results.
type Parsed struct {
	CountryCode    int    `json:"country_code"`
	NationalNumber uint64 `json:"national_number"`
	IsValid        bool   `json:"is_valid"`
	IsPossible     bool   `json:"is_possible"`
}

// Parse validates raw input as an international phone number. Numbers must
// carry their country code (e.g. +14155552671) because no default region
// is assumed.
func Parse(number string) (Parsed, error) {
	parsed, err := phonenumbers.Parse(number, "")
	if err != nil {
		return Parsed{}, fmt.Errorf("parsing %q: %w", number, err)
	}

	return Parsed{
		CountryCode:    int(parsed.GetCountryCode()),
		NationalNumber: parsed.GetNationalNumber(),
		IsValid:        phonenumbers.IsValidNumber(parsed),
		IsPossible:     phonenumbers.IsPossibleNumber(parsed),
	}, nil
}
