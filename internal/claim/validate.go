package claim

import "strings"

// Address carries the fields submitted from the address form.
type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// ValidateAddress checks required fields for non-blank values after
// trimming and returns one message per violated field, in form order.
// Line2 is optional. No format or geocoding checks happen here.
func ValidateAddress(a Address) []string {
	var violations []string

	required := []struct {
		value string
		label string
	}{
		{a.Line1, "Address line 1 is required"},
		{a.City, "City is required"},
		{a.State, "State is required"},
		{a.Zip, "Zip is required"},
		{a.Country, "Country is required"},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			violations = append(violations, f.label)
		}
	}

	return violations
}
