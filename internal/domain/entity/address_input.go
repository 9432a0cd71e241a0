package entity

import (
	"strings"

	"github.com/paulmach/orb"
)

// AddressInput is the loosely-shaped address submission accepted from the
// outside world. Listings come from several locales, so the same logical
// field may arrive under different names (a Madrid landlord writes "piso",
// a US one writes "floor"). The recognized synonyms are enumerated here as
// explicit optional fields instead of an untyped map.
//
// Precedence is deterministic and left-biased: the canonical field name wins,
// then the synonyms in the order they are listed on the struct. The first
// non-empty value is taken; later synonyms never overwrite an earlier one.
type AddressInput struct {
	Street string `json:"street"`
	Number string `json:"number"`

	// Unit synonyms, in precedence order.
	Unit      string `json:"unit"`
	Apartment string `json:"apartment"`
	Suite     string `json:"suite"`
	Puerta    string `json:"puerta"`

	// Floor synonyms, in precedence order.
	Floor  string `json:"floor"`
	Piso   string `json:"piso"`
	Planta string `json:"planta"`
	Level  string `json:"level"`

	Block        string `json:"block"`
	BuildingName string `json:"building_name"`
	LandPlot     string `json:"land_plot"`

	City  string `json:"city"`
	State string `json:"state"`

	// Postal-code synonyms, in precedence order.
	PostalCode   string `json:"postal_code"`
	Zip          string `json:"zip"`
	Postcode     string `json:"postcode"`
	CodigoPostal string `json:"codigo_postal"`

	Country     string `json:"country"`
	CountryCode string `json:"country_code"`

	// Free-form lines. Line1/Line2 are folded into Lines after any
	// explicitly provided entries.
	Line1 string   `json:"line1"`
	Line2 string   `json:"line2"`
	Lines []string `json:"address_lines"`

	// Coordinates are mandatory for resolution; pointers distinguish
	// "absent" from a legitimate zero.
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// countryCodes maps common country spellings to their ISO-2 code. Lookup is
// case-insensitive on the trimmed name.
var countryCodes = map[string]string{
	"usa":                      "US",
	"united states":            "US",
	"united states of america": "US",
	"spain":                    "ES",
	"españa":                   "ES",
	"espana":                   "ES",
	"france":                   "FR",
	"germany":                  "DE",
	"deutschland":              "DE",
	"italy":                    "IT",
	"italia":                   "IT",
	"portugal":                 "PT",
	"united kingdom":           "GB",
	"uk":                       "GB",
	"great britain":            "GB",
	"netherlands":              "NL",
	"belgium":                  "BE",
	"switzerland":              "CH",
	"austria":                  "AT",
	"mexico":                   "MX",
	"méxico":                   "MX",
	"canada":                   "CA",
	"brazil":                   "BR",
	"brasil":                   "BR",
	"argentina":                "AR",
	"taiwan":                   "TW",
	"japan":                    "JP",
}

// Normalize resolves synonym fields into a canonical Address. It is pure:
// no I/O, no mutation of the receiver, deterministic output for equal input.
// The returned Address carries no ID, key or timestamps; callers compute the
// normalized key and persist separately.
func (in AddressInput) Normalize() Address {
	addr := Address{
		Street:       strings.TrimSpace(in.Street),
		Number:       strings.TrimSpace(in.Number),
		Unit:         firstNonEmpty(in.Unit, in.Apartment, in.Suite, in.Puerta),
		Floor:        firstNonEmpty(in.Floor, in.Piso, in.Planta, in.Level),
		Block:        strings.TrimSpace(in.Block),
		BuildingName: strings.TrimSpace(in.BuildingName),
		LandPlot:     strings.TrimSpace(in.LandPlot),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		PostalCode:   firstNonEmpty(in.PostalCode, in.Zip, in.Postcode, in.CodigoPostal),
		Country:      strings.TrimSpace(in.Country),
		CountryCode:  strings.ToUpper(strings.TrimSpace(in.CountryCode)),
	}

	if addr.CountryCode == "" && addr.Country != "" {
		addr.CountryCode = resolveCountryCode(addr.Country)
	}

	addr.Lines = collectLines(in.Lines, in.Line1, in.Line2)

	if in.Longitude != nil && in.Latitude != nil {
		addr.Location = orb.Point{*in.Longitude, *in.Latitude}
	}

	return addr
}

// HasCoordinates reports whether both coordinate components were supplied.
func (in AddressInput) HasCoordinates() bool {
	return in.Longitude != nil && in.Latitude != nil
}

// resolveCountryCode maps a country name to ISO-2. Names missing from the
// table fall back to the upper-cased first two letters of the name; the
// fallback is an approximation, not a guarantee.
func resolveCountryCode(country string) string {
	if code, ok := countryCodes[strings.ToLower(strings.TrimSpace(country))]; ok {
		return code
	}

	runes := []rune(strings.TrimSpace(country))
	if len(runes) < 2 {
		return strings.ToUpper(string(runes))
	}

	return strings.ToUpper(string(runes[:2]))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}

	return ""
}

// collectLines merges explicit lines with line1/line2, trims each entry,
// drops empties, truncates over-long lines and caps the total count.
func collectLines(lines []string, line1, line2 string) []string {
	merged := make([]string, 0, len(lines)+2)
	merged = append(merged, lines...)
	merged = append(merged, line1, line2)

	out := make([]string, 0, MaxAddressLines)
	for _, line := range merged {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if len(trimmed) > MaxAddressLineLength {
			trimmed = trimmed[:MaxAddressLineLength]
		}
		out = append(out, trimmed)
		if len(out) == MaxAddressLines {
			break
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
