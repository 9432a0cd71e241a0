package entity

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_SynonymPrecedenceIsLeftBiased(t *testing.T) {
	// When multiple synonyms are present the canonical field wins, then the
	// declared order; "puerta" must never override "unit".
	in := AddressInput{
		Unit:   "3B",
		Puerta: "izquierda",
		Piso:   "4",
		Level:  "ignored",
		Zip:    "28001",
	}

	addr := in.Normalize()

	assert.Equal(t, "3B", addr.Unit)
	assert.Equal(t, "4", addr.Floor)
	assert.Equal(t, "28001", addr.PostalCode)
}

func TestNormalize_SynonymFillsEmptyCanonical(t *testing.T) {
	in := AddressInput{
		Apartment:    "2A",
		Planta:       "5",
		CodigoPostal: "08001",
	}

	addr := in.Normalize()

	assert.Equal(t, "2A", addr.Unit)
	assert.Equal(t, "5", addr.Floor)
	assert.Equal(t, "08001", addr.PostalCode)
}

func TestNormalize_CountryCodeLookup(t *testing.T) {
	tests := []struct {
		name    string
		country string
		want    string
	}{
		{name: "common name", country: "USA", want: "US"},
		{name: "full name", country: "United States of America", want: "US"},
		{name: "localized name", country: "España", want: "ES"},
		{name: "case insensitive", country: "spain", want: "ES"},
		{name: "unknown falls back to first two letters", country: "Freedonia", want: "FR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := AddressInput{Country: tt.country}.Normalize()
			assert.Equal(t, tt.want, addr.CountryCode)
		})
	}
}

func TestNormalize_ExplicitCountryCodeWins(t *testing.T) {
	addr := AddressInput{Country: "Spain", CountryCode: "es"}.Normalize()

	assert.Equal(t, "ES", addr.CountryCode)
}

func TestNormalize_LinesMergedAndBounded(t *testing.T) {
	in := AddressInput{
		Lines: []string{"Attn: Portero", "", "  Edificio Norte  ", "x", "y", "z"},
		Line1: "dropped, cap reached",
	}

	addr := in.Normalize()

	assert.Equal(t, []string{"Attn: Portero", "Edificio Norte", "x", "y", "z"}, addr.Lines)
	assert.Len(t, addr.Lines, MaxAddressLines)
}

func TestNormalize_OverlongLineTruncated(t *testing.T) {
	long := strings.Repeat("a", MaxAddressLineLength+50)

	addr := AddressInput{Line1: long}.Normalize()

	assert.Len(t, addr.Lines[0], MaxAddressLineLength)
}

func TestNormalize_Coordinates(t *testing.T) {
	lon, lat := -3.7038, 40.4168
	in := AddressInput{Longitude: &lon, Latitude: &lat}

	addr := in.Normalize()

	assert.True(t, in.HasCoordinates())
	assert.Equal(t, orb.Point{-3.7038, 40.4168}, addr.Location)
	assert.True(t, addr.HasValidLocation())
}

func TestNormalize_MissingCoordinates(t *testing.T) {
	lon := -3.7038

	assert.False(t, AddressInput{}.HasCoordinates())
	assert.False(t, AddressInput{Longitude: &lon}.HasCoordinates())
}
