package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNormalizedKey_Deterministic(t *testing.T) {
	addr := Address{
		Street:      "123 Main St",
		City:        "Springfield",
		State:       "IL",
		PostalCode:  "62704",
		CountryCode: "US",
	}

	first := addr.ComputeNormalizedKey()
	second := addr.ComputeNormalizedKey()

	assert.Equal(t, first, second)
	assert.Len(t, first, 40) // SHA-1 hex
}

func TestComputeNormalizedKey_CaseAndWhitespaceInsensitive(t *testing.T) {
	a := Address{
		Street:      "123 Main St",
		City:        "Springfield",
		State:       "IL",
		PostalCode:  "62704",
		CountryCode: "US",
	}
	b := Address{
		Street:      "  123 MAIN ST ",
		City:        "springfield",
		State:       " il",
		PostalCode:  "62704 ",
		CountryCode: "us",
	}

	assert.Equal(t, a.ComputeNormalizedKey(), b.ComputeNormalizedKey())
}

func TestComputeNormalizedKey_EmptyFieldsDropped(t *testing.T) {
	withEmpties := Address{
		Street:      "123 Main St",
		Unit:        "",
		Block:       "   ",
		City:        "Springfield",
		CountryCode: "US",
	}
	withoutEmpties := Address{
		Street:      "123 Main St",
		City:        "Springfield",
		CountryCode: "US",
	}

	assert.Equal(t, withoutEmpties.ComputeNormalizedKey(), withEmpties.ComputeNormalizedKey())
}

func TestComputeNormalizedKey_DifferentAddressesDiffer(t *testing.T) {
	a := Address{Street: "123 Main St", City: "Springfield", CountryCode: "US"}
	b := Address{Street: "124 Main St", City: "Springfield", CountryCode: "US"}

	assert.NotEqual(t, a.ComputeNormalizedKey(), b.ComputeNormalizedKey())
}

func TestComputeNormalizedKey_SynonymInputsConverge(t *testing.T) {
	// Address A uses "zip", address B uses "postcode"; both must normalize
	// to the same canonical values and therefore the same key.
	a := AddressInput{
		Street:  "123 Main St",
		City:    "Springfield",
		State:   "IL",
		Zip:     "62704",
		Country: "USA",
	}
	b := AddressInput{
		Street:   "123 Main St",
		City:     "Springfield",
		State:    "IL",
		Postcode: "62704",
		Country:  "USA",
	}

	addrA := a.Normalize()
	addrB := b.Normalize()

	require.Equal(t, "US", addrA.CountryCode)
	assert.Equal(t, addrA.ComputeNormalizedKey(), addrB.ComputeNormalizedKey())
}

func TestComputeNormalizedKey_FloorNotPartOfKey(t *testing.T) {
	// The floor is stored but deliberately excluded from the key fields;
	// two units on different floors with the same unit label would be the
	// same listing submitted twice, not two addresses.
	a := Address{Street: "1 Plaza Mayor", Unit: "A", Floor: "2", City: "Madrid", CountryCode: "ES"}
	b := Address{Street: "1 Plaza Mayor", Unit: "A", Floor: "3", City: "Madrid", CountryCode: "ES"}

	assert.Equal(t, a.ComputeNormalizedKey(), b.ComputeNormalizedKey())
}
