package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodwatch/foodwatch-api/schema"
)

func casesFor(id int64, n int) []schema.Case {
	cases := make([]schema.Case, 0, n)
	for i := 0; i < n; i++ {
		cases = append(cases, schema.Case{EstablishmentID: int64Ptr(id)})
	}
	return cases
}

func TestBuildMarkers(t *testing.T) {
	establishments := []schema.Establishment{
		{ID: 1, Name: "six", Latitude: floatPtr(30.1), Longitude: floatPtr(-97.7)},
		{ID: 2, Name: "seven", Latitude: floatPtr(30.2), Longitude: floatPtr(-97.8)},
		{ID: 3, Name: "none", Latitude: floatPtr(30.3), Longitude: floatPtr(-97.9)},
		{ID: 4, Name: "unlocated"},
		{ID: 5, Name: "half", Latitude: floatPtr(30.3)},
	}

	cases := casesFor(1, 6)
	cases = append(cases, casesFor(2, 7)...)
	cases = append(cases, casesFor(4, 3)...)
	cases = append(cases, casesFor(5, 3)...)
	cases = append(cases, schema.Case{})

	markers := BuildMarkers(establishments, cases)
	if assert.Len(t, markers, 2) {
		assert.Equal(t, int64(1), markers[0].EstablishmentID)
		assert.Equal(t, 6, markers[0].CaseCount)
		assert.Equal(t, TierLow, markers[0].Tier)
		assert.Equal(t, ColorLow, markers[0].Color)
		assert.Equal(t, schema.Location{Latitude: 30.1, Longitude: -97.7}, markers[0].Location)

		assert.Equal(t, int64(2), markers[1].EstablishmentID)
		assert.Equal(t, 7, markers[1].CaseCount)
		assert.Equal(t, TierHigh, markers[1].Tier)
		assert.Equal(t, ColorHigh, markers[1].Color)
	}
}

func TestTierOf(t *testing.T) {
	assert.Equal(t, TierLow, TierOf(1))
	assert.Equal(t, TierLow, TierOf(6))
	assert.Equal(t, TierHigh, TierOf(7))
	assert.Equal(t, TierHigh, TierOf(40))
}
