package mockdata

import (
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodwatch/foodwatch-api/schema"
)

var start = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func withIDs(establishments []schema.Establishment) []schema.Establishment {
	for i := range establishments {
		establishments[i].ID = int64(i + 1)
	}
	return establishments
}

func TestEstablishments(t *testing.T) {
	establishments := New(1, start, 30).Establishments(20)
	require.Len(t, establishments, 20)

	for _, e := range establishments {
		_, ok := e.Location()
		assert.True(t, ok, "establishment without coordinates")
		assert.NotEqual(t, "Unknown", foodsOf(e.Name)[0], "unknown chain %s", e.Name)
		assert.Len(t, e.PostalCode, 5)
		assert.NotEmpty(t, e.Address)
	}
}

func TestIncidents(t *testing.T) {
	g := New(7, start, 60)
	establishments := withIDs(g.Establishments(10))

	cases, alerts := g.Incidents(establishments)
	require.NotEmpty(t, cases)

	end := start.AddDate(0, 0, 60+14)
	for _, c := range cases {
		require.NotNil(t, c.EstablishmentID)
		assert.True(t, *c.EstablishmentID >= 1 && *c.EstablishmentID <= 10)
		assert.False(t, c.ReportDate.Before(start))
		assert.True(t, c.ReportDate.Before(end))
		require.NotNil(t, c.OnsetDate)
		assert.True(t, c.OnsetDate.Before(c.ReportDate))
		assert.NotEmpty(t, c.Symptoms)
		assert.NotEmpty(t, c.FoodsConsumed)
		require.NotNil(t, c.PatientCount)
	}

	for _, a := range alerts {
		assert.Contains(t, []string{AlertTypeOutbreak, AlertTypeSevereCase}, a.AlertType)
		assert.Equal(t, schema.SeverityHigh, strings.ToLower(a.Severity))
		require.NotNil(t, a.EstablishmentID)
	}
}

func TestIncidentsReproducible(t *testing.T) {
	first := New(42, start, 20)
	second := New(42, start, 20)

	c1, a1 := first.Incidents(withIDs(first.Establishments(5)))
	c2, a2 := second.Incidents(withIDs(second.Establishments(5)))

	assert.Equal(t, c1, c2)
	assert.Equal(t, a1, a2)
}

func TestIncidentsWithoutEstablishments(t *testing.T) {
	cases, alerts := New(1, start, 10).Incidents(nil)
	assert.Empty(t, cases)
	assert.Empty(t, alerts)
}

func TestSample(t *testing.T) {
	g := New(3, start, 1)

	got := g.sample(symptoms, 4)
	assert.Len(t, got, 4)
	assert.ElementsMatch(t, got, lo.Uniq(got))

	assert.Len(t, g.sample([]string{"a", "b"}, 5), 2)
}
