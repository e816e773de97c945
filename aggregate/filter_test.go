package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodwatch/foodwatch-api/schema"
)

var filterAlerts = []schema.Alert{
	{ID: 1, AlertType: "OUTBREAK", Severity: "high", Details: "cluster of fever",
		Establishment: &schema.EstablishmentSummary{Name: "Taco Palace"}},
	{ID: 2, AlertType: "SEVERE_CASE", Severity: "Medium", Details: "hospitalised patient"},
	{ID: 3, AlertType: "OUTBREAK", Severity: "low", Details: "nausea reports",
		Establishment: &schema.EstablishmentSummary{Name: "Burger Hut"}},
}

func TestFilterIdentity(t *testing.T) {
	assert.Equal(t, filterAlerts, FilterAlerts(filterAlerts, Criteria{Category: "all"}))
	assert.Equal(t, filterAlerts, FilterAlerts(filterAlerts, Criteria{}))
}

func TestFilterAlerts(t *testing.T) {
	ids := func(alerts []schema.Alert) []int64 {
		result := []int64{}
		for _, a := range alerts {
			result = append(result, a.ID)
		}
		return result
	}

	assert.Equal(t, []int64{1, 3}, ids(FilterAlerts(filterAlerts, Criteria{Search: "outbreak"})))
	assert.Equal(t, []int64{3}, ids(FilterAlerts(filterAlerts, Criteria{Search: "burger"})))
	assert.Equal(t, []int64{2}, ids(FilterAlerts(filterAlerts, Criteria{Category: "medium"})))
	assert.Equal(t, []int64{1}, ids(FilterAlerts(filterAlerts, Criteria{Search: "FEVER", Category: "HIGH"})))
	assert.Empty(t, FilterAlerts(filterAlerts, Criteria{Search: "burger", Category: "high"}))
}

func TestFilterCases(t *testing.T) {
	cases := []schema.Case{
		{ID: 1, Status: "active", Symptoms: []string{"fever"}, FoodsConsumed: []string{"sushi"}},
		{ID: 2, Status: "resolved", Symptoms: []string{"nausea"},
			Establishment: &schema.EstablishmentSummary{Name: "Sushi Bar"}},
		{ID: 3, Status: "active", Symptoms: []string{"cramps"}},
	}

	found := FilterCases(cases, Criteria{Search: "sushi"})
	assert.Len(t, found, 2)
	assert.Equal(t, int64(1), found[0].ID)
	assert.Equal(t, int64(2), found[1].ID)

	found = FilterCases(cases, Criteria{Category: "Active"})
	assert.Len(t, found, 2)
	assert.Equal(t, int64(3), found[1].ID)
}

func TestFilterAndSortEstablishments(t *testing.T) {
	establishments := []schema.Establishment{
		{ID: 1, Name: "burger hut", City: "Austin", State: "TX"},
		{ID: 2, Name: "Applebee", City: "Denver", State: "CO", Address: "1 Main St"},
		{ID: 3, Name: "Curry House", City: "Austin", State: "TX"},
	}

	found := FilterEstablishments(establishments, "austin")
	assert.Len(t, found, 2)
	assert.Len(t, FilterEstablishments(establishments, "main st"), 1)
	assert.Equal(t, establishments, FilterEstablishments(establishments, ""))

	SortEstablishments(establishments, false)
	assert.Equal(t, []int64{2, 1, 3}, []int64{establishments[0].ID, establishments[1].ID, establishments[2].ID})

	SortEstablishments(establishments, true)
	assert.Equal(t, []int64{3, 1, 2}, []int64{establishments[0].ID, establishments[1].ID, establishments[2].ID})
}
