package aggregate

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/foodwatch/foodwatch-api/schema"
)

// ChangeRate is the percentage change from old to new. A change from zero is
// reported as 100, or 0 when both are zero.
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return float64(0)
		} else {
			return float64(100)
		}
	}

	return (new - old) / old * 100
}

// TrendPercent compares the last point of an ascending series with the first
// one, rounded to 2 decimals.
func TrendPercent(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	rate := ChangeRate(float64(points[len(points)-1].Cases), float64(points[0].Cases))
	return math.Round(rate*100) / 100
}

type CaseStats struct {
	TotalCases     int `json:"total_cases"`
	TotalPatients  int `json:"total_patients"`
	ActivePatients int `json:"active_patients"`
}

func SummarizeCases(cases []schema.Case, policy PatientCountPolicy) CaseStats {
	active := lo.Filter(cases, func(c schema.Case, _ int) bool {
		return strings.EqualFold(c.Status, schema.CaseStatusActive)
	})

	return CaseStats{
		TotalCases:     len(cases),
		TotalPatients:  policy.TotalPatients(cases),
		ActivePatients: policy.TotalPatients(active),
	}
}

type AlertStats struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// SummarizeAlerts counts alerts per severity. Critical alerts count as high.
func SummarizeAlerts(alerts []schema.Alert) AlertStats {
	stats := AlertStats{Total: len(alerts)}
	for _, a := range alerts {
		switch strings.ToLower(a.Severity) {
		case schema.SeverityCritical, schema.SeverityHigh:
			stats.High++
		case schema.SeverityMedium:
			stats.Medium++
		case schema.SeverityLow:
			stats.Low++
		}
	}
	return stats
}

type LocationStats struct {
	Total          int `json:"total"`
	WithLocation   int `json:"with_location"`
	DistinctStates int `json:"distinct_states"`
	DistinctCities int `json:"distinct_cities"`
}

func SummarizeEstablishments(establishments []schema.Establishment) LocationStats {
	located := lo.CountBy(establishments, func(e schema.Establishment) bool {
		_, ok := e.Location()
		return ok
	})

	states := lo.Uniq(lo.FilterMap(establishments, func(e schema.Establishment, _ int) (string, bool) {
		return strings.ToUpper(e.State), e.State != ""
	}))
	cities := lo.Uniq(lo.FilterMap(establishments, func(e schema.Establishment, _ int) (string, bool) {
		return strings.ToLower(e.City), e.City != ""
	}))

	return LocationStats{
		Total:          len(establishments),
		WithLocation:   located,
		DistinctStates: len(states),
		DistinctCities: len(cities),
	}
}
