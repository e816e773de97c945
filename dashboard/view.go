package dashboard

import (
	"strings"

	"github.com/samber/lo"

	"github.com/foodwatch/foodwatch-api/aggregate"
	"github.com/foodwatch/foodwatch-api/consts"
	"github.com/foodwatch/foodwatch-api/schema"
)

type OverviewStats struct {
	TotalPatients  int `json:"total_patients"`
	ActivePatients int `json:"active_patients"`
	TotalAlerts    int `json:"total_alerts"`
	HighAlerts     int `json:"high_alerts"`
	Establishments int `json:"establishments"`
}

type OverviewView struct {
	Range        aggregate.Range    `json:"range"`
	Stats        OverviewStats      `json:"stats"`
	RecentAlerts []schema.Alert     `json:"recent_alerts"`
	RecentCases  []schema.Case      `json:"recent_cases"`
	Daily        []aggregate.Point  `json:"daily"`
	TopSymptoms  []aggregate.Bucket `json:"top_symptoms"`
	Severity     []aggregate.Bucket `json:"severity"`
	Foods        []aggregate.Bucket `json:"foods"`
	TrendPercent float64            `json:"trend_percent"`
}

type AlertsView struct {
	Range  aggregate.Range      `json:"range"`
	Alerts []schema.Alert       `json:"alerts"`
	Stats  aggregate.AlertStats `json:"stats"`
}

type CasesView struct {
	Range    aggregate.Range     `json:"range"`
	Cases    []schema.Case       `json:"cases"`
	Daily    []aggregate.Point   `json:"daily"`
	Symptoms []aggregate.Bucket  `json:"symptoms"`
	Stats    aggregate.CaseStats `json:"stats"`
}

type TrendsView struct {
	Range         aggregate.Range    `json:"range"`
	Daily         []aggregate.Point  `json:"daily"`
	Weekly        []aggregate.Point  `json:"weekly"`
	TopSymptoms   []aggregate.Bucket `json:"top_symptoms"`
	TopCities     []aggregate.Bucket `json:"top_cities"`
	TotalPatients int                `json:"total_patients"`
}

type LocationsView struct {
	Establishments []schema.Establishment  `json:"establishments"`
	Stats          aggregate.LocationStats `json:"stats"`
}

type MapView struct {
	Range     aggregate.Range    `json:"range"`
	Markers   []aggregate.Marker `json:"markers"`
	HighTiers int                `json:"high_tiers"`
}

type overviewInput struct {
	highAlerts     []schema.Alert
	alerts         []schema.Alert
	cases          []schema.Case
	establishments []schema.Establishment
}

// BuildOverviewView expects cases newest first, the order they are fetched in
// for the recent cases list.
func BuildOverviewView(r aggregate.Range, in overviewInput, policy aggregate.PatientCountPolicy, recentCases int) OverviewView {
	cases := aggregate.WithinRange(in.cases, r)
	daily := aggregate.DailySeries(cases, policy)
	caseStats := aggregate.SummarizeCases(cases, policy)
	alertStats := aggregate.SummarizeAlerts(in.alerts)

	recent := cases
	if recentCases > 0 && len(recent) > recentCases {
		recent = recent[:recentCases]
	}

	return OverviewView{
		Range: r,
		Stats: OverviewStats{
			TotalPatients:  caseStats.TotalPatients,
			ActivePatients: caseStats.ActivePatients,
			TotalAlerts:    alertStats.Total,
			HighAlerts:     alertStats.High,
			Establishments: len(in.establishments),
		},
		RecentAlerts: in.highAlerts,
		RecentCases:  recent,
		Daily:        daily,
		TopSymptoms:  aggregate.Top(aggregate.SymptomHistogram(cases, policy), consts.TOP_SYMPTOMS_DASHBOARD),
		Severity:     aggregate.SeverityDistribution(in.alerts),
		Foods:        aggregate.FoodHistogram(cases, policy),
		TrendPercent: aggregate.TrendPercent(daily),
	}
}

// BuildAlertsView counts severities over every fetched alert and lists the
// ones matching the controls.
func BuildAlertsView(r aggregate.Range, alerts []schema.Alert, p Params) AlertsView {
	return AlertsView{
		Range:  r,
		Alerts: aggregate.FilterAlerts(alerts, p.criteria()),
		Stats:  aggregate.SummarizeAlerts(alerts),
	}
}

// BuildCasesView aggregates every fetched case of the range and lists the
// ones matching the controls.
func BuildCasesView(r aggregate.Range, cases []schema.Case, p Params, policy aggregate.PatientCountPolicy) CasesView {
	cases = aggregate.WithinRange(cases, r)

	return CasesView{
		Range:    r,
		Cases:    aggregate.FilterCases(cases, p.criteria()),
		Daily:    aggregate.DailySeries(cases, policy),
		Symptoms: aggregate.SymptomHistogram(cases, policy),
		Stats:    aggregate.SummarizeCases(cases, policy),
	}
}

func BuildTrendsView(r aggregate.Range, cases []schema.Case, policy aggregate.PatientCountPolicy) TrendsView {
	cases = aggregate.WithinRange(cases, r)
	daily := aggregate.DailySeries(cases, policy)

	return TrendsView{
		Range:         r,
		Daily:         aggregate.MovingAverage(daily, consts.MOVING_AVERAGE_WINDOW),
		Weekly:        aggregate.WeeklySeries(daily),
		TopSymptoms:   aggregate.Top(aggregate.SymptomHistogram(cases, policy), consts.TOP_SYMPTOMS_TRENDS),
		TopCities:     aggregate.Top(aggregate.CityHistogram(cases, policy), consts.TOP_CITIES_TRENDS),
		TotalPatients: aggregate.SeriesTotal(daily),
	}
}

func BuildLocationsView(establishments []schema.Establishment, p Params) (LocationsView, error) {
	descending, err := p.descending()
	if err != nil {
		return LocationsView{}, err
	}

	matched := aggregate.FilterEstablishments(establishments, p.Search)
	// filtering may return the input itself
	sorted := append(make([]schema.Establishment, 0, len(matched)), matched...)
	aggregate.SortEstablishments(sorted, descending)

	return LocationsView{
		Establishments: sorted,
		Stats:          aggregate.SummarizeEstablishments(establishments),
	}, nil
}

func BuildMapView(r aggregate.Range, establishments []schema.Establishment, cases []schema.Case) MapView {
	markers := aggregate.BuildMarkers(establishments, aggregate.WithinRange(cases, r))
	high := lo.CountBy(markers, func(m aggregate.Marker) bool {
		return m.Tier == aggregate.TierHigh
	})

	return MapView{
		Range:     r,
		Markers:   markers,
		HighTiers: high,
	}
}

func normalizePage(page string) string {
	return strings.ToLower(strings.TrimSpace(page))
}
