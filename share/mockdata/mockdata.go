// Package mockdata generates synthetic establishments, cases and alerts for
// local development and demos.
package mockdata

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/foodwatch/foodwatch-api/schema"
)

const (
	AlertTypeOutbreak   = "OUTBREAK"
	AlertTypeSevereCase = "SEVERE_CASE"

	outbreakChance   = 0.1
	severeCaseChance = 0.05
	coordinateJitter = 0.1
)

type chain struct {
	Name  string
	Foods []string
}

type city struct {
	Name      string
	State     string
	Latitude  float64
	Longitude float64
	ZipPrefix string
}

var chains = []chain{
	{"McDonald's", []string{"Big Mac", "Quarter Pounder", "Chicken McNuggets", "French Fries", "McChicken", "Filet-O-Fish", "Apple Pie", "McFlurry"}},
	{"Subway", []string{"Italian BMT", "Tuna Sub", "Turkey Breast Sub", "Meatball Marinara", "Veggie Delite", "Cold Cut Combo", "Sweet Onion Chicken Teriyaki"}},
	{"Chipotle", []string{"Burrito Bowl", "Chicken Burrito", "Steak Burrito", "Carnitas Bowl", "Guacamole", "Chicken Tacos", "Rice and Beans", "Salad Bowl"}},
	{"Burger King", []string{"Whopper", "Chicken Sandwich", "French Fries", "Onion Rings", "Chicken Fries", "Hamburger", "Cheeseburger"}},
	{"Wendy's", []string{"Dave's Single", "Baconator", "Chicken Nuggets", "French Fries", "Frosty", "Chicken Sandwich", "Salad"}},
	{"Taco Bell", []string{"Crunchy Taco", "Burrito Supreme", "Quesadilla", "Nachos", "Mexican Pizza", "Crunchwrap Supreme", "Bean Burrito"}},
}

var symptoms = []string{
	"nausea", "vomiting", "diarrhea", "abdominal pain", "fever",
	"headache", "muscle aches", "fatigue", "dehydration",
}

var cities = []city{
	{"New York", "NY", 40.7128, -74.0060, "100"},
	{"Los Angeles", "CA", 34.0522, -118.2437, "900"},
	{"Chicago", "IL", 41.8781, -87.6298, "606"},
	{"Houston", "TX", 29.7604, -95.3698, "770"},
	{"Phoenix", "AZ", 33.4484, -112.0740, "850"},
}

var (
	streetNames = []string{"Main", "Market", "Commercial", "Broadway", "Washington", "Park"}
	streetTypes = []string{"St", "Ave", "Blvd", "Rd", "Pkwy", "Dr"}

	regularStatuses = []string{schema.CaseStatusSuspected, schema.CaseStatusConfirmed, schema.CaseStatusResolved}
)

// Generator produces a reproducible data set for a given seed.
type Generator struct {
	rand  *rand.Rand
	start time.Time
	days  int
}

// New returns a generator covering days days starting at start.
func New(seed int64, start time.Time, days int) *Generator {
	return &Generator{
		rand:  rand.New(rand.NewSource(seed)),
		start: start,
		days:  days,
	}
}

// Establishments returns n chain restaurants spread over the known cities.
// IDs are left for the database to assign.
func (g *Generator) Establishments(n int) []schema.Establishment {
	result := make([]schema.Establishment, 0, n)
	for i := 0; i < n; i++ {
		ch := chains[g.rand.Intn(len(chains))]
		ct := cities[g.rand.Intn(len(cities))]

		lat := round8(ct.Latitude + g.uniform(-coordinateJitter, coordinateJitter))
		lng := round8(ct.Longitude + g.uniform(-coordinateJitter, coordinateJitter))

		result = append(result, schema.Establishment{
			Name:       ch.Name,
			Address:    g.address(),
			City:       ct.Name,
			State:      ct.State,
			PostalCode: fmt.Sprintf("%s%d", ct.ZipPrefix, 10+g.rand.Intn(90)),
			Latitude:   &lat,
			Longitude:  &lng,
		})
	}
	return result
}

// Incidents generates the daily cases and alerts for establishments, which
// must already carry their IDs. Summer months see more cases, and some days
// start an outbreak at a single establishment lasting 5 to 14 days.
func (g *Generator) Incidents(establishments []schema.Establishment) ([]schema.Case, []schema.Alert) {
	if len(establishments) == 0 {
		return nil, nil
	}

	var cases []schema.Case
	var alerts []schema.Alert

	for day := 0; day < g.days; day++ {
		current := g.start.AddDate(0, 0, day)
		base := g.baseCases(current)

		if g.rand.Float64() < outbreakChance {
			c, a := g.outbreak(current, base, g.pick(establishments))
			cases = append(cases, c...)
			alerts = append(alerts, a)
		}

		for i := 0; i < base; i++ {
			est := g.pick(establishments)
			foods := g.sample(foodsOf(est.Name), 1+g.rand.Intn(2))

			cases = append(cases, schema.Case{
				EstablishmentID: lo.ToPtr(est.ID),
				ReportDate:      current,
				OnsetDate:       g.onset(current),
				Symptoms:        g.sample(symptoms, 2+g.rand.Intn(3)),
				FoodsConsumed:   foods,
				PatientCount:    lo.ToPtr(1 + g.rand.Intn(3)),
				Status:          regularStatuses[g.rand.Intn(len(regularStatuses))],
			})

			if g.rand.Float64() < severeCaseChance {
				alerts = append(alerts, schema.Alert{
					EstablishmentID: lo.ToPtr(est.ID),
					AlertType:       AlertTypeSevereCase,
					Severity:        strings.ToUpper(schema.SeverityHigh),
					CaseCount:       1,
					Details:         fmt.Sprintf("Severe reaction reported to %s", foods[0]),
				})
			}
		}
	}

	return cases, alerts
}

func (g *Generator) outbreak(start time.Time, base int, est schema.Establishment) ([]schema.Case, schema.Alert) {
	duration := 5 + g.rand.Intn(10)
	foods := g.sample(foodsOf(est.Name), 1+g.rand.Intn(2))

	cases := make([]schema.Case, 0, duration)
	for i := 0; i < duration; i++ {
		date := start.AddDate(0, 0, i)
		// may come out zero or negative on a quiet day, readers skip those
		patients := int(g.rand.NormFloat64()*float64(base)/2 + float64(base*2))

		cases = append(cases, schema.Case{
			EstablishmentID: lo.ToPtr(est.ID),
			ReportDate:      date,
			OnsetDate:       g.onset(date),
			Symptoms:        g.sample(symptoms, 3+g.rand.Intn(3)),
			FoodsConsumed:   foods,
			PatientCount:    lo.ToPtr(patients),
			Status:          schema.CaseStatusConfirmed,
		})
	}

	alert := schema.Alert{
		EstablishmentID: lo.ToPtr(est.ID),
		AlertType:       AlertTypeOutbreak,
		Severity:        strings.ToUpper(schema.SeverityHigh),
		CaseCount:       base * duration,
		Details:         fmt.Sprintf("Multiple cases linked to %s", foods[0]),
	}
	return cases, alert
}

func (g *Generator) baseCases(day time.Time) int {
	multiplier := 1.0
	switch day.Month() {
	case time.June, time.July, time.August:
		multiplier = 1.5
	}

	n := int((g.rand.NormFloat64()*2 + 5) * multiplier)
	if n < 0 {
		return 0
	}
	return n
}

func (g *Generator) onset(report time.Time) *time.Time {
	t := report.AddDate(0, 0, -(1 + g.rand.Intn(3)))
	return &t
}

func (g *Generator) address() string {
	return fmt.Sprintf("%d %s %s",
		1+g.rand.Intn(9999),
		streetNames[g.rand.Intn(len(streetNames))],
		streetTypes[g.rand.Intn(len(streetTypes))],
	)
}

func (g *Generator) pick(establishments []schema.Establishment) schema.Establishment {
	return establishments[g.rand.Intn(len(establishments))]
}

// sample returns k distinct items of pool in random order
func (g *Generator) sample(pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}

	result := make([]string, 0, k)
	for _, i := range g.rand.Perm(len(pool))[:k] {
		result = append(result, pool[i])
	}
	return result
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rand.Float64()*(max-min)
}

func foodsOf(name string) []string {
	ch, ok := lo.Find(chains, func(c chain) bool {
		return c.Name == name
	})
	if !ok {
		return []string{"Unknown"}
	}
	return ch.Foods
}

func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}
