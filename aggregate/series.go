package aggregate

import (
	"sort"
	"time"

	"github.com/foodwatch/foodwatch-api/schema"
)

// Point is one bucket of a case time series. MovingAverage is only set by
// MovingAverage.
type Point struct {
	Date          string   `json:"date"`
	Cases         int      `json:"cases"`
	MovingAverage *float64 `json:"moving_average,omitempty"`
}

// DailySeries sums patients per UTC report day, ascending by day.
func DailySeries(cases []schema.Case, policy PatientCountPolicy) []Point {
	totals := map[string]int{}
	for _, c := range cases {
		n, ok := policy.Count(c)
		if !ok {
			continue
		}
		totals[DayKey(c.ReportDate)] += n
	}

	return sortedPoints(totals)
}

// WeeklySeries folds a daily series into weeks starting on Sunday, ascending
// by week start.
func WeeklySeries(daily []Point) []Point {
	totals := map[string]int{}
	for _, p := range daily {
		day, err := time.Parse(dayLayout, p.Date)
		if err != nil {
			continue
		}
		weekStart := day.AddDate(0, 0, -int(day.Weekday()))
		totals[DayKey(weekStart)] += p.Cases
	}

	return sortedPoints(totals)
}

func sortedPoints(totals map[string]int) []Point {
	points := make([]Point, 0, len(totals))
	for date, cases := range totals {
		points = append(points, Point{Date: date, Cases: cases})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// WithinRange keeps the cases reported inside r, preserving order.
func WithinRange(cases []schema.Case, r Range) []schema.Case {
	result := make([]schema.Case, 0, len(cases))
	for _, c := range cases {
		if r.Contains(c.ReportDate) {
			result = append(result, c)
		}
	}
	return result
}

// SeriesTotal sums the cases of all points.
func SeriesTotal(points []Point) int {
	total := 0
	for _, p := range points {
		total += p.Cases
	}
	return total
}
