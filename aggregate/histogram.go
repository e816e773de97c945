package aggregate

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/foodwatch/foodwatch-api/schema"
)

// Bucket is one label of a histogram with its weighted total.
type Bucket struct {
	Label string `json:"label"`
	Total int    `json:"total"`
}

// histogram accumulates totals and remembers the order labels were first seen
// in, so equal totals keep that order after sorting.
type histogram struct {
	order  []string
	totals map[string]int
}

func newHistogram() *histogram {
	return &histogram{totals: map[string]int{}}
}

func (h *histogram) add(label string, n int) {
	if _, ok := h.totals[label]; !ok {
		h.order = append(h.order, label)
	}
	h.totals[label] += n
}

func (h *histogram) buckets() []Bucket {
	result := lo.Map(h.order, func(label string, _ int) Bucket {
		return Bucket{Label: label, Total: h.totals[label]}
	})

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result
}

// labelHistogram adds each case's patient count to every label returned by
// labels. A case listing a label twice counts for it twice.
func labelHistogram(cases []schema.Case, policy PatientCountPolicy, labels func(schema.Case) []string) []Bucket {
	h := newHistogram()
	for _, c := range cases {
		values := labels(c)
		if len(values) == 0 {
			continue
		}

		n, ok := policy.Count(c)
		if !ok {
			continue
		}

		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				h.add(v, n)
			}
		}
	}
	return h.buckets()
}

// SymptomHistogram answers "how many patients reported symptom X".
func SymptomHistogram(cases []schema.Case, policy PatientCountPolicy) []Bucket {
	return labelHistogram(cases, policy, func(c schema.Case) []string {
		return c.Symptoms
	})
}

// FoodHistogram answers "how many patients consumed food X".
func FoodHistogram(cases []schema.Case, policy PatientCountPolicy) []Bucket {
	return labelHistogram(cases, policy, func(c schema.Case) []string {
		return c.FoodsConsumed
	})
}

// CityHistogram weights the city of each case's establishment by its patient
// count. Cases without an establishment or city are left out.
func CityHistogram(cases []schema.Case, policy PatientCountPolicy) []Bucket {
	return labelHistogram(cases, policy, func(c schema.Case) []string {
		if c.Establishment == nil || c.Establishment.City == "" {
			return nil
		}
		return []string{c.Establishment.City}
	})
}

// SeverityDistribution counts alerts per lower-cased severity.
func SeverityDistribution(alerts []schema.Alert) []Bucket {
	h := newHistogram()
	for _, a := range alerts {
		severity := strings.ToLower(strings.TrimSpace(a.Severity))
		if severity == "" {
			continue
		}
		h.add(severity, 1)
	}
	return h.buckets()
}

// Top returns at most n leading buckets.
func Top(buckets []Bucket, n int) []Bucket {
	if n < 0 || len(buckets) <= n {
		return buckets
	}
	return buckets[:n]
}

// Labels lists the labels of buckets in order.
func Labels(buckets []Bucket) []string {
	return lo.Map(buckets, func(b Bucket, _ int) string {
		return b.Label
	})
}
