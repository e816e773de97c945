package aggregate

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/foodwatch/foodwatch-api/schema"
)

const CategoryAll = "all"

// Criteria narrows an already fetched record set.
type Criteria struct {
	Search   string
	Category string
}

func (c Criteria) matchAll() bool {
	return strings.TrimSpace(c.Search) == "" && isAllCategory(c.Category)
}

func isAllCategory(category string) bool {
	category = strings.TrimSpace(category)
	return category == "" || strings.EqualFold(category, CategoryAll)
}

// Filter keeps the items whose searchable fields contain the search term and
// whose category equals the requested one, both case-insensitively. A nil
// category function means the record kind has no category.
func Filter[T any](items []T, c Criteria, fields func(T) []string, category func(T) string) []T {
	if c.matchAll() {
		return items
	}

	term := strings.ToLower(strings.TrimSpace(c.Search))
	return lo.Filter(items, func(item T, _ int) bool {
		if category != nil && !isAllCategory(c.Category) &&
			!strings.EqualFold(strings.TrimSpace(category(item)), strings.TrimSpace(c.Category)) {
			return false
		}

		if term == "" {
			return true
		}
		return lo.ContainsBy(fields(item), func(field string) bool {
			return strings.Contains(strings.ToLower(field), term)
		})
	})
}

// FilterAlerts searches alert type, establishment name and details. The
// category is the severity.
func FilterAlerts(alerts []schema.Alert, c Criteria) []schema.Alert {
	return Filter(alerts, c, func(a schema.Alert) []string {
		return []string{a.AlertType, a.EstablishmentName(), a.Details}
	}, func(a schema.Alert) string {
		return a.Severity
	})
}

// FilterCases searches establishment name, symptoms and foods consumed. The
// category is the status.
func FilterCases(cases []schema.Case, c Criteria) []schema.Case {
	return Filter(cases, c, func(cs schema.Case) []string {
		fields := make([]string, 0, 1+len(cs.Symptoms)+len(cs.FoodsConsumed))
		fields = append(fields, cs.EstablishmentName())
		fields = append(fields, cs.Symptoms...)
		return append(fields, cs.FoodsConsumed...)
	}, func(cs schema.Case) string {
		return cs.Status
	})
}

// FilterEstablishments searches name, city, state and address.
func FilterEstablishments(establishments []schema.Establishment, search string) []schema.Establishment {
	return Filter(establishments, Criteria{Search: search}, func(e schema.Establishment) []string {
		return []string{e.Name, e.City, e.State, e.Address}
	}, nil)
}

// SortEstablishments orders establishments by name in place.
func SortEstablishments(establishments []schema.Establishment, descending bool) {
	sort.SliceStable(establishments, func(i, j int) bool {
		a, b := strings.ToLower(establishments[i].Name), strings.ToLower(establishments[j].Name)
		if descending {
			return a > b
		}
		return a < b
	})
}
