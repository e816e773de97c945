package dashboard

import (
	"errors"
	"strings"

	"github.com/foodwatch/foodwatch-api/aggregate"
	"github.com/foodwatch/foodwatch-api/schema"
)

const (
	PageDashboard = "dashboard"
	PageAlerts    = "alerts"
	PageCases     = "cases"
	PageTrends    = "trends"
	PageLocations = "locations"
	PageMap       = "map"

	SortByName = "name"
	OrderAsc   = "asc"
	OrderDesc  = "desc"
)

var (
	ErrUnknownPage  = errors.New("unknown page")
	ErrInvalidSort  = errors.New("unsupported sort field")
	ErrInvalidOrder = errors.New("unsupported sort order")
)

// pageTables lists the tables whose changes invalidate a page
var pageTables = map[string][]string{
	PageDashboard: {schema.AlertTable, schema.CaseTable, schema.EstablishmentTable},
	PageAlerts:    {schema.AlertTable, schema.EstablishmentTable},
	PageCases:     {schema.CaseTable, schema.EstablishmentTable},
	PageTrends:    {schema.CaseTable, schema.EstablishmentTable},
	PageLocations: {schema.EstablishmentTable},
	PageMap:       {schema.CaseTable, schema.EstablishmentTable},
}

// Tables returns the tables a page is built from.
func Tables(page string) ([]string, error) {
	tables, ok := pageTables[page]
	if !ok {
		return nil, ErrUnknownPage
	}
	return tables, nil
}

// Params carries the controls of a page. Category is the severity on the
// alerts page and the status on the cases page.
type Params struct {
	Range    string `json:"range" form:"range"`
	Search   string `json:"q" form:"q"`
	Category string `json:"category" form:"category"`
	Sort     string `json:"sort" form:"sort"`
	Order    string `json:"order" form:"order"`
}

func (p Params) criteria() aggregate.Criteria {
	return aggregate.Criteria{
		Search:   p.Search,
		Category: p.Category,
	}
}

// descending validates the sort controls of the locations page
func (p Params) descending() (bool, error) {
	switch strings.ToLower(p.Sort) {
	case "", SortByName:
	default:
		return false, ErrInvalidSort
	}

	switch strings.ToLower(p.Order) {
	case "", OrderAsc:
		return false, nil
	case OrderDesc:
		return true, nil
	default:
		return false, ErrInvalidOrder
	}
}

// IsBadRequest reports whether err was caused by the request controls rather
// than by the store.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrUnknownPage) ||
		errors.Is(err, ErrInvalidSort) ||
		errors.Is(err, ErrInvalidOrder)
}
