package aggregate

import (
	"github.com/foodwatch/foodwatch-api/consts"
	"github.com/foodwatch/foodwatch-api/schema"
)

type Tier string

const (
	TierLow  Tier = "low"
	TierHigh Tier = "high"

	ColorLow  = "#f59e0b"
	ColorHigh = "#dc2626"
)

// Color is the marker color of the tier.
func (t Tier) Color() string {
	if t == TierHigh {
		return ColorHigh
	}
	return ColorLow
}

// TierOf classifies a positive case count.
func TierOf(caseCount int) Tier {
	if caseCount >= consts.HIGH_TIER_CASE_COUNT {
		return TierHigh
	}
	return TierLow
}

type Marker struct {
	EstablishmentID int64           `json:"establishment_id"`
	Name            string          `json:"name"`
	Address         string          `json:"address"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	Location        schema.Location `json:"location"`
	CaseCount       int             `json:"case_count"`
	Tier            Tier            `json:"tier"`
	Color           string          `json:"color"`
}

// BuildMarkers emits one marker per located establishment that has at least
// one case. The count is of case records, not patients. Output follows the
// order of establishments.
func BuildMarkers(establishments []schema.Establishment, cases []schema.Case) []Marker {
	counts := map[int64]int{}
	for _, c := range cases {
		if c.EstablishmentID != nil {
			counts[*c.EstablishmentID]++
		}
	}

	markers := make([]Marker, 0)
	for _, e := range establishments {
		location, ok := e.Location()
		if !ok {
			continue
		}

		count := counts[e.ID]
		if count == 0 {
			continue
		}

		tier := TierOf(count)
		markers = append(markers, Marker{
			EstablishmentID: e.ID,
			Name:            e.Name,
			Address:         e.Address,
			City:            e.City,
			State:           e.State,
			Location:        *location,
			CaseCount:       count,
			Tier:            tier,
			Color:           tier.Color(),
		})
	}
	return markers
}
