package consts

import "time"

const (
	// DEFAULT_TIME_RANGE is used when a request carries no range token
	DEFAULT_TIME_RANGE = "7d"

	// MOVING_AVERAGE_WINDOW is the trailing window of the trends page, in days
	MOVING_AVERAGE_WINDOW = 7

	// HIGH_TIER_CASE_COUNT is the smallest case count rendered as a high tier marker
	HIGH_TIER_CASE_COUNT = 7

	// MISSING_PATIENT_COUNT is what a case without patient_count contributes to
	// aggregates: 0 skips the case, 1 counts it as a single patient.
	MISSING_PATIENT_COUNT = 0

	RECENT_CASES_LIMIT  = 100
	RECENT_ALERTS_LIMIT = 5

	TOP_SYMPTOMS_TRENDS    = 5
	TOP_CITIES_TRENDS      = 10
	TOP_SYMPTOMS_DASHBOARD = 2

	// ANALYSIS_PROGRESS_DURATION drives the cosmetic progress bar of the analyze action
	ANALYSIS_PROGRESS_DURATION = 25 * time.Second
	ANALYSIS_TIMEOUT           = 5 * time.Minute
	ANALYSIS_DEFAULT_URL       = "http://localhost:5000/api/food-safety/analyze"
)

// TIME_RANGES lists the selectable range tokens and their length in days
var TIME_RANGES = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
}
