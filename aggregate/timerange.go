package aggregate

import (
	"strings"
	"time"

	"github.com/foodwatch/foodwatch-api/consts"
)

const dayLayout = "2006-01-02"

// Range is an inclusive window of report timestamps. Start is aligned to a UTC
// calendar day, so comparisons against it are date-only.
type Range struct {
	Token string    `json:"range"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolveRange maps a range token to a window ending at now. An empty token
// resolves to the default range. A token outside of consts.TIME_RANGES counts
// as 0 days and is reported through the second return value.
func ResolveRange(token string, now time.Time) (Range, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		token = consts.DEFAULT_TIME_RANGE
	}

	days, known := consts.TIME_RANGES[token]
	now = now.UTC()

	return Range{
		Token: token,
		Start: truncateDay(now.AddDate(0, 0, -days)),
		End:   now,
	}, known
}

// Contains reports whether t falls inside the window, inclusive on both ends.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey formats the UTC calendar day of t.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}
