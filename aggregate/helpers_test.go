package aggregate

import (
	"time"

	"github.com/foodwatch/foodwatch-api/schema"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(i int) *int {
	return &i
}

func int64Ptr(i int64) *int64 {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func newCase(date string, count *int, symptoms ...string) schema.Case {
	return schema.Case{
		ReportDate:   day(date),
		PatientCount: count,
		Symptoms:     symptoms,
	}
}
