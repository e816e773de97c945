package aggregate

import "github.com/foodwatch/foodwatch-api/schema"

// PatientCountPolicy decides what a case without patient_count contributes.
type PatientCountPolicy int

const (
	// SkipMissing leaves cases without patient_count out of every aggregate
	SkipMissing PatientCountPolicy = 0
	// CountMissingAsOne treats a missing patient_count as a single patient
	CountMissingAsOne PatientCountPolicy = 1
)

// NewPatientCountPolicy converts the configured value. Anything but 1 skips.
func NewPatientCountPolicy(v int) PatientCountPolicy {
	if v == 1 {
		return CountMissingAsOne
	}
	return SkipMissing
}

// Count returns the number of patients a case contributes and whether it
// contributes at all. Cases with a non-positive count never contribute.
func (p PatientCountPolicy) Count(c schema.Case) (int, bool) {
	if c.PatientCount == nil {
		if p == CountMissingAsOne {
			return 1, true
		}
		return 0, false
	}

	if *c.PatientCount <= 0 {
		return 0, false
	}
	return *c.PatientCount, true
}

// TotalPatients sums the contribution of every case.
func (p PatientCountPolicy) TotalPatients(cases []schema.Case) int {
	total := 0
	for _, c := range cases {
		if n, ok := p.Count(c); ok {
			total += n
		}
	}
	return total
}
