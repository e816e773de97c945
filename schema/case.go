package schema

import (
	"time"

	"github.com/lib/pq"
)

const CaseTable = "cases"

// observed case statuses
const (
	CaseStatusActive     = "active"
	CaseStatusConfirmed  = "confirmed"
	CaseStatusSuspected  = "suspected"
	CaseStatusResolved   = "resolved"
	CaseStatusMonitoring = "monitoring"
)

// Case is a reported illness event, possibly covering several patients
type Case struct {
	ID              int64                 `json:"id" gorm:"primary_key"`
	EstablishmentID *int64                `json:"establishment_id" gorm:"index"`
	ReportDate      time.Time             `json:"report_date" gorm:"not null;index"`
	OnsetDate       *time.Time            `json:"onset_date"`
	Symptoms        pq.StringArray        `json:"symptoms" gorm:"type:text[]"`
	FoodsConsumed   pq.StringArray        `json:"foods_consumed" gorm:"type:text[]"`
	PatientCount    *int                  `json:"patient_count"`
	Status          string                `json:"status"`
	CreatedAt       time.Time             `json:"created_at" sql:"default:now()"`
	Establishment   *EstablishmentSummary `json:"establishment,omitempty" gorm:"-"`
}

func (Case) TableName() string {
	return CaseTable
}

// EstablishmentName returns the inlined establishment name or an empty string.
func (c Case) EstablishmentName() string {
	if c.Establishment == nil {
		return ""
	}
	return c.Establishment.Name
}
