package schema

import "time"

const AlertTable = "alerts"

// observed alert severities
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Alert is a generated notification summarizing a pattern of cases at an establishment
type Alert struct {
	ID              int64                 `json:"id" gorm:"primary_key"`
	EstablishmentID *int64                `json:"establishment_id" gorm:"index"`
	AlertType       string                `json:"alert_type" gorm:"not null"`
	Severity        string                `json:"severity" gorm:"not null"`
	CaseCount       int                   `json:"case_count" gorm:"not null"`
	Details         string                `json:"details"`
	CreatedAt       time.Time             `json:"created_at" gorm:"index" sql:"default:now()"`
	Establishment   *EstablishmentSummary `json:"establishment,omitempty" gorm:"-"`
}

func (Alert) TableName() string {
	return AlertTable
}

func (a Alert) EstablishmentName() string {
	if a.Establishment == nil {
		return ""
	}
	return a.Establishment.Name
}
