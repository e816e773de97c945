package schema

import "time"

const EstablishmentTable = "establishments"

// Establishment is a venue tracked for outbreak association
type Establishment struct {
	ID         int64     `json:"id" gorm:"primary_key"`
	Name       string    `json:"name" gorm:"not null"`
	Address    string    `json:"address" gorm:"not null"`
	City       string    `json:"city" gorm:"not null;index"`
	State      string    `json:"state" gorm:"not null"`
	PostalCode string    `json:"postal_code" gorm:"not null"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	CreatedAt  time.Time `json:"created_at" sql:"default:now()"`
}

func (Establishment) TableName() string {
	return EstablishmentTable
}

// Location returns the coordinate of the establishment if both parts are present.
func (e Establishment) Location() (*Location, bool) {
	if e.Latitude == nil || e.Longitude == nil {
		return nil, false
	}
	return &Location{Latitude: *e.Latitude, Longitude: *e.Longitude}, true
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EstablishmentSummary is the subset of an establishment inlined into cases and alerts
type EstablishmentSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

func (e Establishment) Summary() *EstablishmentSummary {
	return &EstablishmentSummary{
		ID:    e.ID,
		Name:  e.Name,
		City:  e.City,
		State: e.State,
	}
}
