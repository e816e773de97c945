package store

import (
	"context"
	"errors"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/foodwatch/foodwatch-api/schema"
)

const storeLogPrefix = "store"

var (
	ErrInvalidLimit = errors.New("limit must not be negative")
)

// FoodSafetyCore is the read side of the surveillance datastore plus the
// inserts used to seed it
type FoodSafetyCore interface {
	Ping() error

	// Fetch
	ListAlerts(ctx context.Context, q Query) ([]schema.Alert, error)
	ListCases(ctx context.Context, q Query) ([]schema.Case, error)
	ListEstablishments(ctx context.Context, q EstablishmentQuery) ([]schema.Establishment, error)

	// Seed
	CreateEstablishments(ctx context.Context, establishments []schema.Establishment) error
	CreateCases(ctx context.Context, cases []schema.Case) error
	CreateAlerts(ctx context.Context, alerts []schema.Alert) error

	Close() error
}

// Query selects records whose date field is not before Since.
type Query struct {
	Since     time.Time
	Ascending bool
	Limit     int
	// Severity only applies to alerts
	Severity string
}

func (q Query) validate() error {
	if q.Limit < 0 {
		return ErrInvalidLimit
	}
	return nil
}

type EstablishmentQuery struct {
	Since      time.Time
	Descending bool
}

// FoodSafetyStore is an implementation of FoodSafetyCore
type FoodSafetyStore struct {
	ormDB *gorm.DB
}

func NewFoodSafetyStore(ormDB *gorm.DB) *FoodSafetyStore {
	return &FoodSafetyStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *FoodSafetyStore) Ping() error {
	return s.ormDB.DB().Ping()
}

func (s *FoodSafetyStore) Close() error {
	return s.ormDB.Close()
}

// scoped applies the lower bound, ordering and limit of q on field
func scoped(db *gorm.DB, field string, q Query) *gorm.DB {
	if !q.Since.IsZero() {
		db = db.Where(field+" >= ?", q.Since)
	}

	direction := "desc"
	if q.Ascending {
		direction = "asc"
	}
	db = db.Order(field + " " + direction).Order("id " + direction)

	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	return db
}
