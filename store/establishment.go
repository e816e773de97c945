package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/foodwatch/foodwatch-api/schema"
)

// ListEstablishments returns establishments ordered by name
func (s *FoodSafetyStore) ListEstablishments(ctx context.Context, q EstablishmentQuery) ([]schema.Establishment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db := s.ormDB
	if !q.Since.IsZero() {
		db = db.Where("created_at >= ?", q.Since)
	}

	direction := "asc"
	if q.Descending {
		direction = "desc"
	}

	establishments := make([]schema.Establishment, 0)
	if err := db.Order("name " + direction).Order("id asc").Find(&establishments).Error; err != nil {
		return nil, fmt.Errorf("list establishments: %w", err)
	}

	log.WithField("prefix", storeLogPrefix).Debugf("list establishments: %d", len(establishments))
	return establishments, nil
}

func (s *FoodSafetyStore) CreateEstablishments(ctx context.Context, establishments []schema.Establishment) error {
	return s.createAll(ctx, len(establishments), func(i int) interface{} {
		return &establishments[i]
	})
}

// establishmentSummaries loads the establishments referenced by ids with a
// single IN query. Nil and repeated ids are ignored.
func (s *FoodSafetyStore) establishmentSummaries(ctx context.Context, ids []*int64) (map[int64]*schema.EstablishmentSummary, error) {
	summaries := map[int64]*schema.EstablishmentSummary{}

	seen := map[int64]struct{}{}
	distinct := make([]int64, 0)
	for _, id := range ids {
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		distinct = append(distinct, *id)
	}

	if len(distinct) == 0 {
		return summaries, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var establishments []schema.Establishment
	if err := s.ormDB.Where("id IN (?)", distinct).Find(&establishments).Error; err != nil {
		return nil, fmt.Errorf("inline establishments: %w", err)
	}

	for _, e := range establishments {
		summaries[e.ID] = e.Summary()
	}
	return summaries, nil
}

// createAll inserts n records inside one transaction
func (s *FoodSafetyStore) createAll(ctx context.Context, n int, record func(int) interface{}) error {
	if n == 0 {
		return nil
	}

	tx := s.ormDB.BeginTx(ctx, nil)
	if tx.Error != nil {
		return tx.Error
	}

	for i := 0; i < n; i++ {
		if err := tx.Create(record(i)).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}
