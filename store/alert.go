package store

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/foodwatch/foodwatch-api/schema"
)

// ListAlerts returns alerts created since q.Since, ordered by created_at, with
// their establishment inlined
func (s *FoodSafetyStore) ListAlerts(ctx context.Context, q Query) ([]schema.Alert, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db := scoped(s.ormDB, "created_at", q)
	if q.Severity != "" {
		db = db.Where("LOWER(severity) = ?", strings.ToLower(q.Severity))
	}

	alerts := make([]schema.Alert, 0)
	if err := db.Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}

	ids := make([]*int64, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.EstablishmentID)
	}

	summaries, err := s.establishmentSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range alerts {
		if id := alerts[i].EstablishmentID; id != nil {
			alerts[i].Establishment = summaries[*id]
		}
	}

	log.WithField("prefix", storeLogPrefix).Debugf("list alerts since %s: %d", q.Since, len(alerts))
	return alerts, nil
}

func (s *FoodSafetyStore) CreateAlerts(ctx context.Context, alerts []schema.Alert) error {
	return s.createAll(ctx, len(alerts), func(i int) interface{} {
		return &alerts[i]
	})
}
