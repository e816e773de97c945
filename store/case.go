package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/foodwatch/foodwatch-api/schema"
)

// ListCases returns cases reported since q.Since, ordered by report_date, with
// their establishment inlined
func (s *FoodSafetyStore) ListCases(ctx context.Context, q Query) ([]schema.Case, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cases := make([]schema.Case, 0)
	if err := scoped(s.ormDB, "report_date", q).Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	ids := make([]*int64, 0, len(cases))
	for _, c := range cases {
		ids = append(ids, c.EstablishmentID)
	}

	summaries, err := s.establishmentSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range cases {
		if id := cases[i].EstablishmentID; id != nil {
			cases[i].Establishment = summaries[*id]
		}
	}

	log.WithField("prefix", storeLogPrefix).Debugf("list cases since %s: %d", q.Since, len(cases))
	return cases, nil
}

func (s *FoodSafetyStore) CreateCases(ctx context.Context, cases []schema.Case) error {
	return s.createAll(ctx, len(cases), func(i int) interface{} {
		return &cases[i]
	})
}
