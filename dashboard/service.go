package dashboard

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/foodwatch/foodwatch-api/aggregate"
	"github.com/foodwatch/foodwatch-api/consts"
	"github.com/foodwatch/foodwatch-api/schema"
	"github.com/foodwatch/foodwatch-api/store"
)

const dashboardLogPrefix = "dashboard"

// Service fetches the records of a page once and derives its view model
type Service struct {
	store        store.FoodSafetyCore
	policy       aggregate.PatientCountPolicy
	recentCases  int
	recentAlerts int
	now          func() time.Time
}

type Option func(*Service)

func WithPatientCountPolicy(policy aggregate.PatientCountPolicy) Option {
	return func(s *Service) {
		s.policy = policy
	}
}

// WithRecentLimits sets the size of the recent cases and recent high alerts
// lists of the overview. Non-positive values keep the defaults.
func WithRecentLimits(cases, alerts int) Option {
	return func(s *Service) {
		if cases > 0 {
			s.recentCases = cases
		}
		if alerts > 0 {
			s.recentAlerts = alerts
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(s store.FoodSafetyCore, opts ...Option) *Service {
	svc := &Service{
		store:        s,
		policy:       aggregate.NewPatientCountPolicy(consts.MISSING_PATIENT_COUNT),
		recentCases:  consts.RECENT_CASES_LIMIT,
		recentAlerts: consts.RECENT_ALERTS_LIMIT,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *Service) resolveRange(token string) aggregate.Range {
	r, known := aggregate.ResolveRange(token, s.now())
	if !known {
		log.WithField("prefix", dashboardLogPrefix).Warnf("unknown time range %q, start from today", token)
	}
	return r
}

// Overview fetches every record kind of the dashboard concurrently. The first
// failing fetch cancels the others and fails the view.
func (s *Service) Overview(ctx context.Context, p Params) (*OverviewView, error) {
	r := s.resolveRange(p.Range)

	var in overviewInput
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		alerts, err := s.store.ListAlerts(gctx, store.Query{
			Since:    r.Start,
			Limit:    s.recentAlerts,
			Severity: schema.SeverityHigh,
		})
		in.highAlerts = alerts
		return err
	})

	g.Go(func() error {
		alerts, err := s.store.ListAlerts(gctx, store.Query{Since: r.Start})
		in.alerts = alerts
		return err
	})

	g.Go(func() error {
		cases, err := s.store.ListCases(gctx, store.Query{Since: r.Start})
		in.cases = cases
		return err
	})

	g.Go(func() error {
		establishments, err := s.store.ListEstablishments(gctx, store.EstablishmentQuery{})
		in.establishments = establishments
		return err
	})

	if err := g.Wait(); err != nil {
		log.WithField("prefix", dashboardLogPrefix).WithError(err).Error("fetch overview")
		return nil, err
	}

	view := BuildOverviewView(r, in, s.policy, s.recentCases)
	return &view, nil
}

func (s *Service) Alerts(ctx context.Context, p Params) (*AlertsView, error) {
	r := s.resolveRange(p.Range)

	alerts, err := s.store.ListAlerts(ctx, store.Query{Since: r.Start})
	if err != nil {
		return nil, err
	}

	view := BuildAlertsView(r, alerts, p)
	return &view, nil
}

func (s *Service) Cases(ctx context.Context, p Params) (*CasesView, error) {
	r := s.resolveRange(p.Range)

	cases, err := s.store.ListCases(ctx, store.Query{Since: r.Start})
	if err != nil {
		return nil, err
	}

	view := BuildCasesView(r, cases, p, s.policy)
	return &view, nil
}

func (s *Service) Trends(ctx context.Context, p Params) (*TrendsView, error) {
	r := s.resolveRange(p.Range)

	cases, err := s.store.ListCases(ctx, store.Query{Since: r.Start, Ascending: true})
	if err != nil {
		return nil, err
	}

	view := BuildTrendsView(r, cases, s.policy)
	return &view, nil
}

// Locations lists every establishment regardless of the time range.
func (s *Service) Locations(ctx context.Context, p Params) (*LocationsView, error) {
	// reject bad controls before touching the store
	if _, err := p.descending(); err != nil {
		return nil, err
	}

	establishments, err := s.store.ListEstablishments(ctx, store.EstablishmentQuery{})
	if err != nil {
		return nil, err
	}

	view, err := BuildLocationsView(establishments, p)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *Service) Map(ctx context.Context, p Params) (*MapView, error) {
	r := s.resolveRange(p.Range)

	g, gctx := errgroup.WithContext(ctx)

	var establishments []schema.Establishment
	g.Go(func() error {
		var err error
		establishments, err = s.store.ListEstablishments(gctx, store.EstablishmentQuery{})
		return err
	})

	var cases []schema.Case
	g.Go(func() error {
		var err error
		cases, err = s.store.ListCases(gctx, store.Query{Since: r.Start})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := BuildMapView(r, establishments, cases)
	return &view, nil
}

// View builds the view model of a page by name.
func (s *Service) View(ctx context.Context, page string, p Params) (interface{}, error) {
	switch normalizePage(page) {
	case PageDashboard:
		return s.Overview(ctx, p)
	case PageAlerts:
		return s.Alerts(ctx, p)
	case PageCases:
		return s.Cases(ctx, p)
	case PageTrends:
		return s.Trends(ctx, p)
	case PageLocations:
		return s.Locations(ctx, p)
	case PageMap:
		return s.Map(ctx, p)
	default:
		return nil, ErrUnknownPage
	}
}
