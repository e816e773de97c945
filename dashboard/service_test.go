package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/foodwatch/foodwatch-api/aggregate"
	"github.com/foodwatch/foodwatch-api/api/mocks"
	"github.com/foodwatch/foodwatch-api/schema"
	"github.com/foodwatch/foodwatch-api/store"
)

func intPtr(i int) *int {
	return &i
}

func int64Ptr(i int64) *int64 {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

type ServiceTestSuite struct {
	suite.Suite
	ctl   *gomock.Controller
	store *mocks.MockFoodSafetyCore
	svc   *Service

	now   time.Time
	start time.Time

	establishments []schema.Establishment
	cases          []schema.Case
	alerts         []schema.Alert
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctl = gomock.NewController(s.T())
	s.store = mocks.NewMockFoodSafetyCore(s.ctl)

	s.now = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	s.start = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	s.svc = NewService(s.store, WithClock(func() time.Time { return s.now }), WithRecentLimits(2, 0))

	taco := schema.Establishment{ID: 1, Name: "Taco Palace", City: "Austin", State: "TX", Latitude: floatPtr(30.2), Longitude: floatPtr(-97.7)}
	burger := schema.Establishment{ID: 2, Name: "Burger Hut", City: "Dallas", State: "TX"}
	s.establishments = []schema.Establishment{burger, taco}

	s.cases = []schema.Case{
		{ID: 3, EstablishmentID: int64Ptr(1), Establishment: taco.Summary(), ReportDate: time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC),
			Symptoms: []string{"fever", "nausea"}, FoodsConsumed: []string{"tacos"}, PatientCount: intPtr(2), Status: "active"},
		{ID: 2, EstablishmentID: int64Ptr(2), Establishment: burger.Summary(), ReportDate: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
			Symptoms: []string{"cramps"}, FoodsConsumed: []string{"burger"}, PatientCount: intPtr(4), Status: "resolved"},
		{ID: 1, EstablishmentID: int64Ptr(1), Establishment: taco.Summary(), ReportDate: time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC),
			Symptoms: []string{"fever"}, FoodsConsumed: []string{"tacos", "salsa"}, PatientCount: intPtr(1), Status: "active"},
	}

	s.alerts = []schema.Alert{
		{ID: 2, EstablishmentID: int64Ptr(1), Establishment: taco.Summary(), AlertType: "OUTBREAK", Severity: "high", CaseCount: 2},
		{ID: 1, AlertType: "SEVERE_CASE", Severity: "medium", CaseCount: 1},
	}
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctl.Finish()
}

func (s *ServiceTestSuite) TestOverview() {
	s.store.EXPECT().ListAlerts(gomock.Any(), store.Query{Since: s.start, Limit: 5, Severity: schema.SeverityHigh}).
		Return(s.alerts[:1], nil).Times(1)
	s.store.EXPECT().ListAlerts(gomock.Any(), store.Query{Since: s.start}).Return(s.alerts, nil).Times(1)
	s.store.EXPECT().ListCases(gomock.Any(), store.Query{Since: s.start}).Return(s.cases, nil).Times(1)
	s.store.EXPECT().ListEstablishments(gomock.Any(), store.EstablishmentQuery{}).Return(s.establishments, nil).Times(1)

	view, err := s.svc.Overview(context.Background(), Params{})
	s.Require().NoError(err)

	s.Equal("7d", view.Range.Token)
	s.Equal(OverviewStats{TotalPatients: 7, ActivePatients: 3, TotalAlerts: 2, HighAlerts: 1, Establishments: 2}, view.Stats)
	s.Len(view.RecentAlerts, 1)
	s.Equal([]int64{3, 2}, []int64{view.RecentCases[0].ID, view.RecentCases[1].ID})
	s.Equal([]aggregate.Bucket{{Label: "cramps", Total: 4}, {Label: "fever", Total: 3}}, view.TopSymptoms)
	s.Equal([]aggregate.Bucket{{Label: "high", Total: 1}, {Label: "medium", Total: 1}}, view.Severity)
	s.Equal([]aggregate.Bucket{{Label: "burger", Total: 4}, {Label: "tacos", Total: 3}, {Label: "salsa", Total: 1}}, view.Foods)
	s.Equal(100.0, view.TrendPercent)

	if diff := cmp.Diff([]aggregate.Point{
		{Date: "2024-01-04", Cases: 1},
		{Date: "2024-01-05", Cases: 4},
		{Date: "2024-01-09", Cases: 2},
	}, view.Daily); diff != "" {
		s.Fail("daily series mismatch", diff)
	}
}

func (s *ServiceTestSuite) TestOverviewStoreError() {
	s.store.EXPECT().ListAlerts(gomock.Any(), gomock.Any()).Return(s.alerts, nil).AnyTimes()
	s.store.EXPECT().ListEstablishments(gomock.Any(), gomock.Any()).Return(s.establishments, nil).AnyTimes()
	s.store.EXPECT().ListCases(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)

	view, err := s.svc.Overview(context.Background(), Params{Range: "30d"})
	s.EqualError(err, "connection refused")
	s.Nil(view)
}

func (s *ServiceTestSuite) TestAlerts() {
	s.store.EXPECT().ListAlerts(gomock.Any(), store.Query{Since: s.start}).Return(s.alerts, nil).Times(1)

	view, err := s.svc.Alerts(context.Background(), Params{Search: "taco"})
	s.Require().NoError(err)
	s.Len(view.Alerts, 1)
	s.Equal(int64(2), view.Alerts[0].ID)
	s.Equal(aggregate.AlertStats{Total: 2, High: 1, Medium: 1}, view.Stats)
}

func (s *ServiceTestSuite) TestCases() {
	s.store.EXPECT().ListCases(gomock.Any(), store.Query{Since: s.start}).Return(s.cases, nil).Times(1)

	view, err := s.svc.Cases(context.Background(), Params{Category: "active"})
	s.Require().NoError(err)
	s.Len(view.Cases, 2)
	s.Equal(aggregate.CaseStats{TotalCases: 3, TotalPatients: 7, ActivePatients: 3}, view.Stats)
	s.Equal([]aggregate.Bucket{{Label: "cramps", Total: 4}, {Label: "fever", Total: 3}, {Label: "nausea", Total: 2}}, view.Symptoms)
	s.Equal([]aggregate.Point{{Date: "2024-01-04", Cases: 1}, {Date: "2024-01-05", Cases: 4}, {Date: "2024-01-09", Cases: 2}}, view.Daily)
}

func (s *ServiceTestSuite) TestCasesFilterKeepsAggregates() {
	s.store.EXPECT().ListCases(gomock.Any(), gomock.Any()).Return(s.cases, nil).Times(2)

	all, err := s.svc.Cases(context.Background(), Params{})
	s.Require().NoError(err)

	resolved, err := s.svc.Cases(context.Background(), Params{Category: "resolved", Search: "burger"})
	s.Require().NoError(err)

	s.Require().Len(resolved.Cases, 1)
	s.Equal(int64(2), resolved.Cases[0].ID)
	s.Len(all.Cases, 3)

	if diff := cmp.Diff(all.Daily, resolved.Daily); diff != "" {
		s.Fail("daily series changed by the filter", diff)
	}
	s.Equal(all.Symptoms, resolved.Symptoms)
	s.Equal(all.Stats, resolved.Stats)
}

func (s *ServiceTestSuite) TestTrends() {
	ascending := []schema.Case{s.cases[2], s.cases[1], s.cases[0]}
	s.store.EXPECT().ListCases(gomock.Any(), store.Query{Since: s.start, Ascending: true}).Return(ascending, nil).Times(1)

	view, err := s.svc.Trends(context.Background(), Params{})
	s.Require().NoError(err)
	s.Len(view.Daily, 3)
	s.Equal(2.5, *view.Daily[1].MovingAverage)
	s.Equal([]aggregate.Point{{Date: "2023-12-31", Cases: 5}, {Date: "2024-01-07", Cases: 2}}, view.Weekly)
	s.Equal([]aggregate.Bucket{{Label: "Dallas", Total: 4}, {Label: "Austin", Total: 3}}, view.TopCities)
	s.Equal(7, view.TotalPatients)
}

func (s *ServiceTestSuite) TestLocations() {
	s.store.EXPECT().ListEstablishments(gomock.Any(), store.EstablishmentQuery{}).Return(s.establishments, nil).Times(1)

	view, err := s.svc.Locations(context.Background(), Params{Sort: "name", Order: "desc"})
	s.Require().NoError(err)
	s.Equal("Taco Palace", view.Establishments[0].Name)
	s.Equal(aggregate.LocationStats{Total: 2, WithLocation: 1, DistinctStates: 1, DistinctCities: 2}, view.Stats)
	s.Equal("Burger Hut", s.establishments[0].Name, "fetched set must not be reordered")
}

func (s *ServiceTestSuite) TestLocationsBadControls() {
	_, err := s.svc.Locations(context.Background(), Params{Sort: "city"})
	s.Equal(ErrInvalidSort, err)
	s.True(IsBadRequest(err))

	_, err = s.svc.Locations(context.Background(), Params{Order: "sideways"})
	s.Equal(ErrInvalidOrder, err)
}

func (s *ServiceTestSuite) TestMap() {
	s.store.EXPECT().ListEstablishments(gomock.Any(), store.EstablishmentQuery{}).Return(s.establishments, nil).Times(1)
	s.store.EXPECT().ListCases(gomock.Any(), store.Query{Since: s.start}).Return(s.cases, nil).Times(1)

	view, err := s.svc.Map(context.Background(), Params{})
	s.Require().NoError(err)
	s.Require().Len(view.Markers, 1)
	s.Equal(int64(1), view.Markers[0].EstablishmentID)
	s.Equal(2, view.Markers[0].CaseCount)
	s.Equal(aggregate.TierLow, view.Markers[0].Tier)
	s.Equal(0, view.HighTiers)
}

func (s *ServiceTestSuite) TestViewUnknownPage() {
	_, err := s.svc.View(context.Background(), "reports", Params{})
	s.Equal(ErrUnknownPage, err)
}

func (s *ServiceTestSuite) TestViewDispatch() {
	s.store.EXPECT().ListAlerts(gomock.Any(), gomock.Any()).Return(s.alerts, nil).Times(1)

	view, err := s.svc.View(context.Background(), " Alerts ", Params{})
	s.Require().NoError(err)
	s.IsType(&AlertsView{}, view)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func TestTables(t *testing.T) {
	tables, err := Tables(PageLocations)
	assert.NoError(t, err)
	assert.Equal(t, []string{schema.EstablishmentTable}, tables)

	_, err = Tables("reports")
	assert.Equal(t, ErrUnknownPage, err)
}
