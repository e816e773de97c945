package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/foodwatch/foodwatch-api/consts"
)

const (
	statusSuccess = "success"
	logPrefix     = "analysis"
)

var (
	// ErrConnectivity wraps every failure to reach the analysis service or to
	// read its answer
	ErrConnectivity = errors.New("failed to connect to analysis server")
)

// Analyzer triggers one run of the analysis job, which writes alerts into the
// store on its own
type Analyzer interface {
	Analyze(ctx context.Context) (*Result, error)
}

type Costs struct {
	TotalCost float64 `json:"total_cost"`
}

type Result struct {
	Status          string `json:"status"`
	AlertsGenerated int    `json:"alerts_generated"`
	Costs           Costs  `json:"costs"`
	Error           string `json:"error,omitempty"`
}

func (r Result) Succeeded() bool {
	return r.Status == statusSuccess
}

// FailedError is returned when the service answered with a non-success status
type FailedError struct {
	Status  string
	Message string
}

func (e *FailedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("analysis failed with status %q", e.Status)
	}
	return fmt.Sprintf("analysis failed with status %q: %s", e.Status, e.Message)
}

type analyzer struct {
	url    string
	client *resty.Client
}

func (a analyzer) Analyze(ctx context.Context) (*Result, error) {
	var result Result
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		ForceContentType("application/json").
		SetResult(&result).
		SetError(&result).
		Post(a.url)
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Error("post analysis request")
		return nil, fmt.Errorf("%w: %s", ErrConnectivity, err)
	}

	log.WithField("prefix", logPrefix).Debugf("analysis response %d: %s", resp.StatusCode(), resp.String())

	if !result.Succeeded() {
		return &result, &FailedError{
			Status:  result.Status,
			Message: result.Error,
		}
	}

	log.WithField("prefix", logPrefix).Infof("analysis generated %d alerts, cost %.2f", result.AlertsGenerated, result.Costs.TotalCost)
	return &result, nil
}

func New(url string, timeout time.Duration) Analyzer {
	u := consts.ANALYSIS_DEFAULT_URL
	if url != "" {
		u = url
	}

	if timeout <= 0 {
		timeout = consts.ANALYSIS_TIMEOUT
	}

	return &analyzer{
		url:    u,
		client: resty.New().SetTimeout(timeout),
	}
}
