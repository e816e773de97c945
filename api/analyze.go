package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodwatch/foodwatch-api/external/analysis"
	"github.com/foodwatch/foodwatch-api/utils"
)

const alertsPagePath = "/alerts"

type toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// analyze runs the analysis job and waits for its answer. A second request
// while one is running is rejected.
func (s *Server) analyze(c *gin.Context) {
	lang := c.GetHeader("Accept-Language")

	result, err := s.trigger.Run(c.Request.Context())

	var failed *analysis.FailedError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"result": result,
			"toast": toast{
				Title: utils.Localize(lang, "analysis_complete_title", nil, "Analysis Complete"),
				Description: utils.Localize(lang, "analysis_complete", map[string]interface{}{
					"AlertsGenerated": result.AlertsGenerated,
					"TotalCost":       result.Costs.TotalCost,
				}, "Analysis complete"),
			},
			"redirect": alertsPagePath,
		})

	case errors.Is(err, analysis.ErrAnalysisInProgress):
		abortWithEncoding(c, http.StatusConflict, localizedError(errorAnalysisInProgress, lang, "analysis_in_progress"), err)

	case errors.As(err, &failed):
		message := failed.Message
		if message == "" {
			message = utils.Localize(lang, "analysis_failed_default", nil, "An unexpected error occurred")
		}
		abortWithEncoding(c, http.StatusBadGateway, ErrorResponse{
			Code:    errorAnalysisFailed.Code,
			Message: message,
		}, err)

	default:
		captureException(c, err)
		abortWithEncoding(c, http.StatusBadGateway, localizedError(errorAnalysisConnectivity, lang, "analysis_connectivity"), err)
	}
}

func (s *Server) analyzeProgress(c *gin.Context) {
	state := s.trigger.Progress()
	c.JSON(http.StatusOK, gin.H{
		"running":  s.trigger.Running(),
		"visible":  state.Visible,
		"progress": state.Percent,
	})
}

// localizedError replaces the message of an error object with its translation
func localizedError(obj ErrorResponse, lang, messageID string) ErrorResponse {
	obj.Message = utils.Localize(lang, messageID, nil, obj.Message)
	return obj
}
