package api

import (
	"github.com/foodwatch/foodwatch-api/dashboard"
	"github.com/foodwatch/foodwatch-api/external/analysis"
	"github.com/foodwatch/foodwatch-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1011: "cannot parse request",

		1100: "failed to fetch records",
		1101: dashboard.ErrInvalidSort.Error(),
		1102: dashboard.ErrInvalidOrder.Error(),
		1103: store.ErrInvalidLimit.Error(),
		1104: dashboard.ErrUnknownPage.Error(),

		1200: analysis.ErrAnalysisInProgress.Error(),
		1201: analysis.ErrConnectivity.Error(),
		1202: "analysis failed",

		1300: "failed to export cases",
	}

	errorInternalServer = errorJSON(999)

	errorCannotParseRequest = errorJSON(1011)

	errorFetchRecords     = errorJSON(1100)
	errorInvalidSortField = errorJSON(1101)
	errorInvalidSortOrder = errorJSON(1102)
	errorInvalidLimit     = errorJSON(1103)
	errorUnknownPage      = errorJSON(1104)

	errorAnalysisInProgress   = errorJSON(1200)
	errorAnalysisConnectivity = errorJSON(1201)
	errorAnalysisFailed       = errorJSON(1202)

	errorExportCases = errorJSON(1300)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
