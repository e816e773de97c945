package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodwatch/foodwatch-api/dashboard"
	"github.com/foodwatch/foodwatch-api/store"
)

// bindParams reads the page controls from the query string. categoryKey names
// the page specific alias of the category filter.
func bindParams(c *gin.Context, categoryKey string) (dashboard.Params, bool) {
	var params dashboard.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return params, false
	}

	if categoryKey != "" {
		if v := c.Query(categoryKey); v != "" {
			params.Category = v
		}
	}
	return params, true
}

// viewError maps a failed view build to its status and error object
func viewError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, dashboard.ErrInvalidSort):
		return http.StatusBadRequest, errorInvalidSortField
	case errors.Is(err, dashboard.ErrInvalidOrder):
		return http.StatusBadRequest, errorInvalidSortOrder
	case errors.Is(err, dashboard.ErrUnknownPage):
		return http.StatusBadRequest, errorUnknownPage
	case errors.Is(err, store.ErrInvalidLimit):
		return http.StatusBadRequest, errorInvalidLimit
	default:
		return http.StatusInternalServerError, errorFetchRecords
	}
}

// abortWithViewError answers a failed view build. Store failures never carry
// partial data.
func abortWithViewError(c *gin.Context, err error) {
	status, obj := viewError(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("build view")
		captureException(c, err)
	}
	abortWithEncoding(c, status, obj, err)
}

func (s *Server) overview(c *gin.Context) {
	params, ok := bindParams(c, "")
	if !ok {
		return
	}

	view, err := s.dashboard.Overview(c.Request.Context(), params)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (s *Server) alerts(c *gin.Context) {
	params, ok := bindParams(c, "severity")
	if !ok {
		return
	}

	view, err := s.dashboard.Alerts(c.Request.Context(), params)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (s *Server) cases(c *gin.Context) {
	params, ok := bindParams(c, "status")
	if !ok {
		return
	}

	view, err := s.dashboard.Cases(c.Request.Context(), params)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (s *Server) trends(c *gin.Context) {
	params, ok := bindParams(c, "")
	if !ok {
		return
	}

	view, err := s.dashboard.Trends(c.Request.Context(), params)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (s *Server) locations(c *gin.Context) {
	params, ok := bindParams(c, "")
	if !ok {
		return
	}

	view, err := s.dashboard.Locations(c.Request.Context(), params)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (s *Server) markers(c *gin.Context) {
	params, ok := bindParams(c, "")
	if !ok {
		return
	}

	view, err := s.dashboard.Map(c.Request.Context(), params)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
