package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/foodwatch/foodwatch-api/live"
)

// live upgrades to a websocket that pushes the view of the requested page
// after every relevant change. The session ends with the client or on
// server shutdown.
func (s *Server) live(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already answered the client
		log.WithError(err).Warn("websocket upgrade")
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	stop := context.AfterFunc(s.sessions, cancel)
	defer stop()

	session := live.NewSession(conn, s.hub, s.dashboard)
	session.ErrorMessage = func(err error) string {
		_, obj := viewError(err)
		return obj.Message
	}

	if err := session.Serve(ctx); err != nil {
		log.WithError(err).Debugf("session %s ended", session.ID)
	}
}
