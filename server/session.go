package server

import (
	"net/http"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

const (
	SessionCookie = "wizard_session"
	SessionHeader = "X-Session-ID"
)

// sessionID returns the caller's session, issuing a new one when the request
// carries none. Browsers keep it in a cookie, API clients may echo the header.
func (s *Server) sessionID(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookie); err == nil && s.registry.ValidSessionID(ck.Value) {
		return ck.Value
	}
	if id := c.Request().Header.Get(SessionHeader); s.registry.ValidSessionID(id) {
		c.Response().Header().Set(SessionHeader, id)
		return id
	}

	id := s.registry.NewSessionID()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Response().Header().Set(SessionHeader, id)
	s.logger.Debug("New session", zap.String("session", id))
	return id
}
