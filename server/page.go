package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/landing"
	"github.com/gigglywizard/scanner-backend/types"
)

const PageTemplate = "index.html"

type pageData struct {
	Page    landing.Page
	Address string
	Scan    ScanView
}

func (s *Server) Page(c echo.Context) error {
	ctx := c.Request().Context()
	state, err := s.registry.Scanner(ctx, s.sessionID(c)).State(ctx)
	if err != nil {
		s.logger.Warn("cannot get session state", zap.Error(err))
		state = types.IdleState(0)
	}
	return s.renderPage(c, state.Address(), state)
}

// SubmitScan scans the submitted address and re-renders the page with the
// session's resulting state. An empty address leaves the session untouched.
func (s *Server) SubmitScan(c echo.Context) error {
	ctx := c.Request().Context()
	sc := s.registry.Scanner(ctx, s.sessionID(c))
	address := strings.TrimSpace(c.FormValue("address"))

	if address != "" {
		if _, err := sc.Scan(ctx, address); err != nil && !errors.Is(err, types.ErrStaleScan) && !types.IsScanFailure(err) {
			s.logger.Warn("cannot scan token", zap.String("address", address), zap.Error(err))
		}
	}

	state, err := sc.State(ctx)
	if err != nil {
		s.logger.Warn("cannot get session state", zap.Error(err))
		state = types.IdleState(0)
	}
	return s.renderPage(c, address, state)
}

func (s *Server) renderPage(c echo.Context, address string, state types.ScanState) error {
	return c.Render(http.StatusOK, PageTemplate, pageData{
		Page:    s.page,
		Address: address,
		Scan:    newScanView(s.renderer, state),
	})
}
