// Package server
package server

import (
	"errors"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/api"
	"github.com/gigglywizard/scanner-backend/cfg"
	"github.com/gigglywizard/scanner-backend/types"
)

func (s *Server) Ping(c echo.Context) error {
	return api.OK.SetData(struct {
		Version string `json:"version"`
	}{
		Version: cfg.ServerVersion,
	}).Build(c)
}

func (s *Server) Landing(c echo.Context) error {
	return api.OK.SetData(s.page).Build(c)
}

func (s *Server) Scan(c echo.Context) error {
	ctx := c.Request().Context()
	sc := s.registry.Scanner(ctx, s.sessionID(c))
	address := c.Param("address")

	report, err := sc.Scan(ctx, address)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrEmptyAddress):
			return api.Invalid.Build(c)
		case errors.Is(err, types.ErrStaleScan):
			return api.Superseded.Build(c)
		case types.IsScanFailure(err):
			s.logger.Debug("scan failed", zap.String("address", address), zap.Error(err))
			return api.ScanFailed.Build(c)
		}
		s.logger.Warn("cannot scan token", zap.String("address", address), zap.Error(err))
		return api.InternalServer.Build(c)
	}

	b := s.renderer.Render(address, report)
	return api.OK.SetData(ScanView{
		Status:    types.StatusSucceeded,
		Address:   b.Address,
		Report:    report,
		Score:     &b.Score,
		Rating:    b.Rating,
		Breakdown: &b,
	}).Build(c)
}

func (s *Server) ScanState(c echo.Context) error {
	ctx := c.Request().Context()
	state, err := s.registry.Scanner(ctx, s.sessionID(c)).State(ctx)
	if err != nil {
		s.logger.Warn("cannot get session state", zap.Error(err))
		return api.InternalServer.Build(c)
	}
	return api.OK.SetData(newScanView(s.renderer, state)).Build(c)
}

func (s *Server) ResetScan(c echo.Context) error {
	ctx := c.Request().Context()
	sc := s.registry.Scanner(ctx, s.sessionID(c))
	if err := sc.Reset(ctx); err != nil {
		s.logger.Warn("cannot reset session", zap.Error(err))
		return api.InternalServer.Build(c)
	}
	state, err := sc.State(ctx)
	if err != nil {
		return api.InternalServer.Build(c)
	}
	return api.OK.SetData(newScanView(s.renderer, state)).Build(c)
}

func (s *Server) ScanEvents(c echo.Context) error {
	return s.events.Serve(c, s.sessionID(c))
}
