// Package api
package api

import (
	"github.com/labstack/echo"
)

// RestServer define all API expose
type RestServer interface {
	// General
	Ping(c echo.Context) error
	Landing(c echo.Context) error

	// Page
	Page(c echo.Context) error
	SubmitScan(c echo.Context) error

	IScan
}

type IScan interface {
	Scan(c echo.Context) error
	ScanState(c echo.Context) error
	ResetScan(c echo.Context) error
	ScanEvents(c echo.Context) error
}
