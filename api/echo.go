package api

import (
	"strings"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"

	"github.com/gigglywizard/scanner-backend/cfg"
)

type restDefinition struct {
	method      string
	path        string
	fn          func(c echo.Context) error
	middlewares []echo.MiddlewareFunc
}

func bind(gr *echo.Group, srv RestServer) {
	apis := []restDefinition{
		{
			method: echo.GET,
			path:   "/ping",
			fn:     srv.Ping,
		},
		{
			method: echo.GET,
			path:   "/landing",
			fn:     srv.Landing,
		},
	}
	bindScanAPIs(gr, srv)
	for _, api := range apis {
		gr.Add(api.method, api.path, api.fn, api.middlewares...)
	}
}

func bindScanAPIs(gr *echo.Group, srv RestServer) {
	apis := []restDefinition{
		{
			method: echo.GET,
			path:   "/scan",
			fn:     srv.ScanState,
		},
		{
			method: echo.DELETE,
			path:   "/scan",
			fn:     srv.ResetScan,
		},
		{
			// Server-sent events of the session's state changes
			method: echo.GET,
			path:   "/scan/events",
			fn:     srv.ScanEvents,
		},
		{
			method: echo.GET,
			path:   "/scan/:address",
			fn:     srv.Scan,
		},
	}
	for _, api := range apis {
		gr.Add(api.method, api.path, api.fn, api.middlewares...)
	}
}

func bindPages(e *echo.Echo, srv RestServer) {
	e.GET("/", srv.Page)
	e.POST("/scan", srv.SubmitScan)
}

// New wires middlewares, the page renderer and every route onto e.
func New(e *echo.Echo, srv RestServer) *echo.Echo {
	e.HideBanner = true
	e.Renderer = newTemplateRenderer()

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		// event streams must reach the client unbuffered
		Skipper: func(c echo.Context) bool {
			return strings.HasSuffix(c.Request().URL.Path, "/events")
		},
	}))

	bindPages(e, srv)
	v1Gr := e.Group("/api/v1")
	bind(v1Gr, srv)
	return e
}

func Start(e *echo.Echo, srv RestServer, cfg cfg.ScannerConfig) error {
	New(e, srv)
	return e.Start(cfg.Port)
}
