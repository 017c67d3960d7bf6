package server

import (
	"encoding/json"

	"github.com/labstack/echo"
	"github.com/r3labs/sse/v2"
	"go.uber.org/zap"

	"github.com/gigglywizard/scanner-backend/render"
	"github.com/gigglywizard/scanner-backend/types"
)

const EventState = "state"

// Events publishes the state changes of each session to its own SSE stream. A
// stream exists only while a client of that session is listening or until the
// session expires.
type Events struct {
	srv      *sse.Server
	renderer *render.Renderer
	logger   *zap.Logger
}

func NewEvents(renderer *render.Renderer, logger *zap.Logger) *Events {
	srv := sse.New()
	srv.AutoStream = false
	srv.AutoReplay = false
	return &Events{
		srv:      srv,
		renderer: renderer,
		logger:   logger.With(zap.String("component", "events")),
	}
}

func (e *Events) OnStateChange(sessionID string, state types.ScanState) {
	if !e.srv.StreamExists(sessionID) {
		return
	}
	data, err := json.Marshal(newScanView(e.renderer, state))
	if err != nil {
		e.logger.Warn("cannot encode state", zap.String("session", sessionID), zap.Error(err))
		return
	}
	e.srv.Publish(sessionID, &sse.Event{
		Event: []byte(EventState),
		Data:  data,
	})
}

func (e *Events) OnSessionClosed(sessionID string) {
	if e.srv.StreamExists(sessionID) {
		e.srv.RemoveStream(sessionID)
	}
}

// Serve streams sessionID's events to the caller until it disconnects.
func (e *Events) Serve(c echo.Context, sessionID string) error {
	if !e.srv.StreamExists(sessionID) {
		e.srv.CreateStream(sessionID)
	}
	req := c.Request()
	q := req.URL.Query()
	q.Set("stream", sessionID)
	req.URL.RawQuery = q.Encode()
	e.srv.ServeHTTP(c.Response(), req)
	return nil
}

func (e *Events) Close() {
	e.srv.Close()
}
