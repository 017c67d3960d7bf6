package server

import (
	"time"

	"github.com/gigglywizard/scanner-backend/render"
	"github.com/gigglywizard/scanner-backend/scoring"
	"github.com/gigglywizard/scanner-backend/types"
)

// ScanView is a session state as the page and the API present it.
type ScanView struct {
	Status    types.ScanStatus   `json:"status"`
	Seq       uint64             `json:"seq,omitempty"`
	Address   string             `json:"address,omitempty"`
	Message   string             `json:"message,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Report    *types.TokenReport `json:"report,omitempty"`
	Score     *int               `json:"score,omitempty"`
	Rating    scoring.Rating     `json:"rating,omitempty"`
	Breakdown *render.Breakdown  `json:"breakdown,omitempty"`
}

func (v ScanView) Scanning() bool  { return v.Status == types.StatusScanning }
func (v ScanView) Succeeded() bool { return v.Status == types.StatusSucceeded }
func (v ScanView) Failed() bool    { return v.Status == types.StatusFailed }

func newScanView(r *render.Renderer, state types.ScanState) ScanView {
	v := ScanView{
		Status:    state.Status(),
		Seq:       state.Seq(),
		Address:   state.Address(),
		UpdatedAt: state.UpdatedAt(),
	}
	if msg, ok := state.Message(); ok {
		v.Message = msg
	}
	if report, ok := state.Report(); ok {
		b := r.Render(state.Address(), report)
		v.Report = report
		v.Score = &b.Score
		v.Rating = b.Rating
		v.Breakdown = &b
	}
	return v
}
