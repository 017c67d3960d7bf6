package types

import (
	"encoding/json"
	"fmt"
	"time"
)

type ScanStatus string

const (
	StatusIdle      ScanStatus = "idle"
	StatusScanning  ScanStatus = "scanning"
	StatusSucceeded ScanStatus = "succeeded"
	StatusFailed    ScanStatus = "failed"
)

// ScanState is the scanner of one session at one instant. Exactly one variant is
// active: a report is only carried by StatusSucceeded, a message only by StatusFailed.
type ScanState struct {
	status    ScanStatus
	seq       uint64
	address   string
	report    *TokenReport
	message   string
	updatedAt time.Time
}

func IdleState(seq uint64) ScanState {
	return ScanState{status: StatusIdle, seq: seq, updatedAt: time.Now()}
}

func ScanningState(seq uint64, address string) ScanState {
	return ScanState{status: StatusScanning, seq: seq, address: address, updatedAt: time.Now()}
}

func SucceededState(seq uint64, address string, report *TokenReport) ScanState {
	return ScanState{status: StatusSucceeded, seq: seq, address: address, report: report, updatedAt: time.Now()}
}

func FailedState(seq uint64, address, message string) ScanState {
	return ScanState{status: StatusFailed, seq: seq, address: address, message: message, updatedAt: time.Now()}
}

func (s ScanState) Status() ScanStatus {
	if s.status == "" {
		return StatusIdle
	}
	return s.status
}

// Seq is the sequence number of the scan that produced this state.
func (s ScanState) Seq() uint64          { return s.seq }
func (s ScanState) Address() string      { return s.address }
func (s ScanState) UpdatedAt() time.Time { return s.updatedAt }

// Report returns the report of a succeeded scan.
func (s ScanState) Report() (*TokenReport, bool) {
	if s.status != StatusSucceeded {
		return nil, false
	}
	return s.report, true
}

// Message returns the user-facing failure text of a failed scan.
func (s ScanState) Message() (string, bool) {
	if s.status != StatusFailed {
		return "", false
	}
	return s.message, true
}

type scanStateJSON struct {
	Status    ScanStatus   `json:"status"`
	Seq       uint64       `json:"seq"`
	Address   string       `json:"address,omitempty"`
	Report    *TokenReport `json:"report,omitempty"`
	Message   string       `json:"message,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (s ScanState) MarshalJSON() ([]byte, error) {
	return json.Marshal(scanStateJSON{
		Status:    s.Status(),
		Seq:       s.seq,
		Address:   s.address,
		Report:    s.report,
		Message:   s.message,
		UpdatedAt: s.updatedAt,
	})
}

func (s *ScanState) UnmarshalJSON(data []byte) error {
	var raw scanStateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Status {
	case StatusIdle, "":
		*s = IdleState(raw.Seq)
	case StatusScanning:
		*s = ScanningState(raw.Seq, raw.Address)
	case StatusSucceeded:
		if raw.Report == nil {
			return fmt.Errorf("succeeded state without report")
		}
		*s = SucceededState(raw.Seq, raw.Address, raw.Report)
	case StatusFailed:
		*s = FailedState(raw.Seq, raw.Address, raw.Message)
	default:
		return fmt.Errorf("unknown scan status %q", raw.Status)
	}
	s.updatedAt = raw.UpdatedAt
	return nil
}
