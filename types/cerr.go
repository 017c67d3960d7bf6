// Package types
package types

import (
	"errors"
)

// ScanFailedMessage is the only failure text a visitor ever sees.
const ScanFailedMessage = "Failed to scan token. Please verify the address and try again."

var ErrNetworkFailure = errors.New("honeypot api unreachable")
var ErrNonSuccessStatus = errors.New("honeypot api non-success status")
var ErrMalformedBody = errors.New("honeypot api malformed body")

var ErrEmptyAddress = errors.New("empty token address")
var ErrStaleScan = errors.New("scan superseded by a newer request")
var ErrSessionNotFound = errors.New("session not found")

// IsScanFailure reports whether err belongs to the upstream failure taxonomy.
func IsScanFailure(err error) bool {
	return errors.Is(err, ErrNetworkFailure) ||
		errors.Is(err, ErrNonSuccessStatus) ||
		errors.Is(err, ErrMalformedBody)
}
