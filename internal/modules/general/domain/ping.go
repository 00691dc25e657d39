package domain

import (
	"strconv"
	"time"
)

// LatencySuffix follows the millisecond count in a ping result.
const LatencySuffix = " ms"

// PingResult represents the result of a ping operation.
//
// Elapsed is the time the acknowledgment call took, not a gateway
// heartbeat, so it is only a rough measure of latency.
type PingResult struct {
	Message string
	Elapsed time.Duration
}

// NewPingResult creates a new PingResult for the measured duration.
func NewPingResult(elapsed time.Duration) *PingResult {
	if elapsed < 0 {
		elapsed = 0
	}

	return &PingResult{
		Message: strconv.FormatInt(elapsed.Milliseconds(), 10) + LatencySuffix,
		Elapsed: elapsed,
	}
}
