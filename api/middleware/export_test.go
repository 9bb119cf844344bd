package middleware

import (
	"time"

	"github.com/hu55a1n1/cosmos-tx-go/api/shared"
)

// LoggedRequest -
type LoggedRequest struct {
	Route        string
	Status       int
	Duration     time.Duration
	RequestSize  int64
	ResponseSize int
	Code         shared.ReturnCode
	Error        string
}

// SetLogFunc -
func (rlm *responseLoggerMiddleware) SetLogFunc(handler func(title string, entry LoggedRequest)) {
	rlm.logFunc = func(title string, entry requestEntry) {
		handler(title, LoggedRequest{
			Route:        entry.route,
			Status:       entry.status,
			Duration:     entry.duration,
			RequestSize:  entry.requestSize,
			ResponseSize: entry.responseSize,
			Code:         entry.code,
			Error:        entry.err,
		})
	}
}

// ComputeLogTitle -
func ComputeLogTitle(status int) string {
	return computeLogTitle(status)
}
