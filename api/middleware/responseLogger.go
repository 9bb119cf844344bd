package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hu55a1n1/cosmos-tx-go/api/shared"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api/middleware")

const (
	prefixSlow          = "[slow]"
	prefixBadRequest    = "[bad request]"
	prefixInternalError = "[internal error]"
	prefixBusy          = "[busy]"
)

// requestEntry holds what gets logged about a fee API call
type requestEntry struct {
	route        string
	status       int
	duration     time.Duration
	requestSize  int64
	responseSize int
	code         shared.ReturnCode
	err          string
}

type responseLoggerMiddleware struct {
	threshold time.Duration
	logFunc   func(title string, entry requestEntry)
}

// NewResponseLoggerMiddleware returns a middleware that logs the fee API calls that fail or take longer than the threshold
func NewResponseLoggerMiddleware(threshold time.Duration) *responseLoggerMiddleware {
	rlm := &responseLoggerMiddleware{
		threshold: threshold,
	}
	rlm.logFunc = rlm.logEntry

	return rlm
}

// MiddlewareHandlerFunc logs the route, status, payload sizes and API error of slow or unsuccessful requests
func (rlm *responseLoggerMiddleware) MiddlewareHandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		bw := &bodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = bw

		c.Next()

		duration := time.Since(start)
		status := bw.Status()
		if duration <= rlm.threshold && status == http.StatusOK {
			return
		}

		entry := requestEntry{
			route:        routeOf(c),
			status:       status,
			duration:     duration,
			requestSize:  c.Request.ContentLength,
			responseSize: bw.Size(),
		}
		response := shared.GenericAPIResponse{}
		if json.Unmarshal(bw.body.Bytes(), &response) == nil {
			entry.code = response.Code
			entry.err = response.Error
		}

		rlm.logFunc(computeLogTitle(status), entry)
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (rlm *responseLoggerMiddleware) IsInterfaceNil() bool {
	return rlm == nil
}

func routeOf(c *gin.Context) string {
	route := c.FullPath()
	if len(route) == 0 {
		route = c.Request.URL.Path
	}

	return c.Request.Method + " " + route
}

func computeLogTitle(status int) string {
	prefix := prefixSlow
	switch status {
	case http.StatusOK:
	case http.StatusBadRequest:
		prefix = prefixBadRequest
	case http.StatusInternalServerError:
		prefix = prefixInternalError
	case http.StatusTooManyRequests:
		prefix = prefixBusy
	default:
		prefix = fmt.Sprintf("[http code %d]", status)
	}

	return prefix + " fee api request"
}

func (rlm *responseLoggerMiddleware) logEntry(title string, entry requestEntry) {
	args := []interface{}{
		"route", entry.route,
		"status", entry.status,
		"duration", entry.duration,
		"request size", entry.requestSize,
		"response size", entry.responseSize,
	}
	if len(entry.err) > 0 {
		args = append(args, "code", entry.code, "error", entry.err)
	}

	if entry.status == http.StatusInternalServerError {
		log.Warn(title, args...)
		return
	}

	log.Debug(title, args...)
}

type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
