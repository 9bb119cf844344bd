package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hu55a1n1/cosmos-tx-go/api/groups"
	"github.com/hu55a1n1/cosmos-tx-go/api/middleware"
	"github.com/hu55a1n1/cosmos-tx-go/api/shared"
	"github.com/hu55a1n1/cosmos-tx-go/data/fee"
	"github.com/hu55a1n1/cosmos-tx-go/testscommon"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func startFeeServer(t *testing.T, facadeStub *testscommon.FeeFacadeStub, middlewares ...shared.MiddlewareProcessor) *gin.Engine {
	ws := gin.New()
	ws.Use(cors.Default())

	feeGroup, err := groups.NewFeeGroup(facadeStub)
	require.Nil(t, err)
	feeGroup.RegisterRoutes(ws.Group("/fee"), middlewares)

	return ws
}

func TestNewGlobalThrottler_InvalidMaxConnectionsShouldErr(t *testing.T) {
	t.Parallel()

	gt, err := middleware.NewGlobalThrottler(0)

	assert.True(t, check.IfNil(gt))
	assert.Equal(t, middleware.ErrInvalidMaxNumRequests, err)
}

func TestNewGlobalThrottler(t *testing.T) {
	t.Parallel()

	gt, err := middleware.NewGlobalThrottler(1)

	assert.False(t, check.IfNil(gt))
	assert.Nil(t, err)
}

func TestGlobalThrottler_LimitUnderShouldProcessRequest(t *testing.T) {
	t.Parallel()

	gt, _ := middleware.NewGlobalThrottler(1000)
	ws := startFeeServer(t, &testscommon.FeeFacadeStub{}, gt)

	req, _ := http.NewRequest(http.MethodGet, "/fee/default", nil)
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestGlobalThrottler_LimitOverShouldError(t *testing.T) {
	t.Parallel()

	numCalls := uint32(0)
	responseDelay := time.Second
	facadeStub := &testscommon.FeeFacadeStub{
		DefaultFeeCalled: func() fee.Fee {
			time.Sleep(responseDelay)
			atomic.AddUint32(&numCalls, 1)

			return fee.Fee{}
		},
	}

	gt, _ := middleware.NewGlobalThrottler(1)
	ws := startFeeServer(t, facadeStub, gt)

	mutResponses := sync.Mutex{}
	responses := make(map[int]int)
	numRequests := 10
	numBatches := 2

	for j := 0; j < numBatches; j++ {
		fmt.Printf("Starting batch requests %d, making %d simultaneous requests...\n", j, numRequests)

		for i := 0; i < numRequests; i++ {
			go makeRequestGlobalThrottler(ws, &mutResponses, responses)
		}

		time.Sleep(responseDelay + time.Second)
	}

	assert.Equal(t, uint32(numBatches), atomic.LoadUint32(&numCalls))
	mutResponses.Lock()
	assert.Equal(t, numBatches, responses[http.StatusOK])
	assert.Equal(t, numBatches*(numRequests-1), responses[http.StatusTooManyRequests])
	mutResponses.Unlock()
}

func makeRequestGlobalThrottler(ws *gin.Engine, mutResponses *sync.Mutex, responses map[int]int) {
	req, _ := http.NewRequest(http.MethodGet, "/fee/default", nil)
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)

	mutResponses.Lock()
	responses[resp.Code]++
	mutResponses.Unlock()
}
