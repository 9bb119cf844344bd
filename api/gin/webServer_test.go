package gin_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apiErrors "github.com/hu55a1n1/cosmos-tx-go/api/errors"
	"github.com/hu55a1n1/cosmos-tx-go/api/gin"
	"github.com/hu55a1n1/cosmos-tx-go/api/middleware"
	"github.com/hu55a1n1/cosmos-tx-go/api/shared"
	"github.com/hu55a1n1/cosmos-tx-go/config"
	"github.com/hu55a1n1/cosmos-tx-go/facade"
	"github.com/hu55a1n1/cosmos-tx-go/testscommon"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMockArgsNewWebServer() gin.ArgsNewWebServer {
	cfg := config.DefaultConfig()

	return gin.ArgsNewWebServer{
		Facade:          &testscommon.FeeFacadeStub{},
		WebServerConfig: cfg.WebServer,
		DebugMode:       true,
	}
}

func createRealFacade(t *testing.T) gin.FeeFacadeHandler {
	cfg := config.DefaultConfig()
	ff, err := facade.NewFeeFacade(facade.ArgsFeeFacade{
		Marshalizer: &marshal.GogoProtoMarshalizer{},
		Config:      &cfg,
	})
	require.Nil(t, err)

	return ff
}

func TestNewGinWebServerHandler(t *testing.T) {
	t.Parallel()

	t.Run("nil facade should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsNewWebServer()
		args.Facade = nil
		ws, err := gin.NewGinWebServerHandler(args)
		assert.True(t, check.IfNil(ws))
		assert.True(t, errors.Is(err, apiErrors.ErrNilFacadeHandler))
	})
	t.Run("empty interface should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgsNewWebServer()
		args.WebServerConfig.RestApiInterface = ""
		ws, err := gin.NewGinWebServerHandler(args)
		assert.True(t, check.IfNil(ws))
		assert.True(t, errors.Is(err, apiErrors.ErrCannotCreateGinWebServer))
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		ws, err := gin.NewGinWebServerHandler(createMockArgsNewWebServer())
		assert.False(t, check.IfNil(ws))
		assert.Nil(t, err)
	})
}

func TestWebServer_CreateEngineInvalidThrottlerShouldErr(t *testing.T) {
	t.Parallel()

	args := createMockArgsNewWebServer()
	args.WebServerConfig.SimultaneousRequests = 0
	ws, _ := gin.NewGinWebServerHandler(args)

	engine, err := ws.CreateEngine()
	assert.Nil(t, engine)
	assert.Equal(t, middleware.ErrInvalidMaxNumRequests, err)
}

func TestWebServer_EncodeDecodeThroughTheEngine(t *testing.T) {
	t.Parallel()

	args := createMockArgsNewWebServer()
	args.Facade = createRealFacade(t)
	args.WebServerConfig.ResponseLoggingThresholdInMicroSeconds = 1
	ws, _ := gin.NewGinWebServerHandler(args)

	engine, err := ws.CreateEngine()
	require.Nil(t, err)

	encodeBody, _ := json.Marshal(facade.FeeData{Amount: []string{"1000uatom"}})
	req, _ := http.NewRequest(http.MethodPost, "/fee/encode", bytes.NewBuffer(encodeBody))
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	encodeResponse := struct {
		Data struct {
			Encoded string `json:"encoded"`
		} `json:"data"`
	}{}
	require.Nil(t, json.NewDecoder(resp.Body).Decode(&encodeResponse))
	assert.Equal(t, "0a0d0a057561746f6d12043130303010c09a0c", encodeResponse.Data.Encoded)

	decodeBody, _ := json.Marshal(map[string]string{"encoded": encodeResponse.Data.Encoded})
	req, _ = http.NewRequest(http.MethodPost, "/fee/decode", bytes.NewBuffer(decodeBody))
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	decodeResponse := struct {
		Data struct {
			Fee facade.FeeData `json:"fee"`
		} `json:"data"`
		Code shared.ReturnCode `json:"code"`
	}{}
	require.Nil(t, json.NewDecoder(resp.Body).Decode(&decodeResponse))
	assert.Equal(t, shared.ReturnCodeSuccess, decodeResponse.Code)
	defaultGasLimit := uint64(200000)
	assert.Equal(t, facade.FeeData{Amount: []string{"1000uatom"}, GasLimit: &defaultGasLimit}, decodeResponse.Data.Fee)
}

func TestWebServer_PprofRoutesInDebugMode(t *testing.T) {
	t.Parallel()

	args := createMockArgsNewWebServer()
	ws, _ := gin.NewGinWebServerHandler(args)
	engine, err := ws.CreateEngine()
	require.Nil(t, err)

	req, _ := http.NewRequest(http.MethodGet, "/debug/pprof/", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestWebServer_StartAndClose(t *testing.T) {
	t.Parallel()

	args := createMockArgsNewWebServer()
	args.WebServerConfig.RestApiInterface = "127.0.0.1:0"
	ws, _ := gin.NewGinWebServerHandler(args)

	assert.Nil(t, ws.Close())
	require.Nil(t, ws.StartHttpServer())
	assert.Nil(t, ws.Close())
}

func TestNewHttpServer(t *testing.T) {
	t.Parallel()

	hs, err := gin.NewHttpServer(nil)
	assert.True(t, check.IfNil(hs))
	assert.Equal(t, apiErrors.ErrNilHttpServer, err)

	hs, err = gin.NewHttpServer(&http.Server{})
	assert.False(t, check.IfNil(hs))
	assert.Nil(t, err)
}
