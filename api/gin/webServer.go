package gin

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/hu55a1n1/cosmos-tx-go/api/errors"
	"github.com/hu55a1n1/cosmos-tx-go/api/groups"
	"github.com/hu55a1n1/cosmos-tx-go/api/middleware"
	"github.com/hu55a1n1/cosmos-tx-go/api/shared"
	"github.com/hu55a1n1/cosmos-tx-go/config"
	"github.com/hu55a1n1/cosmos-tx-go/data/fee"
	"github.com/hu55a1n1/cosmos-tx-go/facade"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api/gin")

// FeeFacadeHandler defines the methods the web server needs from the fee facade
type FeeFacadeHandler interface {
	DefaultFee() fee.Fee
	BuildFee(data facade.FeeData) (fee.Fee, error)
	EncodeFee(f fee.Fee) ([]byte, error)
	DecodeFee(buff []byte) (fee.Fee, error)
	IsInterfaceNil() bool
}

// ArgsNewWebServer holds the arguments needed to create a new instance of webServer
type ArgsNewWebServer struct {
	Facade          FeeFacadeHandler
	WebServerConfig config.WebServerConfig
	DebugMode       bool
}

type webServer struct {
	sync.RWMutex
	facade     FeeFacadeHandler
	config     config.WebServerConfig
	debugMode  bool
	httpServer shared.HttpServerCloser
	groups     map[string]shared.GroupHandler
}

// NewGinWebServerHandler returns a new instance of webServer
func NewGinWebServerHandler(args ArgsNewWebServer) (*webServer, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &webServer{
		facade:    args.Facade,
		config:    args.WebServerConfig,
		debugMode: args.DebugMode,
	}, nil
}

func checkArgs(args ArgsNewWebServer) error {
	if check.IfNil(args.Facade) {
		return fmt.Errorf("%w for web server", errors.ErrNilFacadeHandler)
	}
	if len(args.WebServerConfig.RestApiInterface) == 0 {
		return fmt.Errorf("%w: empty rest api interface", errors.ErrCannotCreateGinWebServer)
	}

	return nil
}

// StartHttpServer will create a new instance of http.Server, populate it with all the routes and start it
func (ws *webServer) StartHttpServer() error {
	ws.Lock()
	defer ws.Unlock()

	engine, err := ws.createEngine()
	if err != nil {
		return err
	}

	server := &http.Server{Addr: ws.config.RestApiInterface, Handler: engine}
	log.Debug("creating gin web sever", "interface", ws.config.RestApiInterface)
	ws.httpServer, err = NewHttpServer(server)
	if err != nil {
		return err
	}

	log.Info("starting web server",
		"interface", ws.config.RestApiInterface,
		"SimultaneousRequests", ws.config.SimultaneousRequests,
		"ResponseLoggingThresholdInMicroSeconds", ws.config.ResponseLoggingThresholdInMicroSeconds,
	)

	go ws.httpServer.Start()

	return nil
}

func (ws *webServer) createEngine() (*gin.Engine, error) {
	if !ws.debugMode {
		gin.DefaultWriter = &ginWriter{}
		gin.DefaultErrorWriter = &ginErrorWriter{}
		gin.DisableConsoleColor()
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(cors.Default())
	if ws.debugMode {
		pprof.Register(engine)
	}

	processors, err := ws.createMiddlewareLimiters()
	if err != nil {
		return nil, err
	}

	err = ws.createGroups()
	if err != nil {
		return nil, err
	}

	ws.registerRoutes(engine, processors)

	return engine, nil
}

func (ws *webServer) createGroups() error {
	groupsMap := make(map[string]shared.GroupHandler)
	feeGroup, err := groups.NewFeeGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["fee"] = feeGroup

	ws.groups = groupsMap

	return nil
}

func (ws *webServer) registerRoutes(ginRouter *gin.Engine, processors []shared.MiddlewareProcessor) {
	for groupName, groupHandler := range ws.groups {
		log.Debug("registering gin API group", "group name", groupName)
		ginGroup := ginRouter.Group(fmt.Sprintf("/%s", groupName))
		groupHandler.RegisterRoutes(ginGroup, processors)
	}
}

func (ws *webServer) createMiddlewareLimiters() ([]shared.MiddlewareProcessor, error) {
	middlewares := make([]shared.MiddlewareProcessor, 0)

	if ws.config.ResponseLoggingThresholdInMicroSeconds > 0 {
		threshold := time.Duration(ws.config.ResponseLoggingThresholdInMicroSeconds) * time.Microsecond
		middlewares = append(middlewares, middleware.NewResponseLoggerMiddleware(threshold))
	}

	globalLimiter, err := middleware.NewGlobalThrottler(ws.config.SimultaneousRequests)
	if err != nil {
		return nil, err
	}

	middlewares = append(middlewares, globalLimiter)

	return middlewares, nil
}

// Close will handle the closing of inner components
func (ws *webServer) Close() error {
	ws.Lock()
	defer ws.Unlock()

	if check.IfNil(ws.httpServer) {
		return nil
	}

	err := ws.httpServer.Close()
	if err != nil {
		err = fmt.Errorf("%w while closing the http server in gin/webServer", err)
	}

	return err
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
