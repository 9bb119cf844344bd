package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hu55a1n1/cosmos-tx-go/api/gin"
	"github.com/hu55a1n1/cosmos-tx-go/config"
	"github.com/hu55a1n1/cosmos-tx-go/data/fee"
	"github.com/hu55a1n1/cosmos-tx-go/display"
	"github.com/hu55a1n1/cosmos-tx-go/facade"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/pelletier/go-toml"
	"github.com/urfave/cli"
)

type feeFacadeHandler interface {
	DefaultFee() fee.Fee
	BuildFee(data facade.FeeData) (fee.Fee, error)
	EncodeFee(f fee.Fee) ([]byte, error)
	DecodeFee(buff []byte) (fee.Fee, error)
	IsInterfaceNil() bool
}

// loadConfig reads the toml file. A missing file is tolerated only when the path was not explicitly provided.
func loadConfig(filePath string, isExplicit bool) (*config.Config, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) && !isExplicit {
		log.Debug("configuration file not found, using the built-in defaults", "path", filePath)
		cfg := config.DefaultConfig()
		return &cfg, nil
	}

	cfg, err := config.LoadConfig(filePath)
	if err != nil {
		return nil, err
	}
	log.Debug("config", "file", filePath)

	return cfg, nil
}

func createFacade(cfg *config.Config) (feeFacadeHandler, error) {
	ff, err := facade.NewFeeFacade(facade.ArgsFeeFacade{
		Marshalizer: &marshal.GogoProtoMarshalizer{},
		Config:      cfg,
	})
	if err != nil {
		return nil, err
	}

	return ff, nil
}

// feeDataFromFlags leaves the gas limit nil when the flag is missing so that an explicit zero is kept
func feeDataFromFlags(ctx *cli.Context) facade.FeeData {
	data := facade.FeeData{
		Amount:  ctx.StringSlice(amount.Name),
		Payer:   ctx.String(payer.Name),
		Granter: ctx.String(granter.Name),
	}
	if ctx.IsSet(gasLimit.Name) {
		value := ctx.Uint64(gasLimit.Name)
		data.GasLimit = &value
	}

	return data
}

// startRestAPI creates the fee facade and starts the web server in the background
func startRestAPI(cfg *config.Config, debugMode bool) (io.Closer, error) {
	ff, err := createFacade(cfg)
	if err != nil {
		return nil, err
	}

	ws, err := gin.NewGinWebServerHandler(gin.ArgsNewWebServer{
		Facade:          ff,
		WebServerConfig: cfg.WebServer,
		DebugMode:       debugMode,
	})
	if err != nil {
		return nil, err
	}

	err = ws.StartHttpServer()
	if err != nil {
		return nil, err
	}

	log.Info("REST API started", "interface", cfg.WebServer.RestApiInterface, "debug", debugMode)

	return ws, nil
}

func encodeFee(ff feeFacadeHandler, data facade.FeeData, w io.Writer) error {
	f, err := ff.BuildFee(data)
	if err != nil {
		return err
	}

	buff, err := ff.EncodeFee(f)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, hex.EncodeToString(buff))

	return err
}

func decodeFee(ff feeFacadeHandler, encoded string, asTable bool, w io.Writer) error {
	buff, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(encoded), "0x"))
	if err != nil {
		return fmt.Errorf("%w while decoding the hex argument", err)
	}

	f, err := ff.DecodeFee(buff)
	if err != nil {
		return err
	}

	if asTable {
		table, errTable := display.CreateFeeTableString(f)
		if errTable != nil {
			return errTable
		}

		_, err = fmt.Fprint(w, table)
		return err
	}

	jsonBuff, err := json.MarshalIndent(facade.NewFeeData(f), "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonBuff))

	return err
}

func writeDefaultConfig(w io.Writer) error {
	buff, err := toml.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}

	_, err = w.Write(buff)

	return err
}
