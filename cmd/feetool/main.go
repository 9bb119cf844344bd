package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/hu55a1n1/cosmos-tx-go/config"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const defaultConfigurationFile = "./config/config.toml"

var (
	feeToolHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} command [command options] [arguments...]
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
COMMANDS:
   {{range .Commands}}{{join .Names ", "}}{{ "\t" }}{{.Usage}}
   {{end}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`
	log = logger.GetOrCreate("main")
)

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = feeToolHelpTemplate
	app.Name = "Cosmos transaction fee tool"
	app.Version = "v1.0.0"
	app.Usage = "This tool builds, encodes and decodes cosmos.tx.v1beta1.Fee messages, from the command line or through a REST API"
	app.Flags = getFlags()
	app.Authors = []cli.Author{
		{
			Name:  "The cosmos-tx-go authors",
			Email: "",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "builds a fee and prints its protobuf encoding as hex",
			Flags:     []cli.Flag{amount, gasLimit, payer, granter},
			Action:    encodeAction,
			ArgsUsage: " ",
		},
		{
			Name:      "decode",
			Usage:     "decodes the hex protobuf encoding of a fee and prints it as JSON or as a table",
			Flags:     []cli.Flag{asTable},
			Action:    decodeAction,
			ArgsUsage: "<hex>",
		},
		{
			Name:   "serve",
			Usage:  "starts the REST API",
			Flags:  []cli.Flag{restApiInterface, restApiDebug, gopsEn},
			Action: serveAction,
		},
		{
			Name:   "default-config",
			Usage:  "prints the built-in configuration as TOML",
			Action: defaultConfigAction,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func encodeAction(ctx *cli.Context) error {
	ff, err := setup(ctx)
	if err != nil {
		return err
	}

	return encodeFee(ff, feeDataFromFlags(ctx), os.Stdout)
}

func decodeAction(ctx *cli.Context) error {
	ff, err := setup(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() != 1 {
		return errMissingEncodedFee
	}

	return decodeFee(ff, ctx.Args().First(), ctx.Bool(asTable.Name), os.Stdout)
}

func defaultConfigAction(_ *cli.Context) error {
	return writeDefaultConfig(os.Stdout)
}

func serveAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx.GlobalString(configurationFile.Name), ctx.GlobalIsSet(configurationFile.Name))
	if err != nil {
		return err
	}
	err = applyLogLevel(ctx, cfg)
	if err != nil {
		return err
	}
	if ctx.IsSet(restApiInterface.Name) {
		cfg.WebServer.RestApiInterface = ctx.String(restApiInterface.Name)
	}

	enableGopsIfNeeded(ctx.Bool(gopsEn.Name))

	ws, err := startRestAPI(cfg, ctx.Bool(restApiDebug.Name))
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.Info("terminating at user's signal...", "signal", sig.String())

	return ws.Close()
}

func setup(ctx *cli.Context) (feeFacadeHandler, error) {
	cfg, err := loadConfig(ctx.GlobalString(configurationFile.Name), ctx.GlobalIsSet(configurationFile.Name))
	if err != nil {
		return nil, err
	}

	err = applyLogLevel(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return createFacade(cfg)
}

func applyLogLevel(ctx *cli.Context, cfg *config.Config) error {
	level := cfg.Logger.LogLevel
	if ctx.GlobalIsSet(logLevel.Name) {
		level = ctx.GlobalString(logLevel.Name)
	}

	return logger.SetLogLevel(level)
}

func enableGopsIfNeeded(gopsEnabled bool) {
	if gopsEnabled {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Error("failure to init gops", "error", err.Error())
		}
	}

	log.Trace("gops", "enabled", gopsEnabled)
}
