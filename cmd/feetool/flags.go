package main

import (
	"github.com/urfave/cli"
)

var (
	filePathPlaceholder = "[path]"
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the main configuration file. This TOML file contains the " +
			"accepted account prefix, the default fee and the REST API settings. When the default file is missing " +
			"the built-in defaults are used.",
		Value: defaultConfigurationFile,
	}
	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,facade:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the facade package which will receive a DEBUG" +
			" log level. When not set, the level from the configuration file is used.",
	}

	// amount defines the coins paid as fee, repeat the flag for multiple coins
	amount = cli.StringSliceFlag{
		Name:  "amount",
		Usage: "A fee `coin` such as 1000uatom. Can be repeated, the order is preserved. Defaults to the configured coin.",
	}
	// gasLimit defines the maximum gas the transaction may use
	gasLimit = cli.Uint64Flag{
		Name:  "gas-limit",
		Usage: "The gas `limit` of the fee. Defaults to the configured gas limit.",
	}
	// payer defines the optional fee payer
	payer = cli.StringFlag{
		Name:  "payer",
		Usage: "The bech32 `address` of the account paying the fee. Leave empty for the first signer.",
	}
	// granter defines the optional fee granter
	granter = cli.StringFlag{
		Name:  "granter",
		Usage: "The bech32 `address` of the account whose fee grant is used.",
	}

	// asTable defines a flag for printing the decoded fee as an ASCII table instead of JSON
	asTable = cli.BoolFlag{
		Name:  "table",
		Usage: "Boolean option for printing the decoded fee as a table.",
	}

	// restApiInterface defines a flag for the interface on which the rest API will try to bind with
	restApiInterface = cli.StringFlag{
		Name: "rest-api-interface",
		Usage: "The interface `address and port` to which the REST API will attempt to bind. " +
			"Overrides the interface from the configuration file.",
	}
	// restApiDebug defines a flag for starting the rest API engine in debug mode
	restApiDebug = cli.BoolFlag{
		Name:  "rest-api-debug",
		Usage: "Boolean option for starting the Rest API in debug mode. Also exposes the pprof routes under /debug/pprof.",
	}
	// gopsEn used to enable diagnosis of running go processes
	gopsEn = cli.BoolFlag{
		Name:  "gops-enable",
		Usage: "Boolean option for enabling gops over the process. If set, stack can be viewed by calling 'gops stack <pid>'.",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		logLevel,
	}
}
