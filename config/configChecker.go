package config

import (
	"fmt"

	"github.com/hu55a1n1/cosmos-tx-go/data/account"
	"github.com/hu55a1n1/cosmos-tx-go/data/coin"
)

// CheckConfig checks that the configured values can be used to build fees and run the REST API
func CheckConfig(cfg *Config) error {
	if len(cfg.GeneralSettings.AccountPrefix) > 0 {
		err := account.CheckPrefix(cfg.GeneralSettings.AccountPrefix)
		if err != nil {
			return fmt.Errorf("%w: %s", errInvalidAccountPrefix, err.Error())
		}
	}

	err := checkFeeSettings(cfg.FeeSettings)
	if err != nil {
		return err
	}

	if len(cfg.WebServer.RestApiInterface) == 0 {
		return errEmptyRestApiInterface
	}
	if cfg.WebServer.SimultaneousRequests == 0 {
		return errInvalidSimultaneousRequests
	}

	return nil
}

func checkFeeSettings(settings FeeSettings) error {
	_, err := coin.ParseCoin(settings.Amount + settings.Denom)
	if err != nil {
		return fmt.Errorf("%w, default coin: %s", errInvalidFeeSettings, err.Error())
	}
	if settings.GasLimit == 0 {
		return fmt.Errorf("%w, default gas limit should be greater than 0", errInvalidFeeSettings)
	}

	return nil
}
