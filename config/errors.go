package config

import "errors"

var errInvalidFeeSettings = errors.New("invalid fee settings")

var errInvalidAccountPrefix = errors.New("invalid account prefix")

var errEmptyRestApiInterface = errors.New("empty rest api interface")

var errInvalidSimultaneousRequests = errors.New("invalid number of simultaneous requests")
