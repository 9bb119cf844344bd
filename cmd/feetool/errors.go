package main

import "errors"

var errMissingEncodedFee = errors.New("exactly one hex encoded fee argument is expected")
