package tool

import "errors"

var errNoOutput = errors.New("tool produced no output")
