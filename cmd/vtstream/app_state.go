package main

import (
	"fmt"

	"github.com/vtstream-dev/vtstream/internal/config"
	"github.com/vtstream-dev/vtstream/internal/debug"
)

type appState struct {
	cfg      config.Config
	cfgFound bool
	cfgPath  string
	logger   *debug.Logger
}

type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.code)
}
