// Package modkit provides module wiring and core deps
package modkit

import (
	"deepclean/internal/platform/config"
	"deepclean/internal/platform/logger"
	"deepclean/internal/recog"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	Engine recog.Engine
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the engine where a module treats it as optional
func (d Deps) ZeroOK() bool { return true }
