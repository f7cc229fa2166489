package logger

import (
	"go.uber.org/zap"
)

// NewNamed creates a named zap logger appropriate for the given environment.
// Production gets JSON output with sampling; everything else gets the
// human-readable development encoder.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	var log *zap.Logger
	var err error

	if appEnv == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return log.Named(name), nil
}
