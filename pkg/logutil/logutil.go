package logutil

import (
	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/hanfei1991/queuelab/pkg/config"
	"github.com/hanfei1991/queuelab/pkg/errors"
)

// InitLogger initializes the global pingcap logger from cfg.
func InitLogger(cfg *config.Config) error {
	logCfg := &log.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File: log.FileLogConfig{
			Filename: cfg.LogFile,
		},
	}
	lg, props, err := log.InitLogger(logCfg)
	if err != nil {
		return errors.Wrap(errors.ErrLoggerInitFailed, err)
	}
	log.ReplaceGlobals(lg, props)
	return nil
}

// ShortError constructs a field which only records the error message.
func ShortError(err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.String("error", err.Error())
}
