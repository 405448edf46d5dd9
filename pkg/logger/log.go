package logger

import (
	"os"

	"go.uber.org/zap"
)

func NewLogger() *zap.Logger {
	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	if path := os.Getenv("LOG_FILE"); path != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, path)
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l
}
