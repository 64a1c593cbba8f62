package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the production zap logger used by every process.
func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}
