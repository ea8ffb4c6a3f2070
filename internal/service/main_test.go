package service

import (
	"os"
	"testing"

	"edugenie/internal/config"
	"edugenie/internal/logger"
)

// TestMain initializes the logger for all tests in this package.
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}
