package http

import "github.com/rs/zerolog"

func testLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
