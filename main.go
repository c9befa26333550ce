package main

import (
	"os"

	"event-hub/core/logger"
	"event-hub/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("Main:Run", "error", err)
		os.Exit(1)
	}
}
