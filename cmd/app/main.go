package main

import (
	"wishnest/config"
	"wishnest/di"
	"wishnest/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
