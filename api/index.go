package handler

import (
	"net/http"
	"wishnest/config"
	"wishnest/di"
	"wishnest/shared/logger"
)

// Handler is the serverless entrypoint. Each invocation reuses the
// process-wide configuration and connections once they are warmed up.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	server := di.InitializeService()
	server.Handler().ServeHTTP(w, r)
}
