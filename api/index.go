package handler

import (
	"multimedia/config"
	"multimedia/di"
	"multimedia/shared/logger"
	"net/http"
	"os"
	"sync"

	httpTransport "multimedia/transport/http"
)

var (
	service *httpTransport.HTTP
	once    sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetOutput(cfg, os.Stdout)
		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
