package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config()
	cfg.logger.Debug("configuration loaded")

	mux := http.NewServeMux()

	mux.HandleFunc("/api/weather", cfg.handlerWeather)
	mux.HandleFunc("/api/ai", cfg.handlerAssistant)
	mux.HandleFunc("/chat", cfg.handlerChat)
	mux.HandleFunc("/api/prices", cfg.handlerPrices)
	mux.HandleFunc("/api/alerts", cfg.handlerAlerts)
	mux.HandleFunc("/api/disease", cfg.handlerDisease)
	mux.HandleFunc("/api/yield", cfg.handlerYield)
	mux.HandleFunc("/api/community", cfg.handlerCommunity)
	mux.HandleFunc("/api/community/like", cfg.handlerCommunityLike)
	mux.HandleFunc("/api/logbook", cfg.handlerLogbook)
	mux.HandleFunc("/api/config", cfg.handlerConfig)
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    ":" + cfg.port,
		Handler: corsMiddleware(metricsMiddleware(mux)),
	}

	cfg.logger.Info("starting server", "port", cfg.port)
	err := server.ListenAndServe()
	if err != nil {
		cfg.logger.Error("server startup failed", "error", err)
		os.Exit(1)
	}
}
