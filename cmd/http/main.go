package main

import (
	"log"
	"net/http"

	"github.com/awmpietro/golang-logic-inference/internal/app"
	"github.com/awmpietro/golang-logic-inference/internal/config"
	"github.com/awmpietro/golang-logic-inference/internal/logic/cache"
	"github.com/awmpietro/golang-logic-inference/internal/logic/sat"
	"github.com/awmpietro/golang-logic-inference/internal/transport/httptransport"
)

func main() {
	cfg := config.Load()

	oracle, err := sat.New(cfg.SATSolver)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	latencyObserver := app.NewAsyncLatencyObserver(app.NewLatencyLogger(log.Default()), cfg.ObsBuffer)
	defer latencyObserver.Close()

	svc := app.NewService(
		cache.NewInMemory(cfg.CacheMaxItems),
		app.WithLatencyObserver(latencyObserver),
		app.WithOracle(oracle),
		app.WithMaxVariables(cfg.MaxVariables),
		app.WithParallelism(cfg.Parallelism),
		app.WithCompiledEvaluation(cfg.CompiledEval),
		app.WithSATFallback(cfg.SATFallback),
	)
	h := httptransport.NewHandler(svc)

	mux := http.NewServeMux()
	h.Register(mux)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
