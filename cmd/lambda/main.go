package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/awmpietro/golang-logic-inference/internal/app"
	"github.com/awmpietro/golang-logic-inference/internal/config"
	"github.com/awmpietro/golang-logic-inference/internal/logic/cache"
	"github.com/awmpietro/golang-logic-inference/internal/logic/sat"
	"github.com/awmpietro/golang-logic-inference/internal/transport/lambdatransport"
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
	h := lambdatransport.NewHandler(svc)

	lambda.Start(h.Handle)
}
