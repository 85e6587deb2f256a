package config

import (
	"os"
	"strconv"
)

type Runtime struct {
	HTTPAddr      string
	CacheMaxItems int
	MaxVariables  int
	Parallelism   int
	ObsBuffer     int
	SATSolver     string
	SATFallback   bool
	CompiledEval  bool
}

func Load() Runtime {
	return Runtime{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		CacheMaxItems: getenvInt("LOGIC_CACHE_MAX_ITEMS", 1024, 1),
		MaxVariables:  getenvIntRange("LOGIC_MAX_VARIABLES", 20, 1, 63),
		Parallelism:   getenvInt("LOGIC_PARALLELISM", 1, 1),
		ObsBuffer:     getenvInt("LOGIC_OBS_BUFFER", 4096, 1),
		SATSolver:     getenv("LOGIC_SAT_SOLVER", "gophersat"),
		SATFallback:   getenvBool("LOGIC_SAT_FALLBACK", true),
		CompiledEval:  getenvBool("LOGIC_COMPILED_EVAL", false),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback, min int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return fallback
	}
	return v
}

func getenvIntRange(key string, fallback, min, max int) int {
	v := getenvInt(key, fallback, min)
	if v > max {
		return fallback
	}
	return v
}

func getenvBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
