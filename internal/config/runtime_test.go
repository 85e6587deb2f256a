package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "LOGIC_CACHE_MAX_ITEMS", "LOGIC_MAX_VARIABLES", "LOGIC_PARALLELISM", "LOGIC_OBS_BUFFER", "LOGIC_SAT_SOLVER", "LOGIC_SAT_FALLBACK", "LOGIC_COMPILED_EVAL"} {
		t.Setenv(k, "")
	}

	rt := Load()
	if rt.HTTPAddr != ":8080" || rt.CacheMaxItems != 1024 || rt.MaxVariables != 20 {
		t.Fatalf("unexpected defaults: %#v", rt)
	}
	if rt.Parallelism != 1 || rt.ObsBuffer != 4096 || rt.SATSolver != "gophersat" || !rt.SATFallback || rt.CompiledEval {
		t.Fatalf("unexpected defaults: %#v", rt)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOGIC_MAX_VARIABLES", "12")
	t.Setenv("LOGIC_PARALLELISM", "8")
	t.Setenv("LOGIC_SAT_SOLVER", "gini")
	t.Setenv("LOGIC_SAT_FALLBACK", "false")
	t.Setenv("LOGIC_COMPILED_EVAL", "1")

	rt := Load()
	if rt.HTTPAddr != ":9090" || rt.MaxVariables != 12 || rt.Parallelism != 8 {
		t.Fatalf("unexpected runtime: %#v", rt)
	}
	if rt.SATSolver != "gini" || rt.SATFallback || !rt.CompiledEval {
		t.Fatalf("unexpected flags: %#v", rt)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOGIC_CACHE_MAX_ITEMS", "0")
	t.Setenv("LOGIC_MAX_VARIABLES", "64")
	t.Setenv("LOGIC_PARALLELISM", "many")
	t.Setenv("LOGIC_SAT_FALLBACK", "sometimes")

	rt := Load()
	if rt.CacheMaxItems != 1024 || rt.MaxVariables != 20 || rt.Parallelism != 1 || !rt.SATFallback {
		t.Fatalf("expected fallbacks, got %#v", rt)
	}
}
