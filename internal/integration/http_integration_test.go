package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/awmpietro/golang-logic-inference/internal/app"
	"github.com/awmpietro/golang-logic-inference/internal/logic"
	"github.com/awmpietro/golang-logic-inference/internal/logic/cache"
	"github.com/awmpietro/golang-logic-inference/internal/logic/dot"
	"github.com/awmpietro/golang-logic-inference/internal/logic/sat"
	"github.com/awmpietro/golang-logic-inference/internal/transport/httptransport"
)

func newLogicServer(opts ...app.Option) *httptest.Server {
	opts = append([]app.Option{app.WithOracle(sat.Solver{})}, opts...)
	svc := app.NewService(cache.NewInMemory(1024), opts...)
	h := httptransport.NewHandler(svc)

	mux := http.NewServeMux()
	h.Register(mux)
	return httptest.NewServer(mux)
}

func post(t *testing.T, srv *httptest.Server, path, rawBody string) (int, map[string]any, string) {
	t.Helper()

	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(rawBody))
	if err != nil {
		t.Fatalf("post %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response failed: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return resp.StatusCode, nil, string(body)
	}
	return resp.StatusCode, out, string(body)
}

func postJSON(t *testing.T, srv *httptest.Server, path string, payload map[string]any) (int, map[string]any, string) {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return post(t, srv, path, string(b))
}

func TestHTTPEvaluate_ImplicationIsFalse(t *testing.T) {
	srv := newLogicServer()
	defer srv.Close()

	status, out, body := postJSON(t, srv, "/evaluate", map[string]any{
		"formula":    "(A∧B)→¬C",
		"assignment": map[string]bool{"A": true, "B": true, "C": true},
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if out["value"] != false {
		t.Fatalf("expected false, got %#v", out["value"])
	}
}

func TestHTTPTruthTable_EightRows(t *testing.T) {
	srv := newLogicServer(app.WithCompiledEvaluation(true))
	defer srv.Close()

	status, out, body := postJSON(t, srv, "/truth-table", map[string]any{"formula": "(A∨¬B)∧C"})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	rows, ok := out["rows"].([]any)
	if !ok || len(rows) != 8 {
		t.Fatalf("expected 8 rows, got %#v", out["rows"])
	}
	first := rows[0].(map[string]any)
	if first["result"] != true {
		t.Fatalf("expected the all-true row to satisfy the formula, got %#v", first)
	}
}

func TestHTTPModel_ReturnsVerifiedModel(t *testing.T) {
	srv := newLogicServer()
	defer srv.Close()

	status, out, body := postJSON(t, srv, "/model", map[string]any{"formula": "(A∨B)∧(¬A∨C)"})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if out["satisfiable"] != true {
		t.Fatalf("expected satisfiable, got %#v", out)
	}

	raw := out["model"].(map[string]any)
	model := logic.Assignment{}
	for k, v := range raw {
		model[k] = v.(bool)
	}
	ok, err := logic.Evaluate(logic.MustParse("(A∨B)∧(¬A∨C)"), model)
	if err != nil || !ok {
		t.Fatalf("model %v does not satisfy the formula (err=%v)", model, err)
	}

	status, out, _ = postJSON(t, srv, "/model", map[string]any{"formula": "A∧¬A"})
	if status != http.StatusOK || out["satisfiable"] != false {
		t.Fatalf("expected unsatisfiable result, got %d %#v", status, out)
	}
}

func TestHTTPEntails_ModusPonensAndCounterexample(t *testing.T) {
	srv := newLogicServer()
	defer srv.Close()

	status, out, body := postJSON(t, srv, "/entails", map[string]any{
		"premises":   []string{"A→B", "A"},
		"conclusion": "B",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if out["entailed"] != true {
		t.Fatalf("expected entailed, got %#v", out)
	}
	for _, k := range []string{"direct", "refutation", "sat"} {
		if out[k] == nil {
			t.Fatalf("expected %s verdict in report", k)
		}
	}

	status, out, body = postJSON(t, srv, "/entails", map[string]any{
		"premises":   []string{"A∨B"},
		"conclusion": "A",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if out["entailed"] != false {
		t.Fatalf("expected not entailed, got %#v", out)
	}
	ce := out["counterexample"].(map[string]any)
	if ce["A"] != false || ce["B"] != true {
		t.Fatalf("expected counterexample A=false,B=true, got %#v", ce)
	}
}

func TestHTTPEvaluate_FirstOrder(t *testing.T) {
	srv := newLogicServer()
	defer srv.Close()

	status, out, body := postJSON(t, srv, "/evaluate", map[string]any{
		"formula": "∀x (P(x) → Q(x)) ∧ ∃y P(y)",
		"first_order": map[string]any{
			"domain":     []any{1, 2, 3},
			"predicates": map[string]any{"P": []any{2, 3}, "Q": []any{1, 2, 3}},
		},
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if out["value"] != true {
		t.Fatalf("expected true, got %#v", out)
	}
}

func TestHTTPGraph_RoundTripsThroughDOT(t *testing.T) {
	srv := newLogicServer()
	defer srv.Close()

	const formula = "(A∧¬B)→∀x P(x)∨C"
	status, out, body := postJSON(t, srv, "/graph", map[string]any{"formula": formula})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	back, err := dot.Parse(out["dot"].(string))
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != logic.MustParse(formula).String() {
		t.Fatalf("expected %s, got %s", logic.MustParse(formula), back)
	}
}

func TestHTTP_InputErrors(t *testing.T) {
	srv := newLogicServer()
	defer srv.Close()

	t.Run("invalid_json", func(t *testing.T) {
		status, _, _ := post(t, srv, "/entails", `{`)
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", status)
		}
	})

	t.Run("unbalanced_parentheses", func(t *testing.T) {
		status, out, _ := postJSON(t, srv, "/truth-table", map[string]any{"formula": "(A∧B"})
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", status)
		}
		if out["kind"] != "unbalanced parentheses" {
			t.Fatalf("unexpected body: %#v", out)
		}
	})

	t.Run("unbound_variable", func(t *testing.T) {
		status, out, _ := postJSON(t, srv, "/evaluate", map[string]any{
			"formula":    "A∧B",
			"assignment": "A=true",
		})
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", status)
		}
		if out["kind"] != "unbound variable" || out["name"] != "B" {
			t.Fatalf("unexpected body: %#v", out)
		}
	})

	t.Run("premise_index_in_details", func(t *testing.T) {
		status, out, _ := postJSON(t, srv, "/entails", map[string]any{
			"premises":   []string{"A", "A∧"},
			"conclusion": "A",
		})
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", status)
		}
		details, _ := out["details"].(string)
		if !strings.Contains(details, "premise 2") {
			t.Fatalf("expected premise index, got %q", details)
		}
	})
}

func TestHTTPModel_TooManyVariablesWithoutFallback(t *testing.T) {
	srv := newLogicServer(app.WithMaxVariables(2))
	defer srv.Close()

	status, _, body := postJSON(t, srv, "/model", map[string]any{"formula": "A∧B∧C"})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", status, body)
	}
}

func TestHTTPModel_SATFallback(t *testing.T) {
	srv := newLogicServer(app.WithMaxVariables(2), app.WithSATFallback(true))
	defer srv.Close()

	status, out, body := postJSON(t, srv, "/model", map[string]any{"formula": "A∧¬B∧C"})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if out["method"] != app.MethodSAT || out["satisfiable"] != true {
		t.Fatalf("unexpected result: %#v", out)
	}
	model := out["model"].(map[string]any)
	if model["A"] != true || model["B"] != false || model["C"] != true {
		t.Fatalf("unexpected model: %#v", model)
	}
}

func TestHTTPEntails_ConcurrentRequests(t *testing.T) {
	srv := newLogicServer()
	defer srv.Close()

	cases := []struct {
		premises   []string
		conclusion string
		want       bool
	}{
		{[]string{"A→B", "A"}, "B", true},
		{[]string{"A∨B"}, "A", false},
		{[]string{"A→B", "B→C"}, "A→C", true},
	}

	const n = 60
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		tc := cases[i%len(cases)]
		go func() {
			defer wg.Done()
			status, out, body := postMapNoFatal(srv, "/entails", map[string]any{
				"premises":   tc.premises,
				"conclusion": tc.conclusion,
			})
			if status != http.StatusOK {
				errs <- &integrationErr{msg: "status not ok", body: body}
				return
			}
			if out["entailed"] != tc.want {
				errs <- &integrationErr{msg: "unexpected verdict", body: body}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatal(err)
		}
	}
}

type integrationErr struct {
	msg  string
	body string
}

func (e *integrationErr) Error() string {
	return e.msg + ": " + e.body
}

func postMapNoFatal(srv *httptest.Server, path string, payload map[string]any) (int, map[string]any, string) {
	b, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err.Error()
	}
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBuffer(b))
	if err != nil {
		return 0, nil, err.Error()
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	var out map[string]any
	_ = json.Unmarshal(body, &out)
	return resp.StatusCode, out, string(body)
}

func TestHTTPEntails_GiniOracle(t *testing.T) {
	srv := newLogicServer(app.WithOracle(sat.Gini{}))
	defer srv.Close()

	status, out, body := postJSON(t, srv, "/entails", map[string]any{
		"premises":   []string{"A→B", "¬B"},
		"conclusion": "¬A",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if out["entailed"] != true || out["sat"] == nil {
		t.Fatalf("expected modus tollens with a SAT verdict, got %#v", out)
	}
}
