package dot

import (
	"reflect"
	"strings"
	"testing"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

func TestRender_ContainsOperatorsAndLeaves(t *testing.T) {
	out, err := Render(logic.MustParse("(A∧B)→¬C"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "digraph") {
		t.Fatalf("expected a digraph, got:\n%s", out)
	}
	for _, want := range []string{`"→"`, `"∧"`, `"¬"`, `"var:A"`, `"var:C"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output:\n%s", want, out)
		}
	}
}

func TestRender_ParseRoundTrip(t *testing.T) {
	for _, src := range []string{
		"(A∧B)→¬C",
		"A→B→C",
		"∀x (P(x) → Q(x)) ∧ ∃y P(y)",
		"¬¬A",
		"A",
	} {
		f := logic.MustParse(src)
		out, err := Render(f)
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		back, err := Parse(out)
		if err != nil {
			t.Fatalf("%s: %v\n%s", src, err, out)
		}
		if !reflect.DeepEqual(back, f) {
			t.Fatalf("%s: round trip produced %s", src, back)
		}
	}
}

func TestParse_RejectsMalformedGraphs(t *testing.T) {
	cases := map[string]string{
		"not dot":       `digraph {`,
		"two roots":     `digraph { a [comment="var:A"]; b [comment="var:B"]; }`,
		"unknown kind":  `digraph { a [comment="xor"]; }`,
		"missing sides": `digraph { a [comment="and"]; b [comment="var:A"]; c [comment="var:B"]; a -> b; a -> c; }`,
		"not arity":     `digraph { a [comment="not"]; }`,
	}
	for name, src := range cases {
		if _, err := Parse(src); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
