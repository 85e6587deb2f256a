package logic

import (
	"reflect"
	"testing"
)

func TestParseAssignment_TruthSpellings(t *testing.T) {
	a, err := ParseAssignment(`A=true, B=F ,C=1,D=false,E=T,F=0`)
	if err != nil {
		t.Fatal(err)
	}
	want := Assignment{"A": true, "B": false, "C": true, "D": false, "E": true, "F": false}
	if !reflect.DeepEqual(a, want) {
		t.Fatalf("expected %v, got %v", want, a)
	}
}

func TestParseAssignment_EmptyAndInvalid(t *testing.T) {
	a, err := ParseAssignment("")
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 0 {
		t.Fatalf("expected empty assignment, got %v", a)
	}

	for _, raw := range []string{"A", "=true", "A=maybe", "A=true,A=false"} {
		if _, err := ParseAssignment(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
