package app

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

type spyLatencyObserver struct {
	mu   sync.Mutex
	ops  []string
	errs []error
}

func (s *spyLatencyObserver) ObserveLatency(op string, duration time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, op)
	s.errs = append(s.errs, err)
}

func (s *spyLatencyObserver) Ops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ops...)
}

func TestLatencyLogger_WritesOperationAndError(t *testing.T) {
	var buf bytes.Buffer
	l := NewLatencyLogger(log.New(&buf, "", 0))

	l.ObserveLatency("entails", 1500*time.Microsecond, nil)
	l.ObserveLatency("graph", time.Millisecond, errors.New("render failed"))

	out := buf.String()
	if !strings.Contains(out, "op=entails duration_ms=1.500") {
		t.Fatalf("unexpected log output: %q", out)
	}
	if !strings.Contains(out, `failures=1 kind=other error="render failed"`) {
		t.Fatalf("expected error in log output: %q", out)
	}
}

func TestLatencyLogger_CountsFailuresPerOperation(t *testing.T) {
	var buf bytes.Buffer
	l := NewLatencyLogger(log.New(&buf, "", 0))

	_, parseErr := logic.Parse("A∧")
	l.ObserveLatency("parse", time.Millisecond, parseErr)
	l.ObserveLatency("parse", time.Millisecond, nil)
	l.ObserveLatency("parse", time.Millisecond, parseErr)
	l.ObserveLatency("find_model", time.Millisecond, fmt.Errorf("find model: %w", logic.ErrTooManyVariables))

	if got := l.Failures("parse"); got != 2 {
		t.Fatalf("expected 2 parse failures, got %d", got)
	}
	if got := l.Failures("find_model"); got != 1 {
		t.Fatalf("expected 1 find_model failure, got %d", got)
	}
	if got := l.Failures("entails"); got != 0 {
		t.Fatalf("expected no entails failures, got %d", got)
	}

	out := buf.String()
	if !strings.Contains(out, "op=parse duration_ms=1.000 failures=2 kind=missing_operand") {
		t.Fatalf("expected second parse failure with its kind: %q", out)
	}
	if !strings.Contains(out, "failures=1 kind=too_many_variables") {
		t.Fatalf("expected classified find_model failure: %q", out)
	}
}

func TestAsyncLatencyObserver_DeliversEventsOnClose(t *testing.T) {
	spy := &spyLatencyObserver{}
	async := NewAsyncLatencyObserver(spy, 8)

	async.ObserveLatency("parse", 1*time.Millisecond, nil)
	async.ObserveLatency("truth_table", 2*time.Millisecond, nil)
	async.Close()

	if got := len(spy.Ops()); got != 2 {
		t.Fatalf("expected 2 delivered events, got %d", got)
	}
}

func TestAsyncLatencyObserver_DropsWhenBufferIsFull(t *testing.T) {
	spy := &spyLatencyObserver{}
	async := NewAsyncLatencyObserver(spy, 1)

	for i := 0; i < 1000; i++ {
		async.ObserveLatency("evaluate", time.Microsecond, nil)
	}
	async.Close()

	if async.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0")
	}
}

func TestAsyncLatencyObserver_CloseDuringConcurrentObserveDoesNotPanic(t *testing.T) {
	spy := &spyLatencyObserver{}
	async := NewAsyncLatencyObserver(spy, 32)

	const workers = 8
	const perWorker = 200
	var wg sync.WaitGroup
	var panics atomic.Int32

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if recover() != nil {
					panics.Add(1)
				}
			}()
			for j := 0; j < perWorker; j++ {
				async.ObserveLatency("find_model", time.Microsecond, nil)
			}
		}()
	}

	time.Sleep(1 * time.Millisecond)
	async.Close()
	async.Close()
	wg.Wait()

	if panics.Load() != 0 {
		t.Fatalf("expected no panics, got %d", panics.Load())
	}
}
