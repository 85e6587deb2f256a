package app

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

type LatencyObserver interface {
	ObserveLatency(op string, duration time.Duration, err error)
}

// LatencyLogger writes one line per operation. Failed operations also
// carry the running failure count for that operation, so a burst of bad
// input shows up in the log without a metrics backend.
type LatencyLogger struct {
	logger   *log.Logger
	mu       sync.Mutex
	failures map[string]uint64
}

func NewLatencyLogger(logger *log.Logger) *LatencyLogger {
	return &LatencyLogger{logger: logger, failures: map[string]uint64{}}
}

func (l *LatencyLogger) ObserveLatency(op string, duration time.Duration, err error) {
	if l == nil || l.logger == nil {
		return
	}
	ms := float64(duration.Microseconds()) / 1000.0
	if err == nil {
		l.logger.Printf("logic_op_latency op=%s duration_ms=%.3f", op, ms)
		return
	}

	l.mu.Lock()
	l.failures[op]++
	n := l.failures[op]
	l.mu.Unlock()

	l.logger.Printf("logic_op_latency op=%s duration_ms=%.3f failures=%d kind=%s error=%q", op, ms, n, errorKind(err), err.Error())
}

// Failures returns how many failed calls of op have been logged.
func (l *LatencyLogger) Failures(op string) uint64 {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failures[op]
}

func errorKind(err error) string {
	var parseErr *logic.ParseError
	var evalErr *logic.EvaluationError
	switch {
	case errors.As(err, &parseErr):
		return strings.ReplaceAll(parseErr.Kind.String(), " ", "_")
	case errors.As(err, &evalErr):
		return strings.ReplaceAll(evalErr.Kind.String(), " ", "_")
	case errors.Is(err, logic.ErrTooManyVariables):
		return "too_many_variables"
	case errors.Is(err, logic.ErrAlgorithmsDisagree):
		return "algorithms_disagree"
	default:
		return "other"
	}
}

// AsyncLatencyObserver forwards events to next from a single goroutine.
// Observe never blocks: when the buffer is full the event is dropped and
// counted.
type AsyncLatencyObserver struct {
	next    LatencyObserver
	events  chan latencyEvent
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	dropped atomic.Uint64
}

type latencyEvent struct {
	op       string
	duration time.Duration
	err      error
}

func NewAsyncLatencyObserver(next LatencyObserver, buffer int) *AsyncLatencyObserver {
	if buffer <= 0 {
		buffer = 1
	}

	o := &AsyncLatencyObserver{
		next:   next,
		events: make(chan latencyEvent, buffer),
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		for ev := range o.events {
			if o.next == nil {
				continue
			}
			o.next.ObserveLatency(ev.op, ev.duration, ev.err)
		}
	}()

	return o
}

func (o *AsyncLatencyObserver) ObserveLatency(op string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.closed {
		o.dropped.Add(1)
		return
	}
	select {
	case o.events <- latencyEvent{op: op, duration: duration, err: err}:
	default:
		o.dropped.Add(1)
	}
}

func (o *AsyncLatencyObserver) Dropped() uint64 {
	if o == nil {
		return 0
	}
	return o.dropped.Load()
}

// Close flushes buffered events and stops the worker. It is safe to call
// more than once.
func (o *AsyncLatencyObserver) Close() {
	if o == nil {
		return
	}
	o.once.Do(func() {
		o.mu.Lock()
		o.closed = true
		close(o.events)
		o.mu.Unlock()
		o.wg.Wait()
	})
}
