// internal/app/service.go
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
	"github.com/awmpietro/golang-logic-inference/internal/logic/dot"
	"github.com/awmpietro/golang-logic-inference/internal/logic/eval"
)

type Cache interface {
	GetOrCompute(text string, fn func() (logic.Formula, error)) (logic.Formula, error)
}

// Oracle is an independent satisfiability procedure used to cross-check
// exhaustive verdicts and to answer when enumeration is refused.
type Oracle interface {
	Satisfiable(f logic.Formula) (logic.Assignment, bool, error)
	Entails(premises []logic.Formula, conclusion logic.Formula) (logic.Verdict, error)
}

type Service struct {
	cache       Cache
	oracle      Oracle
	observer    LatencyObserver
	maxVars     int
	parallelism int
	compiled    bool
	satFallback bool
}

type Option func(*Service)

func WithLatencyObserver(o LatencyObserver) Option {
	return func(s *Service) { s.observer = o }
}

func WithOracle(o Oracle) Option {
	return func(s *Service) { s.oracle = o }
}

func WithMaxVariables(n int) Option {
	return func(s *Service) { s.maxVars = n }
}

func WithParallelism(n int) Option {
	return func(s *Service) { s.parallelism = n }
}

// WithCompiledEvaluation evaluates truth table rows with a compiled expr
// program instead of walking the tree.
func WithCompiledEvaluation(on bool) Option {
	return func(s *Service) { s.compiled = on }
}

// WithSATFallback lets FindModel and Entails answer through the oracle
// when a formula has more variables than the enumeration cap.
func WithSATFallback(on bool) Option {
	return func(s *Service) { s.satFallback = on }
}

func NewService(cache Cache, opts ...Option) *Service {
	s := &Service{
		cache:       cache,
		maxVars:     logic.DefaultMaxVariables,
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse returns the cached syntax tree for text.
func (s *Service) Parse(text string) (f logic.Formula, err error) {
	defer s.observe("parse", time.Now(), &err)
	return s.parse(text)
}

func (s *Service) Evaluate(text string, a logic.Assignment) (v bool, err error) {
	defer s.observe("evaluate", time.Now(), &err)

	f, err := s.parse(text)
	if err != nil {
		return false, err
	}
	if a == nil {
		a = logic.Assignment{}
	}
	return logic.Evaluate(f, a)
}

func (s *Service) EvaluateFirstOrder(text string, in FirstOrderInput) (v bool, err error) {
	defer s.observe("evaluate_first_order", time.Now(), &err)

	f, err := s.parse(text)
	if err != nil {
		return false, err
	}
	interp := logic.Interpretation{
		Domain:     logic.Domain(in.Domain),
		Predicates: logic.ExtensionPredicates(in.Predicates),
		Props:      in.Props,
	}
	return logic.EvaluateFirstOrder(f, interp, logic.Bindings(in.Bindings))
}

func (s *Service) TruthTable(text string) (res *TruthTableResult, err error) {
	defer s.observe("truth_table", time.Now(), &err)

	f, err := s.parse(text)
	if err != nil {
		return nil, err
	}

	opts := s.tableOptions()
	if s.compiled {
		if c, cerr := eval.Compile(f); cerr == nil {
			opts = append(opts, logic.WithEvaluator(c))
		}
	}

	rows, err := logic.TruthTable(f, opts...)
	if err != nil {
		return nil, err
	}
	return &TruthTableResult{Formula: f.String(), Variables: logic.Variables(f), Rows: rows}, nil
}

func (s *Service) FindModel(text string) (res *ModelResult, err error) {
	defer s.observe("find_model", time.Now(), &err)

	f, err := s.parse(text)
	if err != nil {
		return nil, err
	}

	model, err := logic.FindModel(f, s.tableOptions()...)
	switch {
	case err == nil:
		return &ModelResult{Formula: f.String(), Satisfiable: true, Model: model, Method: MethodExhaustive}, nil
	case errors.Is(err, logic.ErrNotSatisfiable):
		return &ModelResult{Formula: f.String(), Satisfiable: false, Method: MethodExhaustive}, nil
	case errors.Is(err, logic.ErrTooManyVariables) && s.canFallBack():
		model, ok, err := s.oracle.Satisfiable(f)
		if err != nil {
			return nil, err
		}
		return &ModelResult{Formula: f.String(), Satisfiable: ok, Model: model, Method: MethodSAT}, nil
	default:
		return nil, err
	}
}

func (s *Service) Entails(premiseTexts []string, conclusionText string) (rep *EntailmentReport, err error) {
	defer s.observe("entails", time.Now(), &err)

	premises := make([]logic.Formula, 0, len(premiseTexts))
	for i, text := range premiseTexts {
		f, err := s.parse(text)
		if err != nil {
			return nil, fmt.Errorf("premise %d: %w", i+1, err)
		}
		premises = append(premises, f)
	}
	conclusion, err := s.parse(conclusionText)
	if err != nil {
		return nil, fmt.Errorf("conclusion: %w", err)
	}

	rep = &EntailmentReport{
		Premises:   make([]string, len(premises)),
		Conclusion: conclusion.String(),
		Variables:  logic.Variables(append(append([]logic.Formula{}, premises...), conclusion)...),
	}
	for i, p := range premises {
		rep.Premises[i] = p.String()
	}

	direct, refutation, err := logic.EntailsBoth(premises, conclusion, s.tableOptions()...)
	if errors.Is(err, logic.ErrTooManyVariables) && s.canFallBack() {
		v, err := s.oracle.Entails(premises, conclusion)
		if err != nil {
			return nil, err
		}
		rep.Method = MethodSAT
		rep.SAT = &v
		rep.Entailed = v.Entailed
		rep.Counterexample = v.Counterexample
		return rep, nil
	}
	if err != nil {
		return nil, err
	}

	rep.Method = MethodExhaustive
	rep.Direct = &direct
	rep.Refutation = &refutation
	rep.Entailed = direct.Entailed
	rep.Counterexample = direct.Counterexample

	if s.oracle != nil {
		v, err := s.oracle.Entails(premises, conclusion)
		if err != nil {
			return nil, err
		}
		if v.Entailed != direct.Entailed {
			return nil, fmt.Errorf("%w: exhaustive=%t sat=%t", logic.ErrAlgorithmsDisagree, direct.Entailed, v.Entailed)
		}
		rep.SAT = &v
	}
	return rep, nil
}

func (s *Service) Graph(text string) (out string, err error) {
	defer s.observe("graph", time.Now(), &err)

	f, err := s.parse(text)
	if err != nil {
		return "", err
	}
	return dot.Render(f)
}

func (s *Service) parse(text string) (logic.Formula, error) {
	f, err := s.cache.GetOrCompute(text, func() (logic.Formula, error) {
		return logic.Parse(text)
	})
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", text, err)
	}
	return f, nil
}

func (s *Service) tableOptions() []logic.TableOption {
	return []logic.TableOption{
		logic.WithMaxVariables(s.maxVars),
		logic.WithParallelism(s.parallelism),
	}
}

func (s *Service) canFallBack() bool {
	return s.satFallback && s.oracle != nil
}

func (s *Service) observe(op string, start time.Time, err *error) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveLatency(op, time.Since(start), *err)
}
