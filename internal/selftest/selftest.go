// Package selftest runs named correctness checks against package apint from
// inside the apint binary, so a build can be verified on the machine it runs
// on without the Go toolchain.
package selftest

import (
	"fmt"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shabbyrobe/go-apint/internal/assert"
)

var (
	ErrUnknownCase = errors.New("selftest: unknown case")
	ErrFailed      = errors.New("selftest: cases failed")
)

// Func is the body of a case. A failed Must* assertion on tt ends the case.
type Func func(tt assert.T)

type Case struct {
	Name string
	Fn   Func
}

// Registry holds cases in registration order.
type Registry struct {
	cases []Case
	index map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: map[string]int{}}
}

// Register adds a case. It panics if name is empty or already registered.
func (r *Registry) Register(name string, fn Func) {
	if name == "" || fn == nil {
		panic("selftest: case needs a name and a func")
	}
	if _, ok := r.index[name]; ok {
		panic(fmt.Sprintf("selftest: duplicate case %q", name))
	}
	r.index[name] = len(r.cases)
	r.cases = append(r.cases, Case{Name: name, Fn: fn})
}

func (r *Registry) Names() []string {
	out := make([]string, len(r.cases))
	for i, c := range r.cases {
		out[i] = c.Name
	}
	return out
}

func (r *Registry) Len() int { return len(r.cases) }

// Run executes the named cases, or every case if names is empty. Cases run
// in registration order regardless of the order of names. Every name is
// checked before anything runs.
func (r *Registry) Run(names ...string) (*Report, error) {
	selected := r.cases
	if len(names) > 0 {
		var unknown []string
		idx := make([]int, 0, len(names))
		seen := map[int]bool{}
		for _, n := range names {
			i, ok := r.index[n]
			if !ok {
				unknown = append(unknown, n)
				continue
			}
			if !seen[i] {
				seen[i] = true
				idx = append(idx, i)
			}
		}
		if len(unknown) > 0 {
			return nil, errors.Wrapf(ErrUnknownCase, "%s", strings.Join(unknown, ", "))
		}
		sort.Ints(idx)
		selected = make([]Case, len(idx))
		for j, i := range idx {
			selected[j] = r.cases[i]
		}
	}

	rep := &Report{}
	for _, c := range selected {
		rep.Results = append(rep.Results, runCase(c))
	}
	return rep, nil
}

// fatalSignal unwinds a case after a Must* failure.
type fatalSignal struct{}

type recorder struct {
	failures []string
}

func (rec *recorder) Helper() {}

func (rec *recorder) Error(args ...interface{}) {
	rec.failures = append(rec.failures, strings.TrimSpace(fmt.Sprint(args...)))
}

func (rec *recorder) Fatal(args ...interface{}) {
	rec.Error(args...)
	panic(fatalSignal{})
}

func runCase(c Case) (res Result) {
	rec := &recorder{}
	start := time.Now()
	res.Name = c.Name

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(fatalSignal); !ok {
				rec.failures = append(rec.failures, fmt.Sprintf("panic: %v\n%s", r, debug.Stack()))
			}
		}
		res.Duration = time.Since(start)
		res.Failures = rec.failures
	}()

	c.Fn(assert.WrapTB(rec))
	return res
}
