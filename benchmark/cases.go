package benchmark

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/ubench/core"
	"github.com/dshills/ubench/physics"
	"github.com/dshills/ubench/provider"
)

// Suite groups related benchmark cases
type Suite string

const (
	SuiteMath    Suite = "math"
	SuitePhysics Suite = "physics"
)

// Errors returned while selecting cases
var (
	ErrUnknownSuite  = errors.New("unknown suite")
	ErrUnknownMethod = errors.New("unknown method")
	ErrDuplicate     = errors.New("duplicate selection")
	ErrNoScene       = errors.New("physics suite requires a bootstrapped scene")
	ErrNoCases       = errors.New("no benchmark cases selected")
)

// Method names per suite
var (
	MathMethods    = []string{"acos", "atan", "cos", "exp", "pow", "sin", "sqrt"}
	PhysicsMethods = []string{"quat", "quat-id"}
)

// AllSuites lists every suite in report order
func AllSuites() []Suite {
	return []Suite{SuiteMath, SuitePhysics}
}

// ParseSuite converts a configuration string to a Suite
func ParseSuite(s string) (Suite, error) {
	suite := Suite(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(AllSuites(), suite) {
		return suite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSuite, s)
}

// ParseSuites converts a configured suite list. An empty list selects every
// suite; a suite named twice is an error.
func ParseSuites(names []string) ([]Suite, error) {
	if len(names) == 0 {
		return AllSuites(), nil
	}

	suites := make([]Suite, 0, len(names))
	for _, name := range names {
		suite, err := ParseSuite(name)
		if err != nil {
			return nil, err
		}
		if slices.Contains(suites, suite) {
			return nil, fmt.Errorf("%w: suite %s", ErrDuplicate, suite)
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

// Case is one runnable benchmark method bound to its collaborator
type Case struct {
	Name     string
	Suite    Suite
	Provider provider.Kind // empty for the physics suite
	Method   string
	// Results is the number of values the method hands to the sink per call
	Results int

	// Run is the timed body
	Run func(hole *core.Blackhole, data *core.Fixture)
	// Verify runs the same body against a checking sink before timing
	Verify func(check *core.CheckingSink, data *core.Fixture)
}

// Selection narrows which cases are built
type Selection struct {
	Suites    []Suite
	Providers []provider.Kind
	// Methods filters by method name; empty keeps all
	Methods []string
}

// Cases builds the selected cases. scene is required only when the
// physics suite is selected.
func Cases(sel Selection, scene *physics.Scene) ([]Case, error) {
	suites := sel.Suites
	if len(suites) == 0 {
		suites = AllSuites()
	}
	kinds := sel.Providers
	if len(kinds) == 0 {
		kinds = provider.AllKinds()
	}
	if err := uniq("suite", suites); err != nil {
		return nil, err
	}
	if err := uniq("provider", kinds); err != nil {
		return nil, err
	}
	for _, m := range sel.Methods {
		if !slices.Contains(MathMethods, m) && !slices.Contains(PhysicsMethods, m) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, m)
		}
	}

	factory := provider.NewDefaultFactory()
	var cases []Case
	for _, suite := range suites {
		switch suite {
		case SuiteMath:
			for _, kind := range kinds {
				p, err := factory.CreateProvider(kind)
				if err != nil {
					return nil, err
				}
				cases = append(cases, MathCases(p)...)
			}
		case SuitePhysics:
			if scene == nil || scene.Box == nil || scene.System == nil {
				return nil, ErrNoScene
			}
			cases = append(cases, PhysicsCases(scene)...)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, suite)
		}
	}

	if len(sel.Methods) > 0 {
		cases = slices.DeleteFunc(cases, func(c Case) bool {
			return !slices.Contains(sel.Methods, c.Method)
		})
	}
	if len(cases) == 0 {
		return nil, ErrNoCases
	}
	return cases, nil
}

// uniq rejects a selection list that names an entry twice
func uniq[T comparable](what string, items []T) error {
	for i, item := range items {
		if slices.Contains(items[:i], item) {
			return fmt.Errorf("%w: %s %v", ErrDuplicate, what, item)
		}
	}
	return nil
}

// body is a pair of timed and verifying bodies of one method
type body struct {
	run    func(*core.Blackhole, *core.Fixture)
	verify func(*core.CheckingSink, *core.Fixture)
}

// builtinKind reports which generated bodies serve p, if any
func builtinKind(p provider.Provider) (provider.Kind, bool) {
	switch p.(type) {
	case provider.Std:
		return provider.KindStd, true
	case provider.Clamped:
		return provider.KindClamped, true
	case provider.Math32:
		return provider.KindMath32, true
	}
	return "", false
}

// MathCases returns the math suite for p. Built-in providers get the
// generated bodies in methods_gen.go, which call the provider and the
// blackhole directly. Other providers go through the generic methods with
// p as an interface value, so their timings include a dynamic call per
// result.
func MathCases(p provider.Provider) []Case {
	kind, builtin := builtinKind(p)
	if !builtin {
		kind = provider.Kind(p.Name())
	}

	cases := make([]Case, 0, len(MathMethods))
	for _, method := range MathMethods {
		b, ok := timedBodies[kind][method]
		if !builtin || !ok {
			b = genericBody(p, method)
		}
		cases = append(cases, Case{
			Name:     fmt.Sprintf("%s/%s/%s", SuiteMath, kind, method),
			Suite:    SuiteMath,
			Provider: kind,
			Method:   method,
			Results:  mathResults[method],
			Run:      b.run,
			Verify:   b.verify,
		})
	}
	return cases
}

// mathResults is the number of values each math method consumes per call
var mathResults = map[string]int{
	"acos": 3,
	"atan": 4,
	"cos":  4,
	"exp":  4,
	"pow":  3,
	"sin":  4,
	"sqrt": 3,
}

func genericBody(p provider.Provider, method string) body {
	switch method {
	case "acos":
		return body{
			run:    func(h *core.Blackhole, d *core.Fixture) { Acos(p, h, d) },
			verify: func(c *core.CheckingSink, d *core.Fixture) { Acos(p, c, d) },
		}
	case "atan":
		return body{
			run:    func(h *core.Blackhole, d *core.Fixture) { Atan(p, h, d) },
			verify: func(c *core.CheckingSink, d *core.Fixture) { Atan(p, c, d) },
		}
	case "cos":
		return body{
			run:    func(h *core.Blackhole, d *core.Fixture) { Cos(p, h, d) },
			verify: func(c *core.CheckingSink, d *core.Fixture) { Cos(p, c, d) },
		}
	case "exp":
		return body{
			run:    func(h *core.Blackhole, d *core.Fixture) { Exp(p, h, d) },
			verify: func(c *core.CheckingSink, d *core.Fixture) { Exp(p, c, d) },
		}
	case "pow":
		return body{
			run:    func(h *core.Blackhole, d *core.Fixture) { Pow(p, h, d) },
			verify: func(c *core.CheckingSink, d *core.Fixture) { Pow(p, c, d) },
		}
	case "sin":
		return body{
			run:    func(h *core.Blackhole, d *core.Fixture) { Sin(p, h, d) },
			verify: func(c *core.CheckingSink, d *core.Fixture) { Sin(p, c, d) },
		}
	case "sqrt":
		return body{
			run:    func(h *core.Blackhole, d *core.Fixture) { Sqrt(p, h, d) },
			verify: func(c *core.CheckingSink, d *core.Fixture) { Sqrt(p, c, d) },
		}
	}
	panic("benchmark: no generic body for " + method)
}

// PhysicsCases returns the physics accessor suite for the scene's box:
// reading the rotation from the body, and through the body interface by ID.
func PhysicsCases(scene *physics.Scene) []Case {
	box := scene.Box
	bi := scene.System.BodyInterface()
	id := box.ID()

	return []Case{
		{
			Name:    fmt.Sprintf("%s/%s", SuitePhysics, "quat"),
			Suite:   SuitePhysics,
			Method:  "quat",
			Results: 4,
			Run:     func(h *core.Blackhole, _ *core.Fixture) { quat(box, h) },
			Verify:  func(c *core.CheckingSink, _ *core.Fixture) { quatChecked(box, c) },
		},
		{
			Name:    fmt.Sprintf("%s/%s", SuitePhysics, "quat-id"),
			Suite:   SuitePhysics,
			Method:  "quat-id",
			Results: 4,
			Run:     func(h *core.Blackhole, _ *core.Fixture) { quatByID(bi, id, h) },
			Verify:  func(c *core.CheckingSink, _ *core.Fixture) { quatByIDChecked(bi, id, c) },
		},
	}
}
