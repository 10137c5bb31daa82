// Package effect compiles the declarative effect primitives from the
// card catalog into executable state.Runner closures, and
// implements the roughly sixty primitives themselves: damage/heal,
// buffs, summoning, resource manipulation, hero replacement, board wipes,
// conditional flow, and the two secrets-only helpers.
package effect

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/gameerr"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

// Spec is one declarative effect entry from a card's effects[] list,
// with nested then/else lists for the conditional-flow primitives.
type Spec struct {
	Effect string
	Params map[string]any
	Then   []Spec
	Else   []Spec
}

// primitiveFn is a compiled leaf effect. ctx carries the trigger context
// the enclosing Runner was invoked with (nil outside a trigger), params
// is this Spec's own declarative parameters.
type primitiveFn func(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event

// Compile turns a declarative effect list into a single state.Runner that
// executes every entry in order and flattens nested conditional results
// into one event slice.
func Compile(specs []Spec) state.Runner {
	return func(g *state.GameState, src state.Source, tgt state.Target, ctx state.Context) []event.Event {
		var out []event.Event
		for _, s := range specs {
			out = append(out, runOne(g, src, tgt, ctx, s)...)
		}
		return out
	}
}

func runOne(g *state.GameState, src state.Source, tgt state.Target, ctx state.Context, s Spec) []event.Event {
	if cond, ok := conditionals[s.Effect]; ok {
		if cond(g, src, tgt, ctx, state.Context(s.Params)) {
			return Compile(s.Then)(g, src, tgt, ctx)
		}
		return Compile(s.Else)(g, src, tgt, ctx)
	}

	fn, ok := registry[s.Effect]
	if !ok {
		// Malformed/unknown effect names are rejected at catalog load
		// time; reaching here at runtime means a bug elsewhere, and
		// the pipeline favors a soft no-op over a panic either way.
		return nil
	}
	return fn(g, src, tgt, ctx, state.Context(s.Params))
}

// registry maps an effect primitive's catalog name to its compiled
// implementation. Populated by the register() calls in this package's
// init functions.
var registry = map[string]primitiveFn{}

func register(name string, fn primitiveFn) {
	registry[name] = fn
}

// DecodeSpecs decodes a loosely-typed effects[] list (the shape a JSON
// or YAML catalog decode produces) into []Spec, recursing into nested
// then/else arrays. Unknown effect names are rejected here so a
// malformed catalog fails at load time.
func DecodeSpecs(items []any) ([]Spec, error) {
	out := make([]Spec, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, gameerr.New(gameerr.CodeInvalidCatalog, "effect: malformed effect entry")
		}
		s, err := DecodeSpec(m)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// DecodeSpec decodes a single loosely-typed effect map into a Spec.
func DecodeSpec(m map[string]any) (Spec, error) {
	name, _ := m["effect"].(string)
	if name == "" {
		return Spec{}, gameerr.New(gameerr.CodeInvalidCatalog, `effect: entry missing "effect" name`)
	}
	if !Known(name) {
		return Spec{}, gameerr.Newf(gameerr.CodeInvalidCatalog, "effect: unknown effect %q", name)
	}
	params := make(map[string]any, len(m))
	for k, v := range m {
		if k == "effect" || k == "then" || k == "else" {
			continue
		}
		params[k] = v
	}
	spec := Spec{Effect: name, Params: params}
	if raw, ok := m["then"].([]any); ok {
		then, err := DecodeSpecs(raw)
		if err != nil {
			return Spec{}, err
		}
		spec.Then = then
	}
	if raw, ok := m["else"].([]any); ok {
		els, err := DecodeSpecs(raw)
		if err != nil {
			return Spec{}, err
		}
		spec.Else = els
	}
	return spec, nil
}

// Known reports whether name is a registered primitive or conditional.
// The catalog loader uses it to reject unknown effect names at load time.
func Known(name string) bool {
	if _, ok := registry[name]; ok {
		return true
	}
	_, ok := conditionals[name]
	return ok
}

// conditionalFn evaluates a conditional primitive's test; the compiler
// runs s.Then or s.Else accordingly.
type conditionalFn func(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) bool

var conditionals = map[string]conditionalFn{}

func registerConditional(name string, fn conditionalFn) {
	conditionals[name] = fn
}
