package rule

import (
	"sort"

	"sniff/internal/token"
)

// Registry holds the registered rules in registration order and indexes
// them by trigger kind for the dispatch loop.
type Registry struct {
	rules   []Rule
	order   map[string]int
	byKind  map[token.Kind][]Rule
	skipped map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{
		order:   make(map[string]int),
		byKind:  make(map[token.Kind][]Rule),
		skipped: make(map[string]bool),
	}
}

// Register adds a rule. Registering the same name twice replaces nothing;
// the second registration is ignored.
func (r *Registry) Register(rl Rule) {
	if _, dup := r.order[rl.Name()]; dup {
		return
	}
	r.order[rl.Name()] = len(r.rules)
	r.rules = append(r.rules, rl)
	for _, k := range rl.Triggers() {
		r.byKind[k] = append(r.byKind[k], rl)
	}
}

// Disable excludes a rule from dispatch without unregistering it.
func (r *Registry) Disable(name string) {
	r.skipped[name] = true
}

// Enabled reports whether the named rule participates in dispatch.
func (r *Registry) Enabled(name string) bool {
	_, ok := r.order[name]
	return ok && !r.skipped[name]
}

// Rules returns all registered rules sorted by name, for listings.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Dispatch walks the stream once. At each token every rule triggered by
// the token's kind runs, in registration order. Token indices discovered
// by rules are only valid within this pass.
func (r *Registry) Dispatch(ctx *Context) {
	n := ctx.Stream.Len()
	for i := 0; i < n; i++ {
		kind := ctx.Stream.At(i).Kind
		for _, rl := range r.byKind[kind] {
			if r.skipped[rl.Name()] {
				continue
			}
			ctx.ruleName = rl.Name()
			ctx.lastIdx = -1
			rl.Process(ctx, i)
		}
	}
	ctx.ruleName = ""
}
