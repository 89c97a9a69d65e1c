package steps

import (
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	apperrors "github.com/kbukum/rangekit/errors"
	"github.com/kbukum/rangekit/logger"
	"github.com/kbukum/rangekit/pipe"
)

// Env carries the dependencies some steps need.
type Env struct {
	// Rand drives sample and shuffle.
	Rand *rand.Rand
	// Logger receives the output of log steps. Nil means the global logger.
	Logger *logger.Logger
}

// Factory builds an adaptor from the textual arguments of a call.
type Factory[O any] func(args []string, env Env) (pipe.Adaptor[int, O], error)

// Definition describes a registered step.
type Definition[O any] struct {
	Name    string
	Args    string
	Summary string
	Factory Factory[O]
}

// Registry manages named step factories.
type Registry[O any] struct {
	mu   sync.RWMutex
	defs map[string]Definition[O]
}

// NewRegistry creates a new empty Registry.
func NewRegistry[O any]() *Registry[O] {
	return &Registry[O]{defs: make(map[string]Definition[O])}
}

// Register adds or replaces a step definition.
func (r *Registry[O]) Register(def Definition[O]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.Name] = def
}

// Create builds the named step with args.
func (r *Registry[O]) Create(name string, args []string, env Env) (pipe.Adaptor[int, O], error) {
	r.mu.RLock()
	def, ok := r.defs[name]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.NotFound("step " + name)
	}
	return def.Factory(args, env)
}

// List returns all definitions sorted by name.
func (r *Registry[O]) List() []Definition[O] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]Definition[O], 0, len(r.defs))
	for _, def := range r.defs {
		defs = append(defs, def)
	}
	slices.SortFunc(defs, func(a, b Definition[O]) int { return strings.Compare(a.Name, b.Name) })
	return defs
}
