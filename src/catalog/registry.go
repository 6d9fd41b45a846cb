package catalog

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"
	"github.com/sajari/fuzzy"

	"designpatterns/src/output"
	"designpatterns/src/timing"
)

var (
	// ErrUnknownExample is matched by lookups for unregistered names.
	ErrUnknownExample = errors.New("unknown example")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("example already registered")
)

// maxSuggestDistance bounds how far a typo may be from a registered name.
const maxSuggestDistance = 3

// Kind groups examples the way the classic pattern catalogue does.
type Kind string

// Example kinds.
const (
	KindBehavioral Kind = "behavioral"
	KindCreational Kind = "creational"
	KindStructural Kind = "structural"
)

// Env is everything a running example may use.
type Env struct {
	Out    io.Writer
	Clock  timing.Clock
	Rand   *rand.Rand
	Logger zerolog.Logger
}

// Example is one runnable demo.
type Example struct {
	Name    string              `json:"name" yaml:"name"`
	Kind    Kind                `json:"kind" yaml:"kind"`
	Summary string              `json:"summary" yaml:"summary"`
	Run     func(env Env) error `json:"-" yaml:"-"`
}

// UnknownExampleError names the missing example and the closest matches.
type UnknownExampleError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownExampleError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown example %q", e.Name)
	}
	return fmt.Sprintf("unknown example %q, did you mean: %s", e.Name, strings.Join(e.Suggestions, ", "))
}

// Is implements errors.Is support.
func (e *UnknownExampleError) Is(target error) bool {
	return target == ErrUnknownExample
}

// Registry indexes examples by lower-cased name.
type Registry struct {
	mu       sync.RWMutex
	examples []Example
	byName   map[string]int
	model    *fuzzy.Model
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: map[string]int{},
		model:  newModel(),
	}
}

func newModel() *fuzzy.Model {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	return model
}

// Register adds ex. Names are case insensitive and must be unique.
func (r *Registry) Register(ex Example) error {
	key := normalize(ex.Name)
	if key == "" {
		return errors.New("example name must not be empty")
	}
	if ex.Run == nil {
		return fmt.Errorf("example %q has no Run function", ex.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, ex.Name)
	}
	r.byName[key] = len(r.examples)
	r.examples = append(r.examples, ex)
	r.model.TrainWord(key)
	return nil
}

// Lookup finds an example by name.
func (r *Registry) Lookup(name string) (Example, error) {
	r.mu.RLock()
	idx, ok := r.byName[normalize(name)]
	var ex Example
	if ok {
		ex = r.examples[idx]
	}
	r.mu.RUnlock()
	if !ok {
		return Example{}, &UnknownExampleError{Name: name, Suggestions: r.Suggest(name)}
	}
	return ex, nil
}

// List returns examples in registration order.
func (r *Registry) List() Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(Listing, len(r.examples))
	copy(out, r.examples)
	return out
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.examples))
	for i, ex := range r.examples {
		names[i] = ex.Name
	}
	return names
}

// Suggest returns registered names close to name, nearest first.
func (r *Registry) Suggest(name string) []string {
	query := normalize(name)
	if query == "" {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := map[string]int{}
	for _, s := range r.model.Suggestions(query, false) {
		if _, ok := r.byName[s]; ok {
			candidates[s] = levenshtein.ComputeDistance(query, s)
		}
	}
	for key := range r.byName {
		if _, seen := candidates[key]; seen {
			continue
		}
		if d := levenshtein.ComputeDistance(query, key); d <= maxSuggestDistance {
			candidates[key] = d
		} else if strings.HasPrefix(key, query) {
			candidates[key] = d
		}
	}

	keys := make([]string, 0, len(candidates))
	for k := range candidates {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if candidates[keys[i]] == candidates[keys[j]] {
			return keys[i] < keys[j]
		}
		return candidates[keys[i]] < candidates[keys[j]]
	})
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = r.examples[r.byName[k]].Name
	}
	return out
}

// Listing is a printable list of examples.
type Listing []Example

// Table lays the listing out as name, kind, summary columns.
func (l Listing) Table() output.Table {
	t := output.Table{Headers: []string{"Name", "Kind", "Summary"}}
	for _, ex := range l {
		t.Rows = append(t.Rows, []string{ex.Name, string(ex.Kind), ex.Summary})
	}
	return t
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
