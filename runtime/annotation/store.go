package annotation

import (
	"runtime"
	"sync"
	"weak"

	"go.uber.org/zap"
)

// Registry holds the annotations attached to classes.
//
// Entries are keyed by weak pointers to the class handle, so the registry
// never keeps a class alive. Once a handle becomes unreachable its entry is
// pruned by a runtime cleanup.
type Registry struct {
	mu       sync.Mutex
	subjects map[weak.Pointer[Class]]*subject

	source TypeSource
	logger *zap.Logger
}

// subject is the ordered record list of one class.
// mu is held across a whole attachment so that check, append and
// structure capture happen as a unit.
type subject struct {
	mu      sync.Mutex
	records []Record
}

// Option configures a Registry.
type Option func(*Registry)

// WithTypeSource sets the source of structural types. Defaults to ReflectTypeSource.
func WithTypeSource(source TypeSource) Option {
	return func(r *Registry) {
		if source != nil {
			r.source = source
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an isolated registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		subjects: make(map[weak.Pointer[Class]]*subject),
		source:   ReflectTypeSource{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry used by the package-level functions.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// subjectFor returns the entry for c, creating it on first touch.
func (r *Registry) subjectFor(c *Class) *subject {
	key := weak.Make(c)

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.subjects[key]; ok {
		return s
	}
	s := &subject{}
	r.subjects[key] = s
	runtime.AddCleanup(c, r.prune, key)
	r.logger.Debug("annotation subject created", zap.String("class", c.Name()))
	return s
}

func (r *Registry) prune(key weak.Pointer[Class]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subjects[key]; ok {
		delete(r.subjects, key)
		r.logger.Debug("annotation subject pruned", zap.Int("remaining", len(r.subjects)))
	}
}

// Annotations returns a copy of the records attached to c that match filter.
// The first call for a class creates its (empty) record list.
func (r *Registry) Annotations(c *Class, filter Filter) []Record {
	if c == nil {
		return []Record{}
	}
	s := r.subjectFor(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterRecords(s.records, filter)
}

// SetAnnotation appends rec to the records of c. No uniqueness rule is applied.
func (r *Registry) SetAnnotation(c *Class, rec Record) {
	if c == nil {
		return
	}
	s := r.subjectFor(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Len returns the number of classes currently tracked.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subjects)
}

// Reset drops every entry (used for testing).
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subjects = make(map[weak.Pointer[Class]]*subject)
}

func filterRecords(records []Record, filter Filter) []Record {
	result := make([]Record, 0, len(records))
	for _, rec := range records {
		if filter.match(rec) {
			result = append(result, rec)
		}
	}
	return result
}

// Annotations returns the records attached to c in the default registry.
func Annotations(c *Class, filter Filter) []Record {
	return Default().Annotations(c, filter)
}

// SetAnnotation appends rec to c in the default registry.
func SetAnnotation(c *Class, rec Record) {
	Default().SetAnnotation(c, rec)
}
