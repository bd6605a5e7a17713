package annotation

import (
	"reflect"
	"sync"
)

type emptyType struct{}

type runner struct{}

func (r *runner) Run() {}

type sampleType struct {
	Title string
	Count int
}

func newSampleType(title string) *sampleType {
	return &sampleType{Title: title}
}

func (s *sampleType) Run(name string) string { return name }

func (s *sampleType) Stop() {}

type pair struct {
	Left  string
	Right int
}

func newPair(left string, right int) *pair {
	return &pair{Left: left, Right: right}
}

var (
	stringType = reflect.TypeOf("")
	intType    = reflect.TypeOf(0)
)

// countingSource records how often each structural query is made.
type countingSource struct {
	mu         sync.Mutex
	ctorCalls  int
	methodCall map[string]int
	propCalls  map[string]int
	next       TypeSource
}

func newCountingSource() *countingSource {
	return &countingSource{
		methodCall: make(map[string]int),
		propCalls:  make(map[string]int),
		next:       ReflectTypeSource{},
	}
}

func (s *countingSource) ConstructorParameters(c *Class) []reflect.Type {
	s.mu.Lock()
	s.ctorCalls++
	s.mu.Unlock()
	return s.next.ConstructorParameters(c)
}

func (s *countingSource) MethodSignature(c *Class, method string) ([]reflect.Type, reflect.Type) {
	s.mu.Lock()
	s.methodCall[method]++
	s.mu.Unlock()
	return s.next.MethodSignature(c, method)
}

func (s *countingSource) PropertyType(c *Class, property string) reflect.Type {
	s.mu.Lock()
	s.propCalls[property]++
	s.mu.Unlock()
	return s.next.PropertyType(c, property)
}

func countStructural(records []Record) int {
	n := 0
	for _, rec := range records {
		if rec.IsStructural() {
			n++
		}
	}
	return n
}
