package annotation

import (
	"reflect"
	"sync"
)

// TypeSource supplies the structural types of a declaration. It is queried
// once per member, on the first attachment to that member. A nil type or an
// empty list means no information is available.
//
// Implementations are called while the subject is locked and must not
// attach annotations to the same class.
type TypeSource interface {
	ConstructorParameters(c *Class) []reflect.Type
	MethodSignature(c *Class, method string) (params []reflect.Type, ret reflect.Type)
	PropertyType(c *Class, property string) reflect.Type
}

// ReflectTypeSource derives structural types with package reflect.
//
//   - constructor parameters come from the declared constructor function
//   - methods come from the method set of *T, receiver excluded; the return
//     type is the first result, nil when the method has none
//   - properties are struct fields
type ReflectTypeSource struct{}

// ConstructorParameters returns the parameter types of the declared
// constructor, or nil when the class has none.
func (ReflectTypeSource) ConstructorParameters(c *Class) []reflect.Type {
	ctor := c.Constructor()
	if !ctor.IsValid() {
		return nil
	}
	ft := ctor.Type()
	params := make([]reflect.Type, ft.NumIn())
	for i := range params {
		params[i] = ft.In(i)
	}
	return params
}

// MethodSignature returns the parameter types of method, receiver excluded,
// and its first result type.
func (ReflectTypeSource) MethodSignature(c *Class, method string) ([]reflect.Type, reflect.Type) {
	m, ok := reflect.PointerTo(c.GoType()).MethodByName(method)
	if !ok {
		return nil, nil
	}
	ft := m.Type
	// In(0) is the receiver
	params := make([]reflect.Type, 0, ft.NumIn()-1)
	for i := 1; i < ft.NumIn(); i++ {
		params = append(params, ft.In(i))
	}
	var ret reflect.Type
	if ft.NumOut() > 0 {
		ret = ft.Out(0)
	}
	return params, ret
}

// PropertyType returns the type of the struct field named property.
func (ReflectTypeSource) PropertyType(c *Class, property string) reflect.Type {
	if c.GoType().Kind() != reflect.Struct {
		return nil
	}
	f, ok := c.GoType().FieldByName(property)
	if !ok {
		return nil
	}
	return f.Type
}

type methodSignature struct {
	params []reflect.Type
	ret    reflect.Type
}

type staticClass struct {
	ctor       []reflect.Type
	hasCtor    bool
	methods    map[string]methodSignature
	properties map[string]reflect.Type
}

// StaticTypes is a TypeSource built from explicit declarations, for
// generated code or classes whose shape reflection cannot describe.
// Anything not declared is delegated to the fallback source. Declared
// classes are referenced strongly for the lifetime of the StaticTypes.
type StaticTypes struct {
	mu       sync.RWMutex
	classes  map[*Class]*staticClass
	fallback TypeSource
}

// NewStaticTypes creates an empty static source. A nil fallback reports
// every undeclared member as unknown.
func NewStaticTypes(fallback TypeSource) *StaticTypes {
	return &StaticTypes{
		classes:  make(map[*Class]*staticClass),
		fallback: fallback,
	}
}

func (s *StaticTypes) class(c *Class) *staticClass {
	sc, ok := s.classes[c]
	if !ok {
		sc = &staticClass{
			methods:    make(map[string]methodSignature),
			properties: make(map[string]reflect.Type),
		}
		s.classes[c] = sc
	}
	return sc
}

// Constructor declares the constructor parameter types of c.
func (s *StaticTypes) Constructor(c *Class, params ...reflect.Type) *StaticTypes {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc := s.class(c)
	sc.ctor = params
	sc.hasCtor = true
	return s
}

// Method declares a method signature of c. A nil ret declares a method without results.
func (s *StaticTypes) Method(c *Class, method string, ret reflect.Type, params ...reflect.Type) *StaticTypes {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.class(c).methods[method] = methodSignature{params: params, ret: ret}
	return s
}

// Property declares the type of a property of c.
func (s *StaticTypes) Property(c *Class, property string, typ reflect.Type) *StaticTypes {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.class(c).properties[property] = typ
	return s
}

// ConstructorParameters returns the declared constructor parameters of c,
// or asks the fallback.
func (s *StaticTypes) ConstructorParameters(c *Class) []reflect.Type {
	s.mu.RLock()
	sc, ok := s.classes[c]
	var params []reflect.Type
	declared := ok && sc.hasCtor
	if declared {
		params = sc.ctor
	}
	s.mu.RUnlock()
	if declared {
		return params
	}
	if s.fallback == nil {
		return nil
	}
	return s.fallback.ConstructorParameters(c)
}

// MethodSignature returns the declared signature of method, or asks the fallback.
func (s *StaticTypes) MethodSignature(c *Class, method string) ([]reflect.Type, reflect.Type) {
	s.mu.RLock()
	sc, ok := s.classes[c]
	var sig methodSignature
	var declared bool
	if ok {
		sig, declared = sc.methods[method]
	}
	s.mu.RUnlock()
	if declared {
		return sig.params, sig.ret
	}
	if s.fallback == nil {
		return nil, nil
	}
	return s.fallback.MethodSignature(c, method)
}

// PropertyType returns the declared type of property, or asks the fallback.
func (s *StaticTypes) PropertyType(c *Class, property string) reflect.Type {
	s.mu.RLock()
	sc, ok := s.classes[c]
	var typ reflect.Type
	var declared bool
	if ok {
		typ, declared = sc.properties[property]
	}
	s.mu.RUnlock()
	if declared {
		return typ
	}
	if s.fallback == nil {
		return nil
	}
	return s.fallback.PropertyType(c, property)
}
