package annotation

import (
	"fmt"
	"reflect"
)

// Class is the identity annotations are attached to. It describes a Go
// struct type and, optionally, the function that constructs it.
//
// Two handles describing the same Go type are distinct classes; declare a
// handle once and share it, usually as a package-level variable:
//
//	var UserServiceClass = annotation.Define[UserService](
//		annotation.WithConstructor(NewUserService),
//	)
type Class struct {
	name string
	typ  reflect.Type
	ctor reflect.Value
}

// ClassOption configures a Class.
type ClassOption func(*Class)

// WithConstructor sets the constructor whose parameters describe the class
// constructor. fn must be a function; it is not called.
func WithConstructor(fn any) ClassOption {
	return func(c *Class) {
		v := reflect.ValueOf(fn)
		if v.Kind() != reflect.Func {
			panic(fmt.Sprintf("annotation: constructor for %s must be a function, got %T", c.name, fn))
		}
		c.ctor = v
	}
}

// WithName overrides the class name, which defaults to the Go type name.
func WithName(name string) ClassOption {
	return func(c *Class) {
		c.name = name
	}
}

// Define creates a class handle for T.
func Define[T any](opts ...ClassOption) *Class {
	return NewClass(reflect.TypeOf((*T)(nil)).Elem(), opts...)
}

// NewClass creates a class handle for typ. Pointer types are dereferenced.
func NewClass(typ reflect.Type, opts ...ClassOption) *Class {
	if typ == nil {
		panic("annotation: NewClass with nil type")
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	c := &Class{name: typ.Name(), typ: typ}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// GoType returns the described Go type (never a pointer).
func (c *Class) GoType() reflect.Type {
	return c.typ
}

// Constructor returns the constructor function, or the zero Value if none was declared.
func (c *Class) Constructor() reflect.Value {
	return c.ctor
}

// HasMethod reports whether name is in the method set of *T.
func (c *Class) HasMethod(name string) bool {
	_, ok := reflect.PointerTo(c.typ).MethodByName(name)
	return ok
}

// Methods returns the names in the method set of *T, sorted as reflect sorts them.
func (c *Class) Methods() []string {
	pt := reflect.PointerTo(c.typ)
	names := make([]string, pt.NumMethod())
	for i := range names {
		names[i] = pt.Method(i).Name
	}
	return names
}

// String implements fmt.Stringer
func (c *Class) String() string {
	return c.name
}
