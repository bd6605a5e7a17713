package annotation

import (
	"errors"
	"fmt"
)

var (
	// ErrAnnotationExists matches every duplicate-annotation error.
	ErrAnnotationExists = errors.New("annotation already exists")
	// ErrMethodNotFound matches MethodNotFoundError.
	ErrMethodNotFound = errors.New("method not found")
	// ErrNilClass is returned when a decorator is applied to a nil class.
	ErrNilClass = errors.New("annotation: nil class")
	// ErrReservedName is returned when a decorator uses a structure record name.
	ErrReservedName = errors.New("annotation: reserved name")
	// ErrInvalidLocator is returned by Attach for locators no decorator can produce.
	ErrInvalidLocator = errors.New("annotation: invalid locator")
)

// ClassAnnotationExistsError is returned when a single-use class annotation
// is applied twice to the same class.
type ClassAnnotationExistsError struct {
	Class      *Class
	Annotation string
}

func (e *ClassAnnotationExistsError) Error() string {
	return fmt.Sprintf("annotation '%s' already defined for '%s'", e.Annotation, e.Class.Name())
}

func (e *ClassAnnotationExistsError) Is(target error) bool {
	return target == ErrAnnotationExists
}

// MethodAnnotationExistsError is returned when a single-use method annotation
// is applied twice to the same method.
type MethodAnnotationExistsError struct {
	Class      *Class
	Method     string
	Annotation string
}

func (e *MethodAnnotationExistsError) Error() string {
	return fmt.Sprintf("annotation '%s' already defined for '%s' method of '%s'",
		e.Annotation, e.Method, e.Class.Name())
}

func (e *MethodAnnotationExistsError) Is(target error) bool {
	return target == ErrAnnotationExists
}

// PropertyAnnotationExistsError is returned when a single-use property annotation
// is applied twice to the same property.
type PropertyAnnotationExistsError struct {
	Class      *Class
	Property   string
	Annotation string
}

func (e *PropertyAnnotationExistsError) Error() string {
	return fmt.Sprintf("annotation '%s' already defined for '%s' property of '%s'",
		e.Annotation, e.Property, e.Class.Name())
}

func (e *PropertyAnnotationExistsError) Is(target error) bool {
	return target == ErrAnnotationExists
}

// ParameterAnnotationExistsError is returned when a single-use parameter annotation
// is applied twice to the same parameter. Method is "constructor" for
// constructor parameters.
type ParameterAnnotationExistsError struct {
	Class      *Class
	Method     string
	Index      int
	Annotation string
}

func (e *ParameterAnnotationExistsError) Error() string {
	return fmt.Sprintf("annotation '%s' already defined for '%s#%d' method parameter of '%s'",
		e.Annotation, e.Method, e.Index, e.Class.Name())
}

func (e *ParameterAnnotationExistsError) Is(target error) bool {
	return target == ErrAnnotationExists
}

// MethodNotFoundError is returned when introspecting a method the class does not have.
type MethodNotFoundError struct {
	Class  *Class
	Method string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("no method '%s' found for %s", e.Method, e.Class.Name())
}

func (e *MethodNotFoundError) Is(target error) bool {
	return target == ErrMethodNotFound
}

// duplicateError builds the kind-specific duplicate error for a locator.
func duplicateError(c *Class, loc Locator, name string) error {
	switch loc.Kind {
	case KindMethod:
		return &MethodAnnotationExistsError{Class: c, Method: loc.Member, Annotation: name}
	case KindProperty:
		return &PropertyAnnotationExistsError{Class: c, Property: loc.Member, Annotation: name}
	case KindParameter:
		return &ParameterAnnotationExistsError{Class: c, Method: loc.Member, Index: loc.Index, Annotation: name}
	default:
		return &ClassAnnotationExistsError{Class: c, Annotation: name}
	}
}

// Must panics if err is non-nil. It is meant for package-level declarations
// where a duplicate annotation is a programming error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
