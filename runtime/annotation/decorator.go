package annotation

import (
	"fmt"

	"go.uber.org/zap"
)

// ClassDecorator attaches an annotation to a class.
type ClassDecorator func(target *Class) error

// MethodDecorator attaches an annotation to a method of a class.
type MethodDecorator func(target *Class, method string) error

// PropertyDecorator attaches an annotation to a property of a class.
type PropertyDecorator func(target *Class, property string) error

// ParameterDecorator attaches an annotation to a parameter. An empty method
// name targets the constructor.
type ParameterDecorator func(target *Class, method string, index int) error

// NewClassDecorator returns a decorator attaching the annotation name with
// data to a class. Unless allowMulti is set, applying it twice to the same
// class fails with *ClassAnnotationExistsError.
func (r *Registry) NewClassDecorator(name string, allowMulti bool, data any) ClassDecorator {
	return func(target *Class) error {
		return r.attach(target, OnClass(), name, allowMulti, data)
	}
}

// NewMethodDecorator returns a decorator attaching the annotation to a method.
// Duplicates fail with *MethodAnnotationExistsError.
func (r *Registry) NewMethodDecorator(name string, allowMulti bool, data any) MethodDecorator {
	return func(target *Class, method string) error {
		return r.attach(target, OnMethod(method), name, allowMulti, data)
	}
}

// NewPropertyDecorator returns a decorator attaching the annotation to a property.
// Duplicates fail with *PropertyAnnotationExistsError.
func (r *Registry) NewPropertyDecorator(name string, allowMulti bool, data any) PropertyDecorator {
	return func(target *Class, property string) error {
		return r.attach(target, OnProperty(property), name, allowMulti, data)
	}
}

// NewParameterDecorator returns a decorator attaching the annotation to a
// method or constructor parameter. Duplicates fail with
// *ParameterAnnotationExistsError.
func (r *Registry) NewParameterDecorator(name string, allowMulti bool, data any) ParameterDecorator {
	return func(target *Class, method string, index int) error {
		return r.attach(target, OnParameter(method, index), name, allowMulti, data)
	}
}

// Attach applies an annotation at loc. The locator is rebuilt with the
// OnClass, OnMethod, OnProperty or OnParameter constructor matching its
// kind. KindAny, unknown kinds, unnamed methods or properties and negative
// parameter indexes fail with ErrInvalidLocator.
func (r *Registry) Attach(target *Class, loc Locator, name string, allowMulti bool, data any) error {
	normalized, err := normalizeLocator(loc)
	if err != nil {
		return err
	}
	return r.attach(target, normalized, name, allowMulti, data)
}

func normalizeLocator(loc Locator) (Locator, error) {
	switch loc.Kind {
	case KindClass:
		return OnClass(), nil
	case KindMethod, KindProperty:
		if loc.Member == "" {
			return Locator{}, fmt.Errorf("%w: %s without a member name", ErrInvalidLocator, loc.Kind)
		}
		if loc.Kind == KindMethod {
			return OnMethod(loc.Member), nil
		}
		return OnProperty(loc.Member), nil
	case KindParameter:
		if loc.Index < 0 {
			return Locator{}, fmt.Errorf("%w: parameter index %d", ErrInvalidLocator, loc.Index)
		}
		return OnParameter(loc.Member, loc.Index), nil
	default:
		return Locator{}, fmt.Errorf("%w: kind %d", ErrInvalidLocator, int(loc.Kind))
	}
}

func (r *Registry) attach(target *Class, loc Locator, name string, allowMulti bool, data any) error {
	if target == nil {
		return ErrNilClass
	}
	if isReservedName(name) {
		return fmt.Errorf("%w: %s", ErrReservedName, name)
	}
	if loc.Kind != KindParameter {
		loc.Index = 0
	}

	s := r.subjectFor(target)
	s.mu.Lock()
	defer s.mu.Unlock()

	// existing is the pre-append list
	existing := s.records

	if !allowMulti && hasRecord(existing, loc, name) {
		return duplicateError(target, loc, name)
	}

	s.records = append(s.records, Record{Locator: loc, Name: name, Data: data})
	r.logger.Debug("annotation attached",
		zap.String("class", target.Name()),
		zap.Stringer("kind", loc.Kind),
		zap.String("member", loc.Member),
		zap.String("name", name),
	)

	structLoc, structName := loc.structureLocator()
	if !hasRecord(existing, structLoc, structName) {
		s.records = append(s.records, r.captureStructure(target, structLoc, structName))
		r.logger.Debug("structure captured",
			zap.String("class", target.Name()),
			zap.Stringer("kind", structLoc.Kind),
			zap.String("member", structLoc.Member),
		)
	}
	return nil
}

// captureStructure queries the type source for the member at loc.
func (r *Registry) captureStructure(target *Class, loc Locator, name string) Record {
	rec := Record{Locator: loc, Name: name}
	switch loc.Kind {
	case KindMethod:
		params, ret := r.source.MethodSignature(target, loc.Member)
		rec.Data = MethodStructure{
			Name:       loc.Member,
			Parameters: parameterTypes(params),
			ReturnType: ret,
		}
	case KindProperty:
		rec.Data = PropertyStructure{
			Name: loc.Member,
			Type: r.source.PropertyType(target, loc.Member),
		}
	default:
		rec.Data = ClassStructure{
			Type:       target.GoType(),
			Parameters: parameterTypes(r.source.ConstructorParameters(target)),
		}
	}
	return rec
}

func hasRecord(records []Record, loc Locator, name string) bool {
	_, ok := findRecord(records, loc, name)
	return ok
}

// NewClassDecorator creates a class decorator bound to the default registry.
func NewClassDecorator(name string, allowMulti bool, data any) ClassDecorator {
	return Default().NewClassDecorator(name, allowMulti, data)
}

// NewMethodDecorator creates a method decorator bound to the default registry.
func NewMethodDecorator(name string, allowMulti bool, data any) MethodDecorator {
	return Default().NewMethodDecorator(name, allowMulti, data)
}

// NewPropertyDecorator creates a property decorator bound to the default registry.
func NewPropertyDecorator(name string, allowMulti bool, data any) PropertyDecorator {
	return Default().NewPropertyDecorator(name, allowMulti, data)
}

// NewParameterDecorator creates a parameter decorator bound to the default registry.
func NewParameterDecorator(name string, allowMulti bool, data any) ParameterDecorator {
	return Default().NewParameterDecorator(name, allowMulti, data)
}
