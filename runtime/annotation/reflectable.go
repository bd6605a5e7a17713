package annotation

import "fmt"

// ReflectableKey is the annotation name written by Reflectable.
const ReflectableKey = "reflectable"

// Decorator applies one annotation to whichever declaration the arguments
// describe:
//
//	dec(c, "")          // the class
//	dec(c, "", 0)       // constructor parameter 0
//	dec(c, "Run", 1)    // parameter 1 of method Run
//	dec(c, "Run")       // method Run, when *T has such a method
//	dec(c, "Title")     // otherwise the property Title
type Decorator func(target *Class, member string, index ...int) error

// NewDecorator returns a Decorator that dispatches to the class, method,
// property or parameter form of the annotation.
func (r *Registry) NewDecorator(name string, allowMulti bool, data any) Decorator {
	return func(target *Class, member string, index ...int) error {
		if target == nil {
			return ErrNilClass
		}
		if len(index) > 1 {
			return fmt.Errorf("annotation %q: at most one parameter index, got %d", name, len(index))
		}
		return r.attach(target, resolveLocator(target, member, index), name, allowMulti, data)
	}
}

func resolveLocator(target *Class, member string, index []int) Locator {
	switch {
	case member == "" && len(index) == 0:
		return OnClass()
	case len(index) == 1:
		return OnParameter(member, index[0])
	case target.HasMethod(member):
		return OnMethod(member)
	default:
		return OnProperty(member)
	}
}

// Reflectable returns the built-in single-use decorator that only marks a
// declaration so its structure is captured.
func (r *Registry) Reflectable() Decorator {
	return r.NewDecorator(ReflectableKey, false, nil)
}

// NewDecorator creates a dispatching decorator bound to the default registry.
func NewDecorator(name string, allowMulti bool, data any) Decorator {
	return Default().NewDecorator(name, allowMulti, data)
}

// Reflectable returns the reflectable decorator of the default registry.
func Reflectable() Decorator {
	return Default().Reflectable()
}
