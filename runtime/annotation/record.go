package annotation

import "reflect"

// Kind identifies what an annotation record is attached to.
type Kind int

const (
	// KindAny matches every kind when used in a Filter.
	KindAny Kind = iota
	KindClass
	KindProperty
	KindMethod
	KindParameter
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindProperty:
		return "property"
	case KindMethod:
		return "method"
	case KindParameter:
		return "parameter"
	default:
		return "any"
	}
}

// ConstructorMember is the member name used by parameter records that
// belong to a class constructor.
const ConstructorMember = "constructor"

// Reserved names for the synthetic structure records written on first attachment.
const (
	ClassStructureKey    = "__class_def_annotation__"
	MethodStructureKey   = "__method_def_annotation__"
	PropertyStructureKey = "__property_def_annotation__"
)

// Locator identifies the target of a record below the class level.
// Member is empty for class records. Index is only meaningful for parameters.
type Locator struct {
	Kind   Kind
	Member string
	Index  int
}

// OnClass locates the class itself.
func OnClass() Locator {
	return Locator{Kind: KindClass}
}

// OnMethod locates a method by name.
func OnMethod(method string) Locator {
	return Locator{Kind: KindMethod, Member: method}
}

// OnProperty locates a property (struct field) by name.
func OnProperty(property string) Locator {
	return Locator{Kind: KindProperty, Member: property}
}

// OnParameter locates a parameter of a method. An empty method name
// locates a constructor parameter.
func OnParameter(method string, index int) Locator {
	if method == "" {
		method = ConstructorMember
	}
	return Locator{Kind: KindParameter, Member: method, Index: index}
}

// OnConstructorParameter locates a constructor parameter.
func OnConstructorParameter(index int) Locator {
	return OnParameter(ConstructorMember, index)
}

// structureLocator returns the locator of the structure record that owns l.
// Parameters are owned by their method, or by the class for constructors.
func (l Locator) structureLocator() (Locator, string) {
	switch l.Kind {
	case KindMethod:
		return OnMethod(l.Member), MethodStructureKey
	case KindProperty:
		return OnProperty(l.Member), PropertyStructureKey
	case KindParameter:
		if l.Member == ConstructorMember {
			return OnClass(), ClassStructureKey
		}
		return OnMethod(l.Member), MethodStructureKey
	default:
		return OnClass(), ClassStructureKey
	}
}

// Record is a single annotation attached to a class or one of its members.
type Record struct {
	Locator
	Name string
	Data any
}

// MethodName returns the owning method for method and parameter records.
func (r Record) MethodName() string {
	if r.Kind == KindMethod || r.Kind == KindParameter {
		return r.Member
	}
	return ""
}

// PropertyName returns the property for property records.
func (r Record) PropertyName() string {
	if r.Kind == KindProperty {
		return r.Member
	}
	return ""
}

// ParameterIndex returns the parameter position, or -1 for non-parameter records.
func (r Record) ParameterIndex() int {
	if r.Kind == KindParameter {
		return r.Index
	}
	return -1
}

// isReservedName reports whether name is one of the structure record names.
func isReservedName(name string) bool {
	return name == ClassStructureKey || name == MethodStructureKey || name == PropertyStructureKey
}

// IsStructural reports whether the record is one of the synthetic structure records.
func (r Record) IsStructural() bool {
	switch r.Name {
	case ClassStructureKey:
		return r.Kind == KindClass
	case MethodStructureKey:
		return r.Kind == KindMethod
	case PropertyStructureKey:
		return r.Kind == KindProperty
	}
	return false
}

// Filter narrows an annotation query. Zero fields do not filter.
// When both fields are set a record must match both.
type Filter struct {
	Kind Kind
	Name string
}

func (f Filter) match(r Record) bool {
	if f.Kind != KindAny && r.Kind != f.Kind {
		return false
	}
	if f.Name != "" && r.Name != f.Name {
		return false
	}
	return true
}

// ParameterType is a captured parameter position and its type.
// Type is nil when the type source had no information.
type ParameterType struct {
	Index int
	Type  reflect.Type
}

// ClassStructure is the payload of the class structure record.
type ClassStructure struct {
	Type       reflect.Type
	Parameters []ParameterType
}

// MethodStructure is the payload of a method structure record.
// ReturnType is nil for methods without results.
type MethodStructure struct {
	Name       string
	Parameters []ParameterType
	ReturnType reflect.Type
}

// PropertyStructure is the payload of a property structure record.
type PropertyStructure struct {
	Name string
	Type reflect.Type
}

func parameterTypes(types []reflect.Type) []ParameterType {
	params := make([]ParameterType, len(types))
	for i, t := range types {
		params[i] = ParameterType{Index: i, Type: t}
	}
	return params
}
