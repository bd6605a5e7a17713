package annotation

import "reflect"

// ParameterInfo describes one parameter of a constructor or method.
//
// Annotations holds every parameter annotation of the owning method or
// constructor, not only the ones placed at Index. Consumers filter by
// Record.ParameterIndex when they need per-position markers.
type ParameterInfo struct {
	Index       int
	Type        reflect.Type
	Annotations []Record
}

// ConstructorInfo describes the constructor of a class.
type ConstructorInfo struct {
	IsReflected bool
	Parameters  []ParameterInfo
}

// MethodInfo describes a method. ReturnType is nil for methods without
// results and for unreflected methods.
type MethodInfo struct {
	Name        string
	IsReflected bool
	ReturnType  reflect.Type
	Parameters  []ParameterInfo
	Annotations []Record
}

// PropertyInfo describes a property.
type PropertyInfo struct {
	Name        string
	IsReflected bool
	Type        reflect.Type
	Annotations []Record
}

// Type is the consolidated view of a class.
type Type struct {
	Name          string
	IsReflected   bool
	DeclaringType *Class
	Constructor   ConstructorInfo
	Methods       []MethodInfo
	Properties    []PropertyInfo
	Annotations   []Record
}

// Annotation lists in the views below never include the synthetic
// structure records.

// Constructor returns the constructor view of c.
func (r *Registry) Constructor(c *Class) ConstructorInfo {
	return constructorInfo(r.Annotations(c, Filter{}))
}

// Method returns the view of method name of c, or *MethodNotFoundError if
// *T has no such method.
func (r *Registry) Method(c *Class, name string) (MethodInfo, error) {
	if c == nil {
		return MethodInfo{}, ErrNilClass
	}
	if !c.HasMethod(name) {
		return MethodInfo{}, &MethodNotFoundError{Class: c, Method: name}
	}
	return methodInfo(r.Annotations(c, Filter{}), name), nil
}

// Property returns the view of property name of c.
func (r *Registry) Property(c *Class, name string) PropertyInfo {
	return propertyInfo(r.Annotations(c, Filter{}), name)
}

// Type returns the consolidated view of c. Every method of *T is listed,
// reflected or not; only properties that carry annotations are listed.
func (r *Registry) Type(c *Class) Type {
	if c == nil {
		return Type{}
	}
	records := r.Annotations(c, Filter{})

	t := Type{
		Name:          c.Name(),
		DeclaringType: c,
		Constructor:   constructorInfo(records),
		Methods:       make([]MethodInfo, 0),
		Properties:    make([]PropertyInfo, 0),
		Annotations:   make([]Record, 0),
	}
	for _, name := range c.Methods() {
		t.Methods = append(t.Methods, methodInfo(records, name))
	}
	for _, rec := range records {
		switch {
		case rec.Kind == KindClass:
			t.IsReflected = true
			if !rec.IsStructural() {
				t.Annotations = append(t.Annotations, rec)
			}
		case rec.Kind == KindProperty && rec.Name == PropertyStructureKey:
			t.Properties = append(t.Properties, propertyInfo(records, rec.Member))
		}
	}
	return t
}

func constructorInfo(records []Record) ConstructorInfo {
	rec, ok := findRecord(records, OnClass(), ClassStructureKey)
	if !ok {
		return ConstructorInfo{Parameters: []ParameterInfo{}}
	}
	structure, _ := rec.Data.(ClassStructure)
	return ConstructorInfo{
		IsReflected: true,
		Parameters:  parameterInfos(records, ConstructorMember, structure.Parameters),
	}
}

func methodInfo(records []Record, name string) MethodInfo {
	rec, ok := findRecord(records, OnMethod(name), MethodStructureKey)
	if !ok {
		return MethodInfo{
			Name:        name,
			Parameters:  []ParameterInfo{},
			Annotations: []Record{},
		}
	}
	structure, _ := rec.Data.(MethodStructure)
	return MethodInfo{
		Name:        name,
		IsReflected: true,
		ReturnType:  structure.ReturnType,
		Parameters:  parameterInfos(records, name, structure.Parameters),
		Annotations: memberRecords(records, KindMethod, name),
	}
}

func propertyInfo(records []Record, name string) PropertyInfo {
	rec, ok := findRecord(records, OnProperty(name), PropertyStructureKey)
	if !ok {
		return PropertyInfo{Name: name, Annotations: []Record{}}
	}
	structure, _ := rec.Data.(PropertyStructure)
	return PropertyInfo{
		Name:        name,
		IsReflected: true,
		Type:        structure.Type,
		Annotations: memberRecords(records, KindProperty, name),
	}
}

// parameterInfos joins parameters with annotations by member, not by index.
func parameterInfos(records []Record, member string, params []ParameterType) []ParameterInfo {
	infos := make([]ParameterInfo, len(params))
	for i, p := range params {
		infos[i] = ParameterInfo{
			Index:       p.Index,
			Type:        p.Type,
			Annotations: memberRecords(records, KindParameter, member),
		}
	}
	return infos
}

// memberRecords returns the user records of kind attached to member.
func memberRecords(records []Record, kind Kind, member string) []Record {
	result := make([]Record, 0)
	for _, rec := range records {
		if rec.Kind == kind && rec.Member == member && !rec.IsStructural() {
			result = append(result, rec)
		}
	}
	return result
}

func findRecord(records []Record, loc Locator, name string) (Record, bool) {
	for _, rec := range records {
		if rec.Locator == loc && rec.Name == name {
			return rec, true
		}
	}
	return Record{}, false
}

// Constructor returns the constructor view of c from the default registry.
func Constructor(c *Class) ConstructorInfo {
	return Default().Constructor(c)
}

// Method returns the method view of c from the default registry.
func Method(c *Class, name string) (MethodInfo, error) {
	return Default().Method(c, name)
}

// Property returns the property view of c from the default registry.
func Property(c *Class, name string) PropertyInfo {
	return Default().Property(c, name)
}

// TypeOf returns the consolidated view of c from the default registry.
func TypeOf(c *Class) Type {
	return Default().Type(c)
}
