package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructor_NotReflected(t *testing.T) {
	reg := NewRegistry()
	c := Define[emptyType]()

	ctor := reg.Constructor(c)

	assert.False(t, ctor.IsReflected)
	assert.Empty(t, ctor.Parameters)
	assert.NotNil(t, ctor.Parameters)
}

func TestConstructor_ReflectedWithoutParameters(t *testing.T) {
	reg := NewRegistry()
	c := Define[emptyType]()
	require.NoError(t, reg.Reflectable()(c, ""))

	ctor := reg.Constructor(c)

	assert.True(t, ctor.IsReflected)
	assert.Empty(t, ctor.Parameters)
}

func TestConstructor_UnannotatedParameters(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType](WithConstructor(newSampleType))
	require.NoError(t, reg.Reflectable()(c, ""))

	ctor := reg.Constructor(c)

	require.Len(t, ctor.Parameters, 1)
	assert.Equal(t, 0, ctor.Parameters[0].Index)
	assert.Equal(t, stringType, ctor.Parameters[0].Type)
	assert.Empty(t, ctor.Parameters[0].Annotations)
}

func TestConstructor_AnnotatedParameter(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType](WithConstructor(newSampleType))
	optional := func(isOptional bool) ParameterDecorator {
		return reg.NewParameterDecorator("optional", true, map[string]any{"isOptional": isOptional})
	}
	require.NoError(t, reg.Reflectable()(c, ""))
	require.NoError(t, optional(true)(c, "", 0))

	ctor := reg.Constructor(c)

	require.Len(t, ctor.Parameters, 1)
	param := ctor.Parameters[0]
	assert.Equal(t, 0, param.Index)
	assert.Equal(t, stringType, param.Type)
	require.Len(t, param.Annotations, 1)
	assert.Equal(t, "optional", param.Annotations[0].Name)
	assert.Equal(t, map[string]any{"isOptional": true}, param.Annotations[0].Data)
	assert.Equal(t, 0, param.Annotations[0].ParameterIndex())
}

// Every parameter sees every parameter annotation of its constructor or
// method, regardless of the index the annotation was placed at.
func TestParameters_JoinedByMemberNotIndex(t *testing.T) {
	reg := NewRegistry()
	c := Define[pair](WithConstructor(newPair))
	inject := reg.NewParameterDecorator("inject", false, nil)
	require.NoError(t, inject(c, "", 0))
	require.NoError(t, inject(c, "", 1))

	ctor := reg.Constructor(c)

	require.Len(t, ctor.Parameters, 2)
	for _, param := range ctor.Parameters {
		require.Len(t, param.Annotations, 2)
		assert.Equal(t, 0, param.Annotations[0].ParameterIndex())
		assert.Equal(t, 1, param.Annotations[1].ParameterIndex())
	}

	s := Define[sampleType]()
	marker := reg.NewParameterDecorator("marker", true, nil)
	require.NoError(t, marker(s, "Run", 0))
	require.NoError(t, marker(s, "Run", 3))

	method, err := reg.Method(s, "Run")
	require.NoError(t, err)
	require.Len(t, method.Parameters, 1)
	assert.Len(t, method.Parameters[0].Annotations, 2)
}

func TestMethod_NotFound(t *testing.T) {
	reg := NewRegistry()
	c := Define[emptyType]()
	require.NoError(t, reg.Reflectable()(c, ""))

	_, err := reg.Method(c, "Run")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMethodNotFound)
	var notFound *MethodNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Run", notFound.Method)
	assert.Same(t, c, notFound.Class)
}

func TestMethod_NotReflected(t *testing.T) {
	reg := NewRegistry()
	c := Define[runner]()

	method, err := reg.Method(c, "Run")

	require.NoError(t, err)
	assert.False(t, method.IsReflected)
	assert.Equal(t, "Run", method.Name)
	assert.Empty(t, method.Annotations)
	assert.Empty(t, method.Parameters)
	assert.Nil(t, method.ReturnType)
}

func TestMethod_Reflected(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType]()
	require.NoError(t, reg.Reflectable()(c, "Run"))

	method, err := reg.Method(c, "Run")

	require.NoError(t, err)
	assert.True(t, method.IsReflected)
	assert.Equal(t, "Run", method.Name)
	require.Len(t, method.Parameters, 1)
	assert.Equal(t, 0, method.Parameters[0].Index)
	assert.Equal(t, stringType, method.Parameters[0].Type)
	assert.Equal(t, stringType, method.ReturnType)
}

func TestMethod_ClassOnlyReflection(t *testing.T) {
	reg := NewRegistry()
	c := Define[runner]()
	require.NoError(t, reg.Reflectable()(c, ""))

	method, err := reg.Method(c, "Run")

	require.NoError(t, err)
	assert.False(t, method.IsReflected)
	assert.Empty(t, method.Parameters)
	assert.Empty(t, method.Annotations)
}

func TestMethod_VoidReturnType(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType]()
	require.NoError(t, reg.Reflectable()(c, ""))
	require.NoError(t, reg.Reflectable()(c, "Stop"))

	method, err := reg.Method(c, "Stop")

	require.NoError(t, err)
	assert.True(t, method.IsReflected)
	assert.Nil(t, method.ReturnType)
	assert.Empty(t, method.Parameters)
}

func TestMethod_ParameterAnnotations(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType]()
	optional := reg.NewParameterDecorator("optional", true, nil)
	require.NoError(t, reg.Reflectable()(c, "Run"))
	require.NoError(t, optional(c, "Run", 0))

	method, err := reg.Method(c, "Run")

	require.NoError(t, err)
	require.Len(t, method.Parameters, 1)
	require.Len(t, method.Parameters[0].Annotations, 1)
	assert.Equal(t, KindParameter, method.Parameters[0].Annotations[0].Kind)
	assert.Equal(t, "optional", method.Parameters[0].Annotations[0].Name)
}

func TestMethod_ReflectedByParameterOnly(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType]()
	require.NoError(t, reg.NewParameterDecorator("optional", false, nil)(c, "Run", 0))

	method, err := reg.Method(c, "Run")

	require.NoError(t, err)
	assert.True(t, method.IsReflected)
	assert.Len(t, method.Parameters, 1)
	assert.Empty(t, method.Annotations)
}

func TestMethod_AnnotationsExcludeStructure(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType]()
	inject := reg.NewMethodDecorator("inject", true, nil)
	require.NoError(t, reg.Reflectable()(c, "Run"))
	require.NoError(t, inject(c, "Run"))

	method, err := reg.Method(c, "Run")

	require.NoError(t, err)
	require.Len(t, method.Annotations, 2)
	assert.Equal(t, ReflectableKey, method.Annotations[0].Name)
	assert.Equal(t, "inject", method.Annotations[1].Name)
	assert.Equal(t, "Run", method.Annotations[1].MethodName())

	// the raw list still carries the structure record
	assert.Len(t, reg.Annotations(c, Filter{Kind: KindMethod}), 3)
}

func TestProperty_NotReflected(t *testing.T) {
	reg := NewRegistry()
	c := Define[emptyType]()

	prop := reg.Property(c, "Title")

	assert.False(t, prop.IsReflected)
	assert.Equal(t, "Title", prop.Name)
	assert.Empty(t, prop.Annotations)
	assert.Nil(t, prop.Type)
}

func TestProperty_Reflected(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType]()
	require.NoError(t, reg.Reflectable()(c, "Title"))

	prop := reg.Property(c, "Title")

	assert.True(t, prop.IsReflected)
	assert.Equal(t, stringType, prop.Type)
}

func TestProperty_Annotations(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType]()
	optional := reg.NewPropertyDecorator("optional", true, nil)
	require.NoError(t, reg.Reflectable()(c, "Title"))
	require.NoError(t, optional(c, "Title"))

	prop := reg.Property(c, "Title")

	require.Len(t, prop.Annotations, 2)
	assert.Equal(t, "optional", prop.Annotations[1].Name)
	assert.Equal(t, "Title", prop.Annotations[1].PropertyName())
}

func TestProperty_MatchesByName(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType]()
	require.NoError(t, reg.Reflectable()(c, "Title"))

	assert.False(t, reg.Property(c, "Count").IsReflected)

	require.NoError(t, reg.Reflectable()(c, "Count"))
	count := reg.Property(c, "Count")
	assert.True(t, count.IsReflected)
	assert.Equal(t, intType, count.Type)
	require.Len(t, count.Annotations, 1)
	assert.Equal(t, "Count", count.Annotations[0].PropertyName())
}

func TestType_NotReflected(t *testing.T) {
	reg := NewRegistry()
	c := Define[runner]()

	typ := reg.Type(c)

	assert.False(t, typ.IsReflected)
	assert.Empty(t, typ.Annotations)
	assert.False(t, typ.Constructor.IsReflected)
	require.Len(t, typ.Methods, 1)
	assert.False(t, typ.Methods[0].IsReflected)
	assert.Equal(t, "runner", typ.Name)
	assert.Empty(t, typ.Properties)
}

func TestType_Reflected(t *testing.T) {
	reg := NewRegistry()
	c := Define[runner]()
	require.NoError(t, reg.Reflectable()(c, ""))

	typ := reg.Type(c)

	assert.True(t, typ.IsReflected)
	require.Len(t, typ.Annotations, 1)
	assert.Equal(t, ReflectableKey, typ.Annotations[0].Name)
	assert.True(t, typ.Constructor.IsReflected)
	require.Len(t, typ.Methods, 1)
	assert.False(t, typ.Methods[0].IsReflected)
	assert.Empty(t, typ.Properties)
	assert.Same(t, c, typ.DeclaringType)
}

func TestType_Constructor(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType](WithConstructor(newSampleType))
	require.NoError(t, reg.Reflectable()(c, ""))

	typ := reg.Type(c)

	assert.True(t, typ.Constructor.IsReflected)
	require.Len(t, typ.Constructor.Parameters, 1)
	assert.Equal(t, 0, typ.Constructor.Parameters[0].Index)
	assert.Equal(t, stringType, typ.Constructor.Parameters[0].Type)
}

func TestType_Methods(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType]()
	require.NoError(t, reg.Reflectable()(c, ""))
	require.NoError(t, reg.Reflectable()(c, "Run"))

	typ := reg.Type(c)

	require.Len(t, typ.Methods, 2)
	assert.Equal(t, "Run", typ.Methods[0].Name)
	assert.True(t, typ.Methods[0].IsReflected)
	assert.Equal(t, "Stop", typ.Methods[1].Name)
	assert.False(t, typ.Methods[1].IsReflected)
}

func TestType_Properties(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType]()
	require.NoError(t, reg.Reflectable()(c, ""))
	require.NoError(t, reg.Reflectable()(c, "Title"))

	typ := reg.Type(c)

	assert.True(t, typ.IsReflected)
	require.Len(t, typ.Properties, 1)
	assert.Equal(t, "Title", typ.Properties[0].Name)
	assert.True(t, typ.Properties[0].IsReflected)
}

func TestType_Annotations(t *testing.T) {
	reg := NewRegistry()
	c := Define[emptyType]()
	injectable := reg.NewClassDecorator("injectable", true, nil)
	require.NoError(t, reg.Reflectable()(c, ""))
	require.NoError(t, injectable(c))

	typ := reg.Type(c)

	assert.True(t, typ.IsReflected)
	require.Len(t, typ.Annotations, 2)
	names := []string{typ.Annotations[0].Name, typ.Annotations[1].Name}
	assert.Contains(t, names, ReflectableKey)
	assert.Contains(t, names, "injectable")
	assert.NotContains(t, names, ClassStructureKey)
}

func TestType_ReflectsCurrentState(t *testing.T) {
	reg := NewRegistry()
	c := Define[sampleType]()

	before := reg.Type(c)
	require.NoError(t, reg.Reflectable()(c, ""))
	after := reg.Type(c)

	assert.False(t, before.IsReflected)
	assert.True(t, after.IsReflected)

	after.Annotations[0].Name = "MODIFIED"
	assert.Equal(t, ReflectableKey, reg.Type(c).Annotations[0].Name)
}

func TestType_NilClass(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, Type{}, reg.Type(nil))
	_, err := reg.Method(nil, "Run")
	assert.ErrorIs(t, err, ErrNilClass)
}

func TestPackageLevelIntrospection(t *testing.T) {
	c := Define[sampleType](WithConstructor(newSampleType))
	require.NoError(t, Reflectable()(c, ""))
	require.NoError(t, Reflectable()(c, "Run"))
	require.NoError(t, Reflectable()(c, "Title"))

	assert.True(t, Constructor(c).IsReflected)
	assert.True(t, Property(c, "Title").IsReflected)
	method, err := Method(c, "Run")
	require.NoError(t, err)
	assert.True(t, method.IsReflected)
	assert.True(t, TypeOf(c).IsReflected)
}
