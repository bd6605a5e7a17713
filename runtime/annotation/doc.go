// Package annotation attaches named annotations to classes and their
// members and reconstructs a typed view of a class from them.
//
// # Overview
//
// A class is a *Class handle describing a Go struct type and, optionally,
// its constructor function. Annotations are attached through decorators and
// stored in a Registry as an ordered list of Records per class:
//
//   - class annotations (KindClass)
//   - method annotations (KindMethod), keyed by method name
//   - property annotations (KindProperty), keyed by struct field name
//   - parameter annotations (KindParameter), keyed by method name and index;
//     constructor parameters use the "constructor" member
//
// The first annotation attached to a declaration also records its
// structure (constructor parameter types, method parameter and return
// types, property type) as obtained from the registry's TypeSource. These
// structure records are written once per member and are never overwritten.
//
// # Declaring annotations
//
//	var (
//		injectable = annotation.NewClassDecorator("injectable", false, nil)
//		inject     = annotation.NewParameterDecorator("inject", false, nil)
//		column     = annotation.NewPropertyDecorator("column", true, ColumnOptions{Name: "title"})
//	)
//
//	var PostClass = annotation.Define[Post](annotation.WithConstructor(NewPost))
//
//	func init() {
//		annotation.Must(injectable(PostClass))
//		annotation.Must(inject(PostClass, "", 0))
//		annotation.Must(column(PostClass, "Title"))
//	}
//
// Single-use annotations (allowMulti false) fail with a kind-specific error
// when applied twice to the same target; all of them match
// ErrAnnotationExists.
//
// # Introspection
//
//	t := annotation.TypeOf(PostClass)
//	for _, p := range t.Constructor.Parameters {
//		fmt.Println(p.Index, p.Type, len(p.Annotations))
//	}
//
// Views are computed on every call from the current registry state.
// Parameter views carry every parameter annotation of their method or
// constructor, not only those placed at their own index.
//
// # Lifetime
//
// The registry holds class handles weakly. When a handle becomes
// unreachable, its records are released by a runtime cleanup. Use
// NewRegistry for isolated registries; the package-level functions use the
// process-wide Default registry.
package annotation
