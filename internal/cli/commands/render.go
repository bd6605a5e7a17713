package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/conduit-lang/annotations/internal/cli/ui"
	"github.com/conduit-lang/annotations/runtime/annotation"
)

// annotationDoc is the rendered form of an annotation record
type annotationDoc struct {
	Name  string `json:"name" yaml:"name"`
	Index *int   `json:"index,omitempty" yaml:"index,omitempty"`
	Data  any    `json:"data,omitempty" yaml:"data,omitempty"`
}

type parameterDoc struct {
	Index       int             `json:"index" yaml:"index"`
	Type        string          `json:"type" yaml:"type"`
	Annotations []annotationDoc `json:"annotations" yaml:"annotations"`
}

type constructorDoc struct {
	Reflected  bool           `json:"reflected" yaml:"reflected"`
	Parameters []parameterDoc `json:"parameters" yaml:"parameters"`
}

type methodDoc struct {
	Name        string          `json:"name" yaml:"name"`
	Reflected   bool            `json:"reflected" yaml:"reflected"`
	ReturnType  string          `json:"return_type,omitempty" yaml:"return_type,omitempty"`
	Parameters  []parameterDoc  `json:"parameters" yaml:"parameters"`
	Annotations []annotationDoc `json:"annotations" yaml:"annotations"`
}

type propertyDoc struct {
	Name        string          `json:"name" yaml:"name"`
	Reflected   bool            `json:"reflected" yaml:"reflected"`
	Type        string          `json:"type,omitempty" yaml:"type,omitempty"`
	Annotations []annotationDoc `json:"annotations" yaml:"annotations"`
}

// classDoc is the rendered form of annotation.Type
type classDoc struct {
	Name        string          `json:"name" yaml:"name"`
	GoType      string          `json:"go_type" yaml:"go_type"`
	Reflected   bool            `json:"reflected" yaml:"reflected"`
	Annotations []annotationDoc `json:"annotations" yaml:"annotations"`
	Constructor constructorDoc  `json:"constructor" yaml:"constructor"`
	Methods     []methodDoc     `json:"methods" yaml:"methods"`
	Properties  []propertyDoc   `json:"properties" yaml:"properties"`
}

// classSummary is one row of the classes listing
type classSummary struct {
	Name        string   `json:"name" yaml:"name"`
	Annotations []string `json:"annotations" yaml:"annotations"`
	Constructor int      `json:"constructor_parameters" yaml:"constructor_parameters"`
	Methods     int      `json:"reflected_methods" yaml:"reflected_methods"`
	Properties  int      `json:"properties" yaml:"properties"`
}

func typeName(t reflect.Type, none string) string {
	if t == nil {
		return none
	}
	return t.String()
}

func annotationDocs(records []annotation.Record) []annotationDoc {
	docs := make([]annotationDoc, len(records))
	for i, rec := range records {
		docs[i] = annotationDoc{Name: rec.Name, Data: rec.Data}
		if idx := rec.ParameterIndex(); idx >= 0 {
			docs[i].Index = &idx
		}
	}
	return docs
}

func parameterDocs(params []annotation.ParameterInfo) []parameterDoc {
	docs := make([]parameterDoc, len(params))
	for i, p := range params {
		docs[i] = parameterDoc{
			Index:       p.Index,
			Type:        typeName(p.Type, "unknown"),
			Annotations: annotationDocs(p.Annotations),
		}
	}
	return docs
}

func newMethodDoc(m annotation.MethodInfo) methodDoc {
	doc := methodDoc{
		Name:        m.Name,
		Reflected:   m.IsReflected,
		Parameters:  parameterDocs(m.Parameters),
		Annotations: annotationDocs(m.Annotations),
	}
	if m.IsReflected {
		doc.ReturnType = typeName(m.ReturnType, "void")
	}
	return doc
}

func newPropertyDoc(p annotation.PropertyInfo) propertyDoc {
	doc := propertyDoc{
		Name:        p.Name,
		Reflected:   p.IsReflected,
		Annotations: annotationDocs(p.Annotations),
	}
	if p.IsReflected {
		doc.Type = typeName(p.Type, "unknown")
	}
	return doc
}

func newClassDoc(t annotation.Type) classDoc {
	doc := classDoc{
		Name:        t.Name,
		Reflected:   t.IsReflected,
		Annotations: annotationDocs(t.Annotations),
		Constructor: constructorDoc{
			Reflected:  t.Constructor.IsReflected,
			Parameters: parameterDocs(t.Constructor.Parameters),
		},
		Methods:    make([]methodDoc, len(t.Methods)),
		Properties: make([]propertyDoc, len(t.Properties)),
	}
	if t.DeclaringType != nil {
		doc.GoType = t.DeclaringType.GoType().String()
	}
	for i, m := range t.Methods {
		doc.Methods[i] = newMethodDoc(m)
	}
	for i, p := range t.Properties {
		doc.Properties[i] = newPropertyDoc(p)
	}
	return doc
}

func newClassSummary(t annotation.Type) classSummary {
	s := classSummary{
		Name:        t.Name,
		Annotations: make([]string, len(t.Annotations)),
		Constructor: len(t.Constructor.Parameters),
		Properties:  len(t.Properties),
	}
	for i, rec := range t.Annotations {
		s.Annotations[i] = rec.Name
	}
	for _, m := range t.Methods {
		if m.IsReflected {
			s.Methods++
		}
	}
	return s
}

// Formatter writes a rendered document
type Formatter interface {
	Format(data any) error
}

// JSONFormatter formats output as indented JSON
type JSONFormatter struct {
	writer io.Writer
}

// Format formats data as JSON
func (f *JSONFormatter) Format(data any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	writer io.Writer
}

// Format formats data as YAML
func (f *YAMLFormatter) Format(data any) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// DumpFormatter writes a Go-syntax dump of the document, for debugging
type DumpFormatter struct {
	writer io.Writer
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Format dumps data
func (f *DumpFormatter) Format(data any) error {
	dumpConfig.Fdump(f.writer, data)
	return nil
}

// TableFormatter formats output as human-readable tables
type TableFormatter struct {
	writer  io.Writer
	noColor bool
	verbose bool
}

// Format renders class listings and class, method or property documents
func (f *TableFormatter) Format(data any) error {
	switch doc := data.(type) {
	case []classSummary:
		f.classes(doc)
	case classDoc:
		f.class(doc)
	case methodDoc:
		ui.Header(f.writer, doc.Name, f.noColor)
		f.methods([]methodDoc{doc})
	case propertyDoc:
		ui.Header(f.writer, doc.Name, f.noColor)
		f.properties([]propertyDoc{doc})
	default:
		return fmt.Errorf("table format: unsupported value %T", data)
	}
	return nil
}

func (f *TableFormatter) classes(rows []classSummary) {
	table := ui.NewTable(f.writer, f.noColor, "Class", "Annotations", "Constructor", "Methods", "Properties")
	for _, row := range rows {
		table.AddRow(
			row.Name,
			orDash(strings.Join(row.Annotations, ", ")),
			fmt.Sprint(row.Constructor),
			fmt.Sprint(row.Methods),
			fmt.Sprint(row.Properties),
		)
	}
	table.Render()
}

func (f *TableFormatter) class(doc classDoc) {
	ui.Header(f.writer, doc.Name, f.noColor)

	kv := ui.NewKeyValueTable(f.writer, f.noColor)
	kv.AddRow("Go type", doc.GoType)
	kv.AddRow("Reflected", yesNo(doc.Reflected))
	kv.AddRow("Annotations", orDash(f.annotations(doc.Annotations)))
	kv.Render()
	fmt.Fprintln(f.writer)

	ctor := ui.NewSection(f.writer, "Constructor", f.noColor)
	if doc.Constructor.Reflected {
		f.parameters(ctor, doc.Constructor.Parameters)
	}
	ctor.Render()

	f.methods(doc.Methods)
	f.properties(doc.Properties)
}

func (f *TableFormatter) methods(methods []methodDoc) {
	section := ui.NewSection(f.writer, "Methods", f.noColor)
	for _, m := range methods {
		if !m.Reflected {
			if f.verbose {
				section.AddLine("%s (not reflected)", m.Name)
			}
			continue
		}
		types := make([]string, len(m.Parameters))
		for i, p := range m.Parameters {
			types[i] = p.Type
		}
		section.AddLine("%s(%s) %s  %s", m.Name, strings.Join(types, ", "), m.ReturnType, f.annotations(m.Annotations))
		f.parameters(section, m.Parameters)
	}
	section.Render()
}

func (f *TableFormatter) properties(properties []propertyDoc) {
	section := ui.NewSection(f.writer, "Properties", f.noColor)
	for _, p := range properties {
		section.AddLine("%s %s  %s", p.Name, p.Type, f.annotations(p.Annotations))
	}
	section.Render()
}

// parameters lists each parameter with the annotations placed at its index
func (f *TableFormatter) parameters(section *ui.Section, params []parameterDoc) {
	for _, p := range params {
		var own []annotationDoc
		for _, a := range p.Annotations {
			if a.Index != nil && *a.Index == p.Index {
				own = append(own, a)
			}
		}
		section.AddLine("  #%d %s  %s", p.Index, p.Type, f.annotations(own))
	}
}

func (f *TableFormatter) annotations(docs []annotationDoc) string {
	names := make([]string, len(docs))
	for i, a := range docs {
		names[i] = "@" + a.Name
		if f.verbose && a.Data != nil {
			names[i] += fmt.Sprintf("(%+v)", a.Data)
		}
	}
	return strings.TrimSpace(strings.Join(names, " "))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// GetFormatter returns the formatter for format
func GetFormatter(format string, w io.Writer, noColor, verbose bool) (Formatter, error) {
	switch strings.ToLower(format) {
	case "json":
		return &JSONFormatter{writer: w}, nil
	case "yaml":
		return &YAMLFormatter{writer: w}, nil
	case "dump":
		return &DumpFormatter{writer: w}, nil
	case "table":
		return &TableFormatter{writer: w, noColor: noColor, verbose: verbose}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: table, json, yaml, dump)", format)
	}
}
