// Package catalog declares a sample annotated domain. The CLI introspects it
// and its tests use it as a fixture.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/conduit-lang/annotations/runtime/annotation"
)

// Annotation names used by the catalog.
const (
	Injectable    = "injectable"
	Inject        = "inject"
	Optional      = "optional"
	Transactional = "transactional"
	Column        = "column"
	Validate      = "validate"
)

// InjectOptions is the payload of the inject annotation.
type InjectOptions struct {
	Token string `json:"token" yaml:"token"`
}

// ColumnOptions is the payload of the column annotation.
type ColumnOptions struct {
	Name       string `json:"name" yaml:"name"`
	PrimaryKey bool   `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
}

// Catalog holds the declared classes of one registry.
type Catalog struct {
	registry *annotation.Registry
	classes  []*annotation.Class
}

// New declares the sample classes in reg.
func New(reg *annotation.Registry) (*Catalog, error) {
	c := &Catalog{registry: reg}

	user := annotation.Define[User]()
	mailer := annotation.Define[Mailer](annotation.WithConstructor(NewMailer))
	repo := annotation.Define[UserRepository](annotation.WithConstructor(NewUserRepository))
	service := annotation.Define[UserService](annotation.WithConstructor(NewUserService))
	c.classes = []*annotation.Class{user, mailer, repo, service}

	injectable := reg.NewClassDecorator(Injectable, false, nil)
	reflectable := reg.Reflectable()
	transactional := reg.NewMethodDecorator(Transactional, false, nil)
	optional := reg.NewParameterDecorator(Optional, false, nil)
	validate := func(rule string) annotation.PropertyDecorator {
		return reg.NewPropertyDecorator(Validate, true, rule)
	}
	validateParam := func(rule string) annotation.ParameterDecorator {
		return reg.NewParameterDecorator(Validate, true, rule)
	}
	column := func(opts ColumnOptions) annotation.PropertyDecorator {
		return reg.NewPropertyDecorator(Column, false, opts)
	}
	inject := func(token string) annotation.ParameterDecorator {
		return reg.NewParameterDecorator(Inject, false, InjectOptions{Token: token})
	}

	steps := []func() error{
		// User: persisted entity
		func() error { return reflectable(user, "") },
		func() error { return column(ColumnOptions{Name: "id", PrimaryKey: true})(user, "ID") },
		func() error { return column(ColumnOptions{Name: "email"})(user, "Email") },
		func() error { return validate("required")(user, "Email") },
		func() error { return validate("email")(user, "Email") },
		func() error { return column(ColumnOptions{Name: "name"})(user, "Name") },

		// Mailer
		func() error { return injectable(mailer) },
		func() error { return inject("mail.from")(mailer, "", 0) },

		// UserRepository
		func() error { return injectable(repo) },
		func() error { return inject("users.table")(repo, "", 0) },
		func() error { return reflectable(repo, "Save") },

		// UserService
		func() error { return injectable(service) },
		func() error { return inject("")(service, "", 0) },
		func() error { return optional(service, "", 1) },
		func() error { return transactional(service, "Register") },
		func() error { return validateParam("required")(service, "Register", 0) },
		func() error { return reflectable(service, "Timeout") },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("catalog declaration %d: %w", i, err)
		}
	}
	return c, nil
}

// Registry returns the registry the catalog was declared in.
func (c *Catalog) Registry() *annotation.Registry {
	return c.registry
}

// Classes returns the declared classes in declaration order.
func (c *Catalog) Classes() []*annotation.Class {
	classes := make([]*annotation.Class, len(c.classes))
	copy(classes, c.classes)
	return classes
}

// Names returns the class names sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.classes))
	for i, class := range c.classes {
		names[i] = class.Name()
	}
	sort.Strings(names)
	return names
}

// Lookup finds a class by name, ignoring case.
func (c *Catalog) Lookup(name string) (*annotation.Class, bool) {
	for _, class := range c.classes {
		if strings.EqualFold(class.Name(), name) {
			return class, true
		}
	}
	return nil, false
}
