// Package detector defines the pluggable check unit contract: lifecycle
// hooks, scanner capabilities, per-file contexts and the interfaces the
// driver exposes to and consumes from the embedding tool.
package detector

import (
	"github.com/TeriyakiSecky/android-sdk/internal/config"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/scope"
)

// Detector is a single check unit. One instance may serve several issues
// and is reused across phases of the same analysis run, which is how a
// detector accumulates data on pass one and acts on pass two.
//
// A detector additionally implements one or more of the scanner
// capabilities (XMLScanner, SourceScanner, ClassScanner) matching the
// scopes of its issues.
type Detector interface {
	// Kind identifies the concrete detector type; issues bind to it.
	Kind() string

	BeforeProject(ctx *Context)
	AfterProject(ctx *Context)
	BeforeLibraryProject(ctx *Context)
	AfterLibraryProject(ctx *Context)
	BeforeFile(ctx *Context)
	AfterFile(ctx *Context)

	// AppliesTo reports whether the detector wants to look at the file.
	AppliesTo(ctx *Context, file string) bool
	// Run performs a direct check for single-file scopes that do not use a
	// visitor, such as the shrinker config file.
	Run(ctx *Context)
}

// XMLScanner is implemented by detectors checking markup trees.
type XMLScanner interface {
	// AppliesToFolder filters by resource folder type; the manifest is
	// dispatched regardless.
	AppliesToFolder(t model.ResourceFolderType) bool
	VisitDocument(ctx *XMLContext)
}

// SourceScanner is implemented by detectors checking parsed source trees.
type SourceScanner interface {
	VisitTree(ctx *SourceContext)
}

// ClassScanner is implemented by detectors checking compiled classes.
type ClassScanner interface {
	CheckClass(ctx *ClassContext)
}

// Base provides no-op lifecycle hooks; embed it and override what you need.
type Base struct{}

func (Base) BeforeProject(*Context)          {}
func (Base) AfterProject(*Context)           {}
func (Base) BeforeLibraryProject(*Context)   {}
func (Base) AfterLibraryProject(*Context)    {}
func (Base) BeforeFile(*Context)             {}
func (Base) AfterFile(*Context)              {}
func (Base) AppliesTo(*Context, string) bool { return true }
func (Base) Run(*Context)                    {}

// Registry supplies issues and instantiates the detectors applicable to a
// scope and configuration. Implemented by the embedding tool; the builtin
// implementation lives in the plugins package.
type Registry interface {
	Issues() []*model.Issue
	// CreateDetectors returns the applicable detector list plus the map
	// from each scope category to the detectors registered under it.
	CreateDetectors(client Client, cfg config.Configuration, sc scope.Set) ([]Detector, map[scope.Scope][]Detector)
}
