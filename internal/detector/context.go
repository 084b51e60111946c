package detector

import (
	"github.com/TeriyakiSecky/android-sdk/internal/classfile"
	"github.com/TeriyakiSecky/android-sdk/internal/config"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/project"
	"github.com/TeriyakiSecky/android-sdk/internal/srctree"
	"github.com/TeriyakiSecky/android-sdk/internal/xmldom"
)

// Context ties together the driver, the project being scanned, the main
// project the analysis was requested for, and the file under analysis.
// Contexts are immutable per file and discarded after the visitor returns.
type Context struct {
	Driver  Driver
	Project *project.Project
	// Main is the project the user asked to check; it differs from Project
	// when a library is being scanned on its behalf. Nil when Project is
	// itself the main project.
	Main *project.Project
	// File is the file being analyzed, or the project directory for
	// project-level hooks.
	File string
}

func NewContext(d Driver, p, main *project.Project, file string) *Context {
	return &Context{Driver: d, Project: p, Main: main, File: file}
}

// MainProject returns the project the analysis is ultimately for.
func (c *Context) MainProject() *project.Project {
	if c.Main != nil {
		return c.Main
	}
	return c.Project
}

// Config returns the configuration of the project being scanned.
func (c *Context) Config() config.Configuration { return c.Project.Config }

// Report delivers a finding through the driver's filtering client wrapper.
func (c *Context) Report(issue *model.Issue, location *model.Location, message string, data any) {
	c.Driver.Client().Report(c, issue, location, message, data)
}

// Location builds a whole-file location for the context's file.
func (c *Context) Location() *model.Location {
	return &model.Location{File: c.File}
}

// XMLContext is the per-file context for markup analysis.
type XMLContext struct {
	Context
	// Document is the parsed tree; nil when the parser failed.
	Document *xmldom.Document
	// FolderType is the resource folder type, or "" for the manifest.
	FolderType model.ResourceFolderType
}

// SourceContext is the per-file context for source analysis.
type SourceContext struct {
	Context
	// Root is the parsed source tree; nil when the parser failed.
	Root srctree.Node
}

// ClassContext is the per-class context for bytecode analysis.
type ClassContext struct {
	Context
	// JarFile is the containing archive, or "" for directory entries.
	JarFile string
	// BinDir is the compiled-output root the class was found under.
	BinDir string
	Bytes  []byte
	Class  *classfile.ClassNode
}
