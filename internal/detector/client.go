package detector

import (
	"github.com/TeriyakiSecky/android-sdk/internal/classfile"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/project"
	"github.com/TeriyakiSecky/android-sdk/internal/scope"
	"github.com/TeriyakiSecky/android-sdk/internal/srctree"
	"github.com/TeriyakiSecky/android-sdk/internal/xmldom"
)

// Client is the embedding tool: an IDE, a CLI or a build system. It owns
// findings, diagnostics, the project model and all parsers. The driver
// wraps the client it is given so reports are filtered before delivery.
type Client interface {
	// Report delivers a finding. Disabled and ignored issues never arrive.
	Report(ctx *Context, issue *model.Issue, location *model.Location, message string, data any)

	// Log records a non-fatal diagnostic; err may be nil.
	Log(err error, format string, args ...any)

	// GetProject returns the project rooted at dir, cached by directory.
	GetProject(dir, referenceDir string) *project.Project

	// MarkupParser returns the markup parser, or nil when unavailable.
	MarkupParser() MarkupParser
	// SourceParser returns the source parser, or nil when unavailable.
	SourceParser() SourceParser
	// ClassParser returns the bytecode reader, or nil when unavailable.
	ClassParser() classfile.Parser

	// ReadFile returns the contents of a file under analysis.
	ReadFile(path string) ([]byte, error)
}

// MarkupParser produces a markup tree for the context's file, or nil when
// the file cannot be parsed (the parser reports its own errors).
type MarkupParser interface {
	ParseXML(ctx *XMLContext) *xmldom.Document
}

// SourceParser produces a source tree for the context's file, or nil.
type SourceParser interface {
	ParseSource(ctx *SourceContext) srctree.Node
}

// Driver is the analysis driver as seen from a detector: current scope and
// phase, repeat requests, suppression lookup and the (wrapped) client.
type Driver interface {
	Scope() scope.Set
	Phase() int
	Client() Client

	// RequestRepeat asks for another pass over this project with the given
	// scope; pass the zero Set to revisit everything.
	RequestRepeat(d Detector, sc scope.Set)

	// IsSuppressed answers suppression lookups against class-file
	// annotation metadata; issue may be nil to match only the wildcard.
	IsSuppressedClass(issue *model.Issue, cls *classfile.ClassNode) bool
	IsSuppressedMethod(issue *model.Issue, method *classfile.MethodNode) bool
	IsSuppressedField(issue *model.Issue, field *classfile.FieldNode) bool

	// IsSuppressedNode walks the enclosing declarations of a source node.
	IsSuppressedNode(issue *model.Issue, node srctree.Node) bool
}
