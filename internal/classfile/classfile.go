// Package classfile holds the structural representation of a compiled class
// that the driver hands to bytecode-oriented detectors. The representation
// is produced by an external bytecode reader; this package only defines the
// shape the driver and the suppression resolver consume.
package classfile

// AnnotationNode is one annotation attached to a class, method or field.
// Values alternates name/value pairs the way the class-file format stores
// them; a value is a string, a []any of strings, or another nested node.
type AnnotationNode struct {
	Desc   string
	Values []any
}

type MethodNode struct {
	Name                 string
	Desc                 string
	Access               int
	InvisibleAnnotations []*AnnotationNode
}

type FieldNode struct {
	Name                 string
	Desc                 string
	Access               int
	InvisibleAnnotations []*AnnotationNode
}

type ClassNode struct {
	Name                 string
	SuperName            string
	SourceFile           string
	Access               int
	InvisibleAnnotations []*AnnotationNode
	Methods              []*MethodNode
	Fields               []*FieldNode
}

// Parser turns raw class-file bytes into the structural representation. It
// is supplied by the embedding tool.
type Parser interface {
	Parse(bytes []byte) (*ClassNode, error)
}
