// Package srctree is the minimal source-AST surface the driver needs: a
// parent-linked node chain with a closed set of declaration kinds carrying
// modifier annotations. External source parsers produce these trees.
package srctree

// Node is any node in a parsed source tree.
type Node interface {
	Parent() Node
}

// Annotation is one modifier annotation, e.g. @SuppressLint("UnusedIds").
// Values holds the annotation's string arguments, flattened whether the
// source used a single literal or an array initializer.
type Annotation struct {
	TypeName string
	Values   []string
}

// Modifiers is the modifier list of a declaration.
type Modifiers struct {
	Annotations []*Annotation
}

// Declared is implemented by the three declaration kinds whose modifier
// annotations participate in suppression lookup.
type Declared interface {
	Node
	Modifiers() *Modifiers
}

// BaseNode provides the parent link; embed it in concrete node types.
type BaseNode struct {
	ParentNode Node
}

func (n *BaseNode) Parent() Node { return n.ParentNode }

type ClassDecl struct {
	BaseNode
	Name string
	Mods *Modifiers
}

func (d *ClassDecl) Modifiers() *Modifiers { return d.Mods }

type MethodDecl struct {
	BaseNode
	Name string
	Mods *Modifiers
}

func (d *MethodDecl) Modifiers() *Modifiers { return d.Mods }

type VariableDecl struct {
	BaseNode
	Name string
	Mods *Modifiers
}

func (d *VariableDecl) Modifiers() *Modifiers { return d.Mods }

// Expr is any non-declaration node; detectors report against these and the
// suppression walk climbs past them without inspection.
type Expr struct {
	BaseNode
}
