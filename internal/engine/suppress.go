package engine

import (
	"strings"

	"github.com/TeriyakiSecky/android-sdk/internal/classfile"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/srctree"
)

// Suppression lookup answers "does this location carry a suppression
// covering the issue?" against two independent representations: annotation
// metadata in compiled classes, and modifier annotations on enclosing
// source declarations. In all of these a nil issue matches only the
// wildcard, which is how blanket class-level suppression is probed before a
// context is even constructed.

// IsSuppressedClass reports whether the issue is suppressed on the class.
func (d *Driver) IsSuppressedClass(issue *model.Issue, cls *classfile.ClassNode) bool {
	return suppressedByAnnotations(issue, cls.InvisibleAnnotations)
}

// IsSuppressedMethod reports whether the issue is suppressed on the method.
func (d *Driver) IsSuppressedMethod(issue *model.Issue, method *classfile.MethodNode) bool {
	return suppressedByAnnotations(issue, method.InvisibleAnnotations)
}

// IsSuppressedField reports whether the issue is suppressed on the field.
func (d *Driver) IsSuppressedField(issue *model.Issue, field *classfile.FieldNode) bool {
	return suppressedByAnnotations(issue, field.InvisibleAnnotations)
}

func suppressedByAnnotations(issue *model.Issue, annotations []*classfile.AnnotationNode) bool {
	for _, annotation := range annotations {
		if !strings.HasSuffix(annotation.Desc, model.SuppressLintSig) {
			continue
		}
		// Annotation values alternate name/value pairs; the ids live under
		// "value", as a single string or a list.
		for i := 0; i+1 < len(annotation.Values); i += 2 {
			key, ok := annotation.Values[i].(string)
			if !ok || key != "value" {
				continue
			}
			switch value := annotation.Values[i+1].(type) {
			case string:
				if matchesIssueID(issue, value) {
					return true
				}
			case []any:
				for _, v := range value {
					if id, ok := v.(string); ok && matchesIssueID(issue, id) {
						return true
					}
				}
			}
		}
	}
	return false
}

// IsSuppressedNode walks upward from node through enclosing declarations,
// checking each declaration's modifier annotations. Only variable, method
// and class declarations carry suppressions; other node kinds are climbed
// past without inspection.
func (d *Driver) IsSuppressedNode(issue *model.Issue, node srctree.Node) bool {
	for node != nil {
		if decl, ok := node.(srctree.Declared); ok {
			if suppressedByModifiers(issue, decl.Modifiers()) {
				return true
			}
		}
		node = node.Parent()
	}
	return false
}

func suppressedByModifiers(issue *model.Issue, mods *srctree.Modifiers) bool {
	if mods == nil {
		return false
	}
	for _, annotation := range mods.Annotations {
		// Match both the lint suppression annotation and the language's
		// generic warning suppression by type-name suffix.
		if !strings.HasSuffix(annotation.TypeName, model.SuppressLint) &&
			!strings.HasSuffix(annotation.TypeName, "SuppressWarnings") {
			continue
		}
		for _, value := range annotation.Values {
			if matchesIssueID(issue, value) {
				return true
			}
		}
	}
	return false
}

func matchesIssueID(issue *model.Issue, id string) bool {
	if strings.EqualFold(id, model.SuppressAll) {
		return true
	}
	return issue != nil && strings.EqualFold(id, issue.ID)
}
