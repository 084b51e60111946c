package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TeriyakiSecky/android-sdk/internal/classfile"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/scope"
	"github.com/TeriyakiSecky/android-sdk/internal/srctree"
)

func suppression(values ...any) []*classfile.AnnotationNode {
	return []*classfile.AnnotationNode{{
		Desc:   "Landroid/annotation/SuppressLint;",
		Values: values,
	}}
}

func TestIsSuppressedClass(t *testing.T) {
	d := New(nil, newFakeClient())
	issue := testIssue("UnusedIds", "test", scope.Of(scope.ClassFile))

	assert.False(t, d.IsSuppressedClass(issue, &classfile.ClassNode{}))
	assert.True(t, d.IsSuppressedClass(issue, &classfile.ClassNode{
		InvisibleAnnotations: suppression("value", "UnusedIds"),
	}))
	// Issue ids match case-insensitively.
	assert.True(t, d.IsSuppressedClass(issue, &classfile.ClassNode{
		InvisibleAnnotations: suppression("value", "unusedids"),
	}))
	assert.False(t, d.IsSuppressedClass(issue, &classfile.ClassNode{
		InvisibleAnnotations: suppression("value", "OtherIssue"),
	}))
	// The wildcard covers every issue.
	assert.True(t, d.IsSuppressedClass(issue, &classfile.ClassNode{
		InvisibleAnnotations: suppression("value", "all"),
	}))
	// An id list covers each listed issue.
	assert.True(t, d.IsSuppressedClass(issue, &classfile.ClassNode{
		InvisibleAnnotations: suppression("value", []any{"OtherIssue", "UnusedIds"}),
	}))
	// Unrelated annotations never match, whatever their values say.
	assert.False(t, d.IsSuppressedClass(issue, &classfile.ClassNode{
		InvisibleAnnotations: []*classfile.AnnotationNode{{
			Desc:   "Ljavax/annotation/Nullable;",
			Values: []any{"value", "UnusedIds"},
		}},
	}))
}

func TestIsSuppressedClassNilIssue(t *testing.T) {
	d := New(nil, newFakeClient())

	// A nil issue probes for blanket suppression only.
	assert.True(t, d.IsSuppressedClass(nil, &classfile.ClassNode{
		InvisibleAnnotations: suppression("value", "all"),
	}))
	assert.False(t, d.IsSuppressedClass(nil, &classfile.ClassNode{
		InvisibleAnnotations: suppression("value", "UnusedIds"),
	}))
}

func TestIsSuppressedMethodAndField(t *testing.T) {
	d := New(nil, newFakeClient())
	issue := testIssue("UnusedIds", "test", scope.Of(scope.ClassFile))

	assert.True(t, d.IsSuppressedMethod(issue, &classfile.MethodNode{
		Name:                 "onCreate",
		InvisibleAnnotations: suppression("value", "UnusedIds"),
	}))
	assert.False(t, d.IsSuppressedMethod(issue, &classfile.MethodNode{Name: "onCreate"}))

	assert.True(t, d.IsSuppressedField(issue, &classfile.FieldNode{
		Name:                 "sInstance",
		InvisibleAnnotations: suppression("value", []any{"UnusedIds"}),
	}))
	assert.False(t, d.IsSuppressedField(issue, &classfile.FieldNode{Name: "sInstance"}))
}

func TestIsSuppressedNode(t *testing.T) {
	d := New(nil, newFakeClient())
	issue := testIssue("UnusedIds", "test", scope.Of(scope.SourceFile))

	annotated := func(typeName string, values ...string) *srctree.Modifiers {
		return &srctree.Modifiers{Annotations: []*srctree.Annotation{{
			TypeName: typeName,
			Values:   values,
		}}}
	}

	// Walk climbs from an expression through the method to the class.
	cls := &srctree.ClassDecl{Name: "Foo",
		Mods: annotated("SuppressLint", "UnusedIds")}
	method := &srctree.MethodDecl{Name: "bar",
		BaseNode: srctree.BaseNode{ParentNode: cls}}
	expr := &srctree.Expr{BaseNode: srctree.BaseNode{ParentNode: method}}

	assert.True(t, d.IsSuppressedNode(issue, expr))
	assert.False(t, d.IsSuppressedNode(
		testIssue("Other", "test", scope.Of(scope.SourceFile)), expr))

	// Fully qualified annotation names match by suffix.
	qualified := &srctree.MethodDecl{Name: "baz",
		Mods: annotated("android.annotation.SuppressLint", "UnusedIds")}
	assert.True(t, d.IsSuppressedNode(issue, qualified))

	// The language's generic warning suppression counts too.
	generic := &srctree.VariableDecl{Name: "v",
		Mods: annotated("SuppressWarnings", "all")}
	assert.True(t, d.IsSuppressedNode(issue, generic))

	// Unannotated chains are not suppressed, and nil is harmless.
	bare := &srctree.Expr{BaseNode: srctree.BaseNode{
		ParentNode: &srctree.MethodDecl{Name: "plain"},
	}}
	assert.False(t, d.IsSuppressedNode(issue, bare))
	assert.False(t, d.IsSuppressedNode(issue, nil))
}

func TestIsSuppressedNodeNilIssue(t *testing.T) {
	d := New(nil, newFakeClient())

	wildcard := &srctree.ClassDecl{Name: "Foo",
		Mods: &srctree.Modifiers{Annotations: []*srctree.Annotation{{
			TypeName: "SuppressLint",
			Values:   []string{model.SuppressAll},
		}}}}
	specific := &srctree.ClassDecl{Name: "Bar",
		Mods: &srctree.Modifiers{Annotations: []*srctree.Annotation{{
			TypeName: "SuppressLint",
			Values:   []string{"UnusedIds"},
		}}}}

	assert.True(t, d.IsSuppressedNode(nil, wildcard))
	assert.False(t, d.IsSuppressedNode(nil, specific))
}
