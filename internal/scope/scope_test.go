package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	assert.True(t, Of().IsEmpty())
	assert.False(t, Of(Manifest).IsEmpty())
	assert.True(t, Of(Manifest, ResourceFile).Contains(Manifest))
	assert.True(t, Of(Manifest, ResourceFile).Contains(ResourceFile))
	assert.False(t, Of(Manifest, ResourceFile).Contains(ClassFile))
}

func TestUnionIntersect(t *testing.T) {
	a := Of(Manifest, SourceFile)
	b := Of(SourceFile, ClassFile)

	c := Of(ClassFile, ProguardFile)
	assert.Equal(t, a.Union(b), b.Union(a))
	assert.Equal(t, a.Intersect(b), b.Intersect(a))
	assert.Equal(t, a.Intersect(b).Intersect(c), a.Intersect(b.Intersect(c)))
	assert.Equal(t, Of(SourceFile), a.Intersect(b))
	assert.Equal(t, Of(Manifest, SourceFile, ClassFile), a.Union(b))

	// Union with self and with All are no-ops in the expected directions.
	assert.Equal(t, a, a.Union(a))
	assert.Equal(t, All, a.Union(All))
	assert.Equal(t, a, a.Intersect(All))
}

func TestContainsAll(t *testing.T) {
	a := Of(Manifest, ResourceFile, SourceFile)
	assert.True(t, a.ContainsAll(Of(Manifest, SourceFile)))
	assert.True(t, a.ContainsAll(Of()))
	assert.False(t, a.ContainsAll(Of(Manifest, ClassFile)))
	assert.True(t, All.ContainsAll(a))
}

func TestSingleFileOnly(t *testing.T) {
	assert.True(t, Of(ResourceFile).SingleFileOnly())
	assert.True(t, Of(Manifest, ResourceFile, SourceFile, ClassFile, ProguardFile).SingleFileOnly())
	assert.False(t, Of(ResourceFile, AllResourceFiles).SingleFileOnly())
	assert.False(t, Of(AllSourceFiles).SingleFileOnly())
	assert.False(t, All.SingleFileOnly())
	// The empty set checks nothing, so it is not a single-file run either.
	assert.False(t, Of().SingleFileOnly())
}

func TestScopesOrder(t *testing.T) {
	sc := Of(ProguardFile, Manifest, SourceFile)
	assert.Equal(t, []Scope{Manifest, SourceFile, ProguardFile}, sc.Scopes())
	assert.Nil(t, Of().Scopes())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[manifest class-file]", Of(ClassFile, Manifest).String())
	assert.Equal(t, "[]", Of().String())
}
