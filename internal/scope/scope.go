// Package scope defines the analysis-target categories and the set algebra
// the driver uses to decide which detectors run where.
package scope

import "strings"

// Scope is a single analysis-target category.
type Scope uint8

const (
	// Manifest is the project manifest file.
	Manifest Scope = 1 << iota
	// ResourceFile is an individual resource file.
	ResourceFile
	// AllResourceFiles is the collection of all resource files; detectors in
	// this scope need a full pass over every resource to produce results.
	AllResourceFiles
	// SourceFile is an individual source file.
	SourceFile
	// AllSourceFiles is the collection of all source files.
	AllSourceFiles
	// ClassFile is a compiled class file.
	ClassFile
	// ProguardFile is the shrinker configuration file.
	ProguardFile
)

// Set is a set of scope categories. The zero value is the empty set.
type Set uint8

// All covers every scope category.
const All Set = Set(Manifest | ResourceFile | AllResourceFiles |
	SourceFile | AllSourceFiles | ClassFile | ProguardFile)

// Of builds a set from individual categories.
func Of(scopes ...Scope) Set {
	var s Set
	for _, sc := range scopes {
		s |= Set(sc)
	}
	return s
}

func (s Set) Union(other Set) Set     { return s | other }
func (s Set) Intersect(other Set) Set { return s & other }
func (s Set) IsEmpty() bool           { return s == 0 }

// Contains reports whether the single category is a member of the set.
func (s Set) Contains(sc Scope) bool { return s&Set(sc) != 0 }

// ContainsAll reports whether every member of sub is a member of s.
func (s Set) ContainsAll(sub Set) bool { return s&sub == sub }

// SingleFileOnly reports whether the set is restricted to single-file
// analysis, i.e. contains no aggregate or project-wide categories. Library
// projects are not traversed for such runs.
func (s Set) SingleFileOnly() bool {
	single := Of(Manifest, ResourceFile, SourceFile, ClassFile, ProguardFile)
	return !s.IsEmpty() && single.ContainsAll(s)
}

// Scopes returns the individual categories in the set, in declaration
// order.
func (s Set) Scopes() []Scope {
	var out []Scope
	for _, n := range names {
		if s.Contains(n.sc) {
			out = append(out, n.sc)
		}
	}
	return out
}

var names = []struct {
	sc   Scope
	name string
}{
	{Manifest, "manifest"},
	{ResourceFile, "resource-file"},
	{AllResourceFiles, "all-resource-files"},
	{SourceFile, "source-file"},
	{AllSourceFiles, "all-source-files"},
	{ClassFile, "class-file"},
	{ProguardFile, "proguard-file"},
}

func (s Set) String() string {
	var parts []string
	for _, n := range names {
		if s.Contains(n.sc) {
			parts = append(parts, n.name)
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
