package model

import "strings"

// Well-known file and folder names recognized during scope inference and
// project discovery.
const (
	ManifestFilename = "AndroidManifest.xml"
	ProguardFilename = "proguard.cfg"
	ResFolder        = "res"

	DotXML   = ".xml"
	DotJava  = ".java"
	DotClass = ".class"
	DotJar   = ".jar"
)

// SuppressLint is the simple name of the suppression annotation; SuppressAll
// is the wildcard id matching every issue. SuppressLintSig is the suffix of
// the annotation's binary type descriptor in class files.
const (
	SuppressLint    = "SuppressLint"
	SuppressAll     = "all"
	SuppressLintSig = "/" + SuppressLint + ";"
)

type Severity string

const (
	SeverityIgnore  Severity = "ignore"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

func ParseSeverity(s string) Severity {
	switch s {
	case string(SeverityError):
		return SeverityError
	case string(SeverityWarning):
		return SeverityWarning
	case string(SeverityIgnore):
		return SeverityIgnore
	default:
		return SeverityInfo
	}
}

var severityRank = map[Severity]int{
	SeverityIgnore:  0,
	SeverityInfo:    1,
	SeverityWarning: 2,
	SeverityError:   3,
}

func SeverityGTE(a, b Severity) bool {
	return severityRank[a] >= severityRank[b]
}

// Location points at a region of a file. Line numbers are 1-based; a zero
// EndLine means "same as StartLine".
type Location struct {
	File      string `json:"file"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
}

// Finding is a single reported problem, as collected by the embedding tool.
type Finding struct {
	IssueID  string   `json:"issueId"`
	Severity Severity `json:"severity"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Message  string   `json:"message"`
}

// ResourceFolderType classifies a resource subfolder (layout, values, ...)
// by its name. The qualifier suffix after '-' is ignored, so "values-land"
// and "values" share a type.
type ResourceFolderType string

const (
	FolderTypeAnim     ResourceFolderType = "anim"
	FolderTypeColor    ResourceFolderType = "color"
	FolderTypeDrawable ResourceFolderType = "drawable"
	FolderTypeLayout   ResourceFolderType = "layout"
	FolderTypeMenu     ResourceFolderType = "menu"
	FolderTypeRaw      ResourceFolderType = "raw"
	FolderTypeValues   ResourceFolderType = "values"
	FolderTypeXML      ResourceFolderType = "xml"
)

var folderTypes = []ResourceFolderType{
	FolderTypeAnim, FolderTypeColor, FolderTypeDrawable, FolderTypeLayout,
	FolderTypeMenu, FolderTypeRaw, FolderTypeValues, FolderTypeXML,
}

// FolderTypeOf returns the resource type for a folder name, or "" when the
// name does not denote a resource folder.
func FolderTypeOf(name string) ResourceFolderType {
	base := name
	if idx := strings.IndexByte(name, '-'); idx != -1 {
		base = name[:idx]
	}
	for _, t := range folderTypes {
		if string(t) == base {
			return t
		}
	}
	return ""
}
