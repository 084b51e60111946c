package plugins

import (
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/scope"
)

// RegisterBuiltin registers the checks that ship with the tool.
func (r *Registry) RegisterBuiltin() {
	r.Register(IssueHardcodedText, newHardcodedText)
	r.Register(IssueMissingIcon, newMissingIcon)
	r.Register(IssueIgnoreWarnings, newProguardConfig)
}

var IssueHardcodedText = model.NewIssue(
	"HardcodedText",
	"Looks for hardcoded text attributes which should be resource references",
	"Internationalization", 5, model.SeverityWarning,
	scope.Of(scope.ResourceFile), "hardcoded-text")

var IssueMissingIcon = model.NewIssue(
	"MissingApplicationIcon",
	"Checks that the application has an icon declared in the manifest",
	"Usability", 5, model.SeverityWarning,
	scope.Of(scope.Manifest), "missing-icon")

var IssueIgnoreWarnings = model.NewIssue(
	"IgnoreWarnings",
	"Flags shrinker configs that globally silence warnings",
	"Correctness", 3, model.SeverityWarning,
	scope.Of(scope.ProguardFile), "proguard-config")
