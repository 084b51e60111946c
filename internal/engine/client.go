package engine

import (
	"github.com/TeriyakiSecky/android-sdk/internal/classfile"
	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/project"
	"github.com/TeriyakiSecky/android-sdk/internal/scope"
)

// IssueParserError is the reserved issue parsers report syntax errors
// against. It bypasses the "disabled issue" diagnostic in the reporting
// filter so a parser error never looks like a detector bug.
var IssueParserError = model.NewIssue(
	"LintError",
	"Finds files that contain fatal parser errors",
	"Lint", 10, model.SeverityError, scope.All, "")

// IssueCanceled carries the single synthesized report of a canceled run.
var IssueCanceled = model.NewIssue(
	"LintCanceled",
	"Lint run canceled by the user",
	"Lint", 0, model.SeverityInfo, scope.Of(), "")

// clientWrapper sits between detectors and the embedding tool and enforces
// that disabled or ignored issues never reach it, so neither detectors nor
// clients have to check. Everything else delegates untouched.
type clientWrapper struct {
	delegate detector.Client
}

func (w *clientWrapper) Report(ctx *detector.Context, issue *model.Issue,
	location *model.Location, message string, data any) {
	cfg := ctx.Config()
	if !cfg.IsEnabled(issue) {
		if issue != IssueParserError {
			w.delegate.Log(nil, "Incorrect detector reported disabled issue %s", issue)
		}
		return
	}

	if cfg.IsIgnored(issue, location, message) {
		return
	}

	if cfg.Severity(issue) == model.SeverityIgnore {
		return
	}

	w.delegate.Report(ctx, issue, location, message, data)
}

func (w *clientWrapper) Log(err error, format string, args ...any) {
	w.delegate.Log(err, format, args...)
}

func (w *clientWrapper) GetProject(dir, referenceDir string) *project.Project {
	return w.delegate.GetProject(dir, referenceDir)
}

func (w *clientWrapper) MarkupParser() detector.MarkupParser { return w.delegate.MarkupParser() }
func (w *clientWrapper) SourceParser() detector.SourceParser { return w.delegate.SourceParser() }
func (w *clientWrapper) ClassParser() classfile.Parser       { return w.delegate.ClassParser() }

func (w *clientWrapper) ReadFile(path string) ([]byte, error) {
	return w.delegate.ReadFile(path)
}
