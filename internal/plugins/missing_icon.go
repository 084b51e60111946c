package plugins

import (
	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
)

// missingIcon checks that the manifest declares an application icon.
type missingIcon struct {
	detector.Base
}

func newMissingIcon() detector.Detector { return &missingIcon{} }

func (d *missingIcon) Kind() string { return "missing-icon" }

// Only dispatched for the manifest, never resource folders.
func (d *missingIcon) AppliesToFolder(model.ResourceFolderType) bool { return false }

func (d *missingIcon) VisitDocument(ctx *detector.XMLContext) {
	root := ctx.Document.Root
	if root == nil || root.Name != "manifest" {
		return
	}
	application := root.Find("application")
	if application == nil {
		return
	}
	if application.Attr("android:icon") == "" {
		ctx.Report(IssueMissingIcon,
			&model.Location{File: ctx.File, StartLine: application.Line},
			"Application should declare android:icon", nil)
	}
}
