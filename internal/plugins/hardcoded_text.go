package plugins

import (
	"fmt"
	"strings"

	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/xmldom"
)

// hardcodedText flags literal android:text values in layouts; text should
// come from string resources so it can be translated.
type hardcodedText struct {
	detector.Base
}

func newHardcodedText() detector.Detector { return &hardcodedText{} }

func (d *hardcodedText) Kind() string { return "hardcoded-text" }

func (d *hardcodedText) AppliesToFolder(t model.ResourceFolderType) bool {
	return t == model.FolderTypeLayout || t == model.FolderTypeMenu
}

func (d *hardcodedText) VisitDocument(ctx *detector.XMLContext) {
	d.visitElement(ctx, ctx.Document.Root)
}

func (d *hardcodedText) visitElement(ctx *detector.XMLContext, e *xmldom.Element) {
	if e == nil {
		return
	}
	for _, attr := range []string{"android:text", "android:hint", "android:title"} {
		value := e.Attr(attr)
		if value == "" || strings.HasPrefix(value, "@") || strings.HasPrefix(value, "?") {
			continue
		}
		ctx.Report(IssueHardcodedText,
			&model.Location{File: ctx.File, StartLine: e.Line},
			fmt.Sprintf("Hardcoded string %q, should use @string resource", value), nil)
	}
	for _, child := range e.Children {
		d.visitElement(ctx, child)
	}
}
