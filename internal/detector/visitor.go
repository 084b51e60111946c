package detector

// XMLVisitor binds an ordered detector list to the markup parser and drives
// the per-file hook sequence. Building one is comparatively expensive, so
// the driver memoizes the last visitor per resource folder type.
type XMLVisitor struct {
	parser    MarkupParser
	detectors []Detector
}

func NewXMLVisitor(parser MarkupParser, detectors []Detector) *XMLVisitor {
	return &XMLVisitor{parser: parser, detectors: detectors}
}

// Detectors returns the bound detector list, in dispatch order.
func (v *XMLVisitor) Detectors() []Detector { return v.detectors }

// VisitFile parses the context's file (unless the caller already attached a
// document) and runs every bound markup scanner over it. A nil parse result
// means the parser already reported; the file is skipped.
func (v *XMLVisitor) VisitFile(ctx *XMLContext) {
	if ctx.Document == nil {
		ctx.Document = v.parser.ParseXML(ctx)
		if ctx.Document == nil {
			return
		}
	}
	for _, d := range v.detectors {
		if !d.AppliesTo(&ctx.Context, ctx.File) {
			continue
		}
		d.BeforeFile(&ctx.Context)
		if scanner, ok := d.(XMLScanner); ok {
			scanner.VisitDocument(ctx)
		}
		d.AfterFile(&ctx.Context)
	}
}

// SourceVisitor binds an ordered detector list to the source parser. One
// instance is shared across every source file of a project pass.
type SourceVisitor struct {
	parser    SourceParser
	detectors []Detector
}

func NewSourceVisitor(parser SourceParser, detectors []Detector) *SourceVisitor {
	return &SourceVisitor{parser: parser, detectors: detectors}
}

// VisitFile parses the context's file and runs every bound source scanner.
func (v *SourceVisitor) VisitFile(ctx *SourceContext) {
	ctx.Root = v.parser.ParseSource(ctx)
	if ctx.Root == nil {
		return
	}
	for _, d := range v.detectors {
		if !d.AppliesTo(&ctx.Context, ctx.File) {
			continue
		}
		d.BeforeFile(&ctx.Context)
		if scanner, ok := d.(SourceScanner); ok {
			scanner.VisitTree(ctx)
		}
		d.AfterFile(&ctx.Context)
	}
}
