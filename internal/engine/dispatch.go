package engine

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/project"
	"github.com/TeriyakiSecky/android-sdk/internal/scope"
)

// runFileDetectors sequences the scope categories for one project:
// manifest, resources, sources, compiled classes, shrinker config.
func (d *Driver) runFileDetectors(p, main *project.Project) {
	// Look up manifest information (but not for library projects).
	if !p.Library && p.ManifestFile != "" {
		ctx := &detector.XMLContext{Context: *detector.NewContext(d, p, main, p.ManifestFile)}
		if parser := d.client.MarkupParser(); parser != nil {
			ctx.Document = parser.ParseXML(ctx)
			if ctx.Document != nil {
				p.ReadManifest(ctx.Document)

				if d.scope.Contains(scope.Manifest) {
					if detectors := d.scopeDetectors[scope.Manifest]; detectors != nil {
						v := detector.NewXMLVisitor(parser, detectors)
						d.fireEvent(EventScanningFile, &ctx.Context)
						v.VisitFile(ctx)
					}
				}
			}
		}
	}

	// Single-file and all-file resource detectors share one pass through
	// the resource directories.
	if d.scope.Contains(scope.ResourceFile) || d.scope.Contains(scope.AllResourceFiles) {
		checks := unionDetectors(d.scopeDetectors[scope.ResourceFile],
			d.scopeDetectors[scope.AllResourceFiles])
		xmlDetectors := make([]detector.Detector, 0, len(checks))
		for _, check := range checks {
			if _, ok := check.(detector.XMLScanner); ok {
				xmlDetectors = append(xmlDetectors, check)
			}
		}
		if len(xmlDetectors) > 0 {
			if p.Subset != nil {
				d.checkIndividualResources(p, main, xmlDetectors, p.Subset)
			} else {
				res := filepath.Join(p.Dir, model.ResFolder)
				if info, err := os.Stat(res); err == nil && info.IsDir() {
					d.checkResFolder(p, main, res, xmlDetectors)
				}
			}
		}
	}

	if d.isCanceled() {
		return
	}

	if d.scope.Contains(scope.SourceFile) || d.scope.Contains(scope.AllSourceFiles) {
		checks := unionDetectors(d.scopeDetectors[scope.SourceFile],
			d.scopeDetectors[scope.AllSourceFiles])
		if len(checks) > 0 {
			d.checkSources(p, main, p.SourceFolders, checks)
		}
	}

	if d.isCanceled() {
		return
	}

	if d.scope.Contains(scope.ClassFile) {
		if detectors := d.scopeDetectors[scope.ClassFile]; len(detectors) > 0 {
			d.checkClasses(p, main, p.ClassFolders, detectors)
		}
	}

	if d.isCanceled() {
		return
	}

	// The shrinker config is only checked for the main project.
	if p == main && d.scope.Contains(scope.ProguardFile) {
		if detectors := d.scopeDetectors[scope.ProguardFile]; detectors != nil {
			file := filepath.Join(p.Dir, model.ProguardFilename)
			if _, err := os.Stat(file); err == nil {
				ctx := detector.NewContext(d, p, main, file)
				d.fireEvent(EventScanningFile, ctx)
				// Always a single file: direct loop, no visitor.
				for _, det := range detectors {
					if det.AppliesTo(ctx, file) {
						det.BeforeFile(ctx)
						det.Run(ctx)
						det.AfterFile(ctx)
					}
				}
			}
		}
	}
}

// unionDetectors merges two scope buckets, de-duplicating detectors present
// in both (a detector registering a single-file and an all-files issue
// shows up on both lists). Order of the first list is preserved.
func unionDetectors(list1, list2 []detector.Detector) []detector.Detector {
	if list1 == nil {
		return list2
	}
	if list2 == nil {
		return list1
	}
	seen := make(map[detector.Detector]bool, len(list1)+len(list2))
	out := make([]detector.Detector, 0, len(list1)+len(list2))
	for _, list := range [][]detector.Detector{list1, list2} {
		for _, det := range list {
			if !seen[det] {
				seen[det] = true
				out = append(out, det)
			}
		}
	}
	return out
}

// checkSources batches every source file under the given folders into one
// flat list, then visits them with a single shared visitor.
func (d *Driver) checkSources(p, main *project.Project, sourceFolders []string, checks []detector.Detector) {
	parser := d.client.SourceParser()
	if parser == nil {
		d.client.Log(nil, "No source parser provided: not running source checks")
		return
	}

	var sources []string
	for _, folder := range sourceFolders {
		gatherFiles(folder, model.DotJava, &sources)
	}
	if len(sources) == 0 {
		return
	}

	visitor := detector.NewSourceVisitor(parser, checks)
	for _, file := range sources {
		ctx := &detector.SourceContext{Context: *detector.NewContext(d, p, main, file)}
		d.fireEvent(EventScanningFile, &ctx.Context)
		visitor.VisitFile(ctx)
		if d.isCanceled() {
			return
		}
	}
}

// gatherFiles collects files with the given suffix by recursive descent, in
// directory listing order.
func gatherFiles(dir, suffix string, result *[]string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			gatherFiles(path, suffix, result)
		} else if strings.HasSuffix(entry.Name(), suffix) {
			*result = append(*result, path)
		}
	}
}

// checkClasses analyzes every compiled class under the project's output
// paths, streaming archive entries and recursing into directories.
// Unreadable entries are logged and skipped, never fatal.
func (d *Driver) checkClasses(p, main *project.Project, classFolders []string, checks []detector.Detector) {
	parser := d.client.ClassParser()
	if parser == nil {
		d.client.Log(nil, "No class-file parser provided: not running bytecode checks")
		return
	}

	for _, entry := range classFolders {
		if strings.HasSuffix(entry, model.DotJar) {
			d.checkArchive(p, main, entry, checks)
			if d.isCanceled() {
				return
			}
			continue
		}

		var classFiles []string
		gatherFiles(entry, model.DotClass, &classFiles)
		for _, file := range classFiles {
			bytes, err := os.ReadFile(file)
			if err != nil {
				d.client.Log(err, "Could not read class file %s", file)
				continue
			}
			d.checkClassFile(bytes, p, main, file, "", entry, checks)
			if d.isCanceled() {
				return
			}
		}
	}
}

func (d *Driver) checkArchive(p, main *project.Project, jarFile string, checks []detector.Detector) {
	r, err := zip.OpenReader(jarFile)
	if err != nil {
		d.client.Log(err, "Could not read jar file contents from %s", jarFile)
		return
	}
	defer r.Close()

	for _, entry := range r.File {
		if !strings.HasSuffix(entry.Name, model.DotClass) {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			d.client.Log(err, "Could not read jar entry %s", entry.Name)
			continue
		}
		bytes, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			d.client.Log(err, "Could not read jar entry %s", entry.Name)
			continue
		}
		d.checkClassFile(bytes, p, main, entry.Name, jarFile, jarFile, checks)
		if d.isCanceled() {
			return
		}
	}
}

func (d *Driver) checkClassFile(bytes []byte, p, main *project.Project,
	file, jarFile, binDir string, checks []detector.Detector) {
	parser := d.client.ClassParser()
	cls, err := parser.Parse(bytes)
	if err != nil {
		d.client.Log(err, "Could not parse class file %s", file)
		return
	}

	if d.IsSuppressedClass(nil, cls) {
		// Class was annotated with suppress all; no need to look further.
		return
	}

	ctx := &detector.ClassContext{
		Context: *detector.NewContext(d, p, main, file),
		JarFile: jarFile,
		BinDir:  binDir,
		Bytes:   bytes,
		Class:   cls,
	}
	for _, det := range checks {
		if det.AppliesTo(&ctx.Context, file) {
			d.fireEvent(EventScanningFile, &ctx.Context)
			det.BeforeFile(&ctx.Context)
			if scanner, ok := det.(detector.ClassScanner); ok {
				scanner.CheckClass(ctx)
			}
			det.AfterFile(&ctx.Context)
		}
		if d.isCanceled() {
			return
		}
	}
}

// visitorMemo caches the last resource visitor so adjacent folders of the
// same type, or types sharing the same applicable detector set, reuse it.
// It is invalidated whenever the detector schedule is recomputed.
type visitorMemo struct {
	valid      bool
	folderType model.ResourceFolderType
	detectors  []detector.Detector
	visitor    *detector.XMLVisitor
}

func (d *Driver) getVisitor(t model.ResourceFolderType, checks []detector.Detector) *detector.XMLVisitor {
	if d.memo.valid && d.memo.folderType == t {
		return d.memo.visitor
	}

	applicable := make([]detector.Detector, 0, len(checks))
	for _, check := range checks {
		if scanner, ok := check.(detector.XMLScanner); ok && scanner.AppliesToFolder(t) {
			applicable = append(applicable, check)
		}
	}

	// If the applicable set hasn't changed, keep the current visitor.
	if d.memo.valid && detectorsEqual(d.memo.detectors, applicable) {
		d.memo.folderType = t
		return d.memo.visitor
	}

	var visitor *detector.XMLVisitor
	if len(applicable) > 0 {
		visitor = detector.NewXMLVisitor(d.client.MarkupParser(), applicable)
	}
	d.memo = visitorMemo{valid: true, folderType: t, detectors: applicable, visitor: visitor}
	return visitor
}

func detectorsEqual(a, b []detector.Detector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkResFolder walks the aggregate resources folder. Children are sorted
// alphabetically so folders of the same resource type are processed
// contiguously, which lets the visitor memo collapse rebuilds.
func (d *Driver) checkResFolder(p, main *project.Project, res string, checks []detector.Detector) {
	entries, err := os.ReadDir(res)
	if err != nil {
		return
	}
	// os.ReadDir returns entries sorted by name.
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if t := model.FolderTypeOf(entry.Name()); t != "" {
			d.checkResourceFolder(p, main, filepath.Join(res, entry.Name()), t, checks)
		}
		if d.isCanceled() {
			return
		}
	}
}

func (d *Driver) checkResourceFolder(p, main *project.Project, dir string,
	t model.ResourceFolderType, checks []detector.Detector) {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) == 0 {
		return
	}
	visitor := d.getVisitor(t, checks)
	if visitor == nil {
		// No applicable rules in this folder.
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), model.DotXML) {
			continue
		}
		file := filepath.Join(dir, entry.Name())
		ctx := &detector.XMLContext{
			Context:    *detector.NewContext(d, p, main, file),
			FolderType: t,
		}
		d.fireEvent(EventScanningFile, &ctx.Context)
		visitor.VisitFile(ctx)
		if d.isCanceled() {
			return
		}
	}
}

// checkIndividualResources dispatches an explicit file subset: each entry
// is a resource-type subfolder, the aggregate resources folder, or an
// individual markup file whose folder determines its type.
func (d *Driver) checkIndividualResources(p, main *project.Project,
	xmlDetectors []detector.Detector, files []string) {
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if info.IsDir() {
			name := filepath.Base(file)
			t := model.FolderTypeOf(name)
			switch {
			case t != "" && filepath.Base(filepath.Dir(file)) == model.ResFolder:
				d.checkResourceFolder(p, main, file, t, xmlDetectors)
			case name == model.ResFolder:
				d.checkResFolder(p, main, file, xmlDetectors)
			default:
				d.client.Log(nil, "Unexpected folder %s; should be project, \"res\" folder or resource folder", file)
			}
		} else if strings.HasSuffix(info.Name(), model.DotXML) {
			t := model.FolderTypeOf(filepath.Base(filepath.Dir(file)))
			if t == "" {
				continue
			}
			if visitor := d.getVisitor(t, xmlDetectors); visitor != nil {
				ctx := &detector.XMLContext{
					Context:    *detector.NewContext(d, p, main, file),
					FolderType: t,
				}
				d.fireEvent(EventScanningFile, &ctx.Context)
				visitor.VisitFile(ctx)
			}
		}
		if d.isCanceled() {
			return
		}
	}
}
