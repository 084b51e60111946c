package engine

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeriyakiSecky/android-sdk/internal/classfile"
	"github.com/TeriyakiSecky/android-sdk/internal/config"
	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/project"
	"github.com/TeriyakiSecky/android-sdk/internal/scope"
	"github.com/TeriyakiSecky/android-sdk/internal/srctree"
)

func TestUnionDetectors(t *testing.T) {
	a := &recordingDetector{kind: "a"}
	b := &recordingDetector{kind: "b"}
	c := &recordingDetector{kind: "c"}

	union := unionDetectors(
		[]detector.Detector{a, b},
		[]detector.Detector{b, c})
	assert.Equal(t, []detector.Detector{a, b, c}, union)

	assert.Equal(t, []detector.Detector{a}, unionDetectors([]detector.Detector{a}, nil))
	assert.Equal(t, []detector.Detector{a}, unionDetectors(nil, []detector.Detector{a}))
	assert.Nil(t, unionDetectors(nil, nil))
}

func TestVisitorMemo(t *testing.T) {
	everywhere := &recordingDetector{kind: "everywhere"}
	layoutOnly := &recordingDetector{kind: "layout-only",
		folders: map[model.ResourceFolderType]bool{model.FolderTypeLayout: true}}
	checks := []detector.Detector{everywhere, layoutOnly}

	d := New(nil, newFakeClient())

	v1 := d.getVisitor(model.FolderTypeLayout, checks)
	require.NotNil(t, v1)
	assert.Len(t, v1.Detectors(), 2)

	// Same folder type again: memo hit.
	assert.Same(t, v1, d.getVisitor(model.FolderTypeLayout, checks))

	// Different folder type with a different applicable set: new visitor.
	v2 := d.getVisitor(model.FolderTypeMenu, checks)
	require.NotNil(t, v2)
	assert.NotSame(t, v1, v2)
	assert.Len(t, v2.Detectors(), 1)

	// Different folder type but identical applicable set: reused.
	v3 := d.getVisitor(model.FolderTypeValues, checks)
	assert.Same(t, v2, v3)
}

func TestVisitorMemoEmptyFolder(t *testing.T) {
	layoutOnly := &recordingDetector{kind: "layout-only",
		folders: map[model.ResourceFolderType]bool{model.FolderTypeLayout: true}}

	d := New(nil, newFakeClient())
	assert.Nil(t, d.getVisitor(model.FolderTypeRaw, []detector.Detector{layoutOnly}))
}

func TestFolderTypeFiltering(t *testing.T) {
	dir := writeProject(t, t.TempDir(), "app", map[string]string{
		model.ManifestFilename:   "<manifest/>",
		"res/layout/main.xml":    "<LinearLayout/>",
		"res/values/strings.xml": "<resources/>",
	})

	client := newFakeClient()
	det := &recordingDetector{kind: "layout-only",
		folders: map[model.ResourceFolderType]bool{model.FolderTypeLayout: true}}
	d := New(singleRegistry(testIssue("LayoutOnly", "layout-only", scope.Of(scope.ResourceFile)), det), client)

	d.Analyze([]string{dir}, 0)

	assert.Equal(t, []string{"main.xml"}, det.visits())
}

func TestSourceScanSkippedWithoutParser(t *testing.T) {
	dir := writeProject(t, t.TempDir(), "app", map[string]string{
		model.ManifestFilename: "<manifest/>",
		"src/Foo.java":         "class Foo {}",
	})

	client := newFakeClient() // no source parser wired
	det := &sourceRecorder{kind: "source"}
	d := New(singleRegistry(testIssue("Source", "source", scope.Of(scope.SourceFile)), det), client)

	d.Analyze([]string{dir}, 0)

	assert.Empty(t, det.files)
	assert.Contains(t, client.logs, "No source parser provided: not running source checks")
}

type sourceRecorder struct {
	detector.Base
	kind  string
	files []string
}

func (d *sourceRecorder) Kind() string { return d.kind }

func (d *sourceRecorder) VisitTree(ctx *detector.SourceContext) {
	d.files = append(d.files, filepath.Base(ctx.File))
}

type stubSourceParser struct{}

func (stubSourceParser) ParseSource(ctx *detector.SourceContext) srctree.Node {
	return &srctree.ClassDecl{Name: "Stub"}
}

func TestSourceScan(t *testing.T) {
	dir := writeProject(t, t.TempDir(), "app", map[string]string{
		model.ManifestFilename: "<manifest/>",
		"src/a/Foo.java":       "class Foo {}",
		"src/b/Bar.java":       "class Bar {}",
		"src/readme.txt":       "not a source file",
	})

	client := newFakeClient()
	client.source = stubSourceParser{}
	det := &sourceRecorder{kind: "source"}
	d := New(singleRegistry(testIssue("Source", "source", scope.Of(scope.SourceFile)), det), client)

	d.Analyze([]string{dir}, 0)

	assert.Equal(t, []string{"Foo.java", "Bar.java"}, det.files)
}

type classRecorder struct {
	detector.Base
	kind  string
	files []string
}

func (d *classRecorder) Kind() string { return d.kind }

func (d *classRecorder) CheckClass(ctx *detector.ClassContext) {
	d.files = append(d.files, filepath.Base(ctx.File))
}

// stubClassParser marks classes whose bytes contain the token as carrying a
// blanket suppression annotation.
type stubClassParser struct{}

func (stubClassParser) Parse(b []byte) (*classfile.ClassNode, error) {
	node := &classfile.ClassNode{}
	if bytes.Contains(b, []byte("suppressed")) {
		node.InvisibleAnnotations = []*classfile.AnnotationNode{{
			Desc:   "Landroid/annotation/SuppressLint;",
			Values: []any{"value", model.SuppressAll},
		}}
	}
	return node, nil
}

func TestClassScanSkippedWithoutParser(t *testing.T) {
	dir := writeProject(t, t.TempDir(), "app", map[string]string{
		model.ManifestFilename:  "<manifest/>",
		"bin/classes/Foo.class": "code",
	})

	client := newFakeClient() // no class parser wired
	det := &classRecorder{kind: "bytecode"}
	d := New(singleRegistry(testIssue("Bytecode", "bytecode", scope.Of(scope.ClassFile)), det), client)

	d.Analyze([]string{dir}, 0)

	assert.Empty(t, det.files)
	assert.Contains(t, client.logs, "No class-file parser provided: not running bytecode checks")
}

func TestClassScanHonorsClassSuppression(t *testing.T) {
	dir := writeProject(t, t.TempDir(), "app", map[string]string{
		model.ManifestFilename:  "<manifest/>",
		"bin/classes/Bar.class": "code",
		"bin/classes/Foo.class": "suppressed code",
	})

	client := newFakeClient()
	client.classParser = stubClassParser{}
	det := &classRecorder{kind: "bytecode"}
	d := New(singleRegistry(testIssue("Bytecode", "bytecode", scope.Of(scope.ClassFile)), det), client)

	d.Analyze([]string{dir}, 0)

	assert.Equal(t, []string{"Bar.class"}, det.files)
}

func TestCheckArchive(t *testing.T) {
	dir := t.TempDir()
	jar := filepath.Join(dir, "classes.jar")
	f, err := os.Create(jar)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for name, content := range map[string]string{
		"com/example/Foo.class": "code",
		"com/example/Bar.class": "suppressed code",
		"META-INF/MANIFEST.MF":  "not a class",
	} {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	client := newFakeClient()
	client.classParser = stubClassParser{}
	det := &classRecorder{kind: "bytecode"}
	d := New(nil, client)

	p := &project.Project{Dir: dir, Config: config.Default()}
	d.checkArchive(p, p, jar, []detector.Detector{det})

	// Only class entries are parsed, and the suppressed one is skipped.
	assert.Equal(t, []string{"Foo.class"}, det.files)
}

func TestProguardOnlyCheckedForMainProject(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "lib", map[string]string{
		model.ManifestFilename: "<manifest/>",
		"project.properties":   "android.library=true\n",
		model.ProguardFilename: "-ignorewarnings\n",
	})
	app := writeProject(t, root, "app", map[string]string{
		model.ManifestFilename: "<manifest/>",
		"project.properties":   "android.library.reference.1=../lib\n",
		model.ProguardFilename: "-ignorewarnings\n",
	})

	client := newFakeClient()
	det := &recordingDetector{kind: "shrinker"}
	d := New(singleRegistry(testIssue("Shrinker", "shrinker", scope.Of(scope.ProguardFile)), det), client)

	d.Analyze([]string{app}, 0)

	// The library's shrinker config is not scanned on the app's behalf.
	assert.Equal(t, []string{"run:" + model.ProguardFilename}, det.runs())
}
