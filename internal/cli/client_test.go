package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeriyakiSecky/android-sdk/internal/engine"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/plugins"
)

func writeFixture(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func scan(t *testing.T, dir string) (*Client, []model.Finding) {
	t.Helper()
	registry := plugins.NewRegistry()
	registry.RegisterBuiltin()
	client := NewClient()
	driver := engine.New(registry, client)
	driver.Analyze([]string{dir}, 0)
	return client, client.Findings()
}

func TestScanProjectEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, map[string]string{
		"AndroidManifest.xml": `<manifest xmlns:android="http://schemas.android.com/apk/res/android" package="com.example"><application/></manifest>`,
		"res/layout/main.xml": `<LinearLayout xmlns:android="http://schemas.android.com/apk/res/android">
    <TextView android:text="Hello"/>
</LinearLayout>`,
		"proguard.cfg": "-ignorewarnings\n",
	})

	client, findings := scan(t, dir)

	byID := map[string]model.Finding{}
	for _, f := range findings {
		byID[f.IssueID] = f
	}
	require.Len(t, findings, 3)

	icon := byID["MissingApplicationIcon"]
	assert.Equal(t, filepath.Join(dir, "AndroidManifest.xml"), icon.File)
	assert.Equal(t, model.SeverityWarning, icon.Severity)

	hardcoded := byID["HardcodedText"]
	assert.Equal(t, filepath.Join(dir, "res", "layout", "main.xml"), hardcoded.File)
	assert.Equal(t, 2, hardcoded.Line)
	assert.Contains(t, hardcoded.Message, `"Hello"`)

	shrinker := byID["IgnoreWarnings"]
	assert.Equal(t, filepath.Join(dir, "proguard.cfg"), shrinker.File)
	assert.Equal(t, 1, shrinker.Line)

	// The manifest package made it onto the project model.
	assert.Equal(t, "com.example", client.GetProject(dir, dir).PackageName)
}

func TestScanAppliesSeverityOverride(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, map[string]string{
		"AndroidManifest.xml": `<manifest package="com.example"/>`,
		"res/layout/main.xml": `<TextView xmlns:android="http://schemas.android.com/apk/res/android" android:text="Hi"/>`,
		".lint.json":          `{"severities":{"HardcodedText":"error"}}`,
	})

	_, findings := scan(t, dir)

	require.Len(t, findings, 1)
	assert.Equal(t, "HardcodedText", findings[0].IssueID)
	assert.Equal(t, model.SeverityError, findings[0].Severity)
}

func TestScanRespectsDisabledIssues(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, map[string]string{
		"AndroidManifest.xml": `<manifest package="com.example"/>`,
		"res/layout/main.xml": `<TextView xmlns:android="http://schemas.android.com/apk/res/android" android:text="Hi"/>`,
		".lint.json":          `{"disabled":["HardcodedText"]}`,
	})

	_, findings := scan(t, dir)
	assert.Empty(t, findings)
}

func TestScanMalformedResourceIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, map[string]string{
		"AndroidManifest.xml": `<manifest package="com.example"/>`,
		"res/layout/bad.xml":  `<LinearLayout`,
		"res/layout/good.xml": `<TextView xmlns:android="http://schemas.android.com/apk/res/android" android:text="Hi"/>`,
	})

	_, findings := scan(t, dir)

	require.Len(t, findings, 1)
	assert.Equal(t, filepath.Join(dir, "res", "layout", "good.xml"), findings[0].File)
}
