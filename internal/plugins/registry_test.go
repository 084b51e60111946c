package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeriyakiSecky/android-sdk/internal/config"
	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/scope"
)

type countingDetector struct {
	detector.Base
	kind string
}

func (d *countingDetector) Kind() string { return d.kind }

func (d *countingDetector) AppliesToFolder(model.ResourceFolderType) bool { return true }
func (d *countingDetector) VisitDocument(*detector.XMLContext)            {}

func registryIssue(id, kind string, sc scope.Set) *model.Issue {
	return model.NewIssue(id, "", "Test", 5, model.SeverityWarning, sc, kind)
}

func TestCreateDetectorsSharesInstancePerKind(t *testing.T) {
	r := NewRegistry()
	factoryCalls := 0
	factory := func() detector.Detector {
		factoryCalls++
		return &countingDetector{kind: "shared"}
	}
	r.Register(registryIssue("One", "shared", scope.Of(scope.ResourceFile)), factory)
	r.Register(registryIssue("Two", "shared", scope.Of(scope.ResourceFile, scope.AllResourceFiles)), factory)

	list, scopeMap := r.CreateDetectors(nil, config.Default(), scope.All)
	require.Len(t, list, 1)
	assert.Equal(t, 1, factoryCalls)

	// Both issues bucket the same instance; the shared bucket holds it once.
	require.Len(t, scopeMap[scope.ResourceFile], 1)
	require.Len(t, scopeMap[scope.AllResourceFiles], 1)
	assert.Same(t, scopeMap[scope.ResourceFile][0], scopeMap[scope.AllResourceFiles][0])
}

func TestCreateDetectorsFiltersByScope(t *testing.T) {
	r := NewRegistry()
	r.Register(registryIssue("Markup", "markup", scope.Of(scope.ResourceFile)),
		func() detector.Detector { return &countingDetector{kind: "markup"} })
	r.Register(registryIssue("Shrinker", "shrinker", scope.Of(scope.ProguardFile)),
		func() detector.Detector { return &countingDetector{kind: "shrinker"} })

	list, scopeMap := r.CreateDetectors(nil, config.Default(), scope.Of(scope.ResourceFile))
	require.Len(t, list, 1)
	assert.Equal(t, "markup", list[0].Kind())
	assert.Empty(t, scopeMap[scope.ProguardFile])
}

func TestCreateDetectorsFiltersDisabled(t *testing.T) {
	r := NewRegistry()
	r.Register(registryIssue("Off", "off", scope.Of(scope.ResourceFile)),
		func() detector.Detector { return &countingDetector{kind: "off"} })

	cfg := &config.FileConfig{Disabled: []string{"Off"}}
	list, scopeMap := r.CreateDetectors(nil, cfg, scope.All)
	assert.Empty(t, list)
	assert.Empty(t, scopeMap)
}

func TestRegisterBuiltin(t *testing.T) {
	r := NewRegistry()
	r.RegisterBuiltin()

	ids := make([]string, 0, len(r.Issues()))
	for _, issue := range r.Issues() {
		ids = append(ids, issue.ID)
	}
	assert.Contains(t, ids, "HardcodedText")
	assert.Contains(t, ids, "MissingApplicationIcon")
	assert.Contains(t, ids, "IgnoreWarnings")

	list, scopeMap := r.CreateDetectors(nil, config.Default(), scope.All)
	assert.Len(t, list, 3)
	assert.Len(t, scopeMap[scope.Manifest], 1)
	assert.Len(t, scopeMap[scope.ResourceFile], 1)
	assert.Len(t, scopeMap[scope.ProguardFile], 1)
}
