// Package engine implements the lint driver: project resolution, detector
// scheduling across phases, file dispatch, suppression lookup and progress
// events. Detectors, parsers and the project model are external
// collaborators supplied through the client.
package engine

import (
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/project"
	"github.com/TeriyakiSecky/android-sdk/internal/scope"
)

// maxPhases caps repeated passes requested via RequestRepeat.
const maxPhases = 3

// Driver analyzes projects and reports issues found to the client it was
// created with. A driver supports one analysis at a time; detector
// instances are reused across phases of the same run and must not be shared
// between concurrent drivers.
type Driver struct {
	registry detector.Registry
	client   detector.Client

	canceled atomic.Bool

	// State below is scoped to one Analyze invocation.
	scope          scope.Set
	phase          int
	applicable     []detector.Detector
	scopeDetectors map[scope.Scope][]detector.Detector
	listeners      []Listener
	repeating      []detector.Detector
	repeatScope    scope.Set

	memo visitorMemo
}

// New creates a driver reporting through client. The client is wrapped so
// disabled and ignored issues are filtered before delivery.
func New(registry detector.Registry, client detector.Client) *Driver {
	return &Driver{
		registry: registry,
		client:   &clientWrapper{delegate: client},
	}
}

// Cancel requests that the current run stop as soon as possible. Safe to
// call from any goroutine; the driver polls the flag at every loop
// boundary.
func (d *Driver) Cancel() { d.canceled.Store(true) }

func (d *Driver) isCanceled() bool { return d.canceled.Load() }

// Scope returns the active scope set for the current phase.
func (d *Driver) Scope() scope.Set { return d.scope }

// Phase returns the current phase number, starting at 1.
func (d *Driver) Phase() int { return d.phase }

// Client returns the filtering client wrapper detectors report through.
func (d *Driver) Client() detector.Client { return d.client }

// Analyze checks the given files and directories. Pass the zero Set to
// infer the scope from the files each resolved project was pointed at.
func (d *Driver) Analyze(paths []string, sc scope.Set) {
	d.canceled.Store(false)
	d.scope = sc
	d.phase = 0
	d.repeating = nil
	d.repeatScope = 0

	projects := d.computeProjects(paths)
	if len(projects) == 0 {
		d.client.Log(nil, "No projects found for %s", strings.Join(paths, " "))
		return
	}
	if d.isCanceled() {
		return
	}

	if d.scope.IsEmpty() {
		d.scope = inferScope(projects)
	}

	d.fireEvent(EventStarting, nil)

	for _, p := range projects {
		d.phase = 1

		// The set of available detectors varies between projects.
		d.computeDetectors(p)

		if len(d.applicable) == 0 {
			// No detectors enabled in this project: skip it.
			continue
		}

		d.checkProject(p)
		if d.isCanceled() {
			break
		}

		d.runExtraPhases(p)
	}

	if d.isCanceled() {
		d.fireEvent(EventCanceled, nil)
	} else {
		d.fireEvent(EventCompleted, nil)
	}
}

// inferScope classifies each project's explicit file subset by name. A
// project with no subset means "check everything" and short-circuits.
func inferScope(projects []*project.Project) scope.Set {
	var sc scope.Set
	for _, p := range projects {
		if p.Subset == nil {
			// Specified a full project: just use the full scope.
			return scope.All
		}
		for _, file := range p.Subset {
			name := filepath.Base(file)
			switch {
			case name == model.ManifestFilename:
				sc = sc.Union(scope.Of(scope.Manifest))
			case strings.HasSuffix(name, model.DotXML):
				sc = sc.Union(scope.Of(scope.ResourceFile))
			case name == model.ProguardFilename:
				sc = sc.Union(scope.Of(scope.ProguardFile))
			case name == model.ResFolder ||
				filepath.Base(filepath.Dir(file)) == model.ResFolder:
				sc = sc.Union(scope.Of(scope.AllResourceFiles, scope.ResourceFile))
			case strings.HasSuffix(name, model.DotJava):
				sc = sc.Union(scope.Of(scope.SourceFile))
			case strings.HasSuffix(name, model.DotClass):
				sc = sc.Union(scope.Of(scope.ClassFile))
			}
		}
	}
	return sc
}

// checkProject runs all phases' hooks and file dispatch for one project.
// A canceled run synthesizes a single informational report so the client
// can surface the partial result uniformly.
func (d *Driver) checkProject(p *project.Project) {
	projectContext := detector.NewContext(d, p, nil, p.Dir)
	d.scanProject(p, projectContext)

	if d.isCanceled() {
		d.client.Report(projectContext, IssueCanceled, nil, "Lint canceled by user", nil)
	}
}

func (d *Driver) scanProject(p *project.Project, projectContext *detector.Context) {
	d.fireEvent(EventScanningProject, projectContext)

	for _, check := range d.applicable {
		check.BeforeProject(projectContext)
		if d.isCanceled() {
			return
		}
	}

	d.runFileDetectors(p, p)
	if d.isCanceled() {
		return
	}

	if !d.scope.SingleFileOnly() {
		for _, library := range p.DirectLibraries() {
			libraryContext := detector.NewContext(d, library, p, p.Dir)
			d.fireEvent(EventScanningLibraryProject, libraryContext)

			for _, check := range d.applicable {
				check.BeforeLibraryProject(libraryContext)
				if d.isCanceled() {
					return
				}
			}

			d.runFileDetectors(library, p)
			if d.isCanceled() {
				return
			}

			for _, check := range d.applicable {
				check.AfterLibraryProject(libraryContext)
				if d.isCanceled() {
					return
				}
			}
		}
	}

	for _, check := range d.applicable {
		check.AfterProject(projectContext)
		if d.isCanceled() {
			return
		}
	}
}
