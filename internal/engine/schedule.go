package engine

import (
	"fmt"

	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/project"
	"github.com/TeriyakiSecky/android-sdk/internal/scope"
)

// computeDetectors asks the registry for the detectors applicable to the
// active scope and the project's configuration.
func (d *Driver) computeDetectors(p *project.Project) {
	// Ensure that the current visitor is recomputed.
	d.memo = visitorMemo{}

	d.applicable, d.scopeDetectors = d.registry.CreateDetectors(d.client, p.Config, d.scope)

	d.validateScopeMap()
}

// RequestRepeat records the detector for another pass over the current
// project. The requested scopes are unioned across requests; the zero Set
// means "everything".
func (d *Driver) RequestRepeat(det detector.Detector, sc scope.Set) {
	d.repeating = append(d.repeating, det)

	if !sc.IsEmpty() {
		d.repeatScope = d.repeatScope.Union(sc)
	} else {
		d.repeatScope = scope.All
	}
}

// runExtraPhases runs additional passes while detectors keep requesting
// them, up to the phase cap. The active scope is narrowed to what the
// repeating detectors asked for and restored afterwards, since phases are
// per-project and other projects follow.
func (d *Driver) runExtraPhases(p *project.Project) {
	if d.repeating == nil {
		return
	}

	oldScope := d.scope
	for {
		d.phase++
		d.fireEvent(EventNewPhase, detector.NewContext(d, p, nil, p.Dir))

		if d.repeatScope.IsEmpty() {
			d.repeatScope = scope.All
		}
		d.scope = d.scope.Intersect(d.repeatScope)
		if d.scope.IsEmpty() {
			// Abandoned requests must not leak into the next project,
			// where they would trigger a phase nobody asked for.
			d.repeating = nil
			d.repeatScope = 0
			break
		}

		// Unlike the first pass this reuses the existing detector
		// instances: accumulated state is the point of a repeat.
		d.computeRepeatingDetectors(p)

		if len(d.applicable) > 0 {
			d.checkProject(p)
			if d.isCanceled() {
				break
			}
		}

		if d.phase >= maxPhases || d.repeating == nil {
			break
		}
	}
	d.scope = oldScope
}

// computeRepeatingDetectors rebuilds the applicable-detector list from the
// repeat set, keeping only detectors with at least one still-enabled issue.
// Enablement is per-project: a detector enabled in a different project may
// have requested the repeat, so it has to be re-checked here.
func (d *Driver) computeRepeatingDetectors(p *project.Project) {
	d.memo = visitorMemo{}

	issuesByKind := map[string][]*model.Issue{}
	for _, issue := range d.registry.Issues() {
		issuesByKind[issue.Detector] = append(issuesByKind[issue.Detector], issue)
	}

	cfg := p.Config
	kindScope := map[string]scope.Set{}
	scopeDetectors := map[scope.Scope][]detector.Detector{}
	var applicable []detector.Detector

	for _, det := range d.repeating {
		kind := det.Kind()
		add := false
		for _, issue := range issuesByKind[kind] {
			if !cfg.IsEnabled(issue) {
				continue
			}
			add = true
			kindScope[kind] = kindScope[kind].Union(issue.Scope)
		}
		if add {
			applicable = append(applicable, det)
			for _, sc := range kindScope[kind].Scopes() {
				scopeDetectors[sc] = append(scopeDetectors[sc], det)
			}
		}
	}

	d.applicable = applicable
	d.scopeDetectors = scopeDetectors
	d.repeating = nil
	d.repeatScope = 0

	d.validateScopeMap()
}

// validateScopeMap checks that every detector registered under a scope
// bucket implements the matching scanner capability. A mismatch indicates a
// registry bug, so it halts diagnostic builds.
func (d *Driver) validateScopeMap() {
	if !assertionsEnabled {
		return
	}
	requireXML := scope.Of(scope.Manifest, scope.ResourceFile, scope.AllResourceFiles)
	requireSource := scope.Of(scope.SourceFile, scope.AllSourceFiles)
	for sc, detectors := range d.scopeDetectors {
		for _, det := range detectors {
			var ok bool
			switch {
			case requireXML.Contains(sc):
				_, ok = det.(detector.XMLScanner)
			case requireSource.Contains(sc):
				_, ok = det.(detector.SourceScanner)
			case sc == scope.ClassFile:
				_, ok = det.(detector.ClassScanner)
			default:
				ok = true
			}
			if !ok {
				panic(fmt.Sprintf("detector %s registered for scope %s without the matching scanner capability",
					det.Kind(), scope.Of(sc)))
			}
		}
	}
}
