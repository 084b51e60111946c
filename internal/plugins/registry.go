// Package plugins implements the issue registry: the catalog of known
// issues and the factories that instantiate their detectors on demand.
package plugins

import (
	"github.com/TeriyakiSecky/android-sdk/internal/config"
	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/scope"
)

// Factory creates a fresh detector instance of one kind.
type Factory func() detector.Detector

type Registry struct {
	issues    []*model.Issue
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register adds an issue and the factory for its detector kind. Issues
// sharing a kind share one factory (and, per analysis, one instance).
func (r *Registry) Register(issue *model.Issue, factory Factory) {
	r.issues = append(r.issues, issue)
	if _, ok := r.factories[issue.Detector]; !ok {
		r.factories[issue.Detector] = factory
	}
}

func (r *Registry) Issues() []*model.Issue { return r.issues }

// CreateDetectors instantiates the detectors whose issues are enabled in
// the configuration and overlap the requested scope. One instance is
// created per detector kind and shared by all of its issues; the returned
// map buckets that instance under every scope category its enabled issues
// declare.
func (r *Registry) CreateDetectors(_ detector.Client, cfg config.Configuration,
	sc scope.Set) ([]detector.Detector, map[scope.Scope][]detector.Detector) {
	instances := map[string]detector.Detector{}
	var list []detector.Detector
	scopeMap := map[scope.Scope][]detector.Detector{}
	bucketed := map[scope.Scope]map[detector.Detector]bool{}

	for _, issue := range r.issues {
		if !cfg.IsEnabled(issue) {
			continue
		}
		if issue.Scope.Intersect(sc).IsEmpty() {
			continue
		}
		factory, ok := r.factories[issue.Detector]
		if !ok {
			continue
		}
		instance, ok := instances[issue.Detector]
		if !ok {
			instance = factory()
			instances[issue.Detector] = instance
			list = append(list, instance)
		}
		for _, s := range issue.Scope.Scopes() {
			if bucketed[s] == nil {
				bucketed[s] = map[detector.Detector]bool{}
			}
			if !bucketed[s][instance] {
				bucketed[s][instance] = true
				scopeMap[s] = append(scopeMap[s], instance)
			}
		}
	}

	return list, scopeMap
}
