// Package project implements the project model consumed by the lint driver:
// a directory-keyed cache of project units exposing their manifest, source,
// resource and output folders plus library dependencies.
package project

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/TeriyakiSecky/android-sdk/internal/config"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/xmldom"
)

// propertiesFilename declares the library flag and library references.
const propertiesFilename = "project.properties"

// Project is a single analyzable unit rooted at a directory. Instances are
// created by Cache and are unique per directory.
type Project struct {
	// Dir is the project root; ReferenceDir is the display root for
	// multi-path invocations.
	Dir          string
	ReferenceDir string

	// ManifestFile is empty when the directory carries no manifest.
	ManifestFile string

	SourceFolders []string
	ClassFolders  []string

	// Subset lists the explicitly requested files when the user pointed at
	// individual files rather than the whole project; nil means "all".
	Subset []string

	Config  config.Configuration
	Library bool

	// PackageName is filled in from the parsed manifest during analysis.
	PackageName string

	directLibraries []*Project
}

// AddFile records an explicitly requested file belonging to this project.
func (p *Project) AddFile(file string) {
	p.Subset = append(p.Subset, file)
}

// DirectLibraries returns the directly declared library dependencies.
func (p *Project) DirectLibraries() []*Project { return p.directLibraries }

// AllLibraries returns the transitive closure of library dependencies.
func (p *Project) AllLibraries() []*Project {
	var all []*Project
	seen := map[*Project]bool{}
	var walk func(*Project)
	walk = func(proj *Project) {
		for _, lib := range proj.directLibraries {
			if seen[lib] {
				continue
			}
			seen[lib] = true
			all = append(all, lib)
			walk(lib)
		}
	}
	walk(p)
	return all
}

// ReadManifest records manifest-derived data on the project. The driver
// calls it once per analysis pass with the freshly parsed manifest tree.
func (p *Project) ReadManifest(doc *xmldom.Document) {
	if doc == nil || doc.Root == nil {
		return
	}
	if pkg := doc.Root.Attr("package"); pkg != "" {
		p.PackageName = pkg
	}
}

// Cache creates and caches projects by directory. The same directory never
// yields two instances; the driver relies on this for de-duplication.
type Cache struct {
	projects map[string]*Project
}

func NewCache() *Cache {
	return &Cache{projects: map[string]*Project{}}
}

// Get returns the project rooted at dir, creating it on first use.
// referenceDir is the directory results should be displayed relative to.
func (c *Cache) Get(dir, referenceDir string) *Project {
	key := dir
	if canonical, err := filepath.EvalSymlinks(dir); err == nil {
		key = canonical
	}
	if p, ok := c.projects[key]; ok {
		return p
	}
	p := &Project{Dir: dir, ReferenceDir: referenceDir}
	// Register before populating so library reference chains resolve to
	// this instance instead of recursing.
	c.projects[key] = p
	c.populate(p)
	return p
}

func (c *Cache) populate(p *Project) {
	dir := p.Dir

	manifest := filepath.Join(dir, model.ManifestFilename)
	if _, err := os.Stat(manifest); err == nil {
		p.ManifestFile = manifest
	}
	for _, src := range []string{"src", "gen"} {
		folder := filepath.Join(dir, src)
		if info, err := os.Stat(folder); err == nil && info.IsDir() {
			p.SourceFolders = append(p.SourceFolders, folder)
		}
	}
	for _, out := range []string{filepath.Join("bin", "classes"), "bin", "classes"} {
		folder := filepath.Join(dir, out)
		if info, err := os.Stat(folder); err == nil && info.IsDir() {
			p.ClassFolders = append(p.ClassFolders, folder)
			break
		}
	}

	cfg, _, err := config.Load(dir)
	if err != nil {
		cfg = config.Default()
	}
	p.Config = cfg

	c.readProperties(p)
}

// readProperties picks up the library flag and library references from the
// project properties file. References are resolved through the cache so a
// library shared by two projects is a single instance.
func (c *Cache) readProperties(p *Project) {
	f, err := os.Open(filepath.Join(p.Dir, propertiesFilename))
	if err != nil {
		return
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch {
		case key == "android.library":
			p.Library = value == "true"
		case strings.HasPrefix(key, "android.library.reference."):
			libDir := value
			if !filepath.IsAbs(libDir) {
				libDir = filepath.Join(p.Dir, libDir)
			}
			libDir = filepath.Clean(libDir)
			if info, err := os.Stat(libDir); err == nil && info.IsDir() {
				lib := c.Get(libDir, p.ReferenceDir)
				lib.Library = true
				p.directLibraries = append(p.directLibraries, lib)
			}
		}
	}
}
