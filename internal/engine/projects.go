package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/project"
)

// computeProjects resolves a mixed list of files and directories into the
// minimal set of root projects, merging duplicates and dropping projects
// reachable as libraries of other discovered projects.
func (d *Driver) computeProjects(paths []string) []*project.Project {
	fileToProject := map[string]*project.Project{}
	// Registration order, so results are deterministic per invocation.
	var order []string

	register := func(file, projectDir, rootDir string) {
		if _, ok := fileToProject[file]; !ok {
			order = append(order, file)
		}
		fileToProject[file] = d.client.GetProject(projectDir, rootDir)
	}

	sharedRoot := ""
	if len(paths) > 1 {
		// Ensure absolute paths so that linting "foo bar" inside "baz" can
		// show baz/ as the root.
		absolute := make([]string, 0, len(paths))
		for _, p := range paths {
			if abs, err := filepath.Abs(p); err == nil {
				p = abs
			}
			absolute = append(absolute, p)
		}
		paths = absolute

		sharedRoot = commonParent(paths)
		if sharedRoot != "" && filepath.Dir(sharedRoot) == sharedRoot {
			// The filesystem root is not a useful display root.
			sharedRoot = ""
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			d.client.Log(err, "Could not read %s", path)
			continue
		}
		if info.IsDir() {
			rootDir := sharedRoot
			if rootDir == "" {
				rootDir = path
				if len(paths) > 1 {
					if parent := filepath.Dir(path); parent != path {
						rootDir = parent
					}
				}
			}

			// A directory is ambiguous: it may be a project, a folder
			// within one (src/, res/), or a tree of projects to search.
			if isProjectDir(path) {
				register(path, path, rootDir)
			} else if parent := filepath.Dir(path); parent != path && isProjectDir(parent) {
				register(path, parent, parent)
			} else if grandParent := filepath.Dir(parent); grandParent != parent && isProjectDir(grandParent) {
				register(path, grandParent, grandParent)
			} else {
				// Search downwards for nested projects.
				d.addProjects(path, rootDir, register)
			}
		} else {
			// Pointed at a file: search upwards for the containing project.
			parent := filepath.Dir(path)
			for {
				if isProjectDir(parent) {
					register(path, parent, parent)
					break
				}
				next := filepath.Dir(parent)
				if next == parent {
					break
				}
				parent = next
			}
		}

		if d.isCanceled() {
			return nil
		}
	}

	for _, file := range order {
		p := fileToProject[file]
		if file == p.Dir {
			continue
		}
		if info, err := os.Stat(file); err == nil && info.IsDir() {
			// The project directory itself may have been reached through a
			// symlink or relative path; don't treat it as a subset member.
			if canonical, err := filepath.EvalSymlinks(file); err == nil && canonical == p.Dir {
				continue
			}
		}
		p.AddFile(file)
	}

	// Only return projects that aren't included by other projects as
	// library dependencies; those are analyzed on their dependents' behalf.
	var roots []*project.Project
	seen := map[*project.Project]bool{}
	libraries := map[*project.Project]bool{}
	for _, file := range order {
		for _, lib := range fileToProject[file].AllLibraries() {
			libraries[lib] = true
		}
	}
	for _, file := range order {
		p := fileToProject[file]
		if seen[p] || libraries[p] {
			continue
		}
		seen[p] = true
		roots = append(roots, p)
	}

	if assertionsEnabled {
		checkUniqueDirectories(roots)
	}

	return roots
}

// addProjects recursively searches dir for project directories, never
// descending into a matched project's subtree.
func (d *Driver) addProjects(dir, rootDir string, register func(file, projectDir, rootDir string)) {
	if d.isCanceled() {
		return
	}

	if isProjectDir(dir) {
		register(dir, dir, rootDir)
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			d.addProjects(filepath.Join(dir, entry.Name()), rootDir, register)
		}
	}
}

// A project directory is precisely one containing a manifest file.
func isProjectDir(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, model.ManifestFilename))
	return err == nil
}

// commonParent returns the nearest common ancestor directory of the given
// absolute paths, or "" when there is none.
func commonParent(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	common := paths[0]
	if info, err := os.Stat(common); err != nil || !info.IsDir() {
		common = filepath.Dir(common)
	}
	for _, path := range paths[1:] {
		for !isAncestor(common, path) {
			next := filepath.Dir(common)
			if next == common {
				return ""
			}
			common = next
		}
	}
	return common
}

func isAncestor(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !isParentRef(rel))
}

func isParentRef(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}

// checkUniqueDirectories verifies that the resolved projects and their
// library closures have unique directories. A violation means the project
// cache handed out two instances for one directory.
func checkUniqueDirectories(roots []*project.Project) {
	instances := map[*project.Project]bool{}
	for _, p := range roots {
		instances[p] = true
		for _, lib := range p.AllLibraries() {
			instances[lib] = true
		}
	}
	dirs := map[string]*project.Project{}
	for p := range instances {
		if other, ok := dirs[p.Dir]; ok && other != p {
			panic(fmt.Sprintf("duplicate project instances for directory %s", p.Dir))
		}
		dirs[p.Dir] = p
	}
}
