package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// organizeFileCap bounds how many files one organize pass will index. The
// duplicate-detection path has no such cap.
const organizeFileCap = 100

// NoExtension keys files without an extension in OrganizeByExtension results.
const NoExtension = "no_extension"

// skipDirNames are directory names an organize pass steps over entirely.
var skipDirNames = []string{"node_modules", ".git", "target", "__pycache__"}

// OrganizeByExtension indexes the files under dir by lowercased extension.
// Hidden files, and in recursive mode the usual build/cache directories, are
// skipped. At most organizeFileCap files are indexed per call. A missing or
// non-directory dir is reported through the configured logger and yields an
// empty map.
func OrganizeByExtension(dir string, recursive bool, opts ...Option) map[string][]string {
	o := newOptions(opts)
	organized := make(map[string][]string)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		o.log.Printf("directory %s does not exist: %v", dir, ErrDirectoryNotFound)
		return organized
	}

	count := 0
	add := func(path, name string) bool {
		ext := strings.ToLower(filepath.Ext(name))
		if ext == "" {
			ext = NoExtension
		}
		organized[ext] = append(organized[ext], path)
		count++
		return count < organizeFileCap
	}

	if recursive {
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				o.log.Printf("skipping %s: %v", path, err)
				return nil
			}
			if d.IsDir() {
				if path != dir && slices.Contains(skipDirNames, d.Name()) {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			if !add(path, d.Name()) {
				return fs.SkipAll
			}
			return nil
		})
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			o.log.Printf("error organizing files in %s: %v", dir, err)
			return organized
		}
		for _, entry := range entries {
			if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			if !add(filepath.Join(dir, entry.Name()), entry.Name()) {
				break
			}
		}
	}

	o.log.Printf("organized %d files", count)
	return organized
}
