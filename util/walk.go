package util

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// RegularFiles returns a lazy sequence of the regular files reachable from
// root, in walk order. Directories, symlinks, and special files are skipped,
// and entries that fail to stat are skipped individually without aborting the
// walk. A missing or non-directory root is reported through the configured
// logger and produces an empty sequence. Ranging over the sequence a second
// time restarts the walk.
func RegularFiles(root string, opts ...Option) iter.Seq[string] {
	o := newOptions(opts)
	return func(yield func(string) bool) {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			o.log.Printf("directory %s does not exist: %v", root, ErrDirectoryNotFound)
			return
		}
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				o.log.Printf("skipping %s: %v", path, err)
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !yield(path) {
				return fs.SkipAll
			}
			return nil
		})
	}
}
