package util

// DuplicateGroups maps a content digest to the paths that share it, in
// discovery order. Only digests seen on two or more files are present.
type DuplicateGroups map[string][]string

// FindDuplicates walks the tree under root and groups regular files by the
// SHA-256 digest of their content. The first file seen with a digest seeds
// its group; every later file with the same digest is appended in walk order,
// so each group's first member is always the path discovered first. Files
// that cannot be read are reported through the configured logger and left
// out; a missing root yields an empty result rather than an error.
//
// Only content is compared. Names, timestamps, sizes-on-disk, and permission
// bits play no part, which also means zero-byte files always group together.
func FindDuplicates(root string, opts ...Option) DuplicateGroups {
	o := newOptions(opts)
	firstSeen := make(map[string]string)
	groups := make(DuplicateGroups)

	for path := range RegularFiles(root, opts...) {
		digest, err := FileDigest(path)
		if err != nil {
			o.log.Printf("skipping %s: %v", path, err)
			continue
		}
		prior, seen := firstSeen[digest]
		if !seen {
			firstSeen[digest] = path
			continue
		}
		if _, grouped := groups[digest]; !grouped {
			groups[digest] = []string{prior}
		}
		groups[digest] = append(groups[digest], path)
	}

	o.log.Printf("found %d sets of duplicate files", len(groups))
	return groups
}
