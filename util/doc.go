// Package util provides the file-level utilities behind the utilkit CLI.
//
// This package contains the operations that work directly against the local
// filesystem: content hashing, directory traversal, duplicate-file detection,
// extension-based file organization, CSV/JSON conversion, and JSON validation.
//
// Key Components:
//
// Content Hashing:
//   - SHA-256 based content addressing with fixed-size chunked reads
//   - FileDigest for paths, Digest for arbitrary readers
//
// Duplicate Detection:
//   - FindDuplicates groups files by content digest in discovery order
//   - First-seen path seeds each group; only digests with two or more files
//     appear in the result
//
// File Organization:
//   - OrganizeByExtension indexes files by lowercased extension
//   - Hidden files and common build/cache directories are skipped
//
// Conversion:
//   - CSVToJSON, JSONToCSV, and ValidateJSON for tabular data plumbing
//
// Every operation here is synchronous and owns no shared state, so the
// functions are safe to call concurrently against different inputs. Failures
// on individual filesystem entries never abort a whole pass; they are
// reported through an optional caller-supplied Logger and the entry is
// skipped.
package util
