package util

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// hashChunkSize is the read size used while digesting file content, keeping
// memory use constant regardless of file size.
const hashChunkSize = 4096

// FileDigest returns the hex-encoded SHA-256 digest of the file's content.
// Directories are rejected with ErrExpectedFile.
func FileDigest(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrExpectedFile
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return Digest(file)
}

// Digest calculates the SHA-256 digest of everything readable from r,
// consuming it in hashChunkSize chunks. It returns the digest as a
// hexadecimal string.
func Digest(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, hashChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
