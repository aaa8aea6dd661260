package dedup

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// DigestChunkSize is the read granularity for fingerprinting. Files are
// streamed in chunks of this size so memory use stays flat regardless of
// file size.
const DigestChunkSize = 4096

// FingerprintSize is the digest width in bytes (128 bits).
const FingerprintSize = 16

// Fingerprint is a 128-bit content digest encoded as a lowercase hex
// string. Files with identical byte content always share a fingerprint;
// the converse holds only up to hash collisions, which duplicate grouping
// accepts rather than corrects.
type Fingerprint = string

// DigestFile computes the fingerprint of the file at path. All failures,
// including a path that names a directory, are returned as a *FileError
// wrapping the underlying cause.
func DigestFile(path string) (Fingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &FileError{Path: path, Err: ErrExpectedFile}
	}
	file, err := os.Open(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	defer file.Close()

	fp, err := DigestReader(file)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}
	return fp, nil
}

// DigestReader computes the fingerprint of everything readable from r.
func DigestReader(r io.Reader) (Fingerprint, error) {
	h := blake3.New()
	buf := make([]byte, DigestChunkSize)
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

	var sum [FingerprintSize]byte
	h.Digest().Read(sum[:])
	return hex.EncodeToString(sum[:]), nil
}
