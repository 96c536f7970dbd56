package seedtree

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"io"
	"os"
)

// HashBufferSize is the size of the single read that [HashFile] digests.
const HashBufferSize = 8 * 1024

// HashFile returns the lowercase hex SHA-1 of the first buffered read of
// the file at path. Only one read of at most [HashBufferSize] bytes is
// hashed, so files larger than the buffer hash to the digest of their
// prefix. This mirrors how fuzzers name small seeds and is kept as is.
func HashFile(path string) (FileHash, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, HashBufferSize)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	sum := sha1.Sum(buf[:n])
	return hex.EncodeToString(sum[:]), nil
}
