// Package collections holds small helpers shared by the command line tool.
package collections

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// Sha256 computes the sha256 of the given reader
func Sha256(in io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, in); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// BytesSha256 computes the sha256 of data.
func BytesSha256(data []byte) string {
	sum, _ := Sha256(bytes.NewReader(data))
	return sum
}
