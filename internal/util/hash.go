package util

import (
	"crypto/md5" //nolint:gosec // the catalog API mandates MD5 request signing
	"encoding/hex"
)

// MD5Hex returns the lowercase hex MD5 digest of s.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
