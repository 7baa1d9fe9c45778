package linkcrypt

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"hash"
	"slices"
)

// Digester produces lower-case hex digests with one hash function.
type Digester struct {
	newHash func() hash.Hash
}

var (
	// MD5 digests with MD5.
	MD5 = Digester{newHash: md5.New}
	// SHA256 digests with SHA-256.
	SHA256 = Digester{newHash: sha256.New}
)

// Digest returns the hex digest of data.
func (d Digester) Digest(data []byte) string {
	h := d.newHash()
	h.Write(data)

	return hex.EncodeToString(h.Sum(nil))
}

// DigestSalted returns the digest of data with salt appended, or prepended when prefix is true.
func (d Digester) DigestSalted(data, salt []byte, prefix bool) string {
	if prefix {
		return d.Digest(slices.Concat(salt, data))
	}

	return d.Digest(slices.Concat(data, salt))
}

// DigestIterated digests data, then digests the hex text of the result iterations-1 more times.
func (d Digester) DigestIterated(data []byte, iterations int) string {
	out := d.Digest(data)
	for i := 1; i < iterations; i++ {
		out = d.Digest([]byte(out))
	}

	return out
}

// Verify reports whether digest is the hex digest of data.
func (d Digester) Verify(data []byte, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(d.Digest(data)), []byte(digest)) == 1
}

// HMACSHA256 returns the raw HMAC-SHA256 of data under key.
func HMACSHA256(data, key []byte) []byte {
	m := hmac.New(sha256.New, key)
	m.Write(data)

	return m.Sum(nil)
}

// HMACSHA256Hex returns the lower-case hex HMAC-SHA256 of data under key.
func HMACSHA256Hex(data, key []byte) string {
	return hex.EncodeToString(HMACSHA256(data, key))
}

// HMACSHA256Base64 returns the standard base64 HMAC-SHA256 of data under key.
func HMACSHA256Base64(data, key []byte) string {
	return base64.StdEncoding.EncodeToString(HMACSHA256(data, key))
}

// VerifyHMACSHA256 reports whether mac is the raw HMAC-SHA256 of data under key.
func VerifyHMACSHA256(data, key, mac []byte) bool {
	return hmac.Equal(HMACSHA256(data, key), mac)
}
