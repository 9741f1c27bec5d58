package gofprint

import "encoding/base64"

// base64 fingerprints use unpadded URL-safe encoding so they drop
// cleanly into query strings and filenames without escaping. The
// standard library's encoding already matches this exactly; no
// third-party codec earns its keep over encoding/base64 here.
var fingerprintEncoding = base64.RawURLEncoding

// EncodeBase64 returns the URL-safe, unpadded base64 encoding of a
// compressed fingerprint buffer.
func EncodeBase64(compressed []byte) string {
	return fingerprintEncoding.EncodeToString(compressed)
}

// DecodeBase64 reverses EncodeBase64.
func DecodeBase64(s string) ([]byte, error) {
	return fingerprintEncoding.DecodeString(s)
}
