package storage

import "strings"

// KeyFromUploadURL derives a storage key from a delivery URL of the form
// .../upload/<version-segment>/<key...>.<ext>, the scheme used by the CDN
// URLs older report clients still hold. The key is every path segment after
// the version segment that follows the first literal "upload" segment, with
// a trailing file extension stripped.
//
// ok is false when the URL contains no "upload" segment. Malformed input is
// never an error: the derived key may be empty or wrong, and callers are
// expected to treat such keys as a no-op delete.
func KeyFromUploadURL(rawURL string) (key string, ok bool) {
	segments := strings.Split(rawURL, "/")
	for i, seg := range segments {
		if seg != "upload" {
			continue
		}
		// Skip the version segment immediately after "upload".
		if i+2 <= len(segments) {
			key = strings.Join(segments[i+2:], "/")
		}
		return stripExtension(key), true
	}
	return "", false
}

// stripExtension removes a trailing ".ext" only when the final dot comes
// after the final path separator; "v2/archive.old/name" is left alone.
func stripExtension(key string) string {
	dot := strings.LastIndex(key, ".")
	if dot < 0 || strings.Contains(key[dot+1:], "/") {
		return key
	}
	return key[:dot]
}
