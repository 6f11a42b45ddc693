// cleanpath package normalizes filesystem-ish paths so the rest of the code
// can compare them as plain strings. Norm gives you forward slashes no matter
// what the OS handed us, NormNative gives you whatever the OS wants back, and
// Under answers the only path question that ever really matters: did it
// escape the directory it was supposed to stay in.
package cleanpath

import (
	"path"
	"path/filepath"
	"strings"
)

// Norm cleans p and flips every separator to a forward slash. Dot segments
// are resolved, doubled slashes collapse, empty input comes back as ".".
func Norm(p string) string {
	return path.Clean(strings.ReplaceAll(p, "\\", "/"))
}

// NormNative is Norm in the operating system's separator.
func NormNative(p string) string {
	return filepath.FromSlash(Norm(p))
}

// Join joins the parts and norms the result. No parts is ".".
func Join(parts ...string) string {
	return Norm(path.Join(parts...))
}

// Under reports where p lands relative to base, and whether it stayed
// inside. Not ok when p climbs out with "..", or when only one of the two is
// absolute. Both sides are normed first, so Under("/srv", "/srv/a/../b")
// lands on ("b", true). p equal to base comes back as (".", true).
func Under(base, p string) (string, bool) {
	rel, err := filepath.Rel(filepath.FromSlash(Norm(base)), filepath.FromSlash(Norm(p)))
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}
