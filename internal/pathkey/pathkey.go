package pathkey

import "strings"

const (
	// Delimiter separates levels in a tree path key: "Assets>Current Assets".
	Delimiter = ">"
	// LabelSeparator separates levels in a display label: "Assets > Current Assets".
	LabelSeparator = " > "
)

// Join returns the path key for levels, skipping empty ones.
func Join(levels ...string) string {
	return strings.Join(Compact(levels), Delimiter)
}

// Append returns the key of a child named name under parent.
// An empty parent yields a root key.
func Append(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + Delimiter + name
}

// Parent returns the key with the last level removed, or "" for a root key.
// "Assets>Current Assets>Cash" -> "Assets>Current Assets"
func Parent(key string) string {
	i := strings.LastIndex(key, Delimiter)
	if i < 0 {
		return ""
	}
	return key[:i]
}

// IsRoot reports whether key addresses a top-level node.
func IsRoot(key string) bool {
	return key != "" && !strings.Contains(key, Delimiter)
}

// Label joins levels into a display label, skipping empty ones.
func Label(levels ...string) string {
	return strings.Join(Compact(levels), LabelSeparator)
}

// ParseLabel splits a display label (or a bare ">"-joined key) into trimmed,
// non-empty levels.
func ParseLabel(label string) []string {
	parts := strings.Split(label, Delimiter)
	return Compact(parts)
}

// Compact returns the trimmed, non-empty entries of levels in order.
func Compact(levels []string) []string {
	out := make([]string, 0, len(levels))
	for _, l := range levels {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
