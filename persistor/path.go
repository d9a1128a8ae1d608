package persistor

import "strings"

var separators = strings.NewReplacer("/", "_", "\\", "_")

// sanitizeKey neutralizes path separators so a key always names a single
// entry directly inside its location. The dot entries are rewritten too.
func sanitizeKey(key string) string {
	clean := separators.Replace(key)
	if clean == "." || clean == ".." {
		return strings.Repeat("_", len(clean))
	}
	return clean
}

// resolve maps a location and key to the on-disk path of the object.
func resolve(location, key string) string {
	return location + "/" + sanitizeKey(key)
}
