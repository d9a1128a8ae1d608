package persistor

import (
	"github.com/rightson/overleaf/errors"
	"github.com/rightson/overleaf/fs/core"
)

const msgNotFound = "file not found"

// readError converts a read-path filesystem error into a platform error.
// A missing target becomes NotFound; anything else becomes Read with
// message. The same info is attached to both.
func readError(err error, message string, info map[string]interface{}) error {
	switch core.Classify(err) {
	case core.ErrorKindNone:
		return nil
	case core.ErrorKindNotFound:
		return errors.NotFound(msgNotFound, err, info)
	default:
		return errors.Read(message, err, info)
	}
}

func keyInfo(location, key string) map[string]interface{} {
	return map[string]interface{}{
		"location": location,
		"key":      key,
	}
}
