package viewer

import (
	"github.com/goccy/go-json"
)

// marshalRows serializes decoded rows into a row-major JSON array of
// objects, one object per row, keyed by column name.
func marshalRows(rows []map[string]interface{}) (string, error) {
	if len(rows) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return "", WrapError(KindOperationFailed, err, "failed to serialize rows")
	}
	return string(b), nil
}
