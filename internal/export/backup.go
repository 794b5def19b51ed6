package export

import (
	"encoding/json"
	"io"

	"github.com/tallyhq/tally/internal/model"
)

// WriteBackup dumps the full document as indented JSON, the same shape
// the store persists, so a backup restores through the normal merge path.
func WriteBackup(w io.Writer, doc model.AppData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
