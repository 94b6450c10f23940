package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON dumps a plan as indented JSON for layout inspection
// without rasterizing anything.
func WriteDebugJSON(plan *Plan, path string) error {
	if plan == nil {
		return nil
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
