package export

import (
	"encoding/json"
	"os"

	"github.com/dshills/outlayd/pkg/arrangement"
)

// ExportJSON serializes arr to indented JSON, the same shape the
// teacher's ExportJSON uses for a dungeon artifact.
func ExportJSON(arr arrangement.Arrangement) ([]byte, error) {
	return json.MarshalIndent(arr, "", "  ")
}

// ExportJSONCompact serializes arr to JSON without indentation.
func ExportJSONCompact(arr arrangement.Arrangement) ([]byte, error) {
	return json.Marshal(arr)
}

// SaveJSONToFile writes arr as indented JSON to path with 0644
// permissions. Unlike pkg/store's atomic writes, this is a one-shot
// debug dump: nothing reads path back in, so a torn write on crash
// costs nothing but a re-run.
func SaveJSONToFile(arr arrangement.Arrangement, path string) error {
	data, err := ExportJSON(arr)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveJSONCompactToFile writes arr as compact JSON to path with 0644
// permissions.
func SaveJSONCompactToFile(arr arrangement.Arrangement, path string) error {
	data, err := ExportJSONCompact(arr)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
