package export

import (
	"encoding/json"
	"fmt"
	"io"

	"fjacquet/charge-calc/internal/models"

	"gopkg.in/yaml.v3"
)

// WriteJSON writes summary as indented JSON.
func WriteJSON(w io.Writer, summary models.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	return nil
}

// WriteYAML writes summary as YAML.
func WriteYAML(w io.Writer, summary models.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("error encoding YAML: %w", err)
	}
	return enc.Close()
}
