package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config keys that an overlay may replace.
const (
	keyStorage    = "storage"
	keyClassifier = "classifier"
	keyLogging    = "logging"
	keyOutput     = "output"
)

// knownTopLevelKeys lists the YAML keys that correspond to Config fields.
// Other keys are ignored during merge.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownTopLevelKeys = map[string]bool{
	keyStorage:    true,
	keyClassifier: true,
	keyLogging:    true,
	keyOutput:     true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. A key present in the overlay replaces the entire section; absent
// keys leave the section unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]any
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}
		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling overlay section %q: %w", key, marshalErr)
		}
		if err = unmarshalSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection decodes a section into a fresh zero value so the target
// section is replaced, not merged.
func unmarshalSection(target *Config, key string, data []byte) error {
	switch key {
	case keyStorage:
		return replaceSection(data, &target.Storage)
	case keyClassifier:
		return replaceSection(data, &target.Classifier)
	case keyLogging:
		return replaceSection(data, &target.Logging)
	case keyOutput:
		return replaceSection(data, &target.Output)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

func replaceSection[T any](data []byte, dst *T) error {
	var v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		return err
	}
	*dst = v
	return nil
}
