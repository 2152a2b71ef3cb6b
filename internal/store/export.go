package store

import (
	"encoding/json"
	"fmt"
)

// Export serializes every present collection into one pretty-printed JSON
// object keyed by storage key. Absent keys are omitted.
func Export(s Store) ([]byte, error) {
	out := make(map[string]json.RawMessage)
	for _, key := range KnownKeys() {
		raw, err := s.Get(key)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", key, err)
		}
		if raw == nil {
			continue
		}
		out[key] = json.RawMessage(raw)
	}
	return json.MarshalIndent(out, "", "  ")
}

// Import replaces collections wholesale from a previous export. The input is
// parsed in full before anything is written, so malformed JSON changes
// nothing. Known keys present in the input overwrite the stored collection;
// unknown keys are ignored.
func Import(s Store, data []byte) error {
	var in map[string]json.RawMessage
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parse import: %w", err)
	}
	for _, key := range KnownKeys() {
		raw, ok := in[key]
		if !ok {
			continue
		}
		if err := s.Set(key, raw); err != nil {
			return fmt.Errorf("import %s: %w", key, err)
		}
	}
	return nil
}
