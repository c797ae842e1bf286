package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a corpus file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromKey picks the decoder from a file name or storage key. JSON is the default.
func FormatFromKey(key string) Format {
	switch strings.ToLower(path.Ext(key)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// decodeRecords parses a list of records. Anything other than a list is malformed.
func decodeRecords[T any](format Format, data []byte) ([]T, error) {
	var records []T

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCorpus, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCorpus, err)
		}
		if dec.More() {
			return nil, fmt.Errorf("%w: trailing data after record list", ErrMalformedCorpus)
		}
	default:
		return nil, fmt.Errorf("unsupported corpus format: %s", format)
	}

	if records == nil {
		return nil, fmt.Errorf("%w: expected a list of records", ErrMalformedCorpus)
	}
	return records, nil
}
