package trackedseq

import (
	"fmt"

	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	_ yaml.InterfaceMarshaler   = (*Sequence[int])(nil)
	_ yaml.InterfaceUnmarshaler = (*Sequence[int])(nil)
)

// MarshalJSON encodes the elements as a JSON array, an empty sequence is encoded as [].
func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	if s.inner == nil {
		return []byte{'[', ']'}, nil
	}
	return json.Marshal(s.inner)
}

// UnmarshalJSON replaces the elements with the ones of a JSON array and bumps the revision.
// The sequence is not modified if data cannot be decoded.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	var elements []T
	if err := json.Unmarshal(data, &elements); err != nil {
		return fmt.Errorf("failed to decode sequence from JSON: %w", err)
	}

	*s.MutableView() = elements
	return nil
}

// MarshalYAML returns the elements, they are encoded as a YAML sequence.
func (s *Sequence[T]) MarshalYAML() (interface{}, error) {
	if s.inner == nil {
		return []T{}, nil
	}
	return s.inner, nil
}

// UnmarshalYAML replaces the elements with the ones of a YAML sequence and bumps the revision.
// The sequence is not modified if the node cannot be decoded.
func (s *Sequence[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var elements []T
	if err := unmarshal(&elements); err != nil {
		return fmt.Errorf("failed to decode sequence from YAML: %w", err)
	}

	*s.MutableView() = elements
	return nil
}
