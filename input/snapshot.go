package input

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Snapshot is the serialized form of an Input.
type Snapshot struct {
	Value  string `json:"value" yaml:"value"`
	Cursor int    `json:"cursor" yaml:"cursor"`
}

// Snapshot returns the current value and cursor as a plain record.
func (in *Input) Snapshot() Snapshot {
	return Snapshot{Value: in.Value(), Cursor: in.cursor}
}

// FromSnapshot rebuilds an input from a snapshot. A cursor outside
// [0, codepoint count] is clamped rather than rejected, so hand-edited or
// stale snapshots still load.
func FromSnapshot(s Snapshot) *Input {
	in := &Input{}
	in.restore(s)
	return in
}

// Repaired returns s with its cursor clamped the way FromSnapshot clamps it.
func (s Snapshot) Repaired() Snapshot {
	return FromSnapshot(s).Snapshot()
}

func (in *Input) restore(s Snapshot) {
	in.value = []rune(s.Value)
	in.cursor = clamp(s.Cursor, 0, len(in.value))
}

// MarshalJSON implements json.Marshaler.
func (in *Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(in.Snapshot())
}

// UnmarshalJSON implements json.Unmarshaler. The cursor is clamped.
func (in *Input) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	in.restore(s)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (in *Input) MarshalYAML() (any, error) {
	return in.Snapshot(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The cursor is clamped.
func (in *Input) UnmarshalYAML(node *yaml.Node) error {
	var s Snapshot
	if err := node.Decode(&s); err != nil {
		return err
	}
	in.restore(s)
	return nil
}
