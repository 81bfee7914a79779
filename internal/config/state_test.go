package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tuinput/input"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFormatForPath(t *testing.T) {
	require.Equal(t, FormatJSON, FormatForPath("state.json"))
	require.Equal(t, FormatJSON, FormatForPath("STATE.JSON"))
	require.Equal(t, FormatYAML, FormatForPath("state.yaml"))
	require.Equal(t, FormatYAML, FormatForPath("state"))
}

func TestParseStateFormat(t *testing.T) {
	f, err := ParseStateFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f)

	f, err = ParseStateFormat("yml")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, f)

	_, err = ParseStateFormat("toml")
	require.Error(t, err)
}

func TestLoadState_Missing(t *testing.T) {
	in, err := LoadState(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	require.Equal(t, "", in.Value())
	require.Equal(t, 0, in.Cursor())
}

func TestLoadState_YAML(t *testing.T) {
	path := writeFile(t, "state.yaml", "value: hello\ncursor: 2\n")

	in, err := LoadState(path)

	require.NoError(t, err)
	require.Equal(t, "hello", in.Value())
	require.Equal(t, 2, in.Cursor())
}

func TestLoadState_JSONClampsCursor(t *testing.T) {
	path := writeFile(t, "state.json", `{"value":"hi","cursor":99}`)

	in, err := LoadState(path)

	require.NoError(t, err)
	require.Equal(t, 2, in.Cursor())
}

func TestLoadState_NegativeCursor(t *testing.T) {
	path := writeFile(t, "state.yaml", "value: hi\ncursor: -4\n")

	in, err := LoadState(path)

	require.NoError(t, err)
	require.Equal(t, 0, in.Cursor())
}

func TestLoadState_Malformed(t *testing.T) {
	path := writeFile(t, "state.json", `{"value":`)

	_, err := LoadState(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing state")
}

func TestSaveState_RoundTrip(t *testing.T) {
	for _, name := range []string{"state.yaml", "state.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dir", name)
			orig := input.FromString("h\u00e9llo 中文").WithCursor(3)

			require.NoError(t, SaveState(path, orig))
			got, err := LoadState(path)

			require.NoError(t, err)
			require.Equal(t, orig.Snapshot(), got.Snapshot())
		})
	}
}

func TestSaveState_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.yaml")

	require.NoError(t, SaveState(path, input.FromString("x")))
	require.NoError(t, SaveState(path, input.FromString("xy")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "state.yaml", entries[0].Name())
}

func TestEncodeState(t *testing.T) {
	in := input.FromString("ab").WithCursor(1)

	y, err := EncodeState(in, FormatYAML)
	require.NoError(t, err)
	require.Equal(t, "value: ab\ncursor: 1\n", string(y))

	j, err := EncodeState(in, FormatJSON)
	require.NoError(t, err)
	require.JSONEq(t, `{"value":"ab","cursor":1}`, string(j))
}

func TestRepairState(t *testing.T) {
	path := writeFile(t, "state.yaml", "value: abc\ncursor: 10\n")

	changed, err := RepairState(path)
	require.NoError(t, err)
	require.True(t, changed)

	s, err := LoadSnapshot(path)
	require.NoError(t, err)
	require.Equal(t, input.Snapshot{Value: "abc", Cursor: 3}, s)

	changed, err = RepairState(path)
	require.NoError(t, err)
	require.False(t, changed, "already valid")
}

func TestRepairState_Missing(t *testing.T) {
	_, err := RepairState(filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
