package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePresetName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple lowercase",
			input:    "party",
			expected: "party",
		},
		{
			name:     "uppercase converted",
			input:    "DinnerParty",
			expected: "dinnerparty",
		},
		{
			name:     "spaces and hyphens to underscores",
			input:    "round table-hard",
			expected: "round_table_hard",
		},
		{
			name:     "special characters removed",
			input:    "hard!@",
			expected: "hard",
		},
		{
			name:     "leading trailing underscores trimmed",
			input:    "--hard--",
			expected: "hard",
		},
		{
			name:     "only special chars is empty",
			input:    "!!!",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizePresetName(tt.input))
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5, cfg.Generate.People)
	assert.Equal(t, 2, cfg.Generate.Length)
	assert.Empty(t, cfg.Generate.Seating)
	assert.Equal(t, "auto", cfg.Generate.Relations)
	assert.Equal(t, "low", cfg.Generate.Difficulty)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/tmp/p", ".kinpuzzle"), ConfigDir("/tmp/p"))
	assert.Equal(t, filepath.Join("/tmp/p", ".kinpuzzle", "config.yaml"), ConfigFilePath("/tmp/p"))
	assert.Equal(t, filepath.Join("/tmp/p", ".kinpuzzle", "presets.yaml"), PresetsFilePath("/tmp/p"))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("KINPUZZLE_LOG_LEVEL", "")
	t.Setenv("KINPUZZLE_LOG_MODE", "")
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	content := "generate:\n  people: 8\n  seating: circular\n  difficulty: high\nlog:\n  level: info\n"
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))

	t.Setenv("KINPUZZLE_LOG_LEVEL", "debug")
	t.Setenv("KINPUZZLE_LOG_MODE", "")
	t.Setenv("NO_COLOR", "1")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Generate.People)
	assert.Equal(t, 2, cfg.Generate.Length, "unset keys keep defaults")
	assert.Equal(t, "circular", cfg.Generate.Seating)
	assert.Equal(t, "high", cfg.Generate.Difficulty)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Output.Color)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("generate: [oops"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KINPUZZLE_LOG_LEVEL", "")
	t.Setenv("KINPUZZLE_LOG_MODE", "")
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	err = WriteDefault(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KINPUZZLE_LOG_LEVEL", "")
	t.Setenv("KINPUZZLE_LOG_MODE", "")
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	cfg := Default()
	cfg.Generate.People = 3
	cfg.Output.Format = "text"
	require.NoError(t, Write(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPresets(t *testing.T) {
	dir := t.TempDir()

	presets, err := LoadPresets(dir)
	require.NoError(t, err)
	assert.Empty(t, presets.Names())

	_, err = presets.Get("hard")
	require.Error(t, err)

	key, err := presets.Add("Round Table", Preset{
		PresetOptions: PresetOptions{People: intPtr(6), Seating: strPtr("circular"), Difficulty: strPtr("high")},
		Description:   "six around a table",
	})
	require.NoError(t, err)
	assert.Equal(t, "round_table", key)

	_, err = presets.Add("!!!", Preset{})
	require.Error(t, err)

	require.NoError(t, presets.Save(dir))

	loaded, err := LoadPresets(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"round_table"}, loaded.Names())

	got, err := loaded.Get("round-table")
	require.NoError(t, err)
	require.NotNil(t, got.People)
	assert.Equal(t, 6, *got.People)
	assert.Nil(t, got.Length)
	assert.Equal(t, "six around a table", got.Description)

	_, err = loaded.Get("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "round_table")

	assert.True(t, loaded.Remove("Round Table"))
	assert.False(t, loaded.Remove("Round Table"))
}

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool { return &v }

func TestPreset_Apply(t *testing.T) {
	base := Default().Generate
	p := Preset{PresetOptions: PresetOptions{People: intPtr(7), Relations: strPtr("spatial"), Dense: boolPtr(true)}}

	got := p.Apply(base)

	assert.Equal(t, 7, got.People)
	assert.Equal(t, base.Length, got.Length)
	assert.Equal(t, "spatial", got.Relations)
	assert.Equal(t, base.Difficulty, got.Difficulty)
	assert.True(t, got.Dense)
}

func TestPreset_ZeroValuesSurviveSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	presets, err := LoadPresets(dir)
	require.NoError(t, err)
	_, err = presets.Add("quick", Preset{PresetOptions: PresetOptions{
		Length:  intPtr(0),
		Seating: strPtr(""),
		Dense:   boolPtr(false),
	}})
	require.NoError(t, err)
	require.NoError(t, presets.Save(dir))

	data, err := os.ReadFile(PresetsFilePath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(data), "length: 0")
	assert.Contains(t, string(data), "dense: false")
	assert.NotContains(t, string(data), "people")

	loaded, err := LoadPresets(dir)
	require.NoError(t, err)
	preset, err := loaded.Get("quick")
	require.NoError(t, err)

	base := Default().Generate
	base.Seating = "circular"
	base.Dense = true
	require.Equal(t, 2, base.Length)

	got := preset.Apply(base)

	assert.Equal(t, 0, got.Length)
	assert.False(t, got.Dense)
	assert.Empty(t, got.Seating)
	assert.Equal(t, base.People, got.People)
}

func TestOptionsFrom(t *testing.T) {
	gen := GenerateConfig{People: 3, Length: 0, Seating: "linear", Relations: "all", Difficulty: "medium"}

	got := Preset{PresetOptions: OptionsFrom(gen)}.Apply(Default().Generate)

	assert.Equal(t, gen, got)
}
