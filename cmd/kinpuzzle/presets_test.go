package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/kinpuzzle/internal/infrastructure/config"
)

func TestBuildPreset_ConfigDefaults(t *testing.T) {
	gen := config.Default().Generate
	gen.Seating = "circular"

	preset := buildPreset(newPresetsSaveCmd(), presetFlags{people: 99, description: "dinner"}, gen)

	assert.Equal(t, "dinner", preset.Description)
	assert.Equal(t, gen, preset.Apply(config.GenerateConfig{}), "flag values are ignored unless set")
}

func TestBuildPreset_ExplicitZeroFlagsWin(t *testing.T) {
	cmd := newPresetsSaveCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--length", "0", "--dense=false", "-p", "3"}))

	gen := config.Default().Generate
	gen.Dense = true
	require.Equal(t, 2, gen.Length)

	preset := buildPreset(cmd, presetFlags{people: 3, length: 0, dense: false}, gen)

	require.NotNil(t, preset.Length)
	assert.Equal(t, 0, *preset.Length)
	require.NotNil(t, preset.Dense)
	assert.False(t, *preset.Dense)

	dir := t.TempDir()
	presets, err := config.LoadPresets(dir)
	require.NoError(t, err)
	_, err = presets.Add("quick", preset)
	require.NoError(t, err)
	require.NoError(t, presets.Save(dir))

	loaded, err := config.LoadPresets(dir)
	require.NoError(t, err)
	got, err := loaded.Get("quick")
	require.NoError(t, err)

	applied := got.Apply(gen)
	assert.Equal(t, 3, applied.People)
	assert.Equal(t, 0, applied.Length)
	assert.False(t, applied.Dense)
	assert.Equal(t, gen.Relations, applied.Relations)
}

func TestDescribePreset(t *testing.T) {
	one := 1
	linear := "linear"
	p := config.Preset{PresetOptions: config.PresetOptions{Length: &one, Seating: &linear}}

	assert.Equal(t, "p=5 l=1 linear/auto/low", describePreset(p))
	assert.Equal(t, "p=5 l=2 random/auto/low", describePreset(config.Preset{}))
}
