package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tempus"
	"github.com/roach88/tempus/civil"
	"github.com/roach88/tempus/internal/testutil"
)

// writeConfigFile writes a TOML config to a temp dir and returns its
// path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tempus.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// writePresetPack writes a one-file CUE preset pack and returns its
// directory.
func writePresetPack(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pack.cue"), []byte(content), 0644))
	return dir
}

// newCommandBuffer captures a command's stdout and stderr in one
// buffer.
func newCommandBuffer(cmd *cobra.Command) *bytes.Buffer {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return buf
}

const clockPackCUE = `package presets

preset: clock: {
	description: "wall clock"
	time:        true
	separator:   ":"
}
`

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfigFile(t, `format = "json"
preset = "date"
preset_dir = "/srv/presets"

[zone]
utc_offset = 19800
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "date", cfg.Preset)
	assert.Equal(t, "/srv/presets", cfg.PresetDir)
	require.NotNil(t, cfg.Zone.UTCOffset)
	assert.Equal(t, 19800, *cfg.Zone.UTCOffset)
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	path := writeConfigFile(t, "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Format)
	assert.Nil(t, cfg.Zone.UTCOffset)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := writeConfigFile(t, "fromat = \"json\"\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
	assert.Contains(t, err.Error(), "fromat")
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	path := writeConfigFile(t, "format = [unclosed\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	path := writeConfigFile(t, "format = \"xml\"\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoadConfigResolution_FlagPath(t *testing.T) {
	path := writeConfigFile(t, "preset = \"time\"\n")
	opts := &RootOptions{Config: path}

	cfg, err := loadConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, "time", cfg.Preset)
}

func TestLoadConfigResolution_EnvPath(t *testing.T) {
	path := writeConfigFile(t, "preset = \"datetime\"\n")
	t.Setenv("TEMPUS_CONFIG", path)
	opts := &RootOptions{}

	cfg, err := loadConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, "datetime", cfg.Preset)
}

func TestLoadConfigResolution_FlagBeatsEnv(t *testing.T) {
	flagPath := writeConfigFile(t, "preset = \"date\"\n")
	envPath := writeConfigFile(t, "preset = \"time\"\n")
	t.Setenv("TEMPUS_CONFIG", envPath)
	opts := &RootOptions{Config: flagPath}

	cfg, err := loadConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, "date", cfg.Preset)
}

func TestLoadConfigResolution_DefaultsWithoutPath(t *testing.T) {
	t.Setenv("TEMPUS_CONFIG", "")
	opts := &RootOptions{}

	cfg, err := loadConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Format)
}

func TestLoadConfigResolution_Memoized(t *testing.T) {
	path := writeConfigFile(t, "preset = \"date\"\n")
	opts := &RootOptions{Config: path}

	first, err := loadConfig(opts)
	require.NoError(t, err)
	second, err := loadConfig(opts)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoadConfigResolution_BadFileCarriesCode(t *testing.T) {
	opts := &RootOptions{Config: filepath.Join(t.TempDir(), "nope.toml")}

	_, err := loadConfig(opts)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeConfig, loadErr.Code)
}

func TestNewEngine_FixedZoneOffset(t *testing.T) {
	path := writeConfigFile(t, "[zone]\nutc_offset = 19800\n")
	opts := &RootOptions{Config: path}

	eng, cfg, err := newEngine(opts)
	require.NoError(t, err)

	off, err := eng.OffsetAt(tempus.Unix(0, 0))
	require.NoError(t, err)
	assert.Equal(t, "+05:30", off.String())
	assert.Equal(t, "fixed +05:30", zoneLabel(cfg))
}

func TestNewEngine_RejectsOffsetBeyondDay(t *testing.T) {
	path := writeConfigFile(t, "[zone]\nutc_offset = 172800\n")
	opts := &RootOptions{Config: path}

	_, _, err := newEngine(opts)
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeZone, loadErr.Code)
	assert.Contains(t, loadErr.Message, "zone.utc_offset")
}

func TestNewEngine_InjectedClock(t *testing.T) {
	opts := &RootOptions{Clock: testutil.NewFixedClock(tempus.Unix(1728933069, 0))}

	eng, _, err := newEngine(opts)
	require.NoError(t, err)
	assert.Equal(t, int64(1728933069), eng.Now().Unix())
}

func TestZoneLabel_System(t *testing.T) {
	assert.Equal(t, "system", zoneLabel(DefaultConfig()))
}

func TestResolvePreset_DefaultIsFull(t *testing.T) {
	fopts, name, err := resolvePreset(DefaultConfig(), "")
	require.NoError(t, err)
	assert.Equal(t, "full", name)
	assert.Equal(t, tempus.PresetFull(), fopts)
}

func TestResolvePreset_ConfigDefault(t *testing.T) {
	cfg := &Config{Preset: "date"}

	fopts, name, err := resolvePreset(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "date", name)
	assert.Equal(t, tempus.PresetDate(), fopts)
}

func TestResolvePreset_ExplicitBeatsConfig(t *testing.T) {
	cfg := &Config{Preset: "date"}

	fopts, name, err := resolvePreset(cfg, "time")
	require.NoError(t, err)
	assert.Equal(t, "time", name)
	assert.Equal(t, tempus.PresetTime(), fopts)
}

func TestResolvePreset_PackExtendsBuiltins(t *testing.T) {
	dir := writePresetPack(t, clockPackCUE)
	cfg := &Config{PresetDir: dir}

	fopts, name, err := resolvePreset(cfg, "clock")
	require.NoError(t, err)
	assert.Equal(t, "clock", name)
	assert.False(t, fopts.Date)
	assert.True(t, fopts.Time)
	assert.Equal(t, byte(':'), fopts.Separator)
}

func TestResolvePreset_UnknownName(t *testing.T) {
	_, _, err := resolvePreset(DefaultConfig(), "iso9000")
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodePresetName, loadErr.Code)
	assert.Contains(t, loadErr.Message, "iso9000")
}

func TestResolvePreset_PackLoadFailure(t *testing.T) {
	cfg := &Config{PresetDir: filepath.Join(t.TempDir(), "missing")}

	_, _, err := resolvePreset(cfg, "clock")
	require.Error(t, err)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodePresetPack, loadErr.Code)
}

func TestMapErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidDate, MapErrorCode(civil.NewInvalidDateError(2023, civil.February, 30)))
	assert.Equal(t, ErrCodeOutOfRange, MapErrorCode(civil.NewOutOfRangeError("month", 13, "month outside 1..12")))
	assert.Equal(t, ErrCodeOverflow, MapErrorCode(civil.NewOverflowError("seconds", 1, "not representable")))
	assert.Equal(t, ErrCodeGeneric, MapErrorCode(fmt.Errorf("untyped")))
}
