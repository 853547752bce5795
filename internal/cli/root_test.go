package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "tempus", cmd.Use)
	assert.Contains(t, cmd.Long, "ISO weeks")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"now", "convert", "week", "zone", "format", "stamp", "check", "presets"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestStampDecodePresence(t *testing.T) {
	cmd := NewRootCommand()
	subCmd, _, err := cmd.Find([]string{"stamp", "decode"})
	require.NoError(t, err)
	assert.Equal(t, "decode", subCmd.Name())
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)
}

func TestConvertCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	convertCmd, _, err := cmd.Find([]string{"convert"})
	require.NoError(t, err)

	presetFlag := convertCmd.Flags().Lookup("preset")
	require.NotNil(t, presetFlag)
	assert.Equal(t, "p", presetFlag.Shorthand)

	nanosFlag := convertCmd.Flags().Lookup("nanos")
	require.NotNil(t, nanosFlag)
	assert.Equal(t, "0", nanosFlag.DefValue)

	unitFlag := convertCmd.Flags().Lookup("unit")
	require.NotNil(t, unitFlag)
	assert.Equal(t, "seconds", unitFlag.DefValue)
}

func TestZoneCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	zoneCmd, _, err := cmd.Find([]string{"zone"})
	require.NoError(t, err)

	atFlag := zoneCmd.Flags().Lookup("at")
	require.NotNil(t, atFlag)
}

func TestFormatCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	formatCmd, _, err := cmd.Find([]string{"format"})
	require.NoError(t, err)

	for _, name := range []string{"preset", "local", "date", "time", "subsecond", "offset", "nanos"} {
		require.NotNil(t, formatCmd.Flags().Lookup(name), "flag %s should exist", name)
	}

	sepFlag := formatCmd.Flags().Lookup("separator")
	require.NotNil(t, sepFlag)
	assert.Equal(t, "s", sepFlag.Shorthand)
	assert.Equal(t, "-", sepFlag.DefValue)
}

func TestStampCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	stampCmd, _, err := cmd.Find([]string{"stamp"})
	require.NoError(t, err)

	countFlag := stampCmd.Flags().Lookup("count")
	require.NotNil(t, countFlag)
	assert.Equal(t, "n", countFlag.Shorthand)
	assert.Equal(t, "1", countFlag.DefValue)
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	filterFlag := checkCmd.Flags().Lookup("filter")
	require.NotNil(t, filterFlag)
}

func TestCommandHelp(t *testing.T) {
	cmd := NewRootCommand()

	assert.Contains(t, cmd.Short, "Tempus")
	assert.Contains(t, cmd.Long, "TEMPUS_CONFIG")
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--format", "invalid", "convert", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestBadConfigPathRendersCodedError(t *testing.T) {
	cmd := NewRootCommand()
	buf := newCommandBuffer(cmd)
	cmd.SetArgs([]string{"--config", "/nonexistent/tempus.toml", "convert", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E003]")
	assert.Contains(t, buf.String(), "config file not found")
}

func TestConfigFormatAppliesWhenFlagUnset(t *testing.T) {
	path := writeConfigFile(t, "format = \"json\"\n")

	cmd := NewRootCommand()
	buf := newCommandBuffer(cmd)
	cmd.SetArgs([]string{"--config", path, "convert", "0"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"status":"ok"`)
}

func TestFormatFlagBeatsConfig(t *testing.T) {
	path := writeConfigFile(t, "format = \"json\"\n")

	cmd := NewRootCommand()
	buf := newCommandBuffer(cmd)
	cmd.SetArgs([]string{"--config", path, "--format", "text", "convert", "0"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Epoch:      0")
	assert.NotContains(t, buf.String(), `"status"`)
}
