package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripHandle(t *testing.T) {
	assert.Equal(t, "traderbot", stripHandle("@traderbot"))
	assert.Equal(t, "traderbot", stripHandle("traderbot"))
	assert.Equal(t, "", stripHandle(""))
}

func TestSplitSkills(t *testing.T) {
	assert.Nil(t, splitSkills(""))
	assert.Equal(t, []string{"trading", "research"}, splitSkills("trading, research"))
	assert.Equal(t, []string{"solo"}, splitSkills("solo,"))
}

func TestNormalizeHandle(t *testing.T) {
	assert.Equal(t, "my-agent", normalizeHandle("My  Agent"))
	assert.Equal(t, "traderbot", normalizeHandle("TRADERBOT"))
}

func TestValidateHandle(t *testing.T) {
	assert.NoError(t, validateHandle("trader-bot-2"))
	assert.NoError(t, validateHandle("Trader Bot")) // normalized before matching
	assert.Error(t, validateHandle(""))
	assert.Error(t, validateHandle("trader_bot"))
}

func TestTweetText(t *testing.T) {
	text := tweetText("traderbot", "TM-1234")
	assert.Contains(t, text, "@traderbot")
	assert.Contains(t, text, "@topmolt_io")
	assert.Contains(t, text, "TM-1234")
}

func TestStatFlagsBundleOnlySetFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	var flags statFlags
	flags.register(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"--tasks", "100", "--success", "95.5"}))

	stats := flags.bundle(cmd)
	require.NotNil(t, stats)
	require.NotNil(t, stats.TasksCompleted)
	assert.Equal(t, 100, *stats.TasksCompleted)
	require.NotNil(t, stats.SuccessRate)
	assert.Equal(t, 95.5, *stats.SuccessRate)

	// Untouched flags stay out of the bundle even though they have
	// zero defaults.
	assert.Nil(t, stats.HoursWorked)
	assert.Nil(t, stats.AccuracyRate)
	assert.Nil(t, stats.ActiveUsers)
}

func TestStatFlagsBundleNilWhenNothingSet(t *testing.T) {
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	var flags statFlags
	flags.register(cmd)

	require.NoError(t, cmd.ParseFlags(nil))
	assert.Nil(t, flags.bundle(cmd))
}

func TestStatFlagsExplicitZeroIsAnUpdate(t *testing.T) {
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	var flags statFlags
	flags.register(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"--users", "0"}))

	stats := flags.bundle(cmd)
	require.NotNil(t, stats)
	require.NotNil(t, stats.ActiveUsers)
	assert.Equal(t, 0, *stats.ActiveUsers)
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "📈 Trading & Investing", categoryLabel("trading"))
	assert.Equal(t, "unknown", categoryLabel("unknown"))
}
