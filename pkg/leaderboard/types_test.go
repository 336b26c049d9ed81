package leaderboard_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topmolt/topmolt-cli/pkg/leaderboard"
)

func TestAgentStatsAbsenceMeansNoUpdate(t *testing.T) {
	accuracy := 99.5
	zeroErrors := 0.0
	stats := leaderboard.AgentStats{
		AccuracyRate: &accuracy,
		// An explicit zero is an update and must be serialized.
		ErrorRate: &zeroErrors,
	}

	data, err := json.Marshal(stats)
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &wire))

	assert.Contains(t, wire, "accuracyRate")
	assert.Contains(t, wire, "errorRate")
	assert.JSONEq(t, "0", string(wire["errorRate"]))
	assert.Len(t, wire, 2, "absent fields must be omitted entirely, body was: %s", data)
}

func TestEmptyStatsSerializeToEmptyObject(t *testing.T) {
	data, err := json.Marshal(leaderboard.AgentStats{})
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))
}

func TestRegisterOptionsOmitEmptyFields(t *testing.T) {
	data, err := json.Marshal(leaderboard.RegisterOptions{Name: "My Agent"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"My Agent"}`, string(data))
}

func TestCategoryWireFormat(t *testing.T) {
	var category leaderboard.Category
	raw := `{"id":"trading","name":"Trading & Investing","agent_count":37}`
	require.NoError(t, json.Unmarshal([]byte(raw), &category))
	assert.Equal(t, "trading", category.ID)
	assert.Equal(t, 37, category.AgentCount)
}
