package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EvacuationOrder(t *testing.T) {
	steps := Default().Education.Evacuation

	require.Len(t, steps, 3)
	for i, step := range steps {
		assert.Equal(t, i+1, step.Order)
	}
	assert.Equal(t, []string{"Drop", "Cover", "Hold On"}, []string{steps[0].Name, steps[1].Name, steps[2].Name})
}

func TestDefault_Overview(t *testing.T) {
	overview := Default().Overview

	assert.Equal(t, "Kecamatan Cisarua, Jawa Barat", overview.StudyArea)
	assert.Len(t, overview.Parameters, 4)
	assert.NotEmpty(t, overview.Notice)
}

func TestDefault_Independent(t *testing.T) {
	first := Default()
	first.Education.Evacuation[0].Name = "changed"
	first.Overview.Parameters[0].Name = "changed"

	second := Default()
	assert.Equal(t, "Drop", second.Education.Evacuation[0].Name)
	assert.Equal(t, "Peak Ground Acceleration (PGA)", second.Overview.Parameters[0].Name)
}

func TestContent_JSONKeys(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "overview")
	assert.Contains(t, decoded["education"], "evacuation")
	assert.Contains(t, decoded["methodology"], "formula")
}
