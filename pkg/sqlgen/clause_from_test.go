package sqlgen

import (
	"testing"

	"github.com/edgewise-labs/rulewizard/pkg/wizard"
	"github.com/stretchr/testify/assert"
)

func TestBuildFrom(t *testing.T) {
	t.Run("plain source", func(t *testing.T) {
		assert.Equal(t, "FROM sensors", buildFrom(streamState()))
	})

	t.Run("aliased source", func(t *testing.T) {
		state := streamState()
		state.Sources[0].Alias = "s"
		assert.Equal(t, "FROM sensors AS s", buildFrom(state))
	})

	t.Run("source name needing quotes", func(t *testing.T) {
		state := streamState()
		state.Sources[0].ResourceName = "edge-sensors"
		assert.Equal(t, "FROM `edge-sensors`", buildFrom(state))
	})
}

func TestBuildJoins(t *testing.T) {
	base := func() *wizard.WizardState {
		return &wizard.WizardState{
			Sources: []wizard.SourceConfig{
				{ID: "src-1", ResourceName: "sensors", ResourceType: wizard.SourceStream},
				{ID: "src-2", ResourceName: "devices", ResourceType: wizard.SourceTable, Alias: "d"},
			},
		}
	}

	t.Run("join with condition", func(t *testing.T) {
		state := base()
		state.Joins = []wizard.JoinConfig{{
			JoinType:       "LEFT",
			TargetSourceID: "src-2",
			Conditions: []wizard.JoinCondition{
				{LeftField: "sensors.device_id", Operator: "=", RightField: "d.id"},
			},
		}}
		joins, warnings := buildJoins(state)
		assert.Equal(t, "LEFT JOIN devices AS d ON sensors.device_id = d.id", joins)
		assert.Empty(t, warnings)
	})

	t.Run("conditions are anded", func(t *testing.T) {
		state := base()
		state.Joins = []wizard.JoinConfig{{
			JoinType:       "INNER",
			TargetSourceID: "src-2",
			Conditions: []wizard.JoinCondition{
				{LeftField: "a", Operator: "=", RightField: "b"},
				{LeftField: "c", Operator: ">", RightField: "d"},
			},
		}}
		joins, _ := buildJoins(state)
		assert.Equal(t, "INNER JOIN devices AS d ON a = b AND c > d", joins)
	})

	t.Run("condition missing a field is dropped", func(t *testing.T) {
		state := base()
		state.Joins = []wizard.JoinConfig{{
			JoinType:       "INNER",
			TargetSourceID: "src-2",
			Conditions: []wizard.JoinCondition{
				{LeftField: "a", Operator: "=", RightField: ""},
			},
		}}
		joins, _ := buildJoins(state)
		assert.Equal(t, "INNER JOIN devices AS d", joins)
	})

	t.Run("cross join without conditions", func(t *testing.T) {
		state := base()
		state.Joins = []wizard.JoinConfig{{JoinType: "CROSS", TargetSourceID: "src-2"}}
		joins, _ := buildJoins(state)
		assert.Equal(t, "CROSS JOIN devices AS d", joins)
	})

	t.Run("unresolved target skipped with warning", func(t *testing.T) {
		state := base()
		state.Joins = []wizard.JoinConfig{
			{JoinType: "LEFT", TargetSourceID: "missing"},
			{JoinType: "INNER", TargetSourceID: "src-2"},
		}
		joins, warnings := buildJoins(state)
		assert.Equal(t, "INNER JOIN devices AS d", joins)
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "missing")
	})

	t.Run("multiple joins space-joined", func(t *testing.T) {
		state := base()
		state.Sources = append(state.Sources, wizard.SourceConfig{ID: "src-3", ResourceName: "zones", ResourceType: wizard.SourceTable})
		state.Joins = []wizard.JoinConfig{
			{JoinType: "LEFT", TargetSourceID: "src-2"},
			{JoinType: "INNER", TargetSourceID: "src-3"},
		}
		joins, _ := buildJoins(state)
		assert.Equal(t, "LEFT JOIN devices AS d INNER JOIN zones", joins)
	})
}
