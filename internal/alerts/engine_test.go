package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Check_ROAS(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	critical := engine.Check(Snapshot{ROAS: 0.8})
	require.Len(t, critical, 1)
	assert.Equal(t, SeverityCritical, critical[0].Severity)
	assert.Equal(t, CategoryROI, critical[0].Category)
	assert.Equal(t, 0.8, critical[0].CurrentValue)

	warning := engine.Check(Snapshot{ROAS: 1.5})
	require.Len(t, warning, 1)
	assert.Equal(t, SeverityWarning, warning[0].Severity)

	healthy := engine.Check(Snapshot{ROAS: 3.2})
	assert.Empty(t, healthy)

	// Zero ROAS means no spend data, not a broken funnel.
	noData := engine.Check(Snapshot{ROAS: 0})
	assert.Empty(t, noData)
}

func TestEngine_Check_ChannelROI(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	alerts := engine.Check(Snapshot{
		Channels: []ChannelSnapshot{
			{Name: "Display Ads", ROI: -25},
			{Name: "Paid Search", ROI: 30},
			{Name: "Email", ROI: 250},
		},
	})

	require.Len(t, alerts, 2)
	assert.Equal(t, SeverityCritical, alerts[0].Severity)
	assert.Contains(t, alerts[0].Title, "Display Ads")
	assert.Equal(t, SeverityWarning, alerts[1].Severity)
	assert.Contains(t, alerts[1].Title, "Paid Search")
}

func TestEngine_Check_BudgetUtilization(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	alerts := engine.Check(Snapshot{
		Campaigns: []CampaignSnapshot{
			{Name: "Overspender", Budget: 1000, Spent: 980, Status: "active"},
			{Name: "Slowpoke", Budget: 1000, Spent: 100, Status: "active"},
			{Name: "Paused", Budget: 1000, Spent: 990, Status: "paused"},
			{Name: "Healthy", Budget: 1000, Spent: 700, Status: "active"},
		},
	})

	require.Len(t, alerts, 2)
	assert.Equal(t, SeverityWarning, alerts[0].Severity)
	assert.Contains(t, alerts[0].Title, "Overspender")
	assert.Equal(t, SeverityInfo, alerts[1].Severity)
	assert.Contains(t, alerts[1].Title, "Slowpoke")
}

func TestEngine_Check_SortsCriticalFirst(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	alerts := engine.Check(Snapshot{
		ROAS: 1.5, // warning
		Channels: []ChannelSnapshot{
			{Name: "Display Ads", ROI: -10}, // critical
		},
		Campaigns: []CampaignSnapshot{
			{Name: "Slowpoke", Budget: 1000, Spent: 100, Status: "active"}, // info
		},
	})

	require.Len(t, alerts, 3)
	assert.Equal(t, SeverityCritical, alerts[0].Severity)
	assert.Equal(t, SeverityWarning, alerts[1].Severity)
	assert.Equal(t, SeverityInfo, alerts[2].Severity)
}

func TestEngine_Summarize(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	alerts := engine.Check(Snapshot{
		ROAS: 0.5,
		Channels: []ChannelSnapshot{
			{Name: "Display Ads", ROI: -10},
			{Name: "Paid Search", ROI: 20},
		},
	})
	summary := engine.Summarize(alerts)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Critical)
	assert.Equal(t, 1, summary.Warning)
	assert.Equal(t, 0, summary.Info)
	assert.Equal(t, 1, summary.Categories[CategoryROI])
	assert.Equal(t, 2, summary.Categories[CategoryChannel])
}

func TestEngine_AlertIDsUnique(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	alerts := engine.Check(Snapshot{
		Channels: []ChannelSnapshot{
			{Name: "A", ROI: -1},
			{Name: "B", ROI: -2},
		},
	})

	require.Len(t, alerts, 2)
	assert.NotEqual(t, alerts[0].ID, alerts[1].ID)
}
