package demo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorIsDeterministicWithSeed(t *testing.T) {
	a := NewGenerator(42).FullDataset("Acme")
	b := NewGenerator(42).FullDataset("Acme")

	assert.Equal(t, a.Organization.Industry, b.Organization.Industry)
	require.Equal(t, len(a.Channels), len(b.Channels))
	for i := range a.Channels {
		assert.Equal(t, a.Channels[i].Name, b.Channels[i].Name)
		assert.Equal(t, a.Channels[i].Spend, b.Channels[i].Spend)
	}
}

func TestFullDatasetShape(t *testing.T) {
	ds := NewGenerator(1).FullDataset("")

	assert.True(t, strings.HasPrefix(ds.Organization.ID, "org-"))
	assert.True(t, strings.HasPrefix(ds.Organization.Name, "Demo Company "))
	assert.Len(t, ds.Channels, 6)
	assert.Len(t, ds.Campaigns, 8)
	assert.Len(t, ds.Content, 15)

	for _, c := range ds.Channels {
		assert.Equal(t, ds.Organization.ID, c.OrganizationID)
		assert.Greater(t, c.Impressions, c.Clicks)
		assert.GreaterOrEqual(t, c.Clicks, c.Conversions)
		assert.Positive(t, c.Spend)
	}
	for _, c := range ds.Campaigns {
		assert.Equal(t, ds.Organization.ID, c.OrganizationID)
		assert.Positive(t, c.Budget)
		require.NotNil(t, c.StartDate)
		require.NotNil(t, c.EndDate)
		assert.True(t, c.EndDate.After(*c.StartDate))
	}
}

func TestChannelsAreDistinct(t *testing.T) {
	channels := NewGenerator(7).Channels("org-x", 6)

	seen := map[string]bool{}
	for _, c := range channels {
		assert.False(t, seen[c.Name], "duplicate channel %s", c.Name)
		seen[c.Name] = true
	}
}

func TestMetricsDerivedFromChannels(t *testing.T) {
	g := NewGenerator(3)
	channels := g.Channels("org-x", 4)
	snapshot := g.Metrics("org-x", channels)

	var spend, revenue float64
	for _, c := range channels {
		spend += c.Spend
		revenue += c.Revenue
	}

	require.NotNil(t, snapshot.TotalSpend)
	require.NotNil(t, snapshot.TotalRevenue)
	assert.InDelta(t, spend, *snapshot.TotalSpend, 0.001)
	assert.InDelta(t, revenue, *snapshot.TotalRevenue, 0.001)
	require.NotNil(t, snapshot.ROAS)
	assert.InDelta(t, revenue/spend*100, *snapshot.ROAS, 0.001)
	assert.Equal(t, "monthly", snapshot.Period)
}
