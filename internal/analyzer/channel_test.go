package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelAnalyzer_AnalyzeChannel(t *testing.T) {
	a := NewChannelAnalyzer()

	perf := a.AnalyzeChannel(ChannelEmail, ChannelMetrics{
		Impressions: 10000,
		Clicks:      350,
		Conversions: 14,
		Spend:       140,
		Revenue:     2240,
	}, 10000)

	assert.InDelta(t, 3.5, perf.CTR, 0.001)
	assert.InDelta(t, 4.0, perf.ConversionRate, 0.001)
	assert.InDelta(t, 0.4, perf.CPC, 0.001)
	assert.InDelta(t, 10.0, perf.CPA, 0.001)
	assert.InDelta(t, 1600.0, perf.ROAS, 0.001)
	assert.InDelta(t, 22.4, perf.ContributionPercent, 0.001)

	// All four terms at benchmark or better: 100*0.2 + 100*0.3 + 100*0.25 + 100*0.25
	assert.InDelta(t, 100.0, perf.EfficiencyScore, 0.001)
	assert.Equal(t, "Excellent", perf.Rating)
}

func TestChannelAnalyzer_AnalyzeChannel_ZeroMetrics(t *testing.T) {
	a := NewChannelAnalyzer()

	perf := a.AnalyzeChannel(ChannelDisplay, ChannelMetrics{}, 0)

	assert.Zero(t, perf.CTR)
	assert.Zero(t, perf.ConversionRate)
	assert.Zero(t, perf.ROAS)
	assert.Zero(t, perf.EfficiencyScore)
	assert.Equal(t, "Critical", perf.Rating)
}

func TestChannelAnalyzer_AnalyzeMix(t *testing.T) {
	a := NewChannelAnalyzer()

	mix := a.AnalyzeMix(map[string]ChannelMetrics{
		ChannelEmail: {
			Impressions: 10000, Clicks: 350, Conversions: 14, Spend: 140, Revenue: 2240,
		},
		ChannelDisplay: {
			Impressions: 50000, Clicks: 50, Conversions: 0, Spend: 3000, Revenue: 100,
		},
	})

	assert.Equal(t, 3140.0, mix.TotalSpend)
	assert.Equal(t, 2340.0, mix.TotalRevenue)
	assert.Equal(t, 14, mix.TotalConversions)
	assert.InDelta(t, 74.52, mix.OverallROAS, 0.01)

	require.Len(t, mix.ChannelPerformances, 2)
	assert.Equal(t, ChannelEmail, mix.ChannelPerformances[0].Channel)
	assert.Contains(t, mix.TopPerformers, ChannelEmail)
	assert.Contains(t, mix.Underperformers, ChannelDisplay)
}

func TestChannelAnalyzer_BudgetShifts(t *testing.T) {
	a := NewChannelAnalyzer()

	mix := a.AnalyzeMix(map[string]ChannelMetrics{
		ChannelEmail: {
			Impressions: 10000, Clicks: 350, Conversions: 100, Spend: 1000, Revenue: 16000,
		},
		ChannelDisplay: {
			Impressions: 50000, Clicks: 50, Conversions: 0, Spend: 9000, Revenue: 100,
		},
	})

	// Email at 10% share with score >= 80 gets +30%, display's poor score
	// sheds spend.
	shift, ok := mix.RecommendedBudgetShifts[ChannelEmail]
	require.True(t, ok)
	assert.InDelta(t, 3.0, shift, 0.001)

	shift, ok = mix.RecommendedBudgetShifts[ChannelDisplay]
	require.True(t, ok)
	assert.Less(t, shift, 0.0)
}

func TestChannelAnalyzer_BudgetShifts_CappedAt40(t *testing.T) {
	a := NewChannelAnalyzer()

	mix := a.AnalyzeMix(map[string]ChannelMetrics{
		ChannelEmail: {
			Impressions: 10000, Clicks: 350, Conversions: 380, Spend: 3800, Revenue: 60000,
		},
		ChannelDisplay: {
			Impressions: 50000, Clicks: 500, Conversions: 10, Spend: 6200, Revenue: 20000,
		},
	})

	// Email at 38% share would exceed the 40% cap at +30%, so the shift
	// is capped to 2 points and dropped as insignificant.
	_, ok := mix.RecommendedBudgetShifts[ChannelEmail]
	assert.False(t, ok)
}
