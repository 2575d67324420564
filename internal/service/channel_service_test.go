package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriotech/marketing-intel/internal/analyzer"
	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/service"
)

func testChannels() []model.Channel {
	return []model.Channel{
		{
			ID:             "chn-email",
			OrganizationID: "org-1",
			Name:           "Email",
			ChannelType:    analyzer.ChannelEmail,
			Status:         "active",
			Impressions:    100000,
			Clicks:         3500,
			Conversions:    140,
			Spend:          1000,
			Revenue:        6000,
		},
		{
			ID:             "chn-display",
			OrganizationID: "org-1",
			Name:           "Display",
			ChannelType:    analyzer.ChannelDisplay,
			Status:         "active",
			Impressions:    500000,
			Clicks:         1000,
			Conversions:    5,
			Spend:          4000,
			Revenue:        1500,
		},
	}
}

func TestAnalyzeMixPersistsKPIs(t *testing.T) {
	repo := &MockChannelRepo{ByOrg: testChannels()}
	svc := service.NewChannelService(repo)

	mix, err := svc.AnalyzeMix("org-1")
	require.NoError(t, err)

	assert.Len(t, mix.ChannelPerformances, 2)
	assert.ElementsMatch(t, []string{"chn-email", "chn-display"}, repo.KPIsUpdated)
	assert.InDelta(t, 5000, mix.TotalSpend, 0.001)
	assert.InDelta(t, 7500, mix.TotalRevenue, 0.001)

	// The analyzed KPIs land back on the channel rows.
	email, err := repo.GetByID("chn-email")
	require.NoError(t, err)
	require.NotNil(t, email.CTR)
	assert.InDelta(t, 3.5, *email.CTR, 0.001)
	require.NotNil(t, email.EfficiencyScore)
	assert.NotEmpty(t, email.Rating)
}

func TestAnalyzeMixNoChannels(t *testing.T) {
	svc := service.NewChannelService(&MockChannelRepo{})

	_, err := svc.AnalyzeMix("org-1")
	assert.Error(t, err)
}

func TestCreateChannelDefaults(t *testing.T) {
	svc := service.NewChannelService(&MockChannelRepo{})

	c := &model.Channel{Name: analyzer.ChannelEmail, OrganizationID: "org-1"}
	require.NoError(t, svc.CreateChannel(c))
	assert.Equal(t, analyzer.ChannelEmail, c.ChannelType)
	assert.Equal(t, "active", c.Status)

	assert.Error(t, svc.CreateChannel(&model.Channel{OrganizationID: "org-1"}))
}
