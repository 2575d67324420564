package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/scoring"
	"github.com/patriotech/marketing-intel/internal/service"
)

func TestScoreCampaignPersistsScores(t *testing.T) {
	repo := &MockCampaignRepo{
		Campaigns: map[string]*model.Campaign{
			"cmp-1": {
				ID:             "cmp-1",
				OrganizationID: "org-1",
				Name:           "Summer Sale",
				Status:         "active",
				Impressions:    100000,
				Clicks:         3000,
				Conversions:    150,
				Leads:          300,
				Spend:          3000,
				Revenue:        9000,
			},
		},
	}
	svc := service.NewCampaignService(repo)

	score, err := svc.ScoreCampaign("cmp-1")
	require.NoError(t, err)

	// conversion_rate 5% -> 50, ctr 3% -> 60, cpa $20 -> 80,
	// roas 300% -> 60, engagement 10% -> 100; weighted mean 67.5.
	assert.InDelta(t, 67.5, repo.ScoredPerf, 0.001)
	// ROI is 200%, clamped to 100.
	assert.InDelta(t, 100, repo.ScoredROI, 0.001)
	assert.InDelta(t, 80.5, repo.ScoredTotal, 0.001)
	assert.Equal(t, scoring.StatusGood, repo.ScoredRating)

	assert.Equal(t, "cmp-1", repo.ScoredID)
	assert.InDelta(t, 80.5, score.OverallScore, 0.001)
	assert.Equal(t, scoring.StatusGood, score.Status)
}

func TestScoreCampaignUnknownID(t *testing.T) {
	svc := service.NewCampaignService(&MockCampaignRepo{})

	_, err := svc.ScoreCampaign("cmp-missing")
	assert.Error(t, err)
}

func TestCreateCampaignDefaults(t *testing.T) {
	repo := &MockCampaignRepo{}
	svc := service.NewCampaignService(repo)

	c := &model.Campaign{Name: "Launch", OrganizationID: "org-1"}
	require.NoError(t, svc.CreateCampaign(c))
	assert.Equal(t, "draft", c.Status)

	err := svc.CreateCampaign(&model.Campaign{OrganizationID: "org-1"})
	assert.Error(t, err)
}
