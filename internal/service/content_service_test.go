package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriotech/marketing-intel/internal/analyzer"
	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/service"
)

func TestAnalyzeLibraryPersistsScores(t *testing.T) {
	repo := &MockContentRepo{
		ByOrg: []model.Content{
			{
				ID:             "cnt-1",
				OrganizationID: "org-1",
				Title:          "SEO Guide",
				ContentType:    analyzer.ContentBlogPost,
				FunnelStage:    analyzer.StageTOFU,
				Views:          12000,
				UniqueVisitors: 9000,
				TimeOnPage:     180,
				BounceRate:     60,
				Shares:         150,
				Comments:       40,
				LeadsGenerated: 120,
				Conversions:    10,
			},
			{
				ID:             "cnt-2",
				OrganizationID: "org-1",
				Title:          "Pricing Webinar",
				ContentType:    analyzer.ContentWebinar,
				FunnelStage:    analyzer.StageBOFU,
				Views:          800,
				UniqueVisitors: 600,
				TimeOnPage:     2400,
				BounceRate:     25,
				Shares:         20,
				Comments:       15,
				LeadsGenerated: 60,
				Conversions:    25,
			},
		},
	}
	svc := service.NewContentService(repo)

	report, err := svc.AnalyzeLibrary("org-1")
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalContentPieces)
	assert.Equal(t, 12800, report.TotalViews)
	assert.Equal(t, 180, report.TotalLeads)
	assert.Contains(t, repo.Scored, "cnt-1")
	assert.Contains(t, repo.Scored, "cnt-2")
	assert.Equal(t, 1, report.ContentByStage[analyzer.StageTOFU])
	assert.Equal(t, 1, report.ContentByStage[analyzer.StageBOFU])
}

func TestAnalyzeLibraryEmpty(t *testing.T) {
	svc := service.NewContentService(&MockContentRepo{})

	_, err := svc.AnalyzeLibrary("org-1")
	assert.Error(t, err)
}

func TestCreateContentDefaults(t *testing.T) {
	svc := service.NewContentService(&MockContentRepo{})

	c := &model.Content{Title: "Guide", OrganizationID: "org-1"}
	require.NoError(t, svc.CreateContent(c))
	assert.Equal(t, analyzer.StageTOFU, c.FunnelStage)
	assert.Equal(t, "published", c.Status)

	assert.Error(t, svc.CreateContent(&model.Content{OrganizationID: "org-1"}))
}
