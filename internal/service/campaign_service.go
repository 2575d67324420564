package service

import (
	"fmt"
	"log"

	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/repository"
	"github.com/patriotech/marketing-intel/internal/scoring"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	Scorer       *scoring.CampaignScoringEngine
	ROI          *scoring.ROIAnalyzer
}

func NewCampaignService(repo repository.CampaignRepositoryInterface) *CampaignService {
	return &CampaignService{
		CampaignRepo: repo,
		Scorer:       scoring.NewCampaignPerformanceEngine(),
		ROI:          scoring.NewROIAnalyzer(),
	}
}

func (s *CampaignService) CreateCampaign(c *model.Campaign) error {
	if c.Name == "" {
		return fmt.Errorf("campaign name is required")
	}
	if c.Status == "" {
		c.Status = "draft"
	}
	return s.CampaignRepo.Create(c)
}

func (s *CampaignService) GetCampaign(id string) (*model.Campaign, error) {
	return s.CampaignRepo.GetByID(id)
}

func (s *CampaignService) ListCampaigns(orgID string) ([]model.Campaign, error) {
	return s.CampaignRepo.ListByOrganization(orgID)
}

func (s *CampaignService) UpdateCampaign(c *model.Campaign) error {
	return s.CampaignRepo.Update(c)
}

func (s *CampaignService) DeleteCampaign(id string) error {
	return s.CampaignRepo.Delete(id)
}

// ScoreCampaign runs the performance scoring engine plus the ROI
// analyzer over a campaign's stored metrics and persists the results
// on the campaign row.
func (s *CampaignService) ScoreCampaign(id string) (*scoring.CampaignScore, error) {
	campaign, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	score := s.Scorer.Score(campaign.ID, campaign.Name, campaignMetricValues(campaign))
	channelROI := s.ROI.AnalyzeChannel(campaign.Name, campaign.Spend, campaign.Revenue, campaign.Conversions)

	// ROI percentage against a 100% target, clamped onto the 0-100 scale.
	roiScore := channelROI.ROIPercentage
	if roiScore < 0 {
		roiScore = 0
	}
	if roiScore > 100 {
		roiScore = 100
	}

	overall := score.OverallScore*0.6 + roiScore*0.4
	rating := scoring.Rating(overall)

	if err := s.CampaignRepo.UpdateScores(id, score.OverallScore, roiScore, overall, rating); err != nil {
		return nil, fmt.Errorf("persist campaign scores: %w", err)
	}

	log.Printf("✅ Scored campaign %s: %.1f (%s)\n", campaign.Name, overall, rating)

	score.OverallScore = overall
	score.Status = rating
	return &score, nil
}

// campaignMetricValues derives the scoring engine's component inputs
// from raw campaign counters. Metrics that cannot be derived are left
// out so the engine skips their components.
func campaignMetricValues(c *model.Campaign) map[string]float64 {
	values := map[string]float64{}
	if c.Impressions > 0 {
		values["click_through_rate"] = float64(c.Clicks) / float64(c.Impressions) * 100
	}
	if c.Clicks > 0 {
		values["conversion_rate"] = float64(c.Conversions) / float64(c.Clicks) * 100
		values["engagement_rate"] = float64(c.Leads) / float64(c.Clicks) * 100
	}
	if c.Conversions > 0 {
		values["cost_per_acquisition"] = c.Spend / float64(c.Conversions)
	}
	if c.Spend > 0 {
		values["return_on_ad_spend"] = c.Revenue / c.Spend * 100
	}
	return values
}
