package service

import (
	"fmt"
	"log"

	"github.com/patriotech/marketing-intel/internal/analyzer"
	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/repository"
)

type ChannelService struct {
	ChannelRepo repository.ChannelRepositoryInterface
	Analyzer    *analyzer.ChannelAnalyzer
}

func NewChannelService(repo repository.ChannelRepositoryInterface) *ChannelService {
	return &ChannelService{
		ChannelRepo: repo,
		Analyzer:    analyzer.NewChannelAnalyzer(),
	}
}

func (s *ChannelService) CreateChannel(c *model.Channel) error {
	if c.Name == "" {
		return fmt.Errorf("channel name is required")
	}
	if c.ChannelType == "" {
		c.ChannelType = c.Name
	}
	if c.Status == "" {
		c.Status = "active"
	}
	return s.ChannelRepo.Create(c)
}

func (s *ChannelService) GetChannel(id string) (*model.Channel, error) {
	return s.ChannelRepo.GetByID(id)
}

func (s *ChannelService) ListChannels(orgID string) ([]model.Channel, error) {
	return s.ChannelRepo.ListByOrganization(orgID)
}

func (s *ChannelService) UpdateChannel(c *model.Channel) error {
	return s.ChannelRepo.Update(c)
}

// AnalyzeMix runs the channel analyzer over every channel in the
// organization, persists the derived KPIs and efficiency score on each
// channel row, and returns the mix report.
func (s *ChannelService) AnalyzeMix(orgID string) (*analyzer.ChannelMix, error) {
	channels, err := s.ChannelRepo.ListByOrganization(orgID)
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("organization %s has no channels to analyze", orgID)
	}

	byName := map[string]*model.Channel{}
	inputs := map[string]analyzer.ChannelMetrics{}
	for i := range channels {
		c := &channels[i]
		byName[c.ChannelType] = c
		inputs[c.ChannelType] = analyzer.ChannelMetrics{
			Impressions:  c.Impressions,
			Clicks:       c.Clicks,
			Conversions:  c.Conversions,
			Spend:        c.Spend,
			Revenue:      c.Revenue,
			Leads:        c.Leads,
			NewCustomers: c.NewCustomers,
		}
	}

	mix := s.Analyzer.AnalyzeMix(inputs)

	for _, perf := range mix.ChannelPerformances {
		row, ok := byName[perf.Channel]
		if !ok {
			continue
		}
		row.CTR = ptrFloat(perf.CTR)
		row.ConversionRate = ptrFloat(perf.ConversionRate)
		row.CPC = ptrFloat(perf.CPC)
		row.CPA = ptrFloat(perf.CPA)
		row.ROAS = ptrFloat(perf.ROAS)
		row.EfficiencyScore = ptrFloat(perf.EfficiencyScore)
		row.Rating = perf.Rating
		if err := s.ChannelRepo.UpdateKPIs(row); err != nil {
			return nil, fmt.Errorf("persist channel KPIs for %s: %w", perf.Channel, err)
		}
	}

	log.Printf("✅ Analyzed %d channels for org %s\n", len(mix.ChannelPerformances), orgID)
	return &mix, nil
}

func ptrFloat(v float64) *float64 { return &v }
