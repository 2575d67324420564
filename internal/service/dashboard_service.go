package service

import (
	"fmt"

	"github.com/patriotech/marketing-intel/internal/alerts"
	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/reports"
	"github.com/patriotech/marketing-intel/internal/repository"
	"github.com/patriotech/marketing-intel/internal/scoring"
)

// DashboardService assembles cross-entity views: alert runs and CSV
// report exports over an organization's current data.
type DashboardService struct {
	ChannelRepo  repository.ChannelRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	MetricsRepo  repository.MetricsRepositoryInterface
	Alerts       *alerts.Engine
	Reports      *reports.Generator
	ROI          *scoring.ROIAnalyzer
}

func NewDashboardService(channels repository.ChannelRepositoryInterface, campaigns repository.CampaignRepositoryInterface, metrics repository.MetricsRepositoryInterface) *DashboardService {
	return &DashboardService{
		ChannelRepo:  channels,
		CampaignRepo: campaigns,
		MetricsRepo:  metrics,
		Alerts:       alerts.NewEngine(alerts.DefaultThresholds()),
		Reports:      reports.NewGenerator(),
		ROI:          scoring.NewROIAnalyzer(),
	}
}

// CheckAlerts runs the alert engine over the organization's channels,
// campaigns and overall ROAS.
func (s *DashboardService) CheckAlerts(orgID string) ([]alerts.Alert, error) {
	channels, campaigns, err := s.load(orgID)
	if err != nil {
		return nil, err
	}

	snapshot := alerts.Snapshot{ROAS: overallROAS(channels)}
	for _, c := range channels {
		roi := 0.0
		if c.Spend > 0 {
			roi = (c.Revenue - c.Spend) / c.Spend * 100
		}
		snapshot.Channels = append(snapshot.Channels, alerts.ChannelSnapshot{Name: c.Name, ROI: roi})
	}
	for _, c := range campaigns {
		snapshot.Campaigns = append(snapshot.Campaigns, alerts.CampaignSnapshot{
			Name:   c.Name,
			Budget: c.Budget,
			Spent:  c.Spend,
			Status: c.Status,
		})
	}

	return s.Alerts.Check(snapshot), nil
}

// SummarizeAlerts is CheckAlerts plus severity and category counts.
func (s *DashboardService) SummarizeAlerts(orgID string) ([]alerts.Alert, alerts.Summary, error) {
	found, err := s.CheckAlerts(orgID)
	if err != nil {
		return nil, alerts.Summary{}, err
	}
	return found, s.Alerts.Summarize(found), nil
}

// GenerateReport produces a CSV export of the organization's dashboard.
func (s *DashboardService) GenerateReport(orgID, reportType string) (string, error) {
	channels, campaigns, err := s.load(orgID)
	if err != nil {
		return "", err
	}

	data := reports.DashboardData{}
	for _, c := range channels {
		data.Metrics.TotalRevenue += c.Revenue
		data.Metrics.TotalSpend += c.Spend
		data.Metrics.TotalConversions += c.Conversions

		roi := 0.0
		if c.Spend > 0 {
			roi = (c.Revenue - c.Spend) / c.Spend * 100
		}
		data.Channels = append(data.Channels, reports.ChannelRow{
			Name:        c.Name,
			Spend:       c.Spend,
			Revenue:     c.Revenue,
			Conversions: c.Conversions,
			ROI:         roi,
		})
	}
	if data.Metrics.TotalSpend > 0 {
		data.Metrics.ROAS = data.Metrics.TotalRevenue / data.Metrics.TotalSpend
	}
	for _, c := range campaigns {
		data.Campaigns = append(data.Campaigns, reports.CampaignRow{
			Name:    c.Name,
			Channel: c.CampaignType,
			Status:  c.Status,
			Budget:  c.Budget,
			Spent:   c.Spend,
			Leads:   c.Leads,
		})
	}

	return s.Reports.GenerateCSV(data, reportType)
}

// AnalyzeROI runs the ROI analyzer over the organization's channels.
func (s *DashboardService) AnalyzeROI(orgID string) (*scoring.ROIReport, error) {
	channels, err := s.ChannelRepo.ListByOrganization(orgID)
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("organization %s has no channels to analyze", orgID)
	}

	inputs := make([]scoring.ChannelROIInput, 0, len(channels))
	for _, c := range channels {
		inputs = append(inputs, scoring.ChannelROIInput{
			Channel:     c.ChannelType,
			Investment:  c.Spend,
			Revenue:     c.Revenue,
			Conversions: c.Conversions,
		})
	}

	report := s.ROI.CreateReport("", orgID, inputs)
	return &report, nil
}

func (s *DashboardService) load(orgID string) ([]model.Channel, []model.Campaign, error) {
	channels, err := s.ChannelRepo.ListByOrganization(orgID)
	if err != nil {
		return nil, nil, fmt.Errorf("load channels: %w", err)
	}
	campaigns, err := s.CampaignRepo.ListByOrganization(orgID)
	if err != nil {
		return nil, nil, fmt.Errorf("load campaigns: %w", err)
	}
	return channels, campaigns, nil
}

func overallROAS(channels []model.Channel) float64 {
	var spend, revenue float64
	for _, c := range channels {
		spend += c.Spend
		revenue += c.Revenue
	}
	if spend == 0 {
		return 0
	}
	return revenue / spend
}
