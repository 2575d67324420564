// Package demo generates realistic sample data for local development
// and product demos.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/patriotech/marketing-intel/internal/analyzer"
	"github.com/patriotech/marketing-intel/internal/idgen"
	"github.com/patriotech/marketing-intel/internal/model"
)

var campaignNames = []string{
	"Q1 Brand Awareness", "Product Launch 2024", "Holiday Sale",
	"Summer Promotion", "Lead Gen Campaign", "Retargeting Blast",
	"Newsletter Drive", "Webinar Series", "Free Trial Push",
	"Enterprise Outreach", "SMB Acquisition", "Customer Win-Back",
}

var campaignTypes = []string{
	"Lead Gen", "Brand Awareness", "Product Launch", "Retention", "Nurture",
}

var industries = []string{
	"Technology", "Healthcare", "Financial Services", "Retail",
	"Manufacturing", "Professional Services", "Education", "Media",
}

var contentTitles = []string{
	"The Complete Guide to %s", "10 Ways to Improve Your %s",
	"Why %s Matters in 2024", "%s Best Practices", "How We Scaled %s",
	"%s Case Study", "The Future of %s", "%s Benchmarks Report",
}

var contentTopics = []string{
	"Lead Generation", "Email Marketing", "Customer Retention",
	"Paid Acquisition", "Content Strategy", "Marketing Analytics",
}

// Generator produces randomized but internally consistent demo datasets.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator returns a generator. Pass a non-zero seed for
// reproducible output.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now().UTC(),
	}
}

// Dataset is a complete demo dataset for one organization.
type Dataset struct {
	Organization model.Organization
	Channels     []model.Channel
	Campaigns    []model.Campaign
	Content      []model.Content
	Metrics      model.MarketingMetrics
}

// Organization generates a demo organization. An empty name gets a
// random one.
func (g *Generator) Organization(name string) model.Organization {
	if name == "" {
		name = fmt.Sprintf("Demo Company %d", g.intBetween(1000, 9999))
	}
	sizes := []string{"SMB", "Mid-Market", "Enterprise"}
	return model.Organization{
		ID:                    idgen.Must(idgen.PrefixOrganization),
		Name:                  name,
		Industry:              industries[g.rng.Intn(len(industries))],
		Size:                  sizes[g.rng.Intn(len(sizes))],
		AnnualMarketingBudget: float64(g.intBetween(10000, 500000)) * 12,
		CreatedAt:             g.now,
	}
}

// Channels generates up to count channels with self-consistent metrics.
func (g *Generator) Channels(orgID string, count int) []model.Channel {
	types := g.sample(analyzer.ChannelTypes, count)
	channels := make([]model.Channel, 0, len(types))

	for _, name := range types {
		spend := float64(g.intBetween(5000, 100000))
		revenue := spend * g.floatBetween(0.5, 4.0)

		impressions := g.intBetween(50000, 5000000)
		clicks := int(float64(impressions) * g.floatBetween(0.01, 0.08))
		conversions := int(float64(clicks) * g.floatBetween(0.02, 0.15))
		leads := conversions + g.intBetween(0, conversions+1)

		status := "active"
		if g.rng.Intn(4) == 0 {
			status = "paused"
		}

		channels = append(channels, model.Channel{
			ID:             idgen.Must(idgen.PrefixChannel),
			OrganizationID: orgID,
			Name:           name,
			ChannelType:    name,
			Status:         status,
			Impressions:    impressions,
			Clicks:         clicks,
			Conversions:    conversions,
			Spend:          spend,
			Revenue:        revenue,
			Leads:          leads,
			NewCustomers:   conversions,
			CreatedAt:      g.now,
		})
	}

	return channels
}

// Campaigns generates up to count campaigns.
func (g *Generator) Campaigns(orgID string, count int) []model.Campaign {
	names := g.sample(campaignNames, count)
	campaigns := make([]model.Campaign, 0, len(names))

	statuses := []string{"active", "active", "completed", "paused"}

	for _, name := range names {
		start := g.now.AddDate(0, 0, -g.intBetween(7, 90))
		end := start.AddDate(0, 0, g.intBetween(30, 90))
		budget := float64(g.intBetween(5000, 50000))
		spend := budget * g.floatBetween(0.3, 1.1)
		leads := g.intBetween(50, 500)
		conversions := int(float64(leads) * g.floatBetween(0.05, 0.25))
		impressions := g.intBetween(100000, 2000000)
		clicks := int(float64(impressions) * g.floatBetween(0.01, 0.05))

		campaigns = append(campaigns, model.Campaign{
			ID:             idgen.Must(idgen.PrefixCampaign),
			OrganizationID: orgID,
			Name:           name,
			CampaignType:   campaignTypes[g.rng.Intn(len(campaignTypes))],
			Status:         statuses[g.rng.Intn(len(statuses))],
			StartDate:      &start,
			EndDate:        &end,
			Budget:         budget,
			Spend:          spend,
			Impressions:    impressions,
			Clicks:         clicks,
			Conversions:    conversions,
			Leads:          leads,
			Revenue:        spend * g.floatBetween(0.8, 3.5),
			CreatedAt:      g.now,
		})
	}

	return campaigns
}

// Content generates count content pieces spread across funnel stages.
func (g *Generator) Content(orgID string, count int) []model.Content {
	stages := []string{analyzer.StageTOFU, analyzer.StageTOFU, analyzer.StageMOFU, analyzer.StageBOFU}
	pieces := make([]model.Content, 0, count)

	for i := 0; i < count; i++ {
		contentType := analyzer.ContentTypes[g.rng.Intn(len(analyzer.ContentTypes))]
		topic := contentTopics[g.rng.Intn(len(contentTopics))]
		title := fmt.Sprintf(contentTitles[g.rng.Intn(len(contentTitles))], topic)
		published := g.now.AddDate(0, 0, -g.intBetween(1, 180))

		views := g.intBetween(200, 50000)
		visitors := int(float64(views) * g.floatBetween(0.6, 0.95))
		leads := int(float64(visitors) * g.floatBetween(0.005, 0.08))
		conversions := int(float64(leads) * g.floatBetween(0.05, 0.4))

		pieces = append(pieces, model.Content{
			ID:             idgen.Must(idgen.PrefixContent),
			OrganizationID: orgID,
			Title:          title,
			ContentType:    contentType,
			FunnelStage:    stages[g.rng.Intn(len(stages))],
			Status:         "published",
			PublishDate:    &published,
			Views:          views,
			UniqueVisitors: visitors,
			TimeOnPage:     g.floatBetween(30, 600),
			BounceRate:     g.floatBetween(25, 85),
			Shares:         g.intBetween(0, 500),
			Comments:       g.intBetween(0, 80),
			Downloads:      g.intBetween(0, 300),
			LeadsGenerated: leads,
			Conversions:    conversions,
			CreatedAt:      g.now,
		})
	}

	return pieces
}

// Metrics derives an org-level monthly snapshot from the generated
// channels so the dashboard and benchmark numbers line up.
func (g *Generator) Metrics(orgID string, channels []model.Channel) model.MarketingMetrics {
	var spend, revenue float64
	var impressions, clicks, conversions int
	for _, c := range channels {
		spend += c.Spend
		revenue += c.Revenue
		impressions += c.Impressions
		clicks += c.Clicks
		conversions += c.Conversions
	}

	snapshot := model.MarketingMetrics{
		ID:             idgen.Must(idgen.PrefixMetrics),
		OrganizationID: orgID,
		Period:         "monthly",
		PeriodStart:    g.now.AddDate(0, -1, 0),
		PeriodEnd:      g.now,
		CreatedAt:      g.now,
	}

	if conversions > 0 {
		snapshot.CAC = ptr(spend / float64(conversions))
		snapshot.CLV = ptr(revenue / float64(conversions) * g.floatBetween(2, 5))
	}
	if clicks > 0 {
		snapshot.ConversionRate = ptr(float64(conversions) / float64(clicks) * 100)
	}
	if spend > 0 {
		snapshot.ROAS = ptr(revenue / spend * 100)
		snapshot.MarketingROI = ptr((revenue - spend) / spend * 100)
	}

	traffic := g.intBetween(5000, 200000)
	snapshot.WebsiteTraffic = &traffic
	snapshot.OrganicTrafficPct = ptr(g.floatBetween(20, 60))
	snapshot.CPL = ptr(g.floatBetween(10, 60))
	snapshot.LeadToCustomerRate = ptr(g.floatBetween(5, 30))
	snapshot.CartAbandonmentRate = ptr(g.floatBetween(55, 85))
	snapshot.EmailOpenRate = ptr(g.floatBetween(15, 35))
	snapshot.EmailCTR = ptr(g.floatBetween(1, 5))
	snapshot.SocialEngagementRate = ptr(g.floatBetween(0.5, 4))
	snapshot.CustomerRetentionRate = ptr(g.floatBetween(70, 95))
	snapshot.ChurnRate = ptr(g.floatBetween(2, 12))
	snapshot.BrandAwareness = ptr(g.floatBetween(10, 50))
	snapshot.NPS = ptr(g.floatBetween(10, 70))
	snapshot.TotalRevenue = &revenue
	snapshot.TotalSpend = &spend

	return snapshot
}

// FullDataset generates an organization with channels, campaigns,
// content and a metrics snapshot.
func (g *Generator) FullDataset(orgName string) Dataset {
	org := g.Organization(orgName)
	channels := g.Channels(org.ID, 6)
	return Dataset{
		Organization: org,
		Channels:     channels,
		Campaigns:    g.Campaigns(org.ID, 8),
		Content:      g.Content(org.ID, 15),
		Metrics:      g.Metrics(org.ID, channels),
	}
}

// sample picks up to n distinct values from the pool.
func (g *Generator) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	idx := g.rng.Perm(len(pool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) floatBetween(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func ptr(v float64) *float64 { return &v }
