package repository

import (
	"database/sql"
	"time"

	"github.com/patriotech/marketing-intel/internal/idgen"
	"github.com/patriotech/marketing-intel/internal/model"
)

type MetricsRepositoryInterface interface {
	Create(m *model.MarketingMetrics) error
	GetLatest(orgID string) (*model.MarketingMetrics, error)
	ListByPeriod(orgID, period string) ([]model.MarketingMetrics, error)
}

type MetricsRepository struct {
	DB *sql.DB
}

const metricsColumns = `id, organization_id, period, period_start, period_end,
        cac, cpl, website_traffic, organic_traffic_pct,
        conversion_rate, lead_to_customer_rate, cart_abandonment_rate,
        email_open_rate, email_ctr, social_engagement_rate,
        customer_retention_rate, churn_rate,
        clv, roas, marketing_roi, total_revenue, total_spend,
        brand_awareness, nps, created_at`

func scanMetrics(row interface{ Scan(...any) error }) (*model.MarketingMetrics, error) {
	var m model.MarketingMetrics
	err := row.Scan(
		&m.ID, &m.OrganizationID, &m.Period, &m.PeriodStart, &m.PeriodEnd,
		&m.CAC, &m.CPL, &m.WebsiteTraffic, &m.OrganicTrafficPct,
		&m.ConversionRate, &m.LeadToCustomerRate, &m.CartAbandonmentRate,
		&m.EmailOpenRate, &m.EmailCTR, &m.SocialEngagementRate,
		&m.CustomerRetentionRate, &m.ChurnRate,
		&m.CLV, &m.ROAS, &m.MarketingROI, &m.TotalRevenue, &m.TotalSpend,
		&m.BrandAwareness, &m.NPS, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MetricsRepository) Create(m *model.MarketingMetrics) error {
	if m.ID == "" {
		id, err := idgen.New(idgen.PrefixMetrics)
		if err != nil {
			return err
		}
		m.ID = id
	}
	if m.Period == "" {
		m.Period = "monthly"
	}
	m.CreatedAt = time.Now()
	query := `
        INSERT INTO marketing_metrics (id, organization_id, period, period_start, period_end,
            cac, cpl, website_traffic, organic_traffic_pct,
            conversion_rate, lead_to_customer_rate, cart_abandonment_rate,
            email_open_rate, email_ctr, social_engagement_rate,
            customer_retention_rate, churn_rate,
            clv, roas, marketing_roi, total_revenue, total_spend,
            brand_awareness, nps, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
            $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
    `
	_, err := r.DB.Exec(query,
		m.ID, m.OrganizationID, m.Period, m.PeriodStart, m.PeriodEnd,
		m.CAC, m.CPL, m.WebsiteTraffic, m.OrganicTrafficPct,
		m.ConversionRate, m.LeadToCustomerRate, m.CartAbandonmentRate,
		m.EmailOpenRate, m.EmailCTR, m.SocialEngagementRate,
		m.CustomerRetentionRate, m.ChurnRate,
		m.CLV, m.ROAS, m.MarketingROI, m.TotalRevenue, m.TotalSpend,
		m.BrandAwareness, m.NPS, m.CreatedAt,
	)
	return err
}

// GetLatest returns the most recent snapshot by period_end, nil when none exists.
func (r *MetricsRepository) GetLatest(orgID string) (*model.MarketingMetrics, error) {
	query := `SELECT ` + metricsColumns + ` FROM marketing_metrics WHERE organization_id=$1 ORDER BY period_end DESC LIMIT 1`
	m, err := scanMetrics(r.DB.QueryRow(query, orgID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (r *MetricsRepository) ListByPeriod(orgID, period string) ([]model.MarketingMetrics, error) {
	query := `SELECT ` + metricsColumns + ` FROM marketing_metrics WHERE organization_id=$1 AND period=$2 ORDER BY period_start DESC`
	rows, err := r.DB.Query(query, orgID, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.MarketingMetrics{}
	for rows.Next() {
		m, err := scanMetrics(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

var _ MetricsRepositoryInterface = (*MetricsRepository)(nil)
