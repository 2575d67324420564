// internal/model/metrics.go
package model

import "time"

// MarketingMetrics is a periodic snapshot of org-level marketing KPIs.
type MarketingMetrics struct {
	ID             string    `db:"id" json:"id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	Period         string    `db:"period" json:"period"` // monthly, quarterly, yearly
	PeriodStart    time.Time `db:"period_start" json:"period_start"`
	PeriodEnd      time.Time `db:"period_end" json:"period_end"`

	// Acquisition
	CAC               *float64 `db:"cac" json:"cac,omitempty"` // Customer Acquisition Cost
	CPL               *float64 `db:"cpl" json:"cpl,omitempty"` // Cost per Lead
	WebsiteTraffic    *int     `db:"website_traffic" json:"website_traffic,omitempty"`
	OrganicTrafficPct *float64 `db:"organic_traffic_pct" json:"organic_traffic_pct,omitempty"`

	// Conversion
	ConversionRate      *float64 `db:"conversion_rate" json:"conversion_rate,omitempty"`
	LeadToCustomerRate  *float64 `db:"lead_to_customer_rate" json:"lead_to_customer_rate,omitempty"`
	CartAbandonmentRate *float64 `db:"cart_abandonment_rate" json:"cart_abandonment_rate,omitempty"`

	// Engagement
	EmailOpenRate        *float64 `db:"email_open_rate" json:"email_open_rate,omitempty"`
	EmailCTR             *float64 `db:"email_ctr" json:"email_ctr,omitempty"`
	SocialEngagementRate *float64 `db:"social_engagement_rate" json:"social_engagement_rate,omitempty"`

	// Retention
	CustomerRetentionRate *float64 `db:"customer_retention_rate" json:"customer_retention_rate,omitempty"`
	ChurnRate             *float64 `db:"churn_rate" json:"churn_rate,omitempty"`

	// Revenue
	CLV          *float64 `db:"clv" json:"clv,omitempty"`   // Customer Lifetime Value
	ROAS         *float64 `db:"roas" json:"roas,omitempty"` // Return on Ad Spend
	MarketingROI *float64 `db:"marketing_roi" json:"marketing_roi,omitempty"`
	TotalRevenue *float64 `db:"total_revenue" json:"total_revenue,omitempty"`
	TotalSpend   *float64 `db:"total_spend" json:"total_spend,omitempty"`

	// Brand
	BrandAwareness *float64 `db:"brand_awareness" json:"brand_awareness,omitempty"`
	NPS            *float64 `db:"nps" json:"nps,omitempty"` // Net Promoter Score

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// BenchmarkValues flattens the snapshot into the kpi_id -> value map the
// benchmark engine consumes. Nil fields are simply absent.
func (m *MarketingMetrics) BenchmarkValues() map[string]float64 {
	values := map[string]float64{}
	put := func(key string, v *float64) {
		if v != nil {
			values[key] = *v
		}
	}
	put("cac", m.CAC)
	put("cpl", m.CPL)
	put("conversion_rate", m.ConversionRate)
	put("lead_to_customer", m.LeadToCustomerRate)
	put("cart_abandonment", m.CartAbandonmentRate)
	put("email_open_rate", m.EmailOpenRate)
	put("email_ctr", m.EmailCTR)
	put("social_engagement", m.SocialEngagementRate)
	put("customer_retention", m.CustomerRetentionRate)
	put("churn_rate", m.ChurnRate)
	put("clv", m.CLV)
	put("roas", m.ROAS)
	put("marketing_roi", m.MarketingROI)
	put("brand_awareness", m.BrandAwareness)
	put("nps", m.NPS)
	put("organic_traffic", m.OrganicTrafficPct)
	if m.WebsiteTraffic != nil {
		values["website_traffic"] = float64(*m.WebsiteTraffic)
	}
	return values
}
