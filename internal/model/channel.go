// internal/model/channel.go
package model

import "time"

type Channel struct {
	ID             string `db:"id" json:"id"`
	OrganizationID string `db:"organization_id" json:"organization_id"`
	Name           string `db:"name" json:"name"`
	ChannelType    string `db:"channel_type" json:"channel_type"` // Organic Search, Paid Search, Social, Email, ...
	Status         string `db:"status" json:"status"`

	// Channel metrics
	Impressions  int     `db:"impressions" json:"impressions"`
	Clicks       int     `db:"clicks" json:"clicks"`
	Conversions  int     `db:"conversions" json:"conversions"`
	Spend        float64 `db:"spend" json:"spend"`
	Revenue      float64 `db:"revenue" json:"revenue"`
	Leads        int     `db:"leads" json:"leads"`
	NewCustomers int     `db:"new_customers" json:"new_customers"`

	// Calculated KPIs
	CTR             *float64 `db:"ctr" json:"ctr,omitempty"`
	ConversionRate  *float64 `db:"conversion_rate" json:"conversion_rate,omitempty"`
	CPC             *float64 `db:"cpc" json:"cpc,omitempty"`
	CPA             *float64 `db:"cpa" json:"cpa,omitempty"`
	ROAS            *float64 `db:"roas" json:"roas,omitempty"`
	EfficiencyScore *float64 `db:"efficiency_score" json:"efficiency_score,omitempty"`
	Rating          string   `db:"rating" json:"rating,omitempty"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
