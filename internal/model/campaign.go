// internal/model/campaign.go
package model

import "time"

type Campaign struct {
	ID             string     `db:"id" json:"id"`
	OrganizationID string     `db:"organization_id" json:"organization_id"`
	Name           string     `db:"name" json:"name"`
	CampaignType   string     `db:"campaign_type" json:"campaign_type,omitempty"` // Lead Gen, Brand Awareness, Product Launch, ...
	Status         string     `db:"status" json:"status"`                         // draft, active, paused, completed
	StartDate      *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate        *time.Time `db:"end_date" json:"end_date,omitempty"`
	Budget         float64    `db:"budget" json:"budget"`
	Spend          float64    `db:"spend" json:"spend"`

	// Performance metrics
	Impressions int     `db:"impressions" json:"impressions"`
	Clicks      int     `db:"clicks" json:"clicks"`
	Conversions int     `db:"conversions" json:"conversions"`
	Leads       int     `db:"leads" json:"leads"`
	Revenue     float64 `db:"revenue" json:"revenue"`

	// Calculated scores
	PerformanceScore *float64 `db:"performance_score" json:"performance_score,omitempty"`
	ROIScore         *float64 `db:"roi_score" json:"roi_score,omitempty"`
	OverallScore     *float64 `db:"overall_score" json:"overall_score,omitempty"`
	Rating           string   `db:"rating" json:"rating,omitempty"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
