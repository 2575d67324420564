// internal/model/content.go
package model

import "time"

type Content struct {
	ID             string     `db:"id" json:"id"`
	OrganizationID string     `db:"organization_id" json:"organization_id"`
	Title          string     `db:"title" json:"title"`
	ContentType    string     `db:"content_type" json:"content_type"` // Blog Post, Video, Whitepaper, ...
	FunnelStage    string     `db:"funnel_stage" json:"funnel_stage"` // TOFU, MOFU, BOFU
	Status         string     `db:"status" json:"status"`
	PublishDate    *time.Time `db:"publish_date" json:"publish_date,omitempty"`
	URL            string     `db:"url" json:"url,omitempty"`

	// Content metrics
	Views          int     `db:"views" json:"views"`
	UniqueVisitors int     `db:"unique_visitors" json:"unique_visitors"`
	TimeOnPage     float64 `db:"time_on_page" json:"time_on_page"` // seconds
	BounceRate     float64 `db:"bounce_rate" json:"bounce_rate"`
	Shares         int     `db:"shares" json:"shares"`
	Comments       int     `db:"comments" json:"comments"`
	Downloads      int     `db:"downloads" json:"downloads"`
	LeadsGenerated int     `db:"leads_generated" json:"leads_generated"`
	Conversions    int     `db:"conversions" json:"conversions"`

	// Scores
	EngagementScore *float64 `db:"engagement_score" json:"engagement_score,omitempty"`
	ConversionScore *float64 `db:"conversion_score" json:"conversion_score,omitempty"`
	OverallScore    *float64 `db:"overall_score" json:"overall_score,omitempty"`
	Rating          string   `db:"rating" json:"rating,omitempty"`

	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
