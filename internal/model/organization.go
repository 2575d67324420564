// internal/model/organization.go
package model

import "time"

type Organization struct {
	ID                    string     `db:"id" json:"id"`
	Name                  string     `db:"name" json:"name"`
	Industry              string     `db:"industry" json:"industry,omitempty"`
	Size                  string     `db:"size" json:"size,omitempty"` // SMB, Mid-Market, Enterprise
	AnnualMarketingBudget float64    `db:"annual_marketing_budget" json:"annual_marketing_budget"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
