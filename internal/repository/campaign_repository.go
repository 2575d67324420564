package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/patriotech/marketing-intel/internal/errors"
	"github.com/patriotech/marketing-intel/internal/idgen"
	"github.com/patriotech/marketing-intel/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	GetByID(id string) (*model.Campaign, error)
	ListByOrganization(orgID string) ([]model.Campaign, error)
	ListActive(orgID string) ([]model.Campaign, error)
	Update(c *model.Campaign) error
	UpdateScores(id string, performance, roi, overall float64, rating string) error
	Delete(id string) error
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, organization_id, name, campaign_type, status, start_date, end_date,
        budget, spend, impressions, clicks, conversions, leads, revenue,
        performance_score, roi_score, overall_score, rating, created_at, updated_at`

func scanCampaign(row interface{ Scan(...any) error }) (*model.Campaign, error) {
	var c model.Campaign
	err := row.Scan(
		&c.ID, &c.OrganizationID, &c.Name, &c.CampaignType, &c.Status, &c.StartDate, &c.EndDate,
		&c.Budget, &c.Spend, &c.Impressions, &c.Clicks, &c.Conversions, &c.Leads, &c.Revenue,
		&c.PerformanceScore, &c.ROIScore, &c.OverallScore, &c.Rating, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	if c.ID == "" {
		id, err := idgen.New(idgen.PrefixCampaign)
		if err != nil {
			return err
		}
		c.ID = id
	}
	if c.Status == "" {
		c.Status = "draft"
	}
	c.CreatedAt = time.Now()
	query := `
        INSERT INTO campaigns (id, organization_id, name, campaign_type, status, start_date, end_date,
            budget, spend, impressions, clicks, conversions, leads, revenue, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `
	_, err := r.DB.Exec(query,
		c.ID, c.OrganizationID, c.Name, c.CampaignType, c.Status, c.StartDate, c.EndDate,
		c.Budget, c.Spend, c.Impressions, c.Clicks, c.Conversions, c.Leads, c.Revenue, c.CreatedAt,
	)
	return err
}

func (r *CampaignRepository) GetByID(id string) (*model.Campaign, error) {
	c, err := scanCampaign(r.DB.QueryRow(`SELECT `+campaignColumns+` FROM campaigns WHERE id=$1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return c, nil
}

func (r *CampaignRepository) ListByOrganization(orgID string) ([]model.Campaign, error) {
	return r.list(`SELECT `+campaignColumns+` FROM campaigns WHERE organization_id=$1 ORDER BY created_at DESC`, orgID)
}

func (r *CampaignRepository) ListActive(orgID string) ([]model.Campaign, error) {
	return r.list(`SELECT `+campaignColumns+` FROM campaigns WHERE organization_id=$1 AND status='active' ORDER BY created_at DESC`, orgID)
}

func (r *CampaignRepository) list(query string, args ...any) ([]model.Campaign, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []model.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
	query := `
        UPDATE campaigns
        SET name=$1, campaign_type=$2, status=$3, start_date=$4, end_date=$5,
            budget=$6, spend=$7, impressions=$8, clicks=$9, conversions=$10,
            leads=$11, revenue=$12, updated_at=NOW()
        WHERE id=$13
    `
	res, err := r.DB.Exec(query,
		c.Name, c.CampaignType, c.Status, c.StartDate, c.EndDate,
		c.Budget, c.Spend, c.Impressions, c.Clicks, c.Conversions,
		c.Leads, c.Revenue, c.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewCampaignNotFound(c.ID)
	}
	return nil
}

func (r *CampaignRepository) UpdateScores(id string, performance, roi, overall float64, rating string) error {
	query := `
        UPDATE campaigns
        SET performance_score=$1, roi_score=$2, overall_score=$3, rating=$4, updated_at=NOW()
        WHERE id=$5
    `
	res, err := r.DB.Exec(query, performance, roi, overall, rating, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

func (r *CampaignRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
