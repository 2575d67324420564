package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/patriotech/marketing-intel/internal/errors"
	"github.com/patriotech/marketing-intel/internal/idgen"
	"github.com/patriotech/marketing-intel/internal/model"
)

type ContentRepositoryInterface interface {
	Create(c *model.Content) error
	GetByID(id string) (*model.Content, error)
	ListByOrganization(orgID string) ([]model.Content, error)
	ListByFunnelStage(orgID, stage string) ([]model.Content, error)
	UpdateScores(id string, engagement, conversion, overall float64, rating string) error
}

type ContentRepository struct {
	DB *sql.DB
}

const contentColumns = `id, organization_id, title, content_type, funnel_stage, status, publish_date, url,
        views, unique_visitors, time_on_page, bounce_rate, shares, comments, downloads,
        leads_generated, conversions, engagement_score, conversion_score, overall_score, rating,
        created_at, updated_at`

func scanContent(row interface{ Scan(...any) error }) (*model.Content, error) {
	var c model.Content
	err := row.Scan(
		&c.ID, &c.OrganizationID, &c.Title, &c.ContentType, &c.FunnelStage, &c.Status, &c.PublishDate, &c.URL,
		&c.Views, &c.UniqueVisitors, &c.TimeOnPage, &c.BounceRate, &c.Shares, &c.Comments, &c.Downloads,
		&c.LeadsGenerated, &c.Conversions, &c.EngagementScore, &c.ConversionScore, &c.OverallScore, &c.Rating,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepository) Create(c *model.Content) error {
	if c.ID == "" {
		id, err := idgen.New(idgen.PrefixContent)
		if err != nil {
			return err
		}
		c.ID = id
	}
	if c.Status == "" {
		c.Status = "published"
	}
	if c.FunnelStage == "" {
		c.FunnelStage = "TOFU"
	}
	c.CreatedAt = time.Now()
	query := `
        INSERT INTO content (id, organization_id, title, content_type, funnel_stage, status, publish_date, url,
            views, unique_visitors, time_on_page, bounce_rate, shares, comments, downloads,
            leads_generated, conversions, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
    `
	_, err := r.DB.Exec(query,
		c.ID, c.OrganizationID, c.Title, c.ContentType, c.FunnelStage, c.Status, c.PublishDate, c.URL,
		c.Views, c.UniqueVisitors, c.TimeOnPage, c.BounceRate, c.Shares, c.Comments, c.Downloads,
		c.LeadsGenerated, c.Conversions, c.CreatedAt,
	)
	return err
}

func (r *ContentRepository) GetByID(id string) (*model.Content, error) {
	c, err := scanContent(r.DB.QueryRow(`SELECT `+contentColumns+` FROM content WHERE id=$1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewContentNotFound(id)
		}
		return nil, err
	}
	return c, nil
}

func (r *ContentRepository) ListByOrganization(orgID string) ([]model.Content, error) {
	return r.list(`SELECT `+contentColumns+` FROM content WHERE organization_id=$1 ORDER BY created_at DESC`, orgID)
}

func (r *ContentRepository) ListByFunnelStage(orgID, stage string) ([]model.Content, error) {
	return r.list(`SELECT `+contentColumns+` FROM content WHERE organization_id=$1 AND funnel_stage=$2 ORDER BY created_at DESC`, orgID, stage)
}

func (r *ContentRepository) list(query string, args ...any) ([]model.Content, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Content{}
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (r *ContentRepository) UpdateScores(id string, engagement, conversion, overall float64, rating string) error {
	query := `
        UPDATE content
        SET engagement_score=$1, conversion_score=$2, overall_score=$3, rating=$4, updated_at=NOW()
        WHERE id=$5
    `
	res, err := r.DB.Exec(query, engagement, conversion, overall, rating, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewContentNotFound(id)
	}
	return nil
}

var _ ContentRepositoryInterface = (*ContentRepository)(nil)
