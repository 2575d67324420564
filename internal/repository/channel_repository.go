package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/patriotech/marketing-intel/internal/errors"
	"github.com/patriotech/marketing-intel/internal/idgen"
	"github.com/patriotech/marketing-intel/internal/model"
)

type ChannelRepositoryInterface interface {
	Create(c *model.Channel) error
	GetByID(id string) (*model.Channel, error)
	ListByOrganization(orgID string) ([]model.Channel, error)
	Update(c *model.Channel) error
	UpdateKPIs(c *model.Channel) error
}

type ChannelRepository struct {
	DB *sql.DB
}

const channelColumns = `id, organization_id, name, channel_type, status,
        impressions, clicks, conversions, spend, revenue, leads, new_customers,
        ctr, conversion_rate, cpc, cpa, roas, efficiency_score, rating, created_at, updated_at`

func scanChannel(row interface{ Scan(...any) error }) (*model.Channel, error) {
	var c model.Channel
	err := row.Scan(
		&c.ID, &c.OrganizationID, &c.Name, &c.ChannelType, &c.Status,
		&c.Impressions, &c.Clicks, &c.Conversions, &c.Spend, &c.Revenue, &c.Leads, &c.NewCustomers,
		&c.CTR, &c.ConversionRate, &c.CPC, &c.CPA, &c.ROAS, &c.EfficiencyScore, &c.Rating, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChannelRepository) Create(c *model.Channel) error {
	if c.ID == "" {
		id, err := idgen.New(idgen.PrefixChannel)
		if err != nil {
			return err
		}
		c.ID = id
	}
	if c.Status == "" {
		c.Status = "active"
	}
	c.CreatedAt = time.Now()
	query := `
        INSERT INTO channels (id, organization_id, name, channel_type, status,
            impressions, clicks, conversions, spend, revenue, leads, new_customers, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	_, err := r.DB.Exec(query,
		c.ID, c.OrganizationID, c.Name, c.ChannelType, c.Status,
		c.Impressions, c.Clicks, c.Conversions, c.Spend, c.Revenue, c.Leads, c.NewCustomers, c.CreatedAt,
	)
	return err
}

func (r *ChannelRepository) GetByID(id string) (*model.Channel, error) {
	c, err := scanChannel(r.DB.QueryRow(`SELECT `+channelColumns+` FROM channels WHERE id=$1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewChannelNotFound(id)
		}
		return nil, err
	}
	return c, nil
}

func (r *ChannelRepository) ListByOrganization(orgID string) ([]model.Channel, error) {
	rows, err := r.DB.Query(`SELECT `+channelColumns+` FROM channels WHERE organization_id=$1 ORDER BY name`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	channels := []model.Channel{}
	for rows.Next() {
		c, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		channels = append(channels, *c)
	}
	return channels, rows.Err()
}

func (r *ChannelRepository) Update(c *model.Channel) error {
	query := `
        UPDATE channels
        SET name=$1, channel_type=$2, status=$3, impressions=$4, clicks=$5,
            conversions=$6, spend=$7, revenue=$8, leads=$9, new_customers=$10, updated_at=NOW()
        WHERE id=$11
    `
	res, err := r.DB.Exec(query,
		c.Name, c.ChannelType, c.Status, c.Impressions, c.Clicks,
		c.Conversions, c.Spend, c.Revenue, c.Leads, c.NewCustomers, c.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewChannelNotFound(c.ID)
	}
	return nil
}

// UpdateKPIs persists the analyzer outputs for a channel.
func (r *ChannelRepository) UpdateKPIs(c *model.Channel) error {
	query := `
        UPDATE channels
        SET ctr=$1, conversion_rate=$2, cpc=$3, cpa=$4, roas=$5,
            efficiency_score=$6, rating=$7, updated_at=NOW()
        WHERE id=$8
    `
	res, err := r.DB.Exec(query, c.CTR, c.ConversionRate, c.CPC, c.CPA, c.ROAS, c.EfficiencyScore, c.Rating, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewChannelNotFound(c.ID)
	}
	return nil
}

var _ ChannelRepositoryInterface = (*ChannelRepository)(nil)
