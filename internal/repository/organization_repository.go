package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/patriotech/marketing-intel/internal/errors"
	"github.com/patriotech/marketing-intel/internal/idgen"
	"github.com/patriotech/marketing-intel/internal/model"
)

type OrganizationRepositoryInterface interface {
	Create(o *model.Organization) error
	GetByID(id string) (*model.Organization, error)
	ListAll() ([]model.Organization, error)
	Update(o *model.Organization) error
	Delete(id string) error
}

type OrganizationRepository struct {
	DB *sql.DB
}

func (r *OrganizationRepository) Create(o *model.Organization) error {
	if o.ID == "" {
		id, err := idgen.New(idgen.PrefixOrganization)
		if err != nil {
			return err
		}
		o.ID = id
	}
	o.CreatedAt = time.Now()
	query := `
        INSERT INTO organizations (id, name, industry, size, annual_marketing_budget, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.DB.Exec(query, o.ID, o.Name, o.Industry, o.Size, o.AnnualMarketingBudget, o.CreatedAt)
	return err
}

func (r *OrganizationRepository) GetByID(id string) (*model.Organization, error) {
	query := `
        SELECT id, name, industry, size, annual_marketing_budget, created_at, updated_at
        FROM organizations WHERE id=$1
    `
	var o model.Organization
	err := r.DB.QueryRow(query, id).Scan(&o.ID, &o.Name, &o.Industry, &o.Size, &o.AnnualMarketingBudget, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewOrganizationNotFound(id)
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrganizationRepository) ListAll() ([]model.Organization, error) {
	query := `
        SELECT id, name, industry, size, annual_marketing_budget, created_at, updated_at
        FROM organizations ORDER BY name
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := []model.Organization{}
	for rows.Next() {
		var o model.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Industry, &o.Size, &o.AnnualMarketingBudget, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (r *OrganizationRepository) Update(o *model.Organization) error {
	query := `
        UPDATE organizations
        SET name=$1, industry=$2, size=$3, annual_marketing_budget=$4, updated_at=NOW()
        WHERE id=$5
    `
	res, err := r.DB.Exec(query, o.Name, o.Industry, o.Size, o.AnnualMarketingBudget, o.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewOrganizationNotFound(o.ID)
	}
	return nil
}

func (r *OrganizationRepository) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM organizations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewOrganizationNotFound(id)
	}
	return nil
}

var _ OrganizationRepositoryInterface = (*OrganizationRepository)(nil)
