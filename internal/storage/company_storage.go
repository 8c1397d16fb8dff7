package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"AlumniJobForm_Backend/internal/models"
)

const companyColumns = "company_id, name, job_role, job_description, skillset_required, expected_ctc"

func scanCompany(row rowScanner) (models.Company, error) {
	var c models.Company
	var skillset string

	err := row.Scan(&c.CompanyID, &c.Name, &c.JobRole, &c.JobDescription, &skillset, &c.ExpectedCTC)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, ErrNotFound
		}
		return c, err
	}
	if err := json.Unmarshal([]byte(skillset), &c.SkillsetRequired); err != nil {
		return c, fmt.Errorf("scanCompany(): invalid skillset for %s: %w", c.CompanyID, err)
	}
	if c.SkillsetRequired == nil {
		c.SkillsetRequired = []string{}
	}
	return c, nil
}

func (s *Store) CreateCompany(ctx context.Context, c models.Company) error {
	skillset := c.SkillsetRequired
	if skillset == nil {
		skillset = []string{}
	}
	encoded, err := json.Marshal(skillset)
	if err != nil {
		return fmt.Errorf("CreateCompany(): failed to encode skillset: %w", err)
	}

	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO companies("+companyColumns+") VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, c.CompanyID, c.Name, c.JobRole, c.JobDescription, string(encoded), c.ExpectedCTC)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCompanyExists
		}
		return fmt.Errorf("CreateCompany(): failed to insert company %s: %w", c.CompanyID, err)
	}
	return nil
}

// ListCompanies returns every company in insertion order.
func (s *Store) ListCompanies(ctx context.Context) ([]models.Company, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+companyColumns+" FROM companies ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]models.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (s *Store) GetCompany(ctx context.Context, companyID string) (models.Company, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+companyColumns+" FROM companies WHERE company_id = ?", companyID)
	return scanCompany(row)
}
