package seeder

import (
	"context"
	"fmt"

	"jobhunt/internal/database"
)

type demoCompany struct {
	name        string
	description string
	website     string
	location    string
}

var demoCompanies = []demoCompany{
	{"JobHunt Labs", "Hiring platform for engineering teams", "https://jobhunt.example.com", "Jakarta"},
	{"CloudKita", "Managed cloud infrastructure for startups", "https://cloudkita.example.com", "Bandung"},
	{"InsightWorks", "Analytics and data science consultancy", "https://insightworks.example.com", "Remote"},
	{"AppForge", "Mobile product studio", "https://appforge.example.com", "Surabaya"},
}

type CompaniesSeeder struct{}

func (CompaniesSeeder) Name() string { return "companies" }

func (CompaniesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := requireColumns(ctx, db, "companies", "id", "name", "description", "website", "location", "created_by", "created_at"); err != nil {
		return err
	}

	employerID, err := findUserID(ctx, db, DemoEmployerEmail)
	if err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, c := range demoCompanies {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO companies (id, name, description, website, location, created_by)
				 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5) ON CONFLICT (name) DO NOTHING`,
				c.name, c.description, c.website, c.location,
				employerID,
			)
			if err != nil {
				return fmt.Errorf("insert company %s: %w", c.name, err)
			}
		}
		return nil
	})
}
