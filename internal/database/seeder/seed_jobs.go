package seeder

import (
	"context"
	"fmt"
	"time"

	"jobhunt/internal/database"

	"github.com/google/uuid"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := requireColumns(ctx, db, "jobs",
		"id",
		"title",
		"company_id",
		"company",
		"location",
		"salary",
		"employment_type",
		"description",
		"requirements",
		"posted_by",
		"is_active",
		"created_at",
	); err != nil {
		return err
	}

	employerID, err := findUserID(ctx, db, DemoEmployerEmail)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	items := []struct {
		Title          string
		Company        string
		Location       string
		Salary         string
		EmploymentType string
		Description    string
		Requirements   string
	}{
		{
			Title:          "Backend Engineer (Go)",
			Company:        "JobHunt Labs",
			Location:       "Jakarta, ID",
			Salary:         "$50k - $70k",
			EmploymentType: "Full-time",
			Description:    "Build and maintain Go services, REST APIs, and PostgreSQL-backed systems.",
			Requirements:   "Go, PostgreSQL, Docker, REST",
		},
		{
			Title:          "Fullstack Engineer (React + Go)",
			Company:        "JobHunt Labs",
			Location:       "Bandung, ID",
			Salary:         "45000-65000",
			EmploymentType: "Full-time",
			Description:    "Develop web apps with React/TypeScript and backend services in Go.",
			Requirements:   "React, TypeScript, Go",
		},
		{
			Title:          "DevOps Engineer",
			Company:        "CloudKita",
			Location:       "Remote",
			Salary:         "60000-80000",
			EmploymentType: "Full-time",
			Description:    "Operate CI/CD, Docker, Kubernetes, and cloud infrastructure for production workloads.",
			Requirements:   "Kubernetes, Terraform, AWS",
		},
		{
			Title:          "Data Engineer",
			Company:        "InsightWorks",
			Location:       "Surabaya, ID",
			Salary:         "55,000",
			EmploymentType: "Full-time",
			Description:    "Build data pipelines, manage warehouses, and optimize PostgreSQL for analytics.",
			Requirements:   "Python, SQL, Airflow",
		},
		{
			Title:          "Mobile Engineer (React Native)",
			Company:        "AppForge",
			Location:       "Yogyakarta, ID",
			Salary:         "Competitive",
			EmploymentType: "Contract",
			Description:    "Build cross-platform mobile apps, integrate APIs, and maintain release pipelines.",
			Requirements:   "",
		},
	}

	for i, it := range items {
		exists, err := jobTitleExists(ctx, db, it.Title)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		companyID, err := findCompanyID(ctx, db, it.Company)
		if err != nil {
			return err
		}

		_, err = db.Exec(ctx,
			`INSERT INTO jobs (
				id, title, company_id, company, location, salary, employment_type,
				description, requirements, posted_by, is_active, created_at, updated_at
			)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,TRUE,$11,$11)`,
			uuid.New(),
			it.Title,
			companyID,
			it.Company,
			it.Location,
			it.Salary,
			it.EmploymentType,
			it.Description,
			it.Requirements,
			employerID,
			now.Add(-time.Duration(i)*time.Hour),
		)
		if err != nil {
			return fmt.Errorf("insert job %q: %w", it.Title, err)
		}
	}

	return nil
}

func jobTitleExists(ctx context.Context, q database.Querier, title string) (bool, error) {
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE title = $1)`, title).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func findCompanyID(ctx context.Context, q database.Querier, name string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := q.QueryRow(ctx, `SELECT id FROM companies WHERE name = $1`, name).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("find company %s: %w", name, err)
	}
	return id, nil
}
