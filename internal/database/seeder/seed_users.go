package seeder

import (
	"context"
	"fmt"

	"jobhunt/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DemoEmployerEmail = "employer@jobhunt.local"
	DemoSeekerEmail   = "seeker@jobhunt.local"
	demoPassword      = "jobhunt-demo"
)

type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := requireColumns(ctx, db, "users", "id", "name", "email", "password_hash", "created_at"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	items := []struct {
		Name  string
		Email string
	}{
		{Name: "Demo Employer", Email: DemoEmployerEmail},
		{Name: "Demo Seeker", Email: DemoSeekerEmail},
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range items {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING`,
				uuid.New(),
				it.Name,
				it.Email,
				string(hash),
			)
			if err != nil {
				return fmt.Errorf("insert user %s: %w", it.Email, err)
			}
		}
		return nil
	})
}

func findUserID(ctx context.Context, q database.Querier, email string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := q.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("find user %s: %w", email, err)
	}
	return id, nil
}
