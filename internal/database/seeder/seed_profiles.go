package seeder

import (
	"context"

	"jobhunt/internal/database"
)

type ProfilesSeeder struct{}

func (ProfilesSeeder) Name() string { return "user_profiles" }

func (ProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := requireColumns(ctx, db, "user_profiles", "user_id", "skills", "experience_years", "location"); err != nil {
		return err
	}

	seekerID, err := findUserID(ctx, db, DemoSeekerEmail)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		ctx,
		`INSERT INTO user_profiles (user_id, skills, experience_years, location, current_position)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO NOTHING`,
		seekerID,
		"go, postgresql, docker",
		3,
		"Remote",
		"Backend Developer",
	)
	return err
}
