package usecase

import (
	"context"

	"jobhunt/internal/domain/user"
	ucuser "jobhunt/internal/usecase/user"

	"github.com/google/uuid"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (ucuser.Profile, error)
}

type Profile struct {
	svc   *ucuser.Service
	cache SearchCache
}

func NewProfileUsecase(users user.Repository, profiles user.ProfileRepository, cache SearchCache) *Profile {
	return &Profile{svc: ucuser.NewService(users, profiles), cache: cache}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error) {
	return u.svc.GetProfile(ctx, userID)
}

func (u *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (ucuser.Profile, error) {
	out, err := u.svc.UpdateProfile(ctx, userID, in)
	if err != nil {
		return ucuser.Profile{}, err
	}
	invalidateRecommendations(ctx, u.cache, userID.String())
	return out, nil
}
