package usecase

import (
	"errors"
	"strings"

	"jobhunt/internal/repository"

	"github.com/google/uuid"
)

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, ErrInvalidInput
	}
	return id, nil
}

func mapJobErr(err error) error {
	if errors.Is(err, repository.ErrJobNotFound) {
		return ErrJobNotFound
	}
	return ErrInternal
}
