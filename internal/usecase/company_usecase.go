package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/repository"

	"github.com/google/uuid"
)

const maxReviewCommentLen = 2000

type CompanyUsecase interface {
	Get(ctx context.Context, companyID string) (CompanyProfile, error)
	Review(ctx context.Context, userID uuid.UUID, companyID string, rating int, comment string) (job.CompanyReview, error)
}

// CompanyProfile is a company with its reviews, newest first. AverageRating
// is 0 when nobody has reviewed the company.
type CompanyProfile struct {
	Company       job.Company
	Reviews       []job.CompanyReview
	AverageRating float64
}

type Company struct {
	companies repository.CompanyRepository
}

func NewCompanyUsecase(companies repository.CompanyRepository) *Company {
	return &Company{companies: companies}
}

func (u *Company) Get(ctx context.Context, companyID string) (CompanyProfile, error) {
	id, err := parseID(companyID)
	if err != nil {
		return CompanyProfile{}, ErrInvalidInput
	}

	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		return CompanyProfile{}, mapCompanyErr(err)
	}
	reviews, err := u.companies.ListReviews(ctx, id)
	if err != nil {
		return CompanyProfile{}, ErrInternal
	}

	return CompanyProfile{Company: c, Reviews: reviews, AverageRating: averageRating(reviews)}, nil
}

func (u *Company) Review(ctx context.Context, userID uuid.UUID, companyID string, rating int, comment string) (job.CompanyReview, error) {
	if userID == uuid.Nil {
		return job.CompanyReview{}, ErrUnauthorized
	}
	id, err := parseID(companyID)
	if err != nil {
		return job.CompanyReview{}, ErrInvalidInput
	}
	comment = strings.TrimSpace(comment)
	if !job.IsValidRating(rating) || utf8.RuneCountInString(comment) > maxReviewCommentLen {
		return job.CompanyReview{}, ErrInvalidInput
	}

	if _, err := u.companies.GetByID(ctx, id); err != nil {
		return job.CompanyReview{}, mapCompanyErr(err)
	}

	rv, err := u.companies.AddReview(ctx, job.CompanyReview{
		CompanyID: id,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateReview):
			return job.CompanyReview{}, ErrAlreadyReviewed
		default:
			return job.CompanyReview{}, mapCompanyErr(err)
		}
	}
	return rv, nil
}

func averageRating(reviews []job.CompanyReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

func mapCompanyErr(err error) error {
	if errors.Is(err, repository.ErrCompanyNotFound) {
		return ErrCompanyNotFound
	}
	return ErrInternal
}
