package service

import (
	"context"

	"github.com/serviplan/booking-api/internal/models"
	"github.com/serviplan/booking-api/internal/repository"
)

type ReviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

type CreateReviewInput struct {
	UserID    uint
	ServiceID uint
	Rating    *int
	Text      string
}

type UpdateReviewInput struct {
	UserID    *uint
	ServiceID *uint
	Rating    *int
	Text      *string
}

func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	review := &models.Review{
		UserID:    &in.UserID,
		ServiceID: &in.ServiceID,
		Rating:    in.Rating,
		Text:      in.Text,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.repo.List(ctx)
}

func (s *ReviewService) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "review_not_found", "Review not found")
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id uint, in UpdateReviewInput) (*models.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "review_not_found", "Review not found")
	}

	if in.UserID != nil {
		review.UserID = in.UserID
	}
	if in.ServiceID != nil {
		review.ServiceID = in.ServiceID
	}
	if in.Rating != nil {
		review.Rating = in.Rating
	}
	if in.Text != nil {
		review.Text = *in.Text
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "review_not_found", "Review not found")
	}
	return nil
}
