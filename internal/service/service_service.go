package service

import (
	"context"

	"github.com/serviplan/booking-api/internal/httperr"
	"github.com/serviplan/booking-api/internal/models"
	"github.com/serviplan/booking-api/internal/repository"
)

// ServiceService manages the bookable offerings catalog.
type ServiceService struct {
	repo repository.ServiceRepository
}

func NewServiceService(repo repository.ServiceRepository) *ServiceService {
	return &ServiceService{repo: repo}
}

type CreateServiceInput struct {
	Name        string
	Price       float64
	Description string
	DurationMin int
}

type UpdateServiceInput struct {
	Name        *string
	Price       *float64
	Description *string
	DurationMin *int
}

func (s *ServiceService) Create(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	svc := &models.Service{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		DurationMin: in.DurationMin,
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.ConflictErr("service_name_taken", "A service with this name already exists.")
		}
		return nil, err
	}
	return svc, nil
}

func (s *ServiceService) List(ctx context.Context) ([]models.Service, error) {
	return s.repo.List(ctx)
}

func (s *ServiceService) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "service_not_found", "Service not found")
	}
	return svc, nil
}

func (s *ServiceService) GetByName(ctx context.Context, name string) (*models.Service, error) {
	svc, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, notFound(err, "service_not_found", "Service not found")
	}
	return svc, nil
}

// ListByPrice expects an already validated operator ("<" or ">"); the
// handler rejects anything else before the query runs.
func (s *ServiceService) ListByPrice(
	ctx context.Context,
	operator string,
	price float64,
) ([]models.Service, error) {
	return s.repo.ListByPrice(ctx, operator, price)
}

func (s *ServiceService) Update(ctx context.Context, id uint, in UpdateServiceInput) (*models.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "service_not_found", "Service not found")
	}

	if in.Name != nil {
		svc.Name = *in.Name
	}
	if in.Price != nil {
		svc.Price = *in.Price
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.DurationMin != nil {
		svc.DurationMin = *in.DurationMin
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.ConflictErr("service_name_taken", "A service with this name already exists.")
		}
		return nil, err
	}
	return svc, nil
}

func (s *ServiceService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "service_not_found", "Service not found")
	}
	return nil
}
