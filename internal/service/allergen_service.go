package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/errors"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/model"
	"github.com/gangdaolongmi10-cmyk/hudorosu-sub001/internal/repository"
)

// AllergenService handles allergen catalog management.
type AllergenService interface {
	List(ctx context.Context) ([]model.Allergen, error)
	Get(ctx context.Context, id uint) (*model.Allergen, error)
	Create(ctx context.Context, name string) (*model.Allergen, error)
	Rename(ctx context.Context, id uint, name string) (*model.Allergen, error)
	Delete(ctx context.Context, id uint) error
}

type allergenService struct {
	allergenRepo repository.AllergenRepository
}

// NewAllergenService creates a new allergen service.
func NewAllergenService(allergenRepo repository.AllergenRepository) AllergenService {
	return &allergenService{allergenRepo: allergenRepo}
}

// List lists all allergens.
func (s *allergenService) List(ctx context.Context) ([]model.Allergen, error) {
	return s.allergenRepo.List(ctx)
}

// Get retrieves an allergen by ID.
func (s *allergenService) Get(ctx context.Context, id uint) (*model.Allergen, error) {
	allergen, err := s.allergenRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAllergenNotFound
		}
		return nil, fmt.Errorf("find allergen: %w", err)
	}
	return allergen, nil
}

// Create creates a new allergen.
func (s *allergenService) Create(ctx context.Context, name string) (*model.Allergen, error) {
	allergen := &model.Allergen{Name: name}
	if err := s.allergenRepo.Create(ctx, allergen); err != nil {
		return nil, fmt.Errorf("create allergen: %w", err)
	}
	return allergen, nil
}

// Rename changes an allergen's name.
func (s *allergenService) Rename(ctx context.Context, id uint, name string) (*model.Allergen, error) {
	allergen, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	allergen.Name = name
	if err := s.allergenRepo.Update(ctx, allergen); err != nil {
		return nil, fmt.Errorf("update allergen: %w", err)
	}
	return allergen, nil
}

// Delete removes an allergen and its food links.
func (s *allergenService) Delete(ctx context.Context, id uint) error {
	if err := s.allergenRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrAllergenNotFound
		}
		return fmt.Errorf("delete allergen: %w", err)
	}
	return nil
}
