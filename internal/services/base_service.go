package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"armory/internal/cache"
	apperrors "armory/internal/errors"
	"armory/internal/models"
	"armory/internal/pagination"
)

// baseService handles base-related business logic.
type baseService struct {
	db    *gorm.DB
	cache ReadCache
}

// NewBaseService creates a new BaseServicer.
func NewBaseService(db *gorm.DB, rc ReadCache) BaseServicer {
	return &baseService{db: db, cache: rc}
}

// CreateBase registers a new base.
func (s *baseService) CreateBase(ctx context.Context, input BaseInput) (*models.Base, error) {
	name := strings.TrimSpace(input.Name)
	location := strings.TrimSpace(input.Location)
	if name == "" || location == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "base name and location are required")
	}
	if input.Budget.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget cannot be negative")
	}

	base := &models.Base{
		Name:      name,
		Location:  location,
		Commander: strings.TrimSpace(input.Commander),
		Budget:    input.Budget,
	}

	if err := s.db.WithContext(ctx).Create(base).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	cache.Invalidate(ctx, s.cache.Store, cache.MutationBaseCreate)
	return base, nil
}

// GetBase retrieves a base by ID.
func (s *baseService) GetBase(ctx context.Context, id uint) (*models.Base, error) {
	return findBase(s.db.WithContext(ctx), id)
}

// findBase loads a base with the given handle, which may be a transaction.
func findBase(db *gorm.DB, id uint) (*models.Base, error) {
	var base models.Base
	if err := db.First(&base, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBaseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &base, nil
}

// ListBases returns a page of bases ordered by ID.
func (s *baseService) ListBases(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Base], error) {
	page.Defaults()

	return cache.Fetch(ctx, s.cache.Store, s.cache.TTL, cache.TopicBases, page.CacheKey(),
		func() (*pagination.PageResponse[models.Base], error) {
			db := s.db.WithContext(ctx)

			var totalItems int64
			if err := db.Model(&models.Base{}).Count(&totalItems).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			var bases []models.Base
			if err := db.Order("id ASC").Scopes(pagination.Paginate(page)).Find(&bases).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			result := pagination.NewPageResponse(bases, page.Page, page.PageSize, totalItems)
			return &result, nil
		})
}

// UpdateBase applies a partial update. Authorisation (admin only) is the
// caller's concern.
func (s *baseService) UpdateBase(ctx context.Context, id uint, fields BaseUpdateFields) (*models.Base, error) {
	db := s.db.WithContext(ctx)

	base, err := findBase(db, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil {
		name := strings.TrimSpace(*fields.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "base name cannot be empty")
		}
		updates["name"] = name
	}
	if fields.Location != nil {
		location := strings.TrimSpace(*fields.Location)
		if location == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "base location cannot be empty")
		}
		updates["location"] = location
	}
	if fields.Commander != nil {
		updates["commander"] = strings.TrimSpace(*fields.Commander)
	}
	if fields.Budget != nil {
		if fields.Budget.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget cannot be negative")
		}
		updates["budget"] = *fields.Budget
	}

	if len(updates) == 0 {
		return base, nil
	}

	if err := db.Model(base).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	cache.Invalidate(ctx, s.cache.Store, cache.MutationBaseUpdate)

	// Reload to get fresh data
	return findBase(db, id)
}

func uintKey(v *uint) string {
	if v == nil {
		return "*"
	}
	return fmt.Sprintf("%d", *v)
}
