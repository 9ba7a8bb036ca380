// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mallow/backend/internal/application/adapter"
	"github.com/mallow/backend/internal/domain/entity"
	domainerror "github.com/mallow/backend/internal/domain/error"
	"github.com/mallow/backend/internal/integration/persistence/model"
)

// insumoRepository implements the adapter.InsumoRepository interface.
// Every query is scoped by user_id; rows of other users are indistinguishable
// from absent rows.
type insumoRepository struct {
	db *gorm.DB
}

// NewInsumoRepository creates a new insumo repository instance.
func NewInsumoRepository(db *gorm.DB) adapter.InsumoRepository {
	return &insumoRepository{
		db: db,
	}
}

// Create creates a new insumo in the database.
func (r *insumoRepository) Create(ctx context.Context, insumo *entity.Insumo) error {
	insumoModel := model.InsumoFromEntity(insumo)
	result := r.db.WithContext(ctx).Create(insumoModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an insumo by ID within the user's scope.
func (r *insumoRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Insumo, error) {
	var insumoModel model.InsumoModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&insumoModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewInsumoError(
				domainerror.ErrCodeInsumoNotFound,
				"insumo not found",
				domainerror.ErrInsumoNotFound,
			)
		}
		return nil, result.Error
	}
	return insumoModel.ToEntity(), nil
}

// FindByUser retrieves all of a user's insumos ordered by name.
func (r *insumoRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Insumo, error) {
	var insumoModels []model.InsumoModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("nome ASC").
		Find(&insumoModels)
	if result.Error != nil {
		return nil, result.Error
	}

	insumos := make([]*entity.Insumo, len(insumoModels))
	for i, im := range insumoModels {
		insumos[i] = im.ToEntity()
	}
	return insumos, nil
}

// Update updates an existing insumo within the user's scope.
func (r *insumoRepository) Update(ctx context.Context, insumo *entity.Insumo) error {
	insumoModel := model.InsumoFromEntity(insumo)
	result := r.db.WithContext(ctx).
		Where("user_id = ?", insumo.UserID).
		Save(insumoModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an insumo within the user's scope. Recipe lines referencing
// it go away with it.
func (r *insumoRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.InsumoModel{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewInsumoError(
				domainerror.ErrCodeInsumoNotFound,
				"insumo not found",
				domainerror.ErrInsumoNotFound,
			)
		}
		// Explicit cleanup keeps stores without FK enforcement consistent.
		if err := tx.Delete(&model.ProdutoInsumoModel{}, "insumo_id = ?", id).Error; err != nil {
			return err
		}
		return nil
	})
}
