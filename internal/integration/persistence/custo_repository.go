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

// custoRepository implements the adapter.CustoRepository interface.
type custoRepository struct {
	db *gorm.DB
}

// NewCustoRepository creates a new custo repository instance.
func NewCustoRepository(db *gorm.DB) adapter.CustoRepository {
	return &custoRepository{
		db: db,
	}
}

// Create creates a new cost entry in the database.
func (r *custoRepository) Create(ctx context.Context, custo *entity.CustoGlobal) error {
	custoModel := model.CustoGlobalFromEntity(custo)
	result := r.db.WithContext(ctx).Create(custoModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a cost entry by ID within the user's scope.
func (r *custoRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.CustoGlobal, error) {
	var custoModel model.CustoGlobalModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&custoModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewCustoError(
				domainerror.ErrCodeCustoNotFound,
				"custo global not found",
				domainerror.ErrCustoNotFound,
			)
		}
		return nil, result.Error
	}
	return custoModel.ToEntity(), nil
}

// FindByUser retrieves all of a user's cost entries ordered by name.
func (r *custoRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CustoGlobal, error) {
	return r.findByUser(ctx, userID, false)
}

// FindActiveByUser retrieves the user's active cost entries ordered by name.
func (r *custoRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CustoGlobal, error) {
	return r.findByUser(ctx, userID, true)
}

func (r *custoRepository) findByUser(ctx context.Context, userID uuid.UUID, apenasAtivos bool) ([]*entity.CustoGlobal, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if apenasAtivos {
		query = query.Where("ativo = ?", true)
	}

	var custoModels []model.CustoGlobalModel
	result := query.Order("nome ASC").Find(&custoModels)
	if result.Error != nil {
		return nil, result.Error
	}

	custos := make([]*entity.CustoGlobal, len(custoModels))
	for i, cm := range custoModels {
		custos[i] = cm.ToEntity()
	}
	return custos, nil
}

// Update updates an existing cost entry within the user's scope.
func (r *custoRepository) Update(ctx context.Context, custo *entity.CustoGlobal) error {
	custoModel := model.CustoGlobalFromEntity(custo)
	result := r.db.WithContext(ctx).
		Where("user_id = ?", custo.UserID).
		Save(custoModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a cost entry within the user's scope.
func (r *custoRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&model.CustoGlobalModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewCustoError(
			domainerror.ErrCodeCustoNotFound,
			"custo global not found",
			domainerror.ErrCustoNotFound,
		)
	}
	return nil
}
