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

// produtoRepository implements the adapter.ProdutoRepository interface.
type produtoRepository struct {
	db *gorm.DB
}

// NewProdutoRepository creates a new produto repository instance.
func NewProdutoRepository(db *gorm.DB) adapter.ProdutoRepository {
	return &produtoRepository{
		db: db,
	}
}

// Create creates a new product header in the database.
func (r *produtoRepository) Create(ctx context.Context, produto *entity.Produto) error {
	produtoModel := model.ProdutoFromEntity(produto)
	result := r.db.WithContext(ctx).Create(produtoModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a product by ID within the user's scope.
func (r *produtoRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Produto, error) {
	var produtoModel model.ProdutoModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&produtoModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewProdutoError(
				domainerror.ErrCodeProdutoNotFound,
				"produto not found",
				domainerror.ErrProdutoNotFound,
			)
		}
		return nil, result.Error
	}
	return produtoModel.ToEntity(), nil
}

// FindByUser retrieves all of a user's products ordered by name.
func (r *produtoRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Produto, error) {
	var produtoModels []model.ProdutoModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("nome ASC").
		Find(&produtoModels)
	if result.Error != nil {
		return nil, result.Error
	}

	produtos := make([]*entity.Produto, len(produtoModels))
	for i, pm := range produtoModels {
		produtos[i] = pm.ToEntity()
	}
	return produtos, nil
}

// Update updates an existing product header within the user's scope.
func (r *produtoRepository) Update(ctx context.Context, produto *entity.Produto) error {
	produtoModel := model.ProdutoFromEntity(produto)
	result := r.db.WithContext(ctx).
		Where("user_id = ?", produto.UserID).
		Save(produtoModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a product and its recipe lines within the user's scope.
func (r *produtoRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.ProdutoModel{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewProdutoError(
				domainerror.ErrCodeProdutoNotFound,
				"produto not found",
				domainerror.ErrProdutoNotFound,
			)
		}
		if err := tx.Delete(&model.ProdutoInsumoModel{}, "produto_id = ?", id).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindRecipe retrieves the recipe lines of one product.
func (r *produtoRepository) FindRecipe(ctx context.Context, produtoID uuid.UUID) ([]*entity.ProdutoInsumo, error) {
	var linhaModels []model.ProdutoInsumoModel
	result := r.db.WithContext(ctx).
		Where("produto_id = ?", produtoID).
		Find(&linhaModels)
	if result.Error != nil {
		return nil, result.Error
	}

	linhas := make([]*entity.ProdutoInsumo, len(linhaModels))
	for i, lm := range linhaModels {
		linhas[i] = lm.ToEntity()
	}
	return linhas, nil
}

// FindRecipeByUser retrieves every recipe line of the user's products in one
// query, for the catalog projection.
func (r *produtoRepository) FindRecipeByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProdutoInsumo, error) {
	var linhaModels []model.ProdutoInsumoModel
	result := r.db.WithContext(ctx).
		Joins("JOIN produtos ON produtos.id = produtos_insumos.produto_id").
		Where("produtos.user_id = ?", userID).
		Find(&linhaModels)
	if result.Error != nil {
		return nil, result.Error
	}

	linhas := make([]*entity.ProdutoInsumo, len(linhaModels))
	for i, lm := range linhaModels {
		linhas[i] = lm.ToEntity()
	}
	return linhas, nil
}

// ReplaceRecipe replaces a product's recipe wholesale inside one transaction:
// delete all lines, insert the submitted ones. No diffing.
func (r *produtoRepository) ReplaceRecipe(ctx context.Context, produtoID uuid.UUID, linhas []*entity.ProdutoInsumo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ProdutoInsumoModel{}, "produto_id = ?", produtoID).Error; err != nil {
			return err
		}
		for _, linha := range linhas {
			if err := tx.Create(model.ProdutoInsumoFromEntity(linha)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
