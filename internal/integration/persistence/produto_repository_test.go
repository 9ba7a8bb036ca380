// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mallow/backend/internal/domain/entity"
	domainerror "github.com/mallow/backend/internal/domain/error"
	"github.com/mallow/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.InsumoModel{},
		&model.CustoGlobalModel{},
		&model.ProdutoModel{},
		&model.ProdutoInsumoModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func TestProdutoRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	produtoRepo := NewProdutoRepository(db)
	insumoRepo := NewInsumoRepository(db)

	userID := uuid.New()
	otherUserID := uuid.New()

	farinha := entity.NewInsumo(userID, "Farinha", "kg", 2, decimal.NewFromInt(3))
	if err := insumoRepo.Create(ctx, farinha); err != nil {
		t.Fatalf("failed to create insumo: %v", err)
	}

	bolo := entity.NewProduto(userID, "Bolo", 10, 100)
	if err := produtoRepo.Create(ctx, bolo); err != nil {
		t.Fatalf("failed to create produto: %v", err)
	}

	t.Run("FindByID is scoped by user", func(t *testing.T) {
		found, err := produtoRepo.FindByID(ctx, userID, bolo.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Nome != "Bolo" {
			t.Errorf("expected Bolo, got %s", found.Nome)
		}

		_, err = produtoRepo.FindByID(ctx, otherUserID, bolo.ID)
		if !errors.Is(err, domainerror.ErrProdutoNotFound) {
			t.Fatalf("expected ErrProdutoNotFound for other user, got %v", err)
		}
	})

	t.Run("ReplaceRecipe swaps all lines", func(t *testing.T) {
		linhas := []*entity.ProdutoInsumo{
			{ProdutoID: bolo.ID, InsumoID: farinha.ID, QuantidadeUsada: 4},
		}
		if err := produtoRepo.ReplaceRecipe(ctx, bolo.ID, linhas); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := produtoRepo.FindRecipe(ctx, bolo.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stored) != 1 || stored[0].QuantidadeUsada != 4 {
			t.Fatalf("expected one line with quantity 4, got %+v", stored)
		}

		// Replacement discards the previous lines entirely.
		if err := produtoRepo.ReplaceRecipe(ctx, bolo.ID, []*entity.ProdutoInsumo{
			{ProdutoID: bolo.ID, InsumoID: farinha.ID, QuantidadeUsada: 6},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err = produtoRepo.FindRecipe(ctx, bolo.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stored) != 1 || stored[0].QuantidadeUsada != 6 {
			t.Fatalf("expected one line with quantity 6, got %+v", stored)
		}
	})

	t.Run("FindRecipeByUser joins through produtos", func(t *testing.T) {
		linhas, err := produtoRepo.FindRecipeByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(linhas) != 1 {
			t.Fatalf("expected 1 line, got %d", len(linhas))
		}

		outras, err := produtoRepo.FindRecipeByUser(ctx, otherUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(outras) != 0 {
			t.Fatalf("expected no lines for other user, got %d", len(outras))
		}
	})

	t.Run("deleting the insumo removes its recipe lines", func(t *testing.T) {
		if err := insumoRepo.Delete(ctx, userID, farinha.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		linhas, err := produtoRepo.FindRecipe(ctx, bolo.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(linhas) != 0 {
			t.Fatalf("expected recipe lines to be removed, got %d", len(linhas))
		}
	})

	t.Run("Delete removes the product and reports missing rows", func(t *testing.T) {
		if err := produtoRepo.Delete(ctx, userID, bolo.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := produtoRepo.Delete(ctx, userID, bolo.ID)
		if !errors.Is(err, domainerror.ErrProdutoNotFound) {
			t.Fatalf("expected ErrProdutoNotFound on second delete, got %v", err)
		}
	})
}

func TestCustoRepository_ActiveFilter(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	custoRepo := NewCustoRepository(db)
	userID := uuid.New()

	aluguel := entity.NewCustoGlobal(userID, "Aluguel", entity.TipoCustoFixo, decimal.NewFromInt(1600), true)
	energia := entity.NewCustoGlobal(userID, "Energia", entity.TipoCustoVariavel, decimal.NewFromInt(300), false)
	for _, c := range []*entity.CustoGlobal{aluguel, energia} {
		if err := custoRepo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create custo: %v", err)
		}
	}

	todos, err := custoRepo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("expected 2 custos, got %d", len(todos))
	}

	ativos, err := custoRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ativos) != 1 || ativos[0].Nome != "Aluguel" {
		t.Fatalf("expected only Aluguel active, got %+v", ativos)
	}
}
