// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/domain/entity"
)

// ProdutoModel represents the produtos table in the database.
type ProdutoModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Nome          string           `gorm:"type:varchar(100);not null"`
	Rendimento    float64          `gorm:"not null"`
	MargemLucro   float64          `gorm:"not null"`
	PrecoManual   *decimal.Decimal `gorm:"type:numeric(12,2)"`
	TempoProducao *float64
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProdutoModel.
func (ProdutoModel) TableName() string {
	return "produtos"
}

// ToEntity converts a ProdutoModel to a domain Produto entity.
func (m *ProdutoModel) ToEntity() *entity.Produto {
	return &entity.Produto{
		ID:            m.ID,
		UserID:        m.UserID,
		Nome:          m.Nome,
		Rendimento:    m.Rendimento,
		MargemLucro:   m.MargemLucro,
		PrecoManual:   m.PrecoManual,
		TempoProducao: m.TempoProducao,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ProdutoFromEntity creates a ProdutoModel from a domain Produto entity.
func ProdutoFromEntity(produto *entity.Produto) *ProdutoModel {
	return &ProdutoModel{
		ID:            produto.ID,
		UserID:        produto.UserID,
		Nome:          produto.Nome,
		Rendimento:    produto.Rendimento,
		MargemLucro:   produto.MargemLucro,
		PrecoManual:   produto.PrecoManual,
		TempoProducao: produto.TempoProducao,
		CreatedAt:     produto.CreatedAt,
		UpdatedAt:     produto.UpdatedAt,
	}
}

// ProdutoInsumoModel represents the produtos_insumos join table. Rows are
// removed when either side goes away; the repositories clean them up inside
// the same transaction as the parent delete.
type ProdutoInsumoModel struct {
	ProdutoID       uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	InsumoID        uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	QuantidadeUsada float64   `gorm:"not null"`
}

// TableName returns the table name for the ProdutoInsumoModel.
func (ProdutoInsumoModel) TableName() string {
	return "produtos_insumos"
}

// ToEntity converts a ProdutoInsumoModel to a domain ProdutoInsumo entity.
func (m *ProdutoInsumoModel) ToEntity() *entity.ProdutoInsumo {
	return &entity.ProdutoInsumo{
		ProdutoID:       m.ProdutoID,
		InsumoID:        m.InsumoID,
		QuantidadeUsada: m.QuantidadeUsada,
	}
}

// ProdutoInsumoFromEntity creates a ProdutoInsumoModel from a domain ProdutoInsumo entity.
func ProdutoInsumoFromEntity(linha *entity.ProdutoInsumo) *ProdutoInsumoModel {
	return &ProdutoInsumoModel{
		ProdutoID:       linha.ProdutoID,
		InsumoID:        linha.InsumoID,
		QuantidadeUsada: linha.QuantidadeUsada,
	}
}
