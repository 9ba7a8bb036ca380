// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/domain/entity"
)

// InsumoModel represents the insumos table in the database.
type InsumoModel struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	Nome                   string          `gorm:"type:varchar(100);not null"`
	Categoria              *string         `gorm:"type:varchar(50)"`
	UnidadeCompra          string          `gorm:"type:varchar(20);not null"`
	QuantidadeCompra       float64         `gorm:"not null"`
	PrecoCompra            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DataCompra             *time.Time
	QuantidadePorEmbalagem *float64
	Fornecedor             *string   `gorm:"type:varchar(100)"`
	Observacoes            *string   `gorm:"type:text"`
	CreatedAt              time.Time `gorm:"not null"`
	UpdatedAt              time.Time `gorm:"not null"`
}

// TableName returns the table name for the InsumoModel.
func (InsumoModel) TableName() string {
	return "insumos"
}

// ToEntity converts an InsumoModel to a domain Insumo entity.
func (m *InsumoModel) ToEntity() *entity.Insumo {
	return &entity.Insumo{
		ID:                     m.ID,
		UserID:                 m.UserID,
		Nome:                   m.Nome,
		Categoria:              m.Categoria,
		UnidadeCompra:          m.UnidadeCompra,
		QuantidadeCompra:       m.QuantidadeCompra,
		PrecoCompra:            m.PrecoCompra,
		DataCompra:             m.DataCompra,
		QuantidadePorEmbalagem: m.QuantidadePorEmbalagem,
		Fornecedor:             m.Fornecedor,
		Observacoes:            m.Observacoes,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// InsumoFromEntity creates an InsumoModel from a domain Insumo entity.
func InsumoFromEntity(insumo *entity.Insumo) *InsumoModel {
	return &InsumoModel{
		ID:                     insumo.ID,
		UserID:                 insumo.UserID,
		Nome:                   insumo.Nome,
		Categoria:              insumo.Categoria,
		UnidadeCompra:          insumo.UnidadeCompra,
		QuantidadeCompra:       insumo.QuantidadeCompra,
		PrecoCompra:            insumo.PrecoCompra,
		DataCompra:             insumo.DataCompra,
		QuantidadePorEmbalagem: insumo.QuantidadePorEmbalagem,
		Fornecedor:             insumo.Fornecedor,
		Observacoes:            insumo.Observacoes,
		CreatedAt:              insumo.CreatedAt,
		UpdatedAt:              insumo.UpdatedAt,
	}
}
