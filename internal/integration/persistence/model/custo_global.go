// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mallow/backend/internal/domain/entity"
)

// CustoGlobalModel represents the custos_globais table in the database.
type CustoGlobalModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Nome      string          `gorm:"type:varchar(100);not null"`
	Tipo      string          `gorm:"type:varchar(10);not null"`
	Valor     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Ativo     bool            `gorm:"not null;default:true"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CustoGlobalModel.
func (CustoGlobalModel) TableName() string {
	return "custos_globais"
}

// ToEntity converts a CustoGlobalModel to a domain CustoGlobal entity.
func (m *CustoGlobalModel) ToEntity() *entity.CustoGlobal {
	return &entity.CustoGlobal{
		ID:        m.ID,
		UserID:    m.UserID,
		Nome:      m.Nome,
		Tipo:      entity.TipoCusto(m.Tipo),
		Valor:     m.Valor,
		Ativo:     m.Ativo,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CustoGlobalFromEntity creates a CustoGlobalModel from a domain CustoGlobal entity.
func CustoGlobalFromEntity(custo *entity.CustoGlobal) *CustoGlobalModel {
	return &CustoGlobalModel{
		ID:        custo.ID,
		UserID:    custo.UserID,
		Nome:      custo.Nome,
		Tipo:      string(custo.Tipo),
		Valor:     custo.Valor,
		Ativo:     custo.Ativo,
		CreatedAt: custo.CreatedAt,
		UpdatedAt: custo.UpdatedAt,
	}
}
