// Package mock provides test doubles for integration tests.
package mock

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mallow/backend/internal/integration/persistence/model"
)

// NewDb opens a fresh in-memory sqlite database and migrates the full schema.
// A single connection keeps every query on the same in-memory instance.
func NewDb() *gorm.DB {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		panic(fmt.Sprintf("failed to open sqlite: %v", err))
	}
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect to database: %v", err))
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.InsumoModel{},
		&model.CustoGlobalModel{},
		&model.ProdutoModel{},
		&model.ProdutoInsumoModel{},
	); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return db
}
