package taxrate_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-folha/internal/taxrate"
)

func TestRepositoryCreate_WithTx(t *testing.T) {
	poolDB, poolMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer poolDB.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	txMock.ExpectExec(`INSERT INTO "aliquotas"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectCommit()

	tx, err := txDB.Begin()
	assert.NoError(t, err)

	repo := taxrate.NewRepository(gormDB).WithTx(tx)
	err = repo.Create(context.Background(), &taxrate.TaxRate{
		ID:          uuid.New(),
		CompanyID:   uuid.New(),
		TipoImposto: "IRRF",
		DataInicio:  time.Now(),
		DataFim:     time.Now().AddDate(1, 0, 0),
	})
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())

	assert.NoError(t, txMock.ExpectationsWereMet())
	// nothing may have leaked onto the pool connection
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
