package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CNPJ              string    `gorm:"type:varchar(18);uniqueIndex:uq_company_cnpj"`
	NomeRazao         string    `gorm:"type:varchar(150);not null"`
	NomeFantasia      string    `gorm:"type:varchar(150);not null"`
	Endereco          string
	Bairro            string
	Cidade            string
	Estado            string `gorm:"type:varchar(2)"`
	CEP               string `gorm:"type:varchar(9)"`
	Telefone          string `gorm:"type:varchar(20)"`
	InscricaoEstadual string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "empresas"
}
