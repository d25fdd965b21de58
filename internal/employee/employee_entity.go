package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee is the funcionário record. Rows are soft-deleted only;
// payroll history must keep resolving former employees.
type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;index"`
	Nome         string    `gorm:"type:varchar(150);not null"`
	CPF          string    `gorm:"type:varchar(14);uniqueIndex:uq_employee_cpf"`
	Telefone     string    `gorm:"type:varchar(20)"`
	Celular      string    `gorm:"type:varchar(20)"`
	Email        string    `gorm:"type:varchar(255)"`
	CEP          string    `gorm:"type:varchar(9)"`
	Endereco     string
	Bairro       string
	Cidade       string
	Estado       string `gorm:"type:varchar(2)"`
	EstadoCivil  string
	DataNasc     time.Time `gorm:"type:date"`
	Sexo         string
	Escolaridade string
	Naturalidade string
	PIS          string `gorm:"type:varchar(14)"`
	Identidade   string
	CTPS         string
	Serie        string
	Salario      decimal.Decimal `gorm:"type:numeric(12,2)"`
	DataAdmissao time.Time       `gorm:"type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "funcionarios"
}
