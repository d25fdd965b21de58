package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-folha/internal/validation"
)

func TestValidate_Cargo(t *testing.T) {
	t.Run("reports each field independently", func(t *testing.T) {
		res, err := validation.Validate("Cargo", map[string]string{
			"cargo":   "",
			"salario": "1000",
		})
		assert.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors, "cargo")
		assert.NotContains(t, res.Errors, "salario")
	})

	t.Run("valid record", func(t *testing.T) {
		res, err := validation.Validate("cargo", map[string]string{
			"cargo":   "Analista Fiscal",
			"salario": "3500,00",
		})
		assert.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	res, err := validation.Validate("empresa", map[string]string{
		"cnpj":          "12345678000100",
		"nome_razao":    "ab",
		"nome_fantasia": "Loja X",
		"endereco":      "Rua A, 10",
		"bairro":        "Centro",
		"cidade":        "Maringá",
		"estado":        "PR",
		"cep":           "87000",
		"telefone":      "(44) 3222-1010",
	})
	assert.NoError(t, err)
	assert.False(t, res.Valid)
	// no short-circuit: every failing field is present at once
	assert.Contains(t, res.Errors, "cnpj")
	assert.Contains(t, res.Errors, "nome_razao")
	assert.Contains(t, res.Errors, "cep")
	assert.NotContains(t, res.Errors, "telefone")
	assert.Equal(t,
		"CNPJ inválido, formato esperado: 00.000.000/0000-00",
		res.Errors["cnpj"][0])
}

func TestValidate_DocumentFormats(t *testing.T) {
	base := map[string]string{
		"cpf":           "123.456.789-09",
		"telefone":      "(44) 3222-1010",
		"celular":       "(44) 99222-1010",
		"cep":           "87000-000",
		"estado":        "PR",
		"estado_civil":  "casado",
		"nome":          "Maria da Silva",
		"data_nasc":     "1990-05-20",
		"salario":       "2500,00",
		"data_admissao": "2024-01-15",
	}

	t.Run("valid employee", func(t *testing.T) {
		res, err := validation.Validate("funcionario", base)
		assert.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("unmasked cpf rejected", func(t *testing.T) {
		rec := cloneRecord(base)
		rec["cpf"] = "12345678909"
		res, _ := validation.Validate("funcionario", rec)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors, "cpf")
	})

	t.Run("phone without parens accepted", func(t *testing.T) {
		rec := cloneRecord(base)
		rec["telefone"] = "44 3222-1010"
		res, _ := validation.Validate("funcionario", rec)
		assert.True(t, res.Valid)
	})

	t.Run("bad date rejected", func(t *testing.T) {
		rec := cloneRecord(base)
		rec["data_nasc"] = "not-a-date"
		res, _ := validation.Validate("funcionario", rec)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors, "data_nasc")
	})
}

func TestValidate_NormalizesBeforeNumericCheck(t *testing.T) {
	// comma-decimal input must pass the numeric rule; the check runs on
	// the normalized value, never the raw one
	res, err := validation.Validate("conta", map[string]string{
		"conta":     "Caixa Geral",
		"saldo":     "1500,75",
		"descricao": "Conta caixa da matriz",
	})
	assert.NoError(t, err)
	assert.True(t, res.Valid)

	// a grouping separator survives normalization and fails the parse
	res, err = validation.Validate("conta", map[string]string{
		"conta":     "Caixa Geral",
		"saldo":     "1.500,75",
		"descricao": "Conta caixa da matriz",
	})
	assert.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "saldo")
}

func TestValidate_OptionalFields(t *testing.T) {
	res, err := validation.Validate("empresa", map[string]string{
		"cnpj":          "12.345.678/0001-00",
		"nome_razao":    "Empresa Exemplo LTDA",
		"nome_fantasia": "Exemplo",
		"endereco":      "Rua das Flores, 100",
		"bairro":        "Centro",
		"cidade":        "Curitiba",
		"estado":        "PR",
		"cep":           "80000-000",
		"telefone":      "(41) 3333-4444",
		// inscricao_estadual absent: optional, always valid
	})
	assert.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestValidate_UnknownEntity(t *testing.T) {
	_, err := validation.Validate("inexistente", map[string]string{})
	assert.ErrorIs(t, err, validation.ErrUnknownEntity)
}

func TestNormalizeRecord_RoundTrip(t *testing.T) {
	rec := map[string]string{
		"cargo":   "Contador",
		"salario": "4200,10",
	}

	norm, err := validation.NormalizeRecord("cargo", rec)
	assert.NoError(t, err)
	assert.Equal(t, "4200.10", norm["salario"])
	assert.Equal(t, "Contador", norm["cargo"])
	// original untouched
	assert.Equal(t, "4200,10", rec["salario"])

	res, err := validation.Validate("cargo", norm)
	assert.NoError(t, err)
	assert.True(t, res.Valid)

	// idempotence: normalizing an accepted record changes nothing and
	// the record is accepted again unchanged
	again, err := validation.NormalizeRecord("cargo", norm)
	assert.NoError(t, err)
	assert.Equal(t, norm, again)

	res2, err := validation.Validate("cargo", again)
	assert.NoError(t, err)
	assert.True(t, res2.Valid)
}

func cloneRecord(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
