package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-folha/internal/money"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1234.56", money.Normalize("1234,56"))
	assert.Equal(t, "1234.56", money.Normalize("1234.56"))
	assert.Equal(t, "0.5", money.Normalize("0,5"))
	// only the first comma is replaced, everything else stays
	assert.Equal(t, "1.234,56", money.Normalize("1,234,56"))
	assert.Equal(t, "R$ 10.00", money.Normalize("R$ 10,00"))
	assert.Equal(t, "-3.14", money.Normalize("-3,14"))
	assert.Equal(t, "", money.Normalize(""))
}

func TestNormalize_Idempotent(t *testing.T) {
	once := money.Normalize("2826,65")
	assert.Equal(t, once, money.Normalize(once))
}

func TestParseDecimal(t *testing.T) {
	t.Run("comma decimal", func(t *testing.T) {
		d, err := money.ParseDecimal("1500,75")
		assert.NoError(t, err)
		assert.True(t, d.Equal(decimal.RequireFromString("1500.75")))
	})

	t.Run("already normalized", func(t *testing.T) {
		d, err := money.ParseDecimal("1500.75")
		assert.NoError(t, err)
		assert.True(t, d.Equal(decimal.RequireFromString("1500.75")))
	})

	t.Run("grouping separator is not stripped", func(t *testing.T) {
		_, err := money.ParseDecimal("1.234,56")
		assert.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := money.ParseDecimal("abc")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := money.ParseDecimal("")
		assert.Error(t, err)
	})
}

func TestRound2(t *testing.T) {
	// half-up at the third decimal place
	assert.Equal(t, "112.50", money.Round2(decimal.RequireFromString("112.495")).StringFixed(2))
	assert.Equal(t, "112.49", money.Round2(decimal.RequireFromString("112.494")).StringFixed(2))
	assert.Equal(t, "1387.50", money.Round2(decimal.RequireFromString("1387.5")).StringFixed(2))
}

func TestFormatBR(t *testing.T) {
	assert.Equal(t, "1387,50", money.FormatBR(decimal.RequireFromString("1387.5")))
	assert.Equal(t, "0,00", money.FormatBR(decimal.Zero))
}
