package taxrate

import (
	"net/http"

	"go-folha/internal/shared/apperror"
)

var ErrTaxRateNotFound = apperror.New(
	apperror.CodeNotFound,
	"Alíquota não encontrada",
	http.StatusNotFound,
)
