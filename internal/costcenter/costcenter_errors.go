package costcenter

import (
	"net/http"

	"go-folha/internal/shared/apperror"
)

var ErrCostCenterNotFound = apperror.New(
	apperror.CodeNotFound,
	"Centro de custo não encontrado",
	http.StatusNotFound,
)
