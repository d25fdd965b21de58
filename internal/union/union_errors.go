package union

import (
	"net/http"

	"go-folha/internal/shared/apperror"
)

var ErrUnionNotFound = apperror.New(
	apperror.CodeNotFound,
	"Sindicato não encontrado",
	http.StatusNotFound,
)
