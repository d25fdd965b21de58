package position

import (
	"net/http"

	"go-folha/internal/shared/apperror"
)

var ErrPositionNotFound = apperror.New(
	apperror.CodeNotFound,
	"Cargo não encontrado",
	http.StatusNotFound,
)
