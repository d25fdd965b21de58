package account

import (
	"net/http"

	"go-folha/internal/shared/apperror"
)

var ErrAccountNotFound = apperror.New(
	apperror.CodeNotFound,
	"Conta não encontrada",
	http.StatusNotFound,
)
