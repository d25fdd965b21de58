package companyerrors

import (
	"net/http"

	"go-folha/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Empresa não encontrada",
		http.StatusNotFound,
	)

	ErrCNPJAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Já existe uma empresa cadastrada com este CNPJ",
		http.StatusConflict,
	)
)
