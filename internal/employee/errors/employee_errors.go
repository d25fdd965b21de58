package employeeerrors

import (
	"net/http"

	"go-folha/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Funcionário não encontrado",
		http.StatusNotFound,
	)

	ErrCPFAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Já existe um funcionário cadastrado com este CPF",
		http.StatusConflict,
	)
)
