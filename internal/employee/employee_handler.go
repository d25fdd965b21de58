package employee

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-folha/internal/shared/apperror"
	"go-folha/internal/shared/response"
	"go-folha/internal/validation"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	companyID := c.GetString("company_id")
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados inválidos", err.Error())
		return
	}

	req, verdict, err := checkContract(req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !verdict.Valid {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Verifique os erros no formulário", verdict.Errors)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), companyID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.GetAll(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	companyID := c.GetString("company_id")
	id := c.Param("id")

	resp, err := h.service.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	companyID := c.GetString("company_id")
	id := c.Param("id")
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados inválidos", err.Error())
		return
	}

	req, verdict, err := checkContract(req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !verdict.Valid {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Verifique os erros no formulário", verdict.Errors)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	companyID := c.GetString("company_id")
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), companyID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// checkContract normalizes the numeric fields and runs the funcionario
// contract on the normalized record — never the raw one.
func checkContract(req CreateEmployeeRequest) (CreateEmployeeRequest, validation.Result, error) {
	record, err := validation.NormalizeRecord("funcionario", req.contractRecord())
	if err != nil {
		return req, validation.Result{}, err
	}

	verdict, err := validation.Validate("funcionario", record)
	if err != nil {
		return req, validation.Result{}, err
	}

	req.Salario = record["salario"]
	return req, verdict, nil
}

func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, err.Error(), nil)
}
