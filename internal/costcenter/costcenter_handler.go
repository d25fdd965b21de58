package costcenter

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
	var req CreateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados inválidos", err.Error())
		return
	}

	verdict, err := validation.Validate("centro_custo", req.contractRecord())
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
	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	companyID := c.GetString("company_id")
	var req UpdateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados inválidos", err.Error())
		return
	}

	verdict, err := validation.Validate("centro_custo", req.contractRecord())
	if err != nil {
		respondError(c, err)
		return
	}
	if !verdict.Valid {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Verifique os erros no formulário", verdict.Errors)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), companyID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, err.Error(), nil)
}
