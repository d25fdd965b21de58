package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-folha/internal/employee"
	employeeerrors "go-folha/internal/employee/errors"
)

type fakeEmployeeService struct {
	createFn  func(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn  func(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error)
	getByIDFn func(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error)
	updateFn  func(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn  func(ctx context.Context, companyID, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, companyID, req)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx, companyID)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}

func (f *fakeEmployeeService) Update(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, companyID, id, req)
}

func (f *fakeEmployeeService) Delete(ctx context.Context, companyID, id string) error {
	return f.deleteFn(ctx, companyID, id)
}

func newTestContext(t *testing.T, method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("company_id", "7b6ad18a-4f55-4c2e-9a43-0b9a4b0f38aa")
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func validCreateBody() map[string]any {
	return map[string]any{
		"nome":          "Maria da Silva",
		"cpf":           "123.456.789-09",
		"telefone":      "(44) 3222-1010",
		"celular":       "(44) 99222-1010",
		"cep":           "87000-000",
		"estado":        "PR",
		"estado_civil":  "casada",
		"data_nasc":     "1990-05-20",
		"salario":       "2500,00",
		"data_admissao": "2024-01-15",
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success normalizes salary before the service sees it", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "2500.00", req.Salario)
				return employee.EmployeeResponse{Nome: req.Nome, Salario: "2500.00"}, nil
			},
		}
		handler := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/funcionarios", validCreateBody())
		handler.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, true, envelope["ok"])
	})

	t.Run("contract violations come back as field errors", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called when the contract fails")
				return employee.EmployeeResponse{}, nil
			},
		}
		handler := employee.NewHandler(svc)

		body := validCreateBody()
		body["nome"] = "Jo"
		body["cpf"] = "12345678909"
		c, w := newTestContext(t, http.MethodPost, "/funcionarios", body)
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, false, envelope["ok"])

		errObj := envelope["error"].(map[string]any)
		assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
		details := errObj["details"].(map[string]any)
		assert.Contains(t, details, "nome")
		assert.Contains(t, details, "cpf")
	})

	t.Run("malformed json", func(t *testing.T) {
		handler := employee.NewHandler(&fakeEmployeeService{})

		gin.SetMode(gin.TestMode)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/funcionarios", bytes.NewBufferString("{"))
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByIDFn: func(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		handler := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/funcionarios/x", nil)
		c.Params = gin.Params{{Key: "id", Value: "x"}}
		handler.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		envelope := decodeEnvelope(t, w)
		errObj := envelope["error"].(map[string]any)
		assert.Equal(t, "NOT_FOUND", errObj["code"])
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success is 204 with empty body", func(t *testing.T) {
		svc := &fakeEmployeeService{
			deleteFn: func(ctx context.Context, companyID, id string) error { return nil },
		}
		handler := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodDelete, "/funcionarios/x", nil)
		c.Params = gin.Params{{Key: "id", Value: "x"}}
		handler.Delete(c)
		// gin defers the status write until the body is written or the
		// engine flushes; with no body we must flush explicitly so the
		// recorder sees the status set via c.Status.
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
