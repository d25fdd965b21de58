package costcenter

type CreateCostCenterRequest struct {
	Codigo    string `json:"codigo" binding:"required"`
	Descricao string `json:"descricao"`
}

type UpdateCostCenterRequest = CreateCostCenterRequest

type CostCenterResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao,omitempty"`
}

func (r CreateCostCenterRequest) contractRecord() map[string]string {
	return map[string]string{
		"codigo":    r.Codigo,
		"descricao": r.Descricao,
	}
}
