package position

type CreatePositionRequest struct {
	Cargo   string `json:"cargo" binding:"required"`
	Salario string `json:"salario" binding:"required"`
}

type UpdatePositionRequest = CreatePositionRequest

type PositionResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Cargo     string `json:"cargo"`
	Salario   string `json:"salario"`
}

func (r CreatePositionRequest) contractRecord() map[string]string {
	return map[string]string{
		"cargo":   r.Cargo,
		"salario": r.Salario,
	}
}
