package thirteenth

type CalculateThirteenthRequest struct {
	EmployeeID       string `json:"employee_id" binding:"required"`
	Salario          string `json:"salario" binding:"required"`
	MesesTrabalhados int    `json:"meses_trabalhados"`
	TipoPagamento    string `json:"tipo_pagamento"`
}

type CalculationResponse struct {
	ID               string `json:"id"`
	CompanyID        string `json:"company_id"`
	EmployeeID       string `json:"employee_id"`
	Salario          string `json:"salario"`
	MesesTrabalhados int    `json:"meses_trabalhados"`
	TipoPagamento    string `json:"tipo_pagamento"`
	DecimoBruto      string `json:"decimo_bruto"`
	TaxaPercentual   string `json:"taxa_percentual"`
	ValorRetido      string `json:"valor_retido"`
	DecimoLiquido    string `json:"decimo_liquido"`
	CreatedAt        string `json:"created_at"`
}
