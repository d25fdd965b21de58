package taxrate

type CreateTaxRateRequest struct {
	TipoImposto string `json:"tipo_imposto" binding:"required"`
	FaixaMin    string `json:"faixa_min" binding:"required"`
	FaixaMax    string `json:"faixa_max"`
	Percentual  string `json:"percentual" binding:"required"`
	DataInicio  string `json:"data_inicio" binding:"required"`
	DataFim     string `json:"data_fim" binding:"required"`
	Descricao   string `json:"descricao"`
}

type UpdateTaxRateRequest = CreateTaxRateRequest

type TaxRateResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	TipoImposto string `json:"tipo_imposto"`
	FaixaMin    string `json:"faixa_min"`
	FaixaMax    string `json:"faixa_max,omitempty"`
	Percentual  string `json:"percentual"`
	DataInicio  string `json:"data_inicio"`
	DataFim     string `json:"data_fim"`
	Descricao   string `json:"descricao,omitempty"`
}

func (r CreateTaxRateRequest) contractRecord() map[string]string {
	return map[string]string{
		"tipo_imposto": r.TipoImposto,
		"percentual":   r.Percentual,
		"data_inicio":  r.DataInicio,
		"data_fim":     r.DataFim,
		"descricao":    r.Descricao,
	}
}
