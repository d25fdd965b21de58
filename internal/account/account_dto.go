package account

type CreateAccountRequest struct {
	CodigoContas string `json:"codigo_contas" binding:"required"`
	NomeConta    string `json:"nome_conta" binding:"required"`
	TipoConta    string `json:"tipo_conta" binding:"required"`
	Nivel        string `json:"nivel" binding:"required"`
	ContaPai     string `json:"conta_pai"`
	Descricao    string `json:"descricao"`
}

type UpdateAccountRequest = CreateAccountRequest

type AccountResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	CodigoContas string `json:"codigo_contas"`
	NomeConta    string `json:"nome_conta"`
	TipoConta    string `json:"tipo_conta"`
	Nivel        string `json:"nivel"`
	ContaPai     string `json:"conta_pai,omitempty"`
	Descricao    string `json:"descricao,omitempty"`
}

func (r CreateAccountRequest) contractRecord() map[string]string {
	return map[string]string{
		"codigo_contas": r.CodigoContas,
		"nome_conta":    r.NomeConta,
		"tipo_conta":    r.TipoConta,
		"nivel":         r.Nivel,
		"conta_pai":     r.ContaPai,
		"descricao":     r.Descricao,
	}
}
