package union

type CreateUnionRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Telefone string `json:"telefone" binding:"required"`
}

type UpdateUnionRequest = CreateUnionRequest

type UnionResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Nome      string `json:"nome"`
	Telefone  string `json:"telefone"`
}

func (r CreateUnionRequest) contractRecord() map[string]string {
	return map[string]string{
		"nome":     r.Nome,
		"telefone": r.Telefone,
	}
}
