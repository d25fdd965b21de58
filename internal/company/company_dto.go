package company

type CreateCompanyRequest struct {
	CNPJ              string `json:"cnpj" binding:"required"`
	NomeRazao         string `json:"nome_razao" binding:"required"`
	NomeFantasia      string `json:"nome_fantasia" binding:"required"`
	Endereco          string `json:"endereco" binding:"required"`
	Bairro            string `json:"bairro" binding:"required"`
	Cidade            string `json:"cidade" binding:"required"`
	Estado            string `json:"estado" binding:"required"`
	CEP               string `json:"cep" binding:"required"`
	Telefone          string `json:"telefone" binding:"required"`
	InscricaoEstadual string `json:"inscricao_estadual"`
}

type UpdateCompanyRequest = CreateCompanyRequest

type CompanyResponse struct {
	ID                string `json:"id"`
	CNPJ              string `json:"cnpj"`
	NomeRazao         string `json:"nome_razao"`
	NomeFantasia      string `json:"nome_fantasia"`
	Endereco          string `json:"endereco"`
	Bairro            string `json:"bairro"`
	Cidade            string `json:"cidade"`
	Estado            string `json:"estado"`
	CEP               string `json:"cep"`
	Telefone          string `json:"telefone"`
	InscricaoEstadual string `json:"inscricao_estadual,omitempty"`
}

func (r CreateCompanyRequest) contractRecord() map[string]string {
	return map[string]string{
		"cnpj":               r.CNPJ,
		"nome_razao":         r.NomeRazao,
		"nome_fantasia":      r.NomeFantasia,
		"endereco":           r.Endereco,
		"bairro":             r.Bairro,
		"cidade":             r.Cidade,
		"estado":             r.Estado,
		"cep":                r.CEP,
		"telefone":           r.Telefone,
		"inscricao_estadual": r.InscricaoEstadual,
	}
}
