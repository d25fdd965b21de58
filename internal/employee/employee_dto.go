package employee

type CreateEmployeeRequest struct {
	Nome         string `json:"nome" binding:"required"`
	CPF          string `json:"cpf" binding:"required"`
	Telefone     string `json:"telefone" binding:"required"`
	Celular      string `json:"celular" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	CEP          string `json:"cep" binding:"required"`
	Endereco     string `json:"endereco"`
	Bairro       string `json:"bairro"`
	Cidade       string `json:"cidade"`
	Estado       string `json:"estado" binding:"required"`
	EstadoCivil  string `json:"estado_civil" binding:"required"`
	DataNasc     string `json:"data_nasc" binding:"required"`
	Sexo         string `json:"sexo"`
	Escolaridade string `json:"escolaridade"`
	Naturalidade string `json:"naturalidade"`
	PIS          string `json:"pis"`
	Identidade   string `json:"identidade"`
	CTPS         string `json:"ctps"`
	Serie        string `json:"serie"`
	Salario      string `json:"salario" binding:"required"`
	DataAdmissao string `json:"data_admissao" binding:"required"`
}

type UpdateEmployeeRequest = CreateEmployeeRequest

type EmployeeResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	Nome         string `json:"nome"`
	CPF          string `json:"cpf"`
	Telefone     string `json:"telefone"`
	Celular      string `json:"celular"`
	Email        string `json:"email,omitempty"`
	CEP          string `json:"cep"`
	Endereco     string `json:"endereco,omitempty"`
	Bairro       string `json:"bairro,omitempty"`
	Cidade       string `json:"cidade,omitempty"`
	Estado       string `json:"estado"`
	EstadoCivil  string `json:"estado_civil"`
	DataNasc     string `json:"data_nasc"`
	Sexo         string `json:"sexo,omitempty"`
	Escolaridade string `json:"escolaridade,omitempty"`
	Naturalidade string `json:"naturalidade,omitempty"`
	PIS          string `json:"pis,omitempty"`
	Identidade   string `json:"identidade,omitempty"`
	CTPS         string `json:"ctps,omitempty"`
	Serie        string `json:"serie,omitempty"`
	Salario      string `json:"salario"`
	DataAdmissao string `json:"data_admissao"`
}

// contractRecord flattens the request into the field map the
// validation contract consumes.
func (r CreateEmployeeRequest) contractRecord() map[string]string {
	return map[string]string{
		"nome":          r.Nome,
		"cpf":           r.CPF,
		"telefone":      r.Telefone,
		"celular":       r.Celular,
		"cep":           r.CEP,
		"estado":        r.Estado,
		"estado_civil":  r.EstadoCivil,
		"data_nasc":     r.DataNasc,
		"salario":       r.Salario,
		"data_admissao": r.DataAdmissao,
	}
}
