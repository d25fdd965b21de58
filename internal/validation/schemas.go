package validation

import "regexp"

// Document and contact formats used across the cadastro forms.
var (
	cpfRegex   = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	cnpjRegex  = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	cepRegex   = regexp.MustCompile(`^\d{5}-\d{3}$`)
	phoneRegex = regexp.MustCompile(`^\(?\d{2}\)?\s?\d{4,5}-\d{4}$`)
)

// schemas maps an entity kind to its field contract. Messages are the
// ones the dashboard shows, verbatim. Select fields (estado,
// estado_civil) only require presence; the contract does not enumerate
// the valid codes.
var schemas = map[string]schema{
	"funcionario": {
		required("cpf", pattern(cpfRegex,
			"CPF inválido, formato esperado: 000.000.000-00")),
		required("telefone", pattern(phoneRegex,
			"Número de telefone inválido, formato esperado: (00) 0000-0000")),
		required("celular", pattern(phoneRegex,
			"Número de celular inválido, formato esperado: (00) 90000-0000")),
		required("cep", pattern(cepRegex,
			"CEP inválido, formato esperado: 00000-000")),
		required("estado", nonEmpty("Estado é obrigatório")),
		required("estado_civil", nonEmpty("Estado civil é obrigatório")),
		required("nome", minLength(4, "Nome completo é obrigatório")),
		required("data_nasc", parseableDate("Data de nascimento é obrigatória")),
		numeric("salario", "Salário deve ser um número válido"),
		required("data_admissao", parseableDate("Data de admissão inválida")),
	},
	"empresa": {
		required("cnpj", pattern(cnpjRegex,
			"CNPJ inválido, formato esperado: 00.000.000/0000-00")),
		required("nome_razao", minLength(3,
			"Razão social é obrigatória e deve ter pelo menos 3 caracteres")),
		required("nome_fantasia", minLength(3,
			"Nome fantasia é obrigatório e deve ter pelo menos 3 caracteres")),
		required("endereco", minLength(5,
			"Endereço é obrigatório e deve ter pelo menos 5 caracteres")),
		required("bairro", minLength(3,
			"Bairro é obrigatório e deve ter pelo menos 3 caracteres")),
		required("cidade", minLength(3,
			"Cidade é obrigatória e deve ter pelo menos 3 caracteres")),
		required("estado", minLength(2,
			"Estado é obrigatório e deve ser uma sigla de 2 letras")),
		required("cep", pattern(cepRegex,
			"CEP inválido, formato esperado: 00000-000")),
		required("telefone", pattern(phoneRegex,
			"Número de telefone inválido, formato esperado: (00) 0000-0000")),
		optional("inscricao_estadual"),
	},
	"cargo": {
		required("cargo", minLength(3, "Descrição é obrigatória")),
		numeric("salario", "Salário deve ser um número válido"),
	},
	"funcao": {
		required("nome", minLength(3, "Nome é obrigatório")),
	},
	"sindicato": {
		required("nome", minLength(3,
			"Nome é obrigatório e deve ter pelo menos 3 caracteres")),
		required("telefone", minLength(3, "Telefone é obrigatório")),
	},
	"centro_custo": {
		required("codigo", minLength(3, "Código é obrigatório")),
		optional("descricao"),
	},
	"conta": {
		required("conta", minLength(3,
			"Nome é obrigatório e deve ter pelo menos 3 caracteres")),
		numeric("saldo", "Saldo deve ser um número válido"),
		required("descricao", minLength(3,
			"Descrição é obrigatória e deve ter pelo menos 3 caracteres")),
	},
	"aliquota": {
		required("tipo_imposto", minLength(3,
			"Tipo de imposto é obrigatório e deve ter pelo menos 3 caracteres")),
		numeric("percentual", "Percentual deve ser um número válido"),
		required("data_inicio", parseableDate("Data inválida")),
		required("data_fim", parseableDate("Data inválida")),
		optional("descricao"),
	},
	"plano_conta": {
		required("codigo_contas", minLength(3,
			"Código é obrigatório e deve ter pelo menos 3 caracteres")),
		required("nome_conta", minLength(3,
			"Nome da conta é obrigatório e deve ter pelo menos 3 caracteres")),
		required("tipo_conta", minLength(3,
			"Tipo é obrigatório e deve ter pelo menos 3 caracteres")),
		required("nivel", minLength(1, "Nível é obrigatório")),
		optional("conta_pai"),
		optional("descricao"),
	},
	"cliente": {
		required("nome", minLength(3,
			"Nome é obrigatório e deve ter pelo menos 3 caracteres")),
		required("desde", parseableDate("Data inválida")),
		numeric("taxa_desconto", "Taxa de desconto deve ser um número válido"),
		numeric("limite_credito", "Limite de crédito deve ser um número válido"),
		optional("observacao"),
	},
	"fornecedor": {
		required("desde", parseableDate("Data inválida")),
		optional("observacao"),
	},
	"acumulador": {
		required("acumulador", minLength(3,
			"Acumulador é obrigatório e deve ter pelo menos 3 caracteres")),
		required("tipo", minLength(3,
			"Tipo é obrigatório e deve ter pelo menos 3 caracteres")),
		numeric("valor", "Valor deve ser um número válido"),
		optional("descricao"),
	},
	"cfop": {
		required("codigo", minLength(3,
			"Código é obrigatório e deve ter pelo menos 3 caracteres")),
		required("tipo_operacao", minLength(3,
			"Tipo é obrigatório e deve ter pelo menos 3 caracteres")),
		optional("descricao"),
	},
	"servico": {
		required("codigo", minLength(3, "Código é obrigatório")),
		numeric("valor", "Valor deve ser um número válido"),
	},
}
