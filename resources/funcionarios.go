package resources

import "github.com/yeremiapane/reserva-dashboard/models"

type FuncionarioForm struct {
	Nome  string `form:"nome"`
	Email string `form:"email"`
	Cargo string `form:"cargo"`
	Senha string `form:"senha"`
}

// FuncionarioPayload omits senha when blank so an update keeps the stored password.
type FuncionarioPayload struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Cargo string `json:"cargo"`
	Senha string `json:"senha,omitempty"`
}

var FuncionarioKind = Kind[models.Funcionario, FuncionarioForm]{
	Name: "funcionario",
	Messages: Messages{
		LoadFailed:    "Erro ao carregar funcionários",
		Created:       "Funcionário criado",
		Updated:       "Funcionário atualizado",
		Deleted:       "Funcionário excluído com sucesso",
		ConfirmDelete: "Deseja realmente excluir este funcionário?",
	},
	ID:    func(f models.Funcionario) int { return f.ID },
	Empty: func() FuncionarioForm { return FuncionarioForm{} },
	FromRecord: func(f models.Funcionario) FuncionarioForm {
		return FuncionarioForm{Nome: f.Nome, Email: f.Email, Cargo: f.Cargo}
	},
	Parse: func(f FuncionarioForm, t Target[models.Funcionario]) (interface{}, error) {
		nome, err := required("nome", "Nome", f.Nome)
		if err != nil {
			return nil, err
		}
		email, err := required("email", "Email", f.Email)
		if err != nil {
			return nil, err
		}
		cargo, err := required("cargo", "Cargo", f.Cargo)
		if err != nil {
			return nil, err
		}
		p := FuncionarioPayload{Nome: nome, Email: email, Cargo: cargo, Senha: f.Senha}
		if !t.IsEdit() && p.Senha == "" {
			return nil, &ValidationError{Field: "senha", Message: "Senha é obrigatório"}
		}
		return p, nil
	},
}
