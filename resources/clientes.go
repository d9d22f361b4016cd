package resources

import "github.com/yeremiapane/reserva-dashboard/models"

type ClienteForm struct {
	Nome     string `form:"nome"`
	Email    string `form:"email"`
	Telefone string `form:"telefone"`
}

type ClientePayload struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

var ClienteKind = Kind[models.Cliente, ClienteForm]{
	Name: "cliente",
	Messages: Messages{
		LoadFailed:    "Erro ao carregar clientes",
		Created:       "Cliente criado",
		Updated:       "Cliente atualizado",
		Deleted:       "Cliente excluído com sucesso",
		ConfirmDelete: "Deseja realmente excluir este cliente?",
	},
	ID:    func(c models.Cliente) int { return c.ID },
	Empty: func() ClienteForm { return ClienteForm{} },
	FromRecord: func(c models.Cliente) ClienteForm {
		return ClienteForm{Nome: c.Nome, Email: c.Email, Telefone: c.Telefone}
	},
	Parse: func(f ClienteForm, _ Target[models.Cliente]) (interface{}, error) {
		nome, err := required("nome", "Nome", f.Nome)
		if err != nil {
			return nil, err
		}
		email, err := required("email", "Email", f.Email)
		if err != nil {
			return nil, err
		}
		telefone, err := required("telefone", "Telefone", f.Telefone)
		if err != nil {
			return nil, err
		}
		return ClientePayload{Nome: nome, Email: email, Telefone: telefone}, nil
	},
}
