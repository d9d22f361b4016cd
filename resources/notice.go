package resources

import (
	"errors"

	"github.com/yeremiapane/reserva-dashboard/apiclient"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSecondary   Variant = "secondary"
	VariantDestructive Variant = "destructive"
)

// Notice is a transient toast shown once on the next rendered page.
type Notice struct {
	Variant     Variant `json:"variant"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
}

type Notifier interface {
	Notify(n Notice)
}

// Notices collects notices for the page being rendered.
type Notices []Notice

func (ns *Notices) Notify(n Notice) { *ns = append(*ns, n) }

// Confirmer answers an interactive yes/no prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

const (
	genericFailure    = "A operação não pôde ser concluída"
	connectionTitle   = "Erro de conexão"
	connectionMessage = "Não foi possível conectar ao servidor"
)

func Success(title, description string) Notice {
	return Notice{Variant: VariantDefault, Title: title, Description: description}
}

// Failure maps err onto a destructive notice. Connection problems get a
// fixed text; API errors surface the server message verbatim.
func Failure(title string, err error) Notice {
	var verr *ValidationError
	switch {
	case errors.Is(err, apiclient.ErrConnection):
		return Notice{Variant: VariantDestructive, Title: connectionTitle, Description: connectionMessage}
	case errors.As(err, &verr):
		return Notice{Variant: VariantDestructive, Title: title, Description: verr.Message}
	}
	if msg, ok := apiclient.ServerMessage(err); ok {
		return Notice{Variant: VariantDestructive, Title: title, Description: msg}
	}
	return Notice{Variant: VariantDestructive, Title: title, Description: genericFailure}
}
