package chat

import (
	"context"
	"errors"
)

var ErrProviderUnavailable = errors.New("response provider unavailable")

// Prompt es lo que recibe el provider para generar la respuesta del astrólogo.
type Prompt struct {
	UserID    string
	Text      string
	FirstName string // vacío si el usuario no cargó su perfil
	Sign      string // vacío si el usuario no cargó su perfil
	History   []Message
}

// ResponseProvider genera la respuesta del astrólogo.
// canned elige de un pool fijo; remote llama a un backend de inferencia.
type ResponseProvider interface {
	Reply(ctx context.Context, p Prompt) (string, error)
}
