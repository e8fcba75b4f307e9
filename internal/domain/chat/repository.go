package chat

import "context"

type Repository interface {
	Append(ctx context.Context, m Message) error
	// ListByUser devuelve los últimos limit mensajes, del más viejo al más nuevo.
	ListByUser(ctx context.Context, userID string, limit int) ([]Message, error)
	DeleteByUser(ctx context.Context, userID string) error
}

// QuotaStore cuenta preguntas por usuario para el aviso de registro.
type QuotaStore interface {
	Incr(ctx context.Context, userID string) (int, error)
	Get(ctx context.Context, userID string) (int, error)
	Reset(ctx context.Context, userID string) error
}
