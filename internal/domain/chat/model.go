package chat

import "time"

// Role define quién escribió el mensaje.
// @Enum user, assistant
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	ID        string
	UserID    string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// WelcomeMessage es el saludo que la UI muestra cuando no hay historial.
const WelcomeMessage = "Welcome to AskAstro! I'm your personal cosmic guide. Ask me about your horoscope, relationships, career, or anything else the stars might reveal! ✨"

// Suggestions son los chips de preguntas rápidas.
var Suggestions = []string{
	"Love today?",
	"Career boost?",
	"My mood?",
	"Weekly horoscope?",
	"Future plans?",
}
