package models

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single entry in the chat transcript
type Message struct {
	Role    string // RoleUser or RoleAssistant
	Content string
}
