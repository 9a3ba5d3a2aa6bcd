// Package models defines the data types shared across the EthicaMind client.
package models

// Sender identifies who authored a chat turn.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatTurn is one message unit in the visible conversation.
// Turns are immutable once created and only ever appended to the log.
type ChatTurn struct {
	Sender Sender
	Text   string
}

// UserTurn creates a turn authored by the user.
func UserTurn(text string) ChatTurn {
	return ChatTurn{Sender: SenderUser, Text: text}
}

// AssistantTurn creates a turn authored by the assistant.
func AssistantTurn(text string) ChatTurn {
	return ChatTurn{Sender: SenderAssistant, Text: text}
}
