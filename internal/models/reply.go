package models

// ReplyKind enumerates the response variants the backend can return.
// The unknown variant is explicit so the consumption point has to handle
// it rather than falling through a string comparison.
type ReplyKind int

const (
	// ReplyUnknown is any response shape the client does not recognize.
	ReplyUnknown ReplyKind = iota
	// ReplyChat is a conversational reply carrying message text.
	ReplyChat
	// ReplyCrisis signals that the backend classified the message as a
	// crisis and the triage gate must be shown.
	ReplyCrisis
)

// String returns a human-readable name for the reply kind.
func (k ReplyKind) String() string {
	switch k {
	case ReplyChat:
		return "chat"
	case ReplyCrisis:
		return "crisis"
	default:
		return "unknown"
	}
}

// Reply is the parsed backend response. Message is only populated for
// ReplyChat.
type Reply struct {
	Kind    ReplyKind
	Message string
}
