package models

// MessageTimeLayout is the "HH:MM" clock format of message timestamps.
const MessageTimeLayout = "15:04"

// Message is one entry of the employer-to-worker conversation.
// swagger:model Message
type Message struct {
	From string `json:"from"` // Sender label, e.g. "Employer"
	Text string `json:"text"` // Message body
	Time string `json:"time"` // Local send time, HH:MM
}
