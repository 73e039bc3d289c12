package chat

// Message is one posted chat entry.
type Message struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

func (m *Message) String() string {
	return m.Username + ": " + m.Text
}
