package chat

import "sync"

type Store interface {
	Append(msg Message)
	List() []Message
}

// MemoryStore keeps messages for the lifetime of the process. Messages are
// held oldest first and listed newest first. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	messages []Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{messages: make([]Message, 0, 16)}
}

// Append stores msg so it is the first element of the next List.
func (s *MemoryStore) Append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msg)
}

// List returns a copy of the stored messages. The result is never nil.
func (s *MemoryStore) List() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, len(s.messages))
	for i, msg := range s.messages {
		out[len(out)-1-i] = msg
	}
	return out
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}
