// Session state: discovered tools and the conversation transcript.
package main

import "github.com/ethlytics/chainchat/pkg/mcpclient"

const (
	roleSystem    = "system"
	roleUser      = "user"
	roleAssistant = "assistant"
)

// maxHistoryEntries is the sliding window applied to the transcript after each
// completed user turn.
const maxHistoryEntries = 20

// Message is one role-tagged transcript entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session holds the per-connection state: the tool list discovered once at
// startup and the conversation transcript. Nothing in it outlives the process.
type Session struct {
	Tools   []mcpclient.ToolDescriptor
	history []Message
}

// NewSession creates a session around the discovered tool list.
func NewSession(tools []mcpclient.ToolDescriptor) *Session {
	return &Session{Tools: tools}
}

// History returns the current transcript in chronological order.
func (s *Session) History() []Message {
	return s.history
}

// Append adds messages to the end of the transcript.
func (s *Session) Append(messages ...Message) {
	s.history = append(s.history, messages...)
}

// Truncate drops the oldest entries so at most maxHistoryEntries remain.
// Called after each completed user turn.
func (s *Session) Truncate() {
	if len(s.history) > maxHistoryEntries {
		s.history = s.history[len(s.history)-maxHistoryEntries:]
	}
}
