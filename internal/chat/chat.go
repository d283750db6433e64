// Package chat is the request-orchestration core: it decides whether each
// incoming message continues a pending multi-turn operation or starts a new
// one, and drives every operation to a terminal conversational reply.
package chat

import (
	"context"

	"github.com/vmunix/chatarr/internal/nlu"
	"github.com/vmunix/chatarr/internal/session"
)

// Request is one incoming user message with its conversation history.
// Intent is filled in by the dispatcher on the fresh path; strategies that
// resume a session never see one.
type Request struct {
	UserID  string
	Message string
	History []nlu.Message
	Intent  *nlu.Intent
}

// Reply is the terminal result of handling a message. Every path through
// the core ends in a Reply; failures surface as conversational messages,
// never as errors to the caller.
type Reply struct {
	Images   []string      `json:"images,omitempty"`
	Messages []nlu.Message `json:"messages"`
}

// Strategy is one operation variant (movie/series download/delete, browse,
// status). Resume is non-nil when the message continues a pending session.
type Strategy interface {
	Execute(ctx context.Context, req Request, resume *session.Session) *Reply
}

func say(text string) *Reply {
	return &Reply{Messages: []nlu.Message{{Role: "assistant", Content: text}}}
}

func (r *Reply) withImages(images ...string) *Reply {
	r.Images = append(r.Images, images...)
	return r
}
