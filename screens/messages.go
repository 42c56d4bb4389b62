package screens

import (
	"context"

	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/types"
)

// Messages is the conversation list. There is no pagination.
type Messages struct {
	base
	gw            *gateway.Gateway
	conversations gateway.Result[[]types.Conversation]
}

type MessagesSnapshot struct {
	Header
	Conversations gateway.Result[[]types.Conversation] `json:"conversations"`
}

func NewMessages(d Deps) *Messages {
	return &Messages{base: newBase(KindMessages, d.Logger), gw: d.Gateway}
}

func (m *Messages) Load(ctx context.Context, gen uint64, param string) {
	defer m.finish(gen)

	conversations := m.gw.Conversations(ctx)

	m.apply(gen, func() {
		m.conversations = conversations
	})
}

func (m *Messages) Snapshot() any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	conversations := m.conversations
	conversations.Data = clone(m.conversations.Data)

	return MessagesSnapshot{
		Header:        m.header(),
		Conversations: conversations,
	}
}
