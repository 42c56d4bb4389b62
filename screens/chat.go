package screens

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/types"
)

const (
	DefaultChatReplyDelay = 1500 * time.Millisecond

	simulatedReply = "That sounds awesome! Let's talk more about it later. 😊"
	justNow        = "Just now"
)

// ChatRoom is a direct message thread. The log is append-only: history is
// loaded on activation, sent messages and the simulated replies are appended.
// Pending replies belong to the activation that scheduled them and are
// cancelled when the room closes or switches to another user.
type ChatRoom struct {
	base
	gw         *gateway.Gateway
	replyDelay time.Duration
	history    gateway.Result[[]types.Message]
	messages   []types.Message
	pending    map[*pendingReply]struct{}
}

type pendingReply struct {
	timer *time.Timer
}

type ChatSnapshot struct {
	Header
	Username       string          `json:"username"`
	Avatar         string          `json:"avatar"`
	HistoryOutcome gateway.Outcome `json:"history_outcome"`
	HistoryReason  gateway.Reason  `json:"history_reason,omitempty"`
	Messages       []types.Message `json:"messages"`
	PendingReplies int             `json:"pending_replies"`
}

func NewChatRoom(d Deps) *ChatRoom {
	delay := d.ChatReplyDelay
	if delay <= 0 {
		delay = DefaultChatReplyDelay
	}

	return &ChatRoom{
		base:       newBase(KindChat, d.Logger),
		gw:         d.Gateway,
		replyDelay: delay,
		messages:   []types.Message{},
		pending:    map[*pendingReply]struct{}{},
	}
}

// Begin starts an activation for username. Replies still pending for the
// previous conversation are cancelled and the log starts empty.
func (c *ChatRoom) Begin(username string) (uint64, bool) {
	return c.begin(username, func() {
		c.stopPendingLocked()
		c.messages = []types.Message{}
	})
}

func (c *ChatRoom) Load(ctx context.Context, gen uint64, username string) {
	defer c.finish(gen)

	history := c.gw.ChatHistory(ctx, username)

	c.apply(gen, func() {
		c.history = history
		c.messages = clone(history.Data)
	})
}

// Send appends the outgoing message right away and schedules the simulated
// reply. Blank text is rejected.
func (c *ChatRoom) Send(text string) (types.Message, error) {
	if strings.TrimSpace(text) == "" {
		return types.Message{}, ErrBlankText
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return types.Message{}, ErrClosed
	}
	if c.loading {
		return types.Message{}, ErrLoading
	}

	msg := types.Message{
		ID:        "m-" + uuid.NewString(),
		Sender:    gateway.LocalUser,
		Text:      text,
		Timestamp: justNow,
		IsMe:      true,
	}
	c.messages = append(c.messages, msg)

	gen, username := c.gen, c.param

	p := &pendingReply{}
	p.timer = time.AfterFunc(c.replyDelay, func() {
		c.deliverReply(p, gen, username)
	})
	c.pending[p] = struct{}{}

	return msg, nil
}

func (c *ChatRoom) deliverReply(p *pendingReply, gen uint64, username string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.pending[p]; !ok {
		return
	}
	delete(c.pending, p)

	if c.closed || gen != c.gen {
		return
	}

	c.messages = append(c.messages, types.Message{
		ID:        "r-" + uuid.NewString(),
		Sender:    username,
		Text:      simulatedReply,
		Timestamp: justNow,
		IsMe:      false,
	})
}

func (c *ChatRoom) stopPendingLocked() {
	for p := range c.pending {
		p.timer.Stop()
	}

	if n := len(c.pending); n > 0 {
		c.logger.Debug("Cancelled pending chat replies", zap.Int("count", n))
	}

	c.pending = map[*pendingReply]struct{}{}
}

func (c *ChatRoom) Close() {
	c.mu.Lock()
	c.stopPendingLocked()
	c.mu.Unlock()

	c.base.Close()
}

func (c *ChatRoom) Snapshot() any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return ChatSnapshot{
		Header:         c.header(),
		Username:       c.param,
		Avatar:         c.gw.Decorator().SmallAvatar(c.param),
		HistoryOutcome: c.history.Outcome,
		HistoryReason:  c.history.Reason,
		Messages:       clone(c.messages),
		PendingReplies: len(c.pending),
	}
}
