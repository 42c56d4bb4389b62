// Package gatewaytest provides a scripted Generator for tests.
package gatewaytest

import (
	"context"
	"sync"

	"github.com/infinitybotlist/eureka/jsonimpl"

	"github.com/stevenson0/Insta-clone/gateway"
	"github.com/stevenson0/Insta-clone/schemas"
)

// Fake answers each content kind with a scripted body or error. Kinds without
// a script answer with an empty body.
type Fake struct {
	mu        sync.Mutex
	responses map[schemas.Kind]string
	errs      map[schemas.Kind]error
	failAll   error
	calls     map[schemas.Kind]int
	requests  []gateway.Request
	hold      chan struct{}
}

func New() *Fake {
	return &Fake{
		responses: map[schemas.Kind]string{},
		errs:      map[schemas.Kind]error{},
		calls:     map[schemas.Kind]int{},
	}
}

var _ gateway.Generator = (*Fake)(nil)

func (f *Fake) Respond(kind schemas.Kind, body string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[kind] = body
	return f
}

// RespondJSON marshals v as the answer for kind
func (f *Fake) RespondJSON(kind schemas.Kind, v any) *Fake {
	b, err := jsonimpl.Marshal(v)
	if err != nil {
		panic(err)
	}
	return f.Respond(kind, string(b))
}

func (f *Fake) Fail(kind schemas.Kind, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[kind] = err
	return f
}

// FailAll makes every request fail with err
func (f *Fake) FailAll(err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAll = err
	return f
}

// Hold blocks every request until the returned release func is called or the
// request context ends.
func (f *Fake) Hold() (release func()) {
	ch := make(chan struct{})

	f.mu.Lock()
	f.hold = ch
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { close(ch) })
	}
}

func (f *Fake) Calls(kind schemas.Kind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[kind]
}

func (f *Fake) Requests() []gateway.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]gateway.Request(nil), f.requests...)
}

func (f *Fake) Generate(ctx context.Context, req gateway.Request) (string, error) {
	kind := kindOf(req)

	f.mu.Lock()
	f.calls[kind]++
	f.requests = append(f.requests, req)
	hold := f.hold
	f.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAll != nil {
		return "", f.failAll
	}

	if err, ok := f.errs[kind]; ok {
		return "", err
	}

	return f.responses[kind], nil
}

func kindOf(req gateway.Request) schemas.Kind {
	for _, k := range schemas.Kinds() {
		if schemas.Lookup(k).Schema == req.Schema {
			return k
		}
	}
	return ""
}
