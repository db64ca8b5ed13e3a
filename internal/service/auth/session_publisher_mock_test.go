package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/tourcrew-backend/internal/auth"
)

var _ sessionPublisher = &sessionPublisherMock{}

type sessionPublisherMock struct {
	PublishFunc func(ctx context.Context, ev auth.SessionEvent)

	calls struct {
		Publish []struct {
			Ctx context.Context
			Ev  auth.SessionEvent
		}
	}
	lockPublish sync.RWMutex
}

func (mock *sessionPublisherMock) Publish(ctx context.Context, ev auth.SessionEvent) {
	if mock.PublishFunc == nil {
		panic("sessionPublisherMock.PublishFunc: method is nil but sessionPublisher.Publish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  auth.SessionEvent
	}{Ctx: ctx, Ev: ev}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	mock.PublishFunc(ctx, ev)
}

func (mock *sessionPublisherMock) PublishCalls() []struct {
	Ctx context.Context
	Ev  auth.SessionEvent
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
