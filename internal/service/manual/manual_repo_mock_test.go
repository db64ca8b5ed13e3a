package manual

import (
	"context"
	"sync"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

var _ manualRepo = &manualRepoMock{}

type manualRepoMock struct {
	ListFunc   func(ctx context.Context, ownerID string) ([]domain.Manual, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Manual, error)
	CreateFunc func(ctx context.Context, m *domain.Manual) (*domain.Manual, error)
	UpdateFunc func(ctx context.Context, id string, title string, link string) (*domain.Manual, error)
	DeleteFunc func(ctx context.Context, id string) error

	calls struct {
		List []struct {
			Ctx     context.Context
			OwnerID string
		}
		Get []struct {
			Ctx context.Context
			ID  string
		}
		Create []struct {
			Ctx context.Context
			M   *domain.Manual
		}
		Update []struct {
			Ctx   context.Context
			ID    string
			Title string
			Link  string
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *manualRepoMock) List(ctx context.Context, ownerID string) ([]domain.Manual, error) {
	if mock.ListFunc == nil {
		panic("manualRepoMock.ListFunc: method is nil but manualRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID string
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID)
}

func (mock *manualRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *manualRepoMock) Get(ctx context.Context, id string) (*domain.Manual, error) {
	if mock.GetFunc == nil {
		panic("manualRepoMock.GetFunc: method is nil but manualRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *manualRepoMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *manualRepoMock) Create(ctx context.Context, m *domain.Manual) (*domain.Manual, error) {
	if mock.CreateFunc == nil {
		panic("manualRepoMock.CreateFunc: method is nil but manualRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Manual
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *manualRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Manual
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *manualRepoMock) Update(ctx context.Context, id string, title string, link string) (*domain.Manual, error) {
	if mock.UpdateFunc == nil {
		panic("manualRepoMock.UpdateFunc: method is nil but manualRepo.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Title string
		Link  string
	}{Ctx: ctx, ID: id, Title: title, Link: link}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, title, link)
}

func (mock *manualRepoMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    string
	Title string
	Link  string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *manualRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("manualRepoMock.DeleteFunc: method is nil but manualRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *manualRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
