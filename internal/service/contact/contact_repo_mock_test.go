package contact

import (
	"context"
	"sync"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	contactrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/contact"
)

var _ contactRepo = &contactRepoMock{}

type contactRepoMock struct {
	ListFunc   func(ctx context.Context, ownerID string, f contactrepo.Filter) ([]domain.Contact, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Contact, error)
	CreateFunc func(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	UpdateFunc func(ctx context.Context, id string, ch contactrepo.Changes) (*domain.Contact, error)
	DeleteFunc func(ctx context.Context, id string) error

	calls struct {
		List []struct {
			Ctx     context.Context
			OwnerID string
			F       contactrepo.Filter
		}
		Get []struct {
			Ctx context.Context
			ID  string
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Contact
		}
		Update []struct {
			Ctx context.Context
			ID  string
			Ch  contactrepo.Changes
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

func (mock *contactRepoMock) List(ctx context.Context, ownerID string, f contactrepo.Filter) ([]domain.Contact, error) {
	if mock.ListFunc == nil {
		panic("contactRepoMock.ListFunc: method is nil but contactRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID string
		F       contactrepo.Filter
	}{Ctx: ctx, OwnerID: ownerID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, f)
}

func (mock *contactRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID string
	F       contactrepo.Filter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *contactRepoMock) Get(ctx context.Context, id string) (*domain.Contact, error) {
	if mock.GetFunc == nil {
		panic("contactRepoMock.GetFunc: method is nil but contactRepo.Get was just called")
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

func (mock *contactRepoMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *contactRepoMock) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	if mock.CreateFunc == nil {
		panic("contactRepoMock.CreateFunc: method is nil but contactRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Contact
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *contactRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Contact
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contactRepoMock) Update(ctx context.Context, id string, ch contactrepo.Changes) (*domain.Contact, error) {
	if mock.UpdateFunc == nil {
		panic("contactRepoMock.UpdateFunc: method is nil but contactRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		Ch  contactrepo.Changes
	}{Ctx: ctx, ID: id, Ch: ch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, ch)
}

func (mock *contactRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  string
	Ch  contactrepo.Changes
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *contactRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("contactRepoMock.DeleteFunc: method is nil but contactRepo.Delete was just called")
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

func (mock *contactRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
