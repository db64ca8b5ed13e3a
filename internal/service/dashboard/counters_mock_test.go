package dashboard

import (
	"context"
	"sync"
)

var _ categoryCounter = &categoryCounterMock{}

type categoryCounterMock struct {
	CountCategoriesFunc func(ctx context.Context, ownerID string) (int, error)

	calls struct {
		CountCategories []struct {
			Ctx     context.Context
			OwnerID string
		}
	}
	lockCountCategories sync.RWMutex
}

func (mock *categoryCounterMock) CountCategories(ctx context.Context, ownerID string) (int, error) {
	if mock.CountCategoriesFunc == nil {
		panic("categoryCounterMock.CountCategoriesFunc: method is nil but categoryCounter.CountCategories was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID string
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCountCategories.Lock()
	mock.calls.CountCategories = append(mock.calls.CountCategories, callInfo)
	mock.lockCountCategories.Unlock()
	return mock.CountCategoriesFunc(ctx, ownerID)
}

func (mock *categoryCounterMock) CountCategoriesCalls() []struct {
	Ctx     context.Context
	OwnerID string
} {
	mock.lockCountCategories.RLock()
	calls := mock.calls.CountCategories
	mock.lockCountCategories.RUnlock()
	return calls
}

var _ ownerCounter = &ownerCounterMock{}

type ownerCounterMock struct {
	CountFunc func(ctx context.Context, ownerID string) (int, error)

	calls struct {
		Count []struct {
			Ctx     context.Context
			OwnerID string
		}
	}
	lockCount sync.RWMutex
}

func (mock *ownerCounterMock) Count(ctx context.Context, ownerID string) (int, error) {
	if mock.CountFunc == nil {
		panic("ownerCounterMock.CountFunc: method is nil but ownerCounter.Count was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID string
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, ownerID)
}

func (mock *ownerCounterMock) CountCalls() []struct {
	Ctx     context.Context
	OwnerID string
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ tourCounter = &tourCounterMock{}

type tourCounterMock struct {
	CountToursFunc func(ctx context.Context) (int, error)

	calls struct {
		CountTours []struct {
			Ctx context.Context
		}
	}
	lockCountTours sync.RWMutex
}

func (mock *tourCounterMock) CountTours(ctx context.Context) (int, error) {
	if mock.CountToursFunc == nil {
		panic("tourCounterMock.CountToursFunc: method is nil but tourCounter.CountTours was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountTours.Lock()
	mock.calls.CountTours = append(mock.calls.CountTours, callInfo)
	mock.lockCountTours.Unlock()
	return mock.CountToursFunc(ctx)
}

func (mock *tourCounterMock) CountToursCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountTours.RLock()
	calls := mock.calls.CountTours
	mock.lockCountTours.RUnlock()
	return calls
}
