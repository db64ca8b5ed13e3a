package tour

import (
	"context"
	"sync"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	tourrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/tour"
)

var _ tourRepo = &tourRepoMock{}

type tourRepoMock struct {
	ListToursFunc           func(ctx context.Context) ([]domain.Tour, error)
	GetTourFunc             func(ctx context.Context, id string) (*domain.Tour, error)
	CreateTourFunc          func(ctx context.Context, t *domain.Tour) (*domain.Tour, error)
	UpdateTourFunc          func(ctx context.Context, id string, ch tourrepo.TourChanges) (*domain.Tour, error)
	DeleteTourFunc          func(ctx context.Context, id string) error
	ListArtistsFunc         func(ctx context.Context, tourID string) ([]domain.TourArtist, error)
	GetArtistFunc           func(ctx context.Context, id string) (*domain.TourArtist, error)
	CreateArtistFunc        func(ctx context.Context, a *domain.TourArtist) (*domain.TourArtist, error)
	UpdateArtistFunc        func(ctx context.Context, id string, ch tourrepo.ArtistChanges) (*domain.TourArtist, error)
	DeleteArtistFunc        func(ctx context.Context, id string) error
	DeleteArtistsByTourFunc func(ctx context.Context, tourID string) (int64, error)

	calls struct {
		ListTours []struct {
			Ctx context.Context
		}
		GetTour []struct {
			Ctx context.Context
			ID  string
		}
		CreateTour []struct {
			Ctx context.Context
			T   *domain.Tour
		}
		UpdateTour []struct {
			Ctx context.Context
			ID  string
			Ch  tourrepo.TourChanges
		}
		DeleteTour []struct {
			Ctx context.Context
			ID  string
		}
		ListArtists []struct {
			Ctx    context.Context
			TourID string
		}
		GetArtist []struct {
			Ctx context.Context
			ID  string
		}
		CreateArtist []struct {
			Ctx context.Context
			A   *domain.TourArtist
		}
		UpdateArtist []struct {
			Ctx context.Context
			ID  string
			Ch  tourrepo.ArtistChanges
		}
		DeleteArtist []struct {
			Ctx context.Context
			ID  string
		}
		DeleteArtistsByTour []struct {
			Ctx    context.Context
			TourID string
		}
	}
	lockListTours           sync.RWMutex
	lockGetTour             sync.RWMutex
	lockCreateTour          sync.RWMutex
	lockUpdateTour          sync.RWMutex
	lockDeleteTour          sync.RWMutex
	lockListArtists         sync.RWMutex
	lockGetArtist           sync.RWMutex
	lockCreateArtist        sync.RWMutex
	lockUpdateArtist        sync.RWMutex
	lockDeleteArtist        sync.RWMutex
	lockDeleteArtistsByTour sync.RWMutex
}

func (mock *tourRepoMock) ListTours(ctx context.Context) ([]domain.Tour, error) {
	if mock.ListToursFunc == nil {
		panic("tourRepoMock.ListToursFunc: method is nil but tourRepo.ListTours was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTours.Lock()
	mock.calls.ListTours = append(mock.calls.ListTours, callInfo)
	mock.lockListTours.Unlock()
	return mock.ListToursFunc(ctx)
}

func (mock *tourRepoMock) ListToursCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTours.RLock()
	calls := mock.calls.ListTours
	mock.lockListTours.RUnlock()
	return calls
}

func (mock *tourRepoMock) GetTour(ctx context.Context, id string) (*domain.Tour, error) {
	if mock.GetTourFunc == nil {
		panic("tourRepoMock.GetTourFunc: method is nil but tourRepo.GetTour was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetTour.Lock()
	mock.calls.GetTour = append(mock.calls.GetTour, callInfo)
	mock.lockGetTour.Unlock()
	return mock.GetTourFunc(ctx, id)
}

func (mock *tourRepoMock) GetTourCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetTour.RLock()
	calls := mock.calls.GetTour
	mock.lockGetTour.RUnlock()
	return calls
}

func (mock *tourRepoMock) CreateTour(ctx context.Context, t *domain.Tour) (*domain.Tour, error) {
	if mock.CreateTourFunc == nil {
		panic("tourRepoMock.CreateTourFunc: method is nil but tourRepo.CreateTour was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Tour
	}{Ctx: ctx, T: t}
	mock.lockCreateTour.Lock()
	mock.calls.CreateTour = append(mock.calls.CreateTour, callInfo)
	mock.lockCreateTour.Unlock()
	return mock.CreateTourFunc(ctx, t)
}

func (mock *tourRepoMock) CreateTourCalls() []struct {
	Ctx context.Context
	T   *domain.Tour
} {
	mock.lockCreateTour.RLock()
	calls := mock.calls.CreateTour
	mock.lockCreateTour.RUnlock()
	return calls
}

func (mock *tourRepoMock) UpdateTour(ctx context.Context, id string, ch tourrepo.TourChanges) (*domain.Tour, error) {
	if mock.UpdateTourFunc == nil {
		panic("tourRepoMock.UpdateTourFunc: method is nil but tourRepo.UpdateTour was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		Ch  tourrepo.TourChanges
	}{Ctx: ctx, ID: id, Ch: ch}
	mock.lockUpdateTour.Lock()
	mock.calls.UpdateTour = append(mock.calls.UpdateTour, callInfo)
	mock.lockUpdateTour.Unlock()
	return mock.UpdateTourFunc(ctx, id, ch)
}

func (mock *tourRepoMock) UpdateTourCalls() []struct {
	Ctx context.Context
	ID  string
	Ch  tourrepo.TourChanges
} {
	mock.lockUpdateTour.RLock()
	calls := mock.calls.UpdateTour
	mock.lockUpdateTour.RUnlock()
	return calls
}

func (mock *tourRepoMock) DeleteTour(ctx context.Context, id string) error {
	if mock.DeleteTourFunc == nil {
		panic("tourRepoMock.DeleteTourFunc: method is nil but tourRepo.DeleteTour was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDeleteTour.Lock()
	mock.calls.DeleteTour = append(mock.calls.DeleteTour, callInfo)
	mock.lockDeleteTour.Unlock()
	return mock.DeleteTourFunc(ctx, id)
}

func (mock *tourRepoMock) DeleteTourCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteTour.RLock()
	calls := mock.calls.DeleteTour
	mock.lockDeleteTour.RUnlock()
	return calls
}

func (mock *tourRepoMock) ListArtists(ctx context.Context, tourID string) ([]domain.TourArtist, error) {
	if mock.ListArtistsFunc == nil {
		panic("tourRepoMock.ListArtistsFunc: method is nil but tourRepo.ListArtists was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TourID string
	}{Ctx: ctx, TourID: tourID}
	mock.lockListArtists.Lock()
	mock.calls.ListArtists = append(mock.calls.ListArtists, callInfo)
	mock.lockListArtists.Unlock()
	return mock.ListArtistsFunc(ctx, tourID)
}

func (mock *tourRepoMock) ListArtistsCalls() []struct {
	Ctx    context.Context
	TourID string
} {
	mock.lockListArtists.RLock()
	calls := mock.calls.ListArtists
	mock.lockListArtists.RUnlock()
	return calls
}

func (mock *tourRepoMock) GetArtist(ctx context.Context, id string) (*domain.TourArtist, error) {
	if mock.GetArtistFunc == nil {
		panic("tourRepoMock.GetArtistFunc: method is nil but tourRepo.GetArtist was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetArtist.Lock()
	mock.calls.GetArtist = append(mock.calls.GetArtist, callInfo)
	mock.lockGetArtist.Unlock()
	return mock.GetArtistFunc(ctx, id)
}

func (mock *tourRepoMock) GetArtistCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetArtist.RLock()
	calls := mock.calls.GetArtist
	mock.lockGetArtist.RUnlock()
	return calls
}

func (mock *tourRepoMock) CreateArtist(ctx context.Context, a *domain.TourArtist) (*domain.TourArtist, error) {
	if mock.CreateArtistFunc == nil {
		panic("tourRepoMock.CreateArtistFunc: method is nil but tourRepo.CreateArtist was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.TourArtist
	}{Ctx: ctx, A: a}
	mock.lockCreateArtist.Lock()
	mock.calls.CreateArtist = append(mock.calls.CreateArtist, callInfo)
	mock.lockCreateArtist.Unlock()
	return mock.CreateArtistFunc(ctx, a)
}

func (mock *tourRepoMock) CreateArtistCalls() []struct {
	Ctx context.Context
	A   *domain.TourArtist
} {
	mock.lockCreateArtist.RLock()
	calls := mock.calls.CreateArtist
	mock.lockCreateArtist.RUnlock()
	return calls
}

func (mock *tourRepoMock) UpdateArtist(ctx context.Context, id string, ch tourrepo.ArtistChanges) (*domain.TourArtist, error) {
	if mock.UpdateArtistFunc == nil {
		panic("tourRepoMock.UpdateArtistFunc: method is nil but tourRepo.UpdateArtist was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		Ch  tourrepo.ArtistChanges
	}{Ctx: ctx, ID: id, Ch: ch}
	mock.lockUpdateArtist.Lock()
	mock.calls.UpdateArtist = append(mock.calls.UpdateArtist, callInfo)
	mock.lockUpdateArtist.Unlock()
	return mock.UpdateArtistFunc(ctx, id, ch)
}

func (mock *tourRepoMock) UpdateArtistCalls() []struct {
	Ctx context.Context
	ID  string
	Ch  tourrepo.ArtistChanges
} {
	mock.lockUpdateArtist.RLock()
	calls := mock.calls.UpdateArtist
	mock.lockUpdateArtist.RUnlock()
	return calls
}

func (mock *tourRepoMock) DeleteArtist(ctx context.Context, id string) error {
	if mock.DeleteArtistFunc == nil {
		panic("tourRepoMock.DeleteArtistFunc: method is nil but tourRepo.DeleteArtist was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDeleteArtist.Lock()
	mock.calls.DeleteArtist = append(mock.calls.DeleteArtist, callInfo)
	mock.lockDeleteArtist.Unlock()
	return mock.DeleteArtistFunc(ctx, id)
}

func (mock *tourRepoMock) DeleteArtistCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteArtist.RLock()
	calls := mock.calls.DeleteArtist
	mock.lockDeleteArtist.RUnlock()
	return calls
}

func (mock *tourRepoMock) DeleteArtistsByTour(ctx context.Context, tourID string) (int64, error) {
	if mock.DeleteArtistsByTourFunc == nil {
		panic("tourRepoMock.DeleteArtistsByTourFunc: method is nil but tourRepo.DeleteArtistsByTour was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TourID string
	}{Ctx: ctx, TourID: tourID}
	mock.lockDeleteArtistsByTour.Lock()
	mock.calls.DeleteArtistsByTour = append(mock.calls.DeleteArtistsByTour, callInfo)
	mock.lockDeleteArtistsByTour.Unlock()
	return mock.DeleteArtistsByTourFunc(ctx, tourID)
}

func (mock *tourRepoMock) DeleteArtistsByTourCalls() []struct {
	Ctx    context.Context
	TourID string
} {
	mock.lockDeleteArtistsByTour.RLock()
	calls := mock.calls.DeleteArtistsByTour
	mock.lockDeleteArtistsByTour.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
