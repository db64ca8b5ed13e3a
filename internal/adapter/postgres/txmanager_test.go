package postgres_test

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/tourcrew-backend/internal/adapter/postgres"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func expectationsMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRunInTx_Commit(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM documents`).WithArgs("tours").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	tm := postgres.NewTxManager(mock)
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if !postgres.InTx(ctx) {
			t.Error("expected ctx to carry a transaction")
		}
		q := postgres.QuerierFromCtx(ctx, mock)
		_, err := q.Exec(ctx, `DELETE FROM documents WHERE collection = $1`, "tours")
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	expectationsMet(t, mock)
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("business logic error")
	tm := postgres.NewTxManager(mock)
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	expectationsMet(t, mock)
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	tm := postgres.NewTxManager(mock)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}
		expectationsMet(t, mock)
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		panic("test panic")
	})
}

func TestRunInTx_BeginFails(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	tm := postgres.NewTxManager(mock)
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	if err == nil {
		t.Fatal("expected error when Begin fails")
	}
	if called {
		t.Error("fn must not run when Begin fails")
	}
	expectationsMet(t, mock)
}

func TestRunInTx_CommitFails(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("commit refused"))

	tm := postgres.NewTxManager(mock)
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error { return nil })

	if err == nil {
		t.Fatal("expected error when Commit fails")
	}
	expectationsMet(t, mock)
}

func TestRunInTx_NestedJoinsOuter(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	tm := postgres.NewTxManager(mock)
	err := tm.RunInTx(context.Background(), func(outer context.Context) error {
		return tm.RunInTx(outer, func(inner context.Context) error {
			if postgres.QuerierFromCtx(inner, mock) != postgres.QuerierFromCtx(outer, mock) {
				t.Error("nested RunInTx should reuse the outer transaction")
			}
			return nil
		})
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	expectationsMet(t, mock)
}

func TestQuerierFromCtx_NoTx(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	if postgres.InTx(context.Background()) {
		t.Error("background context should not carry a transaction")
	}
	if q := postgres.QuerierFromCtx(context.Background(), mock); q != mock {
		t.Error("expected the fallback querier outside a transaction")
	}
}
