package database

import (
	"context"
	"errors"
	"testing"
)

type fakeTx struct {
	Querier
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	DB
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) Begin(context.Context) (Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func TestWithTx_Commits(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{}}
	if err := WithTx(context.Background(), db, func(Tx) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !db.tx.committed || db.tx.rolledBack {
		t.Fatalf("expected commit only, got committed=%v rolledBack=%v", db.tx.committed, db.tx.rolledBack)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{}}
	boom := errors.New("boom")
	err := WithTx(context.Background(), db, func(Tx) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if db.tx.committed || !db.tx.rolledBack {
		t.Fatalf("expected rollback only, got committed=%v rolledBack=%v", db.tx.committed, db.tx.rolledBack)
	}
}

func TestWithTx_BeginAndCommitErrors(t *testing.T) {
	boom := errors.New("boom")

	err := WithTx(context.Background(), &fakeDB{beginErr: boom}, func(Tx) error {
		t.Fatalf("fn must not run when begin fails")
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected begin error, got %v", err)
	}

	db := &fakeDB{tx: &fakeTx{commitErr: boom}}
	if err := WithTx(context.Background(), db, func(Tx) error { return nil }); !errors.Is(err, boom) {
		t.Fatalf("expected commit error, got %v", err)
	}

	if err := WithTx(context.Background(), nil, func(Tx) error { return nil }); !errors.Is(err, ErrNoDB) {
		t.Fatalf("expected ErrNoDB, got %v", err)
	}
}
