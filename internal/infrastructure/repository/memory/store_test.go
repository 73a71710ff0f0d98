package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/match"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/outcome"
	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

func TestStore_WithinTx_RollsBackOnError(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(ctx context.Context, uow usecase.UnitOfWork) error {
		created, err := uow.Matches().Create(ctx, match.Match{Number: 1, Date: time.Now()})
		if err != nil || !created {
			t.Fatalf("create inside tx: created=%v err=%v", created, err)
		}
		if err := uow.Outcomes().Create(ctx, outcome.Outcome{MatchNumber: 1, Winner: "India"}); err != nil {
			t.Fatalf("outcome inside tx: %v", err)
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	err = store.WithinTx(ctx, func(ctx context.Context, uow usecase.UnitOfWork) error {
		exists, err := uow.Matches().Exists(ctx, 1)
		if err != nil {
			return err
		}
		if exists {
			t.Fatal("expected rolled back match to be absent")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("verify tx: %v", err)
	}
}

func TestStore_WithinTx_CommitsOnSuccess(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	err := store.WithinTx(ctx, func(ctx context.Context, uow usecase.UnitOfWork) error {
		_, err := uow.Matches().Create(ctx, match.Match{Number: 7, Date: time.Now()})
		return err
	})
	if err != nil {
		t.Fatalf("commit tx: %v", err)
	}

	err = store.WithinTx(ctx, func(ctx context.Context, uow usecase.UnitOfWork) error {
		exists, err := uow.Matches().Exists(ctx, 7)
		if err != nil {
			return err
		}
		if !exists {
			t.Fatal("expected committed match to be visible")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("verify tx: %v", err)
	}
}

func TestStore_CreateMatch_DuplicateNumber(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for i, want := range []bool{true, false} {
		err := store.WithinTx(ctx, func(ctx context.Context, uow usecase.UnitOfWork) error {
			created, err := uow.Matches().Create(ctx, match.Match{Number: 3, Date: time.Now()})
			if err != nil {
				return err
			}
			if created != want {
				t.Fatalf("attempt %d: created=%v, want %v", i, created, want)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}
}
