package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/greenlegacy/greenlegacy/internal/adminauth/entity"
	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
)

func TestMemory(t *testing.T) {
	issued := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	t.Run("GetMissing", func(t *testing.T) {

		// Arrange
		mem := NewMemory(instrument.NewNoop())

		// Act
		_, err := mem.Get(context.Background(), "admin@greenlegacy.org")

		// Assert
		if !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("PutThenGet", func(t *testing.T) {

		// Arrange
		mem := NewMemory(instrument.NewNoop())
		ch := entity.Challenge{Email: "admin@greenlegacy.org", Code: "123456", IssuedAt: issued}

		// Act
		if err := mem.Put(context.Background(), ch); err != nil {
			t.Fatalf("put: %v", err)
		}
		got, err := mem.Get(context.Background(), ch.Email)

		// Assert
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Code != ch.Code || !got.IssuedAt.Equal(issued) || got.Attempts != 0 {
			t.Fatalf("unexpected challenge: %+v", got)
		}
	})

	t.Run("PutReplaces", func(t *testing.T) {

		// Arrange
		mem := NewMemory(instrument.NewNoop())
		if err := mem.Put(context.Background(), entity.Challenge{Email: "a@b.c", Code: "111111", IssuedAt: issued}); err != nil {
			t.Fatalf("put: %v", err)
		}
		if err := mem.AddAttempt(context.Background(), "a@b.c"); err != nil {
			t.Fatalf("add attempt: %v", err)
		}

		// Act
		if err := mem.Put(context.Background(), entity.Challenge{Email: "a@b.c", Code: "222222", IssuedAt: issued.Add(time.Minute)}); err != nil {
			t.Fatalf("put: %v", err)
		}

		// Assert
		got, err := mem.Get(context.Background(), "a@b.c")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Code != "222222" || got.Attempts != 0 {
			t.Fatalf("expected the replacement to reset the challenge, got %+v", got)
		}
	})

	t.Run("AddAttempt", func(t *testing.T) {

		// Arrange
		mem := NewMemory(instrument.NewNoop())
		if err := mem.Put(context.Background(), entity.Challenge{Email: "a@b.c", Code: "111111", IssuedAt: issued}); err != nil {
			t.Fatalf("put: %v", err)
		}

		// Act
		for i := 0; i < 2; i++ {
			if err := mem.AddAttempt(context.Background(), "a@b.c"); err != nil {
				t.Fatalf("add attempt: %v", err)
			}
		}

		// Assert
		got, err := mem.Get(context.Background(), "a@b.c")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Attempts != 2 {
			t.Fatalf("expected 2 attempts, got %d", got.Attempts)
		}
	})

	t.Run("AddAttemptMissing", func(t *testing.T) {

		// Arrange
		mem := NewMemory(instrument.NewNoop())

		// Act
		err := mem.AddAttempt(context.Background(), "a@b.c")

		// Assert
		if !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {

		// Arrange
		mem := NewMemory(instrument.NewNoop())
		if err := mem.Put(context.Background(), entity.Challenge{Email: "a@b.c", Code: "111111", IssuedAt: issued}); err != nil {
			t.Fatalf("put: %v", err)
		}

		// Act
		if err := mem.Delete(context.Background(), "a@b.c"); err != nil {
			t.Fatalf("delete: %v", err)
		}

		// Assert
		if _, err := mem.Get(context.Background(), "a@b.c"); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected not found after delete, got %v", err)
		}
	})
}
