package scope_test

import (
	"errors"
	"testing"
	"time"

	"smart-todo-backend/pkg/scope"
)

func TestManager(t *testing.T) {
	m := scope.NewManager("test-secret", time.Hour)

	t.Run("Round Trip", func(t *testing.T) {
		token, err := m.Generate(scope.Payload{UserID: "u-1", Email: "a@b.c"})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		payload, err := m.Verify(token)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if payload.UserID != "u-1" || payload.Email != "a@b.c" {
			t.Errorf("unexpected payload: %+v", payload)
		}
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := scope.NewManager("other-secret", time.Hour)
		token, _ := other.Generate(scope.Payload{UserID: "u-1"})

		if _, err := m.Verify(token); !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		short := scope.NewManager("test-secret", -time.Minute)
		token, _ := short.Generate(scope.Payload{UserID: "u-1"})

		if _, err := m.Verify(token); !errors.Is(err, scope.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("Garbage Token", func(t *testing.T) {
		if _, err := m.Verify("not-a-token"); !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
