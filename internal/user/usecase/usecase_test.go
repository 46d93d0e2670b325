package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/user"
	repo "smart-todo-backend/internal/user/repository"
	"smart-todo-backend/internal/user/usecase"
	"smart-todo-backend/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	users map[string]model.User
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	u := model.User{ID: opt.ID, Email: opt.Email, PasswordHash: opt.PasswordHash, FullName: opt.FullName}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	for _, u := range m.users {
		if opt.ID != "" && u.ID != opt.ID {
			continue
		}
		if opt.Email != "" && u.Email != opt.Email {
			continue
		}
		return u, nil
	}
	return model.User{}, nil
}

func newTestUseCase(r *mockRepo) user.UseCase {
	if r.users == nil {
		r.users = map[string]model.User{}
	}
	return usecase.New(r, scope.NewManager("test-secret", time.Hour), &mockLogger{})
}

func TestRegister(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(r)

	out, err := uc.Register(context.Background(), user.RegisterInput{
		Email:    "  Alice@Example.com ",
		Password: "s3cret-pass",
		FullName: "Alice Doe",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.Email != "alice@example.com" {
		t.Errorf("Email = %q, want lowercased and trimmed", out.User.Email)
	}
	if out.Token == "" {
		t.Error("expected a signed token")
	}
	if out.User.PasswordHash == "s3cret-pass" {
		t.Error("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(out.User.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := &mockRepo{users: map[string]model.User{
		"u1": {ID: "u1", Email: "alice@example.com"},
	}}
	uc := newTestUseCase(r)

	_, err := uc.Register(context.Background(), user.RegisterInput{Email: "ALICE@example.com", Password: "whatever"})
	if !errors.Is(err, user.ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	r := &mockRepo{users: map[string]model.User{
		"u1": {ID: "u1", Email: "alice@example.com", PasswordHash: string(hash)},
	}}
	uc := newTestUseCase(r)

	out, err := uc.Login(context.Background(), user.LoginInput{Email: "alice@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Token == "" {
		t.Error("expected a signed token")
	}
	if out.User.ID != "u1" {
		t.Errorf("User.ID = %q, want u1", out.User.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	r := &mockRepo{users: map[string]model.User{
		"u1": {ID: "u1", Email: "alice@example.com", PasswordHash: string(hash)},
	}}
	uc := newTestUseCase(r)

	_, err := uc.Login(context.Background(), user.LoginInput{Email: "alice@example.com", Password: "wrong"})
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	_, err := uc.Login(context.Background(), user.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestMe(t *testing.T) {
	r := &mockRepo{users: map[string]model.User{
		"u1": {ID: "u1", Email: "alice@example.com", FullName: "Alice Doe"},
	}}
	uc := newTestUseCase(r)

	out, err := uc.Me(context.Background(), model.Scope{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.FullName != "Alice Doe" {
		t.Errorf("FullName = %q, want Alice Doe", out.User.FullName)
	}
}

func TestMeNotFound(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})

	if _, err := uc.Me(context.Background(), model.Scope{UserID: "missing"}); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
