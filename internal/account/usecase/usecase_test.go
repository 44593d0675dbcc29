package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/greenlegacy/greenlegacy/internal/account/entity"
	"github.com/greenlegacy/greenlegacy/internal/pkg/clock"
	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/pkg/hash"
	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
	"github.com/greenlegacy/greenlegacy/internal/pkg/jwt"
	"github.com/greenlegacy/greenlegacy/internal/pkg/validator"
)

type fakeRepo struct {
	users map[string]entity.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]entity.User{}}
}

func (f *fakeRepo) CreateUser(_ context.Context, user entity.User) error {
	if _, ok := f.users[user.Email]; ok {
		return goerror.ErrConflict
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &user, nil
}

type sequenceID struct {
	next int64
}

func (s *sequenceID) Generate() int64 {
	s.next++
	return s.next
}

func newTestUsecase(t *testing.T) (*Usecase, *fakeRepo) {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("build validator: %v", err)
	}

	fixed := &clock.Fixed{Time: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)}

	signer, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:    "greenlegacy-test",
		TTLByRole: map[string]time.Duration{jwt.RoleSupporter: time.Hour},
		Clock:     clock.New(),
		UUID:      staticUUID{},
	})
	if err != nil {
		t.Fatalf("build jwt: %v", err)
	}

	repo := newFakeRepo()
	uc := New(Dependency{
		RepoDB:     repo,
		Validator:  v10,
		Bcrypt:     hash.NewBcrypt(4, ""),
		UID:        &sequenceID{},
		Clock:      fixed,
		JWT:        signer,
		Instrument: instrument.NewNoop(),
	})

	return uc, repo
}

type staticUUID struct{}

func (staticUUID) Generate() string { return "11111111-2222-3333-4444-555555555555" }

func TestSignup(t *testing.T) {

	t.Run("Success", func(t *testing.T) {

		// Arrange
		uc, repo := newTestUsecase(t)

		// Act
		err := uc.Signup(context.Background(), SignupInput{
			Name:     "  Jane Donor ",
			Email:    "Jane@Example.com",
			Password: "green-legacy-1",
		})

		// Assert
		if err != nil {
			t.Fatalf("signup: %v", err)
		}
		user, ok := repo.users["jane@example.com"]
		if !ok {
			t.Fatalf("expected the email to be stored lowercased")
		}
		if user.Name != "Jane Donor" {
			t.Fatalf("expected the name to be trimmed, got %q", user.Name)
		}
		if user.Password == "green-legacy-1" {
			t.Fatalf("expected the password to be hashed")
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t)
		in := SignupInput{Name: "Jane", Email: "jane@example.com", Password: "green-legacy-1"}
		if err := uc.Signup(context.Background(), in); err != nil {
			t.Fatalf("first signup: %v", err)
		}

		// Act
		err := uc.Signup(context.Background(), in)

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
		if gerr.Msg() != "Email already registered" {
			t.Fatalf("unexpected message %q", gerr.Msg())
		}
	})

	t.Run("ShortPassword", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t)

		// Act
		err := uc.Signup(context.Background(), SignupInput{Name: "Jane", Email: "jane@example.com", Password: "short"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeInvalidInput {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {

	t.Run("Success", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t)
		if err := uc.Signup(context.Background(), SignupInput{Name: "Jane", Email: "jane@example.com", Password: "green-legacy-1"}); err != nil {
			t.Fatalf("signup: %v", err)
		}

		// Act
		out, err := uc.Login(context.Background(), LoginInput{Email: "Jane@Example.com", Password: "green-legacy-1"})

		// Assert
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if out.Token == "" {
			t.Fatalf("expected a session token")
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t)

		// Act
		_, err := uc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "green-legacy-1"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Msg() != "Invalid email or password" {
			t.Fatalf("expected credential rejection, got %v", err)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t)
		if err := uc.Signup(context.Background(), SignupInput{Name: "Jane", Email: "jane@example.com", Password: "green-legacy-1"}); err != nil {
			t.Fatalf("signup: %v", err)
		}

		// Act
		_, err := uc.Login(context.Background(), LoginInput{Email: "jane@example.com", Password: "green-legacy-2"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Msg() != "Invalid email or password" {
			t.Fatalf("expected credential rejection, got %v", err)
		}
	})
}

func TestProfile(t *testing.T) {

	t.Run("Unauthenticated", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t)

		// Act
		_, err := uc.Profile(context.Background())

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("Success", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t)
		if err := uc.Signup(context.Background(), SignupInput{Name: "Jane", Email: "jane@example.com", Password: "green-legacy-1"}); err != nil {
			t.Fatalf("signup: %v", err)
		}
		ctx := jwt.SetAuth(context.Background(), jwt.Claims{Email: "jane@example.com", Role: jwt.RoleSupporter})

		// Act
		out, err := uc.Profile(ctx)

		// Assert
		if err != nil {
			t.Fatalf("profile: %v", err)
		}
		if out.Name != "Jane" || out.Email != "jane@example.com" {
			t.Fatalf("unexpected profile: %+v", out)
		}
	})

	t.Run("AccountGone", func(t *testing.T) {

		// Arrange
		uc, _ := newTestUsecase(t)
		ctx := jwt.SetAuth(context.Background(), jwt.Claims{Email: "ghost@example.com", Role: jwt.RoleSupporter})

		// Act
		_, err := uc.Profile(ctx)

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}
