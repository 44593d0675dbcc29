package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/greenlegacy/greenlegacy/internal/adminauth/outbound/store"
	"github.com/greenlegacy/greenlegacy/internal/pkg/clock"
	"github.com/greenlegacy/greenlegacy/internal/pkg/config"
	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
	"github.com/greenlegacy/greenlegacy/internal/pkg/jwt"
	"github.com/greenlegacy/greenlegacy/internal/pkg/mail"
	"github.com/greenlegacy/greenlegacy/internal/pkg/uid"
	"github.com/greenlegacy/greenlegacy/internal/pkg/validator"
)

const testConfigYAML = `
admin:
  email: admin@greenlegacy.org
  password: plant-a-tree
modules:
  adminauth:
    otp_ttl_minutes: 5
    max_attempts: 3
`

// minimalConfigYAML leaves the code lifetime and attempt cap unset so the
// built-in fallbacks apply.
const minimalConfigYAML = `
admin:
  email: admin@greenlegacy.org
  password: plant-a-tree
`

var codePattern = regexp.MustCompile(`\b[0-9]{6}\b`)

type fakeMailer struct {
	messages []mail.Message
	err      error
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeMailer) Close() error { return nil }

// lastCode extracts the one-time code from the most recent email.
func (f *fakeMailer) lastCode(t *testing.T) string {
	t.Helper()
	if len(f.messages) == 0 {
		t.Fatalf("expected at least one email to have been sent")
	}
	code := codePattern.FindString(f.messages[len(f.messages)-1].TextBody)
	if code == "" {
		t.Fatalf("expected a 6 digit code in the email body")
	}
	return code
}

type fixture struct {
	uc     *Usecase
	mailer *fakeMailer
	clock  *clock.Fixed
	store  *store.Memory
	jwt    jwt.JWT
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithConfig(t, testConfigYAML)
}

func newFixtureWithConfig(t *testing.T, configYAML string) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(configYAML))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("build validator: %v", err)
	}

	fixed := &clock.Fixed{Time: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)}

	signer, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:    "greenlegacy-test",
		TTLByRole: map[string]time.Duration{jwt.RoleAdmin: 24 * time.Hour},
		Clock:     fixed,
		UUID:      uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("build jwt: %v", err)
	}

	ins := instrument.NewNoop()
	mailer := &fakeMailer{}
	mem := store.NewMemory(ins)

	uc := New(Dependency{
		Store:      mem,
		Mailer:     mailer,
		Config:     cfg,
		Validator:  v10,
		Clock:      fixed,
		JWT:        signer,
		Instrument: ins,
	})

	return &fixture{uc: uc, mailer: mailer, clock: fixed, store: mem, jwt: signer}
}

func (f *fixture) requestOTP(t *testing.T) string {
	t.Helper()
	err := f.uc.RequestOTP(context.Background(), RequestOTPInput{
		Email:    "admin@greenlegacy.org",
		Password: "plant-a-tree",
	})
	if err != nil {
		t.Fatalf("request otp: %v", err)
	}
	return f.mailer.lastCode(t)
}

func assertBusiness(t *testing.T, err error, msg string, code goerror.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", msg)
	}
	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected a domain error, got %v", err)
	}
	if gerr.Msg() != msg {
		t.Fatalf("expected message %q, got %q", msg, gerr.Msg())
	}
	if gerr.Code() != code {
		t.Fatalf("expected code %v, got %v", code, gerr.Code())
	}
}

func TestRequestOTP(t *testing.T) {

	t.Run("InvalidCredentials", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		err := f.uc.RequestOTP(context.Background(), RequestOTPInput{
			Email:    "admin@greenlegacy.org",
			Password: "wrong",
		})

		// Assert
		assertBusiness(t, err, "Invalid admin credentials", goerror.CodeUnauthorized)
		if len(f.mailer.messages) != 0 {
			t.Fatalf("expected no email on credential failure")
		}
		if _, err := f.store.Get(context.Background(), "admin@greenlegacy.org"); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected no challenge to be stored, got %v", err)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		err := f.uc.RequestOTP(context.Background(), RequestOTPInput{Email: "not-an-email", Password: "x"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeInvalidInput {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("Success", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		code := f.requestOTP(t)

		// Assert
		ch, err := f.store.Get(context.Background(), "admin@greenlegacy.org")
		if err != nil {
			t.Fatalf("expected a stored challenge: %v", err)
		}
		if ch.Code != code {
			t.Fatalf("stored code %q does not match emailed code %q", ch.Code, code)
		}
		if ch.Attempts != 0 {
			t.Fatalf("expected a fresh challenge, got %d attempts", ch.Attempts)
		}
	})

	t.Run("ReissueReplacesPending", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		first := f.requestOTP(t)

		// Act
		second := f.requestOTP(t)

		// Assert
		ch, err := f.store.Get(context.Background(), "admin@greenlegacy.org")
		if err != nil {
			t.Fatalf("expected a stored challenge: %v", err)
		}
		if ch.Code != second {
			t.Fatalf("expected the newest code to be stored")
		}
		if first != second {
			_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: first})
			assertBusiness(t, err, "Invalid OTP", goerror.CodeUnauthorized)
		}
	})

	t.Run("MailFailureKeepsChallenge", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		f.mailer.err = errors.New("smtp unreachable")

		// Act
		err := f.uc.RequestOTP(context.Background(), RequestOTPInput{
			Email:    "admin@greenlegacy.org",
			Password: "plant-a-tree",
		})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeInternal {
			t.Fatalf("expected a server error, got %v", err)
		}
		if _, err := f.store.Get(context.Background(), "admin@greenlegacy.org"); err != nil {
			t.Fatalf("expected the challenge to survive the dispatch failure: %v", err)
		}
	})
}

func TestVerifyOTP(t *testing.T) {

	t.Run("NoChallenge", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: "123456"})

		// Assert
		assertBusiness(t, err, "No OTP found", goerror.CodeUnauthorized)
	})

	t.Run("ExpiredAtBoundary", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		code := f.requestOTP(t)
		f.clock.Advance(5 * time.Minute)

		// Act
		_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: code})

		// Assert
		assertBusiness(t, err, "OTP expired", goerror.CodeUnauthorized)
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: code})
		assertBusiness(t, err, "No OTP found", goerror.CodeUnauthorized)
	})

	t.Run("JustBeforeExpiry", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		code := f.requestOTP(t)
		f.clock.Advance(5*time.Minute - time.Second)

		// Act
		out, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: code})

		// Assert
		if err != nil {
			t.Fatalf("expected the code to still verify: %v", err)
		}
		if out.Token == "" {
			t.Fatalf("expected a session token")
		}
	})

	t.Run("MismatchIncrementsAttempts", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		code := f.requestOTP(t)
		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}

		// Act
		_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: wrong})

		// Assert
		assertBusiness(t, err, "Invalid OTP", goerror.CodeUnauthorized)
		ch, err := f.store.Get(context.Background(), "admin@greenlegacy.org")
		if err != nil {
			t.Fatalf("expected the challenge to remain: %v", err)
		}
		if ch.Attempts != 1 {
			t.Fatalf("expected 1 recorded attempt, got %d", ch.Attempts)
		}
	})

	t.Run("MalformedCodeCountsAsAttempt", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		f.requestOTP(t)

		// Act
		_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: "12345"})

		// Assert
		assertBusiness(t, err, "Invalid OTP", goerror.CodeUnauthorized)
		ch, err := f.store.Get(context.Background(), "admin@greenlegacy.org")
		if err != nil {
			t.Fatalf("expected the challenge to remain: %v", err)
		}
		if ch.Attempts != 1 {
			t.Fatalf("expected 1 recorded attempt, got %d", ch.Attempts)
		}
	})

	t.Run("UnsetLimitsFallBack", func(t *testing.T) {

		// Arrange
		f := newFixtureWithConfig(t, minimalConfigYAML)
		code := f.requestOTP(t)
		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}
		f.clock.Advance(5*time.Minute - time.Second)

		// Act
		_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: wrong})

		// Assert
		assertBusiness(t, err, "Invalid OTP", goerror.CodeUnauthorized)
		out, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: code})
		if err != nil {
			t.Fatalf("expected the code to verify under the fallback limits: %v", err)
		}
		if out.Token == "" {
			t.Fatalf("expected a session token")
		}
	})

	t.Run("AttemptLimitInvalidatesChallenge", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		code := f.requestOTP(t)
		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}
		for i := 0; i < 3; i++ {
			_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: wrong})
			assertBusiness(t, err, "Invalid OTP", goerror.CodeUnauthorized)
		}

		// Act
		_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: code})

		// Assert
		assertBusiness(t, err, "Too many attempts", goerror.CodeUnauthorized)
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: code})
		assertBusiness(t, err, "No OTP found", goerror.CodeUnauthorized)
	})

	t.Run("Success", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		code := f.requestOTP(t)

		// Act
		out, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: code})

		// Assert
		if err != nil {
			t.Fatalf("verify otp: %v", err)
		}
		claims, err := f.jwt.Verify(out.Token)
		if err != nil {
			t.Fatalf("verify token: %v", err)
		}
		if claims.Email != "admin@greenlegacy.org" || claims.Role != jwt.RoleAdmin {
			t.Fatalf("unexpected claims: email=%q role=%q", claims.Email, claims.Role)
		}
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "admin@greenlegacy.org", OTP: code})
		assertBusiness(t, err, "No OTP found", goerror.CodeUnauthorized)
	})
}
