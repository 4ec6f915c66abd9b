package usecase

import (
	"context"
	"time"

	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/inkpress/inkpress/internal/pkg/clock"
	"github.com/inkpress/inkpress/internal/pkg/config"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
	"github.com/inkpress/inkpress/internal/pkg/goroutine"
	"github.com/inkpress/inkpress/internal/pkg/hash"
	"github.com/inkpress/inkpress/internal/pkg/instrument"
	"github.com/inkpress/inkpress/internal/pkg/jwt"
	"github.com/inkpress/inkpress/internal/pkg/otp"
	"github.com/inkpress/inkpress/internal/pkg/uid"
	"github.com/inkpress/inkpress/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, user entity.NewUser) error
	UpdateUserPassword(ctx context.Context, userID int64, hashed string) error
	UpdateUserPasswordByEmail(ctx context.Context, email, hashed string) error
	UpdateUserAccount(ctx context.Context, data entity.UpdateAccount) error
}

// challengeStore holds pending flow state keyed by hashed challenge tokens.
//
// Take operations are destructive: they return the stored value and remove it
// in one step, which is what makes every challenge single-attempt.
type challengeStore interface {
	SaveRegistration(ctx context.Context, key string, data entity.PendingRegistration, ttl time.Duration) error
	TakeRegistration(ctx context.Context, key string) (*entity.PendingRegistration, error)
	SaveReset(ctx context.Context, key string, data entity.PendingReset, ttl time.Duration) error
	TakeReset(ctx context.Context, key string) (*entity.PendingReset, error)
	SaveResetGrant(ctx context.Context, key string, data entity.ResetGrant, ttl time.Duration) error
	TakeResetGrant(ctx context.Context, key string) (*entity.ResetGrant, error)
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
}

type repoMailer interface {
	SendRegistrationCode(ctx context.Context, to, code string, validity time.Duration) error
	SendResetCode(ctx context.Context, to, code string, validity time.Duration) error
}

type Usecase struct {
	repoDB     repoDB
	challenges challengeStore
	mailer     repoMailer
	validator  validator.Validator
	cfg        config.Config
	hmac       hash.Hash
	bcrypt     hash.Hash
	uid        uid.NumberID
	oid        uid.StringID
	totp       otp.OTP
	clock      clock.Clocker
	jwt        jwt.JWT
	ins        instrument.Instrumentation
	goroutine  *goroutine.Manager
}

type Dependency struct {
	RepoDB     repoDB
	Challenges challengeStore
	Mailer     repoMailer
	Validator  validator.Validator
	Config     config.Config
	HMAC       hash.Hash
	Bcrypt     hash.Hash
	UID        uid.NumberID
	OID        uid.StringID
	Totp       otp.OTP
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
	Goroutine  *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:     dep.RepoDB,
		challenges: dep.Challenges,
		mailer:     dep.Mailer,
		validator:  dep.Validator,
		cfg:        dep.Config,
		hmac:       dep.HMAC,
		bcrypt:     dep.Bcrypt,
		uid:        dep.UID,
		oid:        dep.OID,
		totp:       dep.Totp,
		clock:      dep.Clock,
		jwt:        dep.JWT,
		ins:        dep.Instrument,
		goroutine:  dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewUnauthorized("Authentication required")
	}

	return clm, nil
}

// challengeKey derives the storage key for a client-held challenge token, so a
// leaked challenge store never exposes usable tokens.
func (s *Usecase) challengeKey(token string) (string, error) {
	key, err := s.hmac.Hash(token)
	if err != nil {
		return "", goerror.NewServer(err)
	}

	return string(key), nil
}
