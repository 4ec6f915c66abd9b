package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/inkpress/inkpress/internal/pkg/config"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
	"github.com/inkpress/inkpress/internal/pkg/goroutine"
	"github.com/inkpress/inkpress/internal/pkg/hash"
	"github.com/inkpress/inkpress/internal/pkg/instrument"
	"github.com/inkpress/inkpress/internal/pkg/jwt"
	"github.com/inkpress/inkpress/internal/pkg/otp"
	"github.com/inkpress/inkpress/internal/pkg/uid"
	"github.com/inkpress/inkpress/internal/pkg/validator"
	libOTP "github.com/pquerna/otp"
	"github.com/stretchr/testify/require"
)

const testOperatorEmail = "owner@example.com"

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeRepoDB struct {
	getUserByID               func(ctx context.Context, id int64) (*entity.User, error)
	getUserByUsername         func(ctx context.Context, username string) (*entity.User, error)
	getUserByEmail            func(ctx context.Context, email string) (*entity.User, error)
	createUser                func(ctx context.Context, user entity.NewUser) error
	updateUserPassword        func(ctx context.Context, userID int64, hashed string) error
	updateUserPasswordByEmail func(ctx context.Context, email, hashed string) error
	updateUserAccount         func(ctx context.Context, data entity.UpdateAccount) error

	mu       sync.Mutex
	created  []entity.NewUser
	updates  []entity.UpdateAccount
	pwdByID  map[int64]string
	pwdByWho map[string]string
}

func (f *fakeRepoDB) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	if f.getUserByID != nil {
		return f.getUserByID(ctx, id)
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.getUserByUsername != nil {
		return f.getUserByUsername(ctx, username)
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.getUserByEmail != nil {
		return f.getUserByEmail(ctx, email)
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) CreateUser(ctx context.Context, user entity.NewUser) error {
	if f.createUser != nil {
		return f.createUser(ctx, user)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, user)
	return nil
}

func (f *fakeRepoDB) UpdateUserPassword(ctx context.Context, userID int64, hashed string) error {
	if f.updateUserPassword != nil {
		return f.updateUserPassword(ctx, userID, hashed)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pwdByID == nil {
		f.pwdByID = map[int64]string{}
	}
	f.pwdByID[userID] = hashed
	return nil
}

func (f *fakeRepoDB) UpdateUserPasswordByEmail(ctx context.Context, email, hashed string) error {
	if f.updateUserPasswordByEmail != nil {
		return f.updateUserPasswordByEmail(ctx, email, hashed)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pwdByWho == nil {
		f.pwdByWho = map[string]string{}
	}
	f.pwdByWho[email] = hashed
	return nil
}

func (f *fakeRepoDB) UpdateUserAccount(ctx context.Context, data entity.UpdateAccount) error {
	if f.updateUserAccount != nil {
		return f.updateUserAccount(ctx, data)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, data)
	return nil
}

// memChallenges is an in-memory challengeStore with destructive takes.
type memChallenges struct {
	mu      sync.Mutex
	regs    map[string]entity.PendingRegistration
	resets  map[string]entity.PendingReset
	grants  map[string]entity.ResetGrant
	revoked map[string]time.Duration
}

func newMemChallenges() *memChallenges {
	return &memChallenges{
		regs:    map[string]entity.PendingRegistration{},
		resets:  map[string]entity.PendingReset{},
		grants:  map[string]entity.ResetGrant{},
		revoked: map[string]time.Duration{},
	}
}

func (m *memChallenges) SaveRegistration(_ context.Context, key string, data entity.PendingRegistration, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regs[key] = data
	return nil
}

func (m *memChallenges) TakeRegistration(_ context.Context, key string) (*entity.PendingRegistration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.regs[key]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	delete(m.regs, key)
	return &data, nil
}

func (m *memChallenges) SaveReset(_ context.Context, key string, data entity.PendingReset, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets[key] = data
	return nil
}

func (m *memChallenges) TakeReset(_ context.Context, key string) (*entity.PendingReset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.resets[key]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	delete(m.resets, key)
	return &data, nil
}

func (m *memChallenges) SaveResetGrant(_ context.Context, key string, data entity.ResetGrant, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grants[key] = data
	return nil
}

func (m *memChallenges) TakeResetGrant(_ context.Context, key string) (*entity.ResetGrant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.grants[key]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	delete(m.grants, key)
	return &data, nil
}

func (m *memChallenges) RevokeToken(_ context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = ttl
	return nil
}

type sentMail struct {
	to   string
	code string
}

type fakeMailer struct {
	mu            sync.Mutex
	registrations []sentMail
	resets        []sentMail
}

func (f *fakeMailer) SendRegistrationCode(_ context.Context, to, code string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registrations = append(f.registrations, sentMail{to: to, code: code})
	return nil
}

func (f *fakeMailer) SendResetCode(_ context.Context, to, code string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, sentMail{to: to, code: code})
	return nil
}

// testConfig answers only the keys this package reads; anything else panics
// through the embedded nil interface, which is exactly what we want in tests.
type testConfig struct {
	config.Config
}

func (testConfig) GetMinute(string) time.Duration { return 10 * time.Minute }

func (testConfig) GetString(key string) string {
	if key == "modules.identity.otp.operator_email" {
		return testOperatorEmail
	}
	return ""
}

type testKit struct {
	uc     *Usecase
	repo   *fakeRepoDB
	store  *memChallenges
	mailer *fakeMailer
	totp   otp.OTP
	bcrypt hash.Hash
	hmac   hash.Hash
	jwt    jwt.JWT
	gm     *goroutine.Manager
	now    time.Time
}

func newTestKit(t *testing.T) *testKit {
	t.Helper()

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	snow, err := uid.NewSnowflake(1)
	require.NoError(t, err)

	oid, err := uid.NewObjectIDGenerator()
	require.NoError(t, err)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	clk := fixedClock{now: now}

	totp := otp.NewTOTP("Inkpress", 300, 1, libOTP.DigitsSix)
	bcrypt := hash.NewBcrypt(4, "")
	hmac := hash.NewHMACSHA256("test-hmac-secret")

	tokener, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:    "inkpress-test",
		Audiences: []string{"inkpress-test"},
		TTL:       time.Hour,
		Clock:     clk,
		UUID:      uid.NewUUID(),
	})
	require.NoError(t, err)

	repo := &fakeRepoDB{}
	store := newMemChallenges()
	mailer := &fakeMailer{}
	gm := goroutine.NewManager(8)

	uc := New(Dependency{
		RepoDB:     repo,
		Challenges: store,
		Mailer:     mailer,
		Validator:  v10,
		Config:     testConfig{},
		HMAC:       hmac,
		Bcrypt:     bcrypt,
		UID:        snow,
		OID:        oid,
		Totp:       totp,
		Clock:      clk,
		JWT:        tokener,
		Instrument: instrument.NewNoop(),
		Goroutine:  gm,
	})

	return &testKit{
		uc:     uc,
		repo:   repo,
		store:  store,
		mailer: mailer,
		totp:   totp,
		bcrypt: bcrypt,
		hmac:   hmac,
		jwt:    tokener,
		gm:     gm,
		now:    now,
	}
}

func (k *testKit) challengeKeyFor(t *testing.T, token string) string {
	t.Helper()

	key, err := k.hmac.Hash(token)
	require.NoError(t, err)
	return string(key)
}

func (k *testKit) authCtx(userID int64, username, role string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
	})
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, status, gerr.StatusCode())
}
