// Package cache is the Redis-backed challenge store for the identity module.
//
// Pending registrations, pending resets, and reset grants live here under
// hashed challenge tokens with a TTL, so expiry is enforced by the store and
// nothing sensitive round-trips through the client. It also keeps the logout
// denylist consulted by the HTTP authentication middleware.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
	"github.com/inkpress/inkpress/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	prefixRegistration = "identity:pending:register:"
	prefixReset        = "identity:pending:reset:"
	prefixResetGrant   = "identity:grant:reset:"
	prefixRevoked      = "identity:revoked:"
)

type Store struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

func NewStore(client *redis.Client, ins instrument.Instrumentation) *Store {
	return &Store{
		client: client,
		ins:    ins,
	}
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.outbound.cache").Start(ctx, name)
}

func (s *Store) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *Store) save(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key, data, ttl).Err()
}

// take returns the stored value and deletes it atomically, so a challenge can
// be attempted exactly once.
func (s *Store) take(ctx context.Context, key string, dst any) error {
	data, err := s.client.GetDel(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return goerror.ErrNotFound
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dst)
}

func (s *Store) SaveRegistration(ctx context.Context, key string, data entity.PendingRegistration, ttl time.Duration) (err error) {
	ctx, span := s.startSpan(ctx, "SaveRegistration")
	defer func() { s.endSpan(span, err) }()

	err = s.save(ctx, prefixRegistration+key, data, ttl)
	return err
}

func (s *Store) TakeRegistration(ctx context.Context, key string) (_ *entity.PendingRegistration, err error) {
	ctx, span := s.startSpan(ctx, "TakeRegistration")
	defer func() { s.endSpan(span, err) }()

	var pending entity.PendingRegistration
	if err = s.take(ctx, prefixRegistration+key, &pending); err != nil {
		return nil, err
	}

	return &pending, nil
}

func (s *Store) SaveReset(ctx context.Context, key string, data entity.PendingReset, ttl time.Duration) (err error) {
	ctx, span := s.startSpan(ctx, "SaveReset")
	defer func() { s.endSpan(span, err) }()

	err = s.save(ctx, prefixReset+key, data, ttl)
	return err
}

func (s *Store) TakeReset(ctx context.Context, key string) (_ *entity.PendingReset, err error) {
	ctx, span := s.startSpan(ctx, "TakeReset")
	defer func() { s.endSpan(span, err) }()

	var pending entity.PendingReset
	if err = s.take(ctx, prefixReset+key, &pending); err != nil {
		return nil, err
	}

	return &pending, nil
}

func (s *Store) SaveResetGrant(ctx context.Context, key string, data entity.ResetGrant, ttl time.Duration) (err error) {
	ctx, span := s.startSpan(ctx, "SaveResetGrant")
	defer func() { s.endSpan(span, err) }()

	err = s.save(ctx, prefixResetGrant+key, data, ttl)
	return err
}

func (s *Store) TakeResetGrant(ctx context.Context, key string) (_ *entity.ResetGrant, err error) {
	ctx, span := s.startSpan(ctx, "TakeResetGrant")
	defer func() { s.endSpan(span, err) }()

	var grant entity.ResetGrant
	if err = s.take(ctx, prefixResetGrant+key, &grant); err != nil {
		return nil, err
	}

	return &grant, nil
}

func (s *Store) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) (err error) {
	ctx, span := s.startSpan(ctx, "RevokeToken")
	defer func() { s.endSpan(span, err) }()

	err = s.client.Set(ctx, prefixRevoked+tokenID, "1", ttl).Err()
	return err
}

// IsRevoked implements the router's TokenRevoker. A store failure counts as
// revoked.
func (s *Store) IsRevoked(ctx context.Context, tokenID string) bool {
	ctx, span := s.startSpan(ctx, "IsRevoked")
	defer span.End()

	n, err := s.client.Exists(ctx, prefixRevoked+tokenID).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to check token revocation", "error", err)
		return true
	}

	return n > 0
}
