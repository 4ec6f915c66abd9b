package usecase

import (
	"context"

	"github.com/inkpress/inkpress/internal/blog/entity"
	idEntity "github.com/inkpress/inkpress/internal/identity/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
	"github.com/inkpress/inkpress/internal/pkg/instrument"
	"github.com/inkpress/inkpress/internal/pkg/jwt"
	"github.com/inkpress/inkpress/internal/pkg/uid"
	"github.com/inkpress/inkpress/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	ListPosts(ctx context.Context) ([]entity.Post, error)
	GetPostByTitle(ctx context.Context, title string) (*entity.Post, error)
	ListCommentsByPostTitle(ctx context.Context, title string) ([]entity.Comment, error)
	CreatePost(ctx context.Context, post entity.NewPost) error
	UpdatePost(ctx context.Context, data entity.UpdatePost) error
	DeletePost(ctx context.Context, title string) error
	CreateComment(ctx context.Context, comment entity.NewComment) error
	DeleteComment(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uid       uid.NumberID
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	UID        uid.NumberID
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		uid:       dep.UID,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("blog.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewUnauthorized("Authentication required")
	}

	return clm, nil
}

// requireAdmin gates post management and comment moderation on the typed
// admin role carried in the session claims.
func (s *Usecase) requireAdmin(ctx context.Context) (*jwt.Claims, error) {
	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if idEntity.UserRoleFromString(clm.Role) != idEntity.UserRoleAdmin {
		return nil, goerror.NewForbidden("Admin role required")
	}

	return clm, nil
}
