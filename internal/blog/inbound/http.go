package inbound

import (
	"context"

	"github.com/inkpress/inkpress/internal/blog/entity"
	"github.com/inkpress/inkpress/internal/blog/usecase"
	"github.com/inkpress/inkpress/internal/pkg/router"
)

type uc interface {
	PostList(ctx context.Context) ([]entity.Post, error)
	PostDetail(ctx context.Context, in usecase.PostDetailInput) (*entity.PostDetail, error)
	PostCompose(ctx context.Context, in usecase.PostComposeInput) (*usecase.PostComposeOutput, error)
	PostEdit(ctx context.Context, in usecase.PostEditInput) error
	PostDelete(ctx context.Context, in usecase.PostDeleteInput) error

	CommentAdd(ctx context.Context, in usecase.CommentAddInput) (*usecase.CommentAddOutput, error)
	CommentDelete(ctx context.Context, in usecase.CommentDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Posts (write operations need the admin role)
	r.GET("/api/v1/blog/posts", end.PostList)
	r.GET("/api/v1/blog/posts/:title", end.PostDetail)
	r.POST("/api/v1/blog/posts", end.PostCompose)
	r.PUT("/api/v1/blog/posts/:title", end.PostEdit)
	r.DELETE("/api/v1/blog/posts/:title", end.PostDelete)

	// Comments (add needs authentication, delete needs the admin role)
	r.POST("/api/v1/blog/posts/:title/comments", end.CommentAdd)
	r.DELETE("/api/v1/blog/comments/:id", end.CommentDelete)
}
