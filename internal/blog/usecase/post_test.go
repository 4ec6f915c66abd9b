package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/inkpress/inkpress/internal/blog/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostList(t *testing.T) {
	uc, repo := newTestUsecase(t)
	repo.listPosts = func(context.Context) ([]entity.Post, error) {
		return []entity.Post{
			{ID: 2, Title: "Second"},
			{ID: 1, Title: "First"},
		}, nil
	}

	posts, err := uc.PostList(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Second", posts[0].Title)
}

func TestPostDetail(t *testing.T) {
	uc, repo := newTestUsecase(t)
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	repo.getPostByTitle = func(_ context.Context, title string) (*entity.Post, error) {
		return &entity.Post{ID: 1, Title: title, Content: "Body", CreatedAt: created}, nil
	}
	repo.listCommentsByPostTitle = func(_ context.Context, title string) ([]entity.Comment, error) {
		return []entity.Comment{{ID: 9, PostTitle: title, Body: "Nice", Author: "bob"}}, nil
	}

	detail, err := uc.PostDetail(context.Background(), PostDetailInput{Title: "Hello World"})
	require.NoError(t, err)
	assert.Equal(t, "Hello World", detail.Post.Title)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "bob", detail.Comments[0].Author)
}

func TestPostDetail_NotFound(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.PostDetail(context.Background(), PostDetailInput{Title: "Missing"})
	requireStatus(t, err, http.StatusNotFound)
}

func TestPostCompose(t *testing.T) {
	uc, repo := newTestUsecase(t)

	out, err := uc.PostCompose(adminCtx(), PostComposeInput{
		Title:   "  Hello World  ",
		Content: "First post.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello World", out.Title)
	assert.NotZero(t, out.ID)

	require.Len(t, repo.createdPosts, 1)
	assert.Equal(t, "Hello World", repo.createdPosts[0].Title)
}

func TestPostCompose_RequiresAdmin(t *testing.T) {
	uc, repo := newTestUsecase(t)

	_, err := uc.PostCompose(readerCtx(), PostComposeInput{Title: "Hello", Content: "Body"})
	requireStatus(t, err, http.StatusForbidden)

	_, err = uc.PostCompose(context.Background(), PostComposeInput{Title: "Hello", Content: "Body"})
	requireStatus(t, err, http.StatusUnauthorized)

	assert.Empty(t, repo.createdPosts)
}

func TestPostCompose_DuplicateTitle(t *testing.T) {
	uc, repo := newTestUsecase(t)
	repo.createPost = func(context.Context, entity.NewPost) error {
		return goerror.ErrConflict
	}

	_, err := uc.PostCompose(adminCtx(), PostComposeInput{Title: "Hello", Content: "Body"})
	requireStatus(t, err, http.StatusConflict)
}

func TestPostEdit(t *testing.T) {
	uc, repo := newTestUsecase(t)

	err := uc.PostEdit(adminCtx(), PostEditInput{
		Title:    "Hello World",
		NewTitle: "Hello Again",
		Content:  "Rewritten.",
	})
	require.NoError(t, err)

	require.Len(t, repo.updatedPosts, 1)
	assert.Equal(t, entity.UpdatePost{
		Title:    "Hello World",
		NewTitle: "Hello Again",
		Content:  "Rewritten.",
	}, repo.updatedPosts[0])
}

func TestPostEdit_NotFound(t *testing.T) {
	uc, repo := newTestUsecase(t)
	repo.updatePost = func(context.Context, entity.UpdatePost) error {
		return goerror.ErrNotFound
	}

	err := uc.PostEdit(adminCtx(), PostEditInput{Title: "Missing", NewTitle: "X", Content: "Y"})
	requireStatus(t, err, http.StatusNotFound)
}

func TestPostDelete(t *testing.T) {
	uc, repo := newTestUsecase(t)

	require.NoError(t, uc.PostDelete(adminCtx(), PostDeleteInput{Title: "Hello World"}))
	assert.Equal(t, []string{"Hello World"}, repo.deletedPosts)
}

func TestPostDelete_RequiresAdmin(t *testing.T) {
	uc, repo := newTestUsecase(t)

	err := uc.PostDelete(readerCtx(), PostDeleteInput{Title: "Hello World"})
	requireStatus(t, err, http.StatusForbidden)
	assert.Empty(t, repo.deletedPosts)
}
