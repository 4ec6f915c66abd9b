package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/inkpress/inkpress/internal/blog/entity"
	"github.com/inkpress/inkpress/internal/pkg/goerror"
	"github.com/inkpress/inkpress/internal/pkg/instrument"
	"github.com/inkpress/inkpress/internal/pkg/jwt"
	"github.com/inkpress/inkpress/internal/pkg/uid"
	"github.com/inkpress/inkpress/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

type fakeBlogDB struct {
	listPosts               func(ctx context.Context) ([]entity.Post, error)
	getPostByTitle          func(ctx context.Context, title string) (*entity.Post, error)
	listCommentsByPostTitle func(ctx context.Context, title string) ([]entity.Comment, error)
	createPost              func(ctx context.Context, post entity.NewPost) error
	updatePost              func(ctx context.Context, data entity.UpdatePost) error
	deletePost              func(ctx context.Context, title string) error
	createComment           func(ctx context.Context, comment entity.NewComment) error
	deleteComment           func(ctx context.Context, id int64) error

	mu              sync.Mutex
	createdPosts    []entity.NewPost
	createdComments []entity.NewComment
	deletedPosts    []string
	deletedComments []int64
	updatedPosts    []entity.UpdatePost
}

func (f *fakeBlogDB) ListPosts(ctx context.Context) ([]entity.Post, error) {
	if f.listPosts != nil {
		return f.listPosts(ctx)
	}
	return nil, nil
}

func (f *fakeBlogDB) GetPostByTitle(ctx context.Context, title string) (*entity.Post, error) {
	if f.getPostByTitle != nil {
		return f.getPostByTitle(ctx, title)
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeBlogDB) ListCommentsByPostTitle(ctx context.Context, title string) ([]entity.Comment, error) {
	if f.listCommentsByPostTitle != nil {
		return f.listCommentsByPostTitle(ctx, title)
	}
	return nil, nil
}

func (f *fakeBlogDB) CreatePost(ctx context.Context, post entity.NewPost) error {
	if f.createPost != nil {
		return f.createPost(ctx, post)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdPosts = append(f.createdPosts, post)
	return nil
}

func (f *fakeBlogDB) UpdatePost(ctx context.Context, data entity.UpdatePost) error {
	if f.updatePost != nil {
		return f.updatePost(ctx, data)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.updatedPosts = append(f.updatedPosts, data)
	return nil
}

func (f *fakeBlogDB) DeletePost(ctx context.Context, title string) error {
	if f.deletePost != nil {
		return f.deletePost(ctx, title)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedPosts = append(f.deletedPosts, title)
	return nil
}

func (f *fakeBlogDB) CreateComment(ctx context.Context, comment entity.NewComment) error {
	if f.createComment != nil {
		return f.createComment(ctx, comment)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdComments = append(f.createdComments, comment)
	return nil
}

func (f *fakeBlogDB) DeleteComment(ctx context.Context, id int64) error {
	if f.deleteComment != nil {
		return f.deleteComment(ctx, id)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedComments = append(f.deletedComments, id)
	return nil
}

func newTestUsecase(t *testing.T) (*Usecase, *fakeBlogDB) {
	t.Helper()

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	snow, err := uid.NewSnowflake(2)
	require.NoError(t, err)

	repo := &fakeBlogDB{}
	uc := New(Dependency{
		RepoDB:     repo,
		Validator:  v10,
		UID:        snow,
		Instrument: instrument.NewNoop(),
	})

	return uc, repo
}

func adminCtx() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: 1, Username: "owner", Role: "admin"})
}

func readerCtx() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: 2, Username: "bob", Role: "user"})
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, status, gerr.StatusCode())
}
