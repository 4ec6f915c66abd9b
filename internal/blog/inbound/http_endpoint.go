package inbound

import (
	"github.com/inkpress/inkpress/internal/blog/entity"
	"github.com/inkpress/inkpress/internal/blog/usecase"
	"github.com/inkpress/inkpress/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for posts and comments.
type HTTPEndpoint struct {
	uc uc
}

// PostList lists all posts, newest first.
// @Summary List posts
// @Description Returns all posts without content, newest first.
// @Tags Blog
// @Produce json
// @Success 200 {object} router.successResponse{data=[]PostSummary} "Posts"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/blog/posts [get]
func (h *HTTPEndpoint) PostList(r *router.Request) (any, error) {
	posts, err := h.uc.PostList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(posts, func(p entity.Post, _ int) PostSummary {
		return newPostSummary(p)
	}), nil
}

// PostDetail returns one post with its comments.
// @Summary Get post
// @Description Returns the post identified by title together with its comments.
// @Tags Blog
// @Produce json
// @Param title path string true "Post title"
// @Success 200 {object} router.successResponse{data=PostResponse} "Post"
// @Failure 404 {object} router.errorResponse "Post not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/blog/posts/{title} [get]
func (h *HTTPEndpoint) PostDetail(r *router.Request) (any, error) {
	detail, err := h.uc.PostDetail(r.Context(), usecase.PostDetailInput{
		Title: r.GetParam("title"),
	})
	if err != nil {
		return nil, err
	}

	return PostResponse{
		ID:        detail.Post.ID,
		Title:     detail.Post.Title,
		Content:   detail.Post.Content,
		CreatedAt: detail.Post.CreatedAt,
		UpdatedAt: detail.Post.UpdatedAt,
		Comments: lo.Map(detail.Comments, func(c entity.Comment, _ int) CommentResponse {
			return newCommentResponse(c)
		}),
	}, nil
}

// PostCompose creates a new post.
// @Summary Create post
// @Description Creates a post with a unique title. Admin only.
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body PostComposeRequest true "Post payload"
// @Success 200 {object} router.successResponse{data=PostComposeResponse} "Post created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Admin role required"
// @Failure 409 {object} router.errorResponse "Title already taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/blog/posts [post]
// @Security BearerAuth
func (h *HTTPEndpoint) PostCompose(r *router.Request) (any, error) {
	var req PostComposeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PostCompose(r.Context(), usecase.PostComposeInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	return PostComposeResponse{
		ID:    resp.ID,
		Title: resp.Title,
	}, nil
}

// PostEdit rewrites an existing post.
// @Summary Edit post
// @Description Replaces the title and content of the post identified by the path title. Admin only.
// @Tags Blog
// @Accept json
// @Param title path string true "Current post title"
// @Param request body PostEditRequest true "New title and content"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Admin role required"
// @Failure 404 {object} router.errorResponse "Post not found"
// @Failure 409 {object} router.errorResponse "New title already taken"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/blog/posts/{title} [put]
// @Security BearerAuth
func (h *HTTPEndpoint) PostEdit(r *router.Request) (any, error) {
	var req PostEditRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PostEdit(r.Context(), usecase.PostEditInput{
		Title:    r.GetParam("title"),
		NewTitle: req.Title,
		Content:  req.Content,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// PostDelete removes a post and its comments.
// @Summary Delete post
// @Description Deletes the post identified by title along with its comments. Admin only.
// @Tags Blog
// @Param title path string true "Post title"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Admin role required"
// @Failure 404 {object} router.errorResponse "Post not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/blog/posts/{title} [delete]
// @Security BearerAuth
func (h *HTTPEndpoint) PostDelete(r *router.Request) (any, error) {
	if err := h.uc.PostDelete(r.Context(), usecase.PostDeleteInput{
		Title: r.GetParam("title"),
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// CommentAdd attaches a comment to a post.
// @Summary Add comment
// @Description Adds a comment to the post identified by title. The author is taken from the session.
// @Tags Blog
// @Accept json
// @Produce json
// @Param title path string true "Post title"
// @Param request body CommentAddRequest true "Comment payload"
// @Success 200 {object} router.successResponse{data=CommentAddResponse} "Comment created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "Post not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/blog/posts/{title}/comments [post]
// @Security BearerAuth
func (h *HTTPEndpoint) CommentAdd(r *router.Request) (any, error) {
	var req CommentAddRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CommentAdd(r.Context(), usecase.CommentAddInput{
		PostTitle: r.GetParam("title"),
		Body:      req.Body,
	})
	if err != nil {
		return nil, err
	}

	return CommentAddResponse{
		ID:     resp.ID,
		Author: resp.Author,
	}, nil
}

// CommentDelete removes a comment.
// @Summary Delete comment
// @Description Deletes the comment identified by id. Admin only.
// @Tags Blog
// @Param id path string true "Comment ID"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid comment id"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Admin role required"
// @Failure 404 {object} router.errorResponse "Comment not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/blog/comments/{id} [delete]
// @Security BearerAuth
func (h *HTTPEndpoint) CommentDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.CommentDelete(r.Context(), usecase.CommentDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}
