package inbound

import (
	"time"

	"github.com/inkpress/inkpress/internal/blog/entity"
)

type PostSummary struct {
	ID        int64     `json:"id,string"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostResponse struct {
	ID        int64             `json:"id,string"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Comments  []CommentResponse `json:"comments"`
}

type CommentResponse struct {
	ID        int64     `json:"id,string"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func newPostSummary(p entity.Post) PostSummary {
	return PostSummary{
		ID:        p.ID,
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newCommentResponse(c entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Body:      c.Body,
		Author:    c.Author,
		CreatedAt: c.CreatedAt,
	}
}

type PostComposeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PostComposeResponse struct {
	ID    int64  `json:"id,string"`
	Title string `json:"title"`
}

type PostEditRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CommentAddRequest struct {
	Body string `json:"body"`
}

type CommentAddResponse struct {
	ID     int64  `json:"id,string"`
	Author string `json:"author"`
}
