package entity

import "time"

type Post struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Comment struct {
	ID        int64
	PostTitle string
	Body      string
	Author    string
	CreatedAt time.Time
}

type NewPost struct {
	ID      int64
	Title   string
	Content string
}

type UpdatePost struct {
	Title    string
	NewTitle string
	Content  string
}

type NewComment struct {
	ID        int64
	PostTitle string
	Body      string
	Author    string
}

type PostDetail struct {
	Post     Post
	Comments []Comment
}
