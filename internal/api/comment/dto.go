package comments

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
	BlogID  string `json:"blog_id" validate:"required"`
}

type CommentUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type CommentBlog struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type CommentResponse struct {
	ID           string      `json:"id"`
	Content      string      `json:"content"`
	CreationDate time.Time   `json:"creation_date"`
	User         CommentUser `json:"user"`
	Blog         CommentBlog `json:"blog"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}
