package models

// Post is a blog entry stored in the posts collection. UserID references the
// author; the link is checked at write time only, so a post may outlive its
// author.
type Post struct {
	PostID  string `bson:"post_id" json:"post_id"`
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
	UserID  string `bson:"user_id" json:"user_id"`
}

// PostPayload is the request body for creating or replacing a post.
type PostPayload struct {
	Title   string `json:"title" binding:"required,min=1,max=100"`
	Content string `json:"content" binding:"required,min=1"`
	UserID  string `json:"user_id" binding:"required"`
}

// PostList wraps posts for the list endpoint.
type PostList struct {
	Posts []Post `json:"posts"`
}
