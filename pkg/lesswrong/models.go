package lesswrong

import (
	"html"
	"strings"
	"time"

	strip "github.com/grokify/html-strip-tags-go"
)

// User is the author account embedded in posts and comments.
type User struct {
	ID          string  `json:"id"`
	Username    *string `json:"username,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

// Post is a top-level article.
type Post struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Slug         string    `json:"slug"`
	PageURL      string    `json:"pageUrl"`
	HTMLBody     string    `json:"htmlBody"`
	Markdown     *string   `json:"markdown,omitempty"`
	BaseScore    float64   `json:"baseScore"`
	VoteCount    *float64  `json:"voteCount,omitempty"`
	CommentCount *int      `json:"commentCount,omitempty"`
	WordCount    *int      `json:"wordCount,omitempty"`
	PostedAt     time.Time `json:"postedAt"`
	User         *User     `json:"user,omitempty"`
}

// PlainText returns the post body with markup removed.
func (p *Post) PlainText() string {
	return plainText(p.HTMLBody)
}

// Comment is a reply to a post or to another comment. ParentCommentID is nil
// for top-level comments.
type Comment struct {
	ID              string    `json:"id"`
	ParentCommentID *string   `json:"parentCommentId,omitempty"`
	PostID          string    `json:"postId"`
	Author          string    `json:"author"`
	PageURL         string    `json:"pageUrl"`
	HTMLBody        string    `json:"htmlBody"`
	Markdown        *string   `json:"markdown,omitempty"`
	BaseScore       float64   `json:"baseScore"`
	VoteCount       float64   `json:"voteCount"`
	PostedAt        time.Time `json:"postedAt"`
	User            *User     `json:"user,omitempty"`
}

// IsTopLevel reports whether the comment replies to the post itself.
func (c *Comment) IsTopLevel() bool {
	return c.ParentCommentID == nil || *c.ParentCommentID == ""
}

// PlainText returns the comment body with markup removed.
func (c *Comment) PlainText() string {
	return plainText(c.HTMLBody)
}

func plainText(body string) string {
	return strings.TrimSpace(html.UnescapeString(strip.StripTags(body)))
}
