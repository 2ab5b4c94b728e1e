package lesswrong

import (
	"time"

	"github.com/MrToph/lesswrong-api/pkg/errors"
)

// Wire types mirror the fields requested in postQuery and commentsQuery.
// Everything is a pointer: upstream may send null for any of them.

type wireUser struct {
	ID          *string `json:"_id"`
	Username    *string `json:"username"`
	DisplayName *string `json:"displayName"`
	Slug        *string `json:"slug"`
	Bio         *string `json:"bio"`
}

type wireContents struct {
	Markdown *string `json:"markdown"`
}

type wirePost struct {
	ID           *string       `json:"_id"`
	Title        *string       `json:"title"`
	Slug         *string       `json:"slug"`
	PageURL      *string       `json:"pageUrl"`
	PostedAt     *time.Time    `json:"postedAt"`
	BaseScore    *float64      `json:"baseScore"`
	VoteCount    *float64      `json:"voteCount"`
	CommentCount *int          `json:"commentCount"`
	WordCount    *int          `json:"wordCount"`
	HTMLBody     *string       `json:"htmlBody"`
	Contents     *wireContents `json:"contents"`
	Author       *string       `json:"author"`
	User         *wireUser     `json:"user"`
}

type wireComment struct {
	ID              *string       `json:"_id"`
	ParentCommentID *string       `json:"parentCommentId"`
	PostID          *string       `json:"postId"`
	PageURL         *string       `json:"pageUrl"`
	PostedAt        *time.Time    `json:"postedAt"`
	BaseScore       *float64      `json:"baseScore"`
	VoteCount       *float64      `json:"voteCount"`
	Deleted         *bool         `json:"deleted"`
	HTMLBody        *string       `json:"htmlBody"`
	Contents        *wireContents `json:"contents"`
	Author          *string       `json:"author"`
	User            *wireUser     `json:"user"`
}

type postData struct {
	Post *struct {
		Result *wirePost `json:"result"`
	} `json:"post"`
}

type commentsData struct {
	Comments *struct {
		Results *[]*wireComment `json:"results"`
	} `json:"comments"`
}

func missing(field string) error {
	return errors.WrapError(nil, errors.ErrDecode, "missing/malformatted field "+field)
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

func (u *wireUser) toUser() *User {
	if u == nil || !nonEmpty(u.ID) {
		return nil
	}
	return &User{
		ID:          *u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Slug:        u.Slug,
		Bio:         u.Bio,
	}
}

// authorName prefers the free-text author, then the account's display name,
// then its username.
func authorName(author *string, u *wireUser) (string, bool) {
	switch {
	case nonEmpty(author):
		return *author, true
	case u != nil && nonEmpty(u.DisplayName):
		return *u.DisplayName, true
	case u != nil && nonEmpty(u.Username):
		return *u.Username, true
	}
	return "", false
}

func (c *wireContents) markdown() *string {
	if c == nil {
		return nil
	}
	return c.Markdown
}

func (p *wirePost) toPost() (*Post, error) {
	switch {
	case !nonEmpty(p.ID):
		return nil, missing("post._id")
	case p.Title == nil:
		return nil, missing("post.title")
	case p.Slug == nil:
		return nil, missing("post.slug")
	case p.PageURL == nil:
		return nil, missing("post.pageUrl")
	case p.PostedAt == nil:
		return nil, missing("post.postedAt")
	case p.BaseScore == nil:
		return nil, missing("post.baseScore")
	case p.HTMLBody == nil:
		return nil, missing("post.htmlBody")
	}

	author, ok := authorName(p.Author, p.User)
	if !ok {
		return nil, missing("post.author")
	}

	return &Post{
		ID:           *p.ID,
		Title:        *p.Title,
		Author:       author,
		Slug:         *p.Slug,
		PageURL:      *p.PageURL,
		HTMLBody:     *p.HTMLBody,
		Markdown:     p.Contents.markdown(),
		BaseScore:    *p.BaseScore,
		VoteCount:    p.VoteCount,
		CommentCount: p.CommentCount,
		WordCount:    p.WordCount,
		PostedAt:     *p.PostedAt,
		User:         p.User.toUser(),
	}, nil
}

// skip reports comments that carry no readable content: deleted ones and
// placeholders with an empty body.
func (c *wireComment) skip() bool {
	if c.Deleted != nil && *c.Deleted {
		return true
	}
	return !nonEmpty(c.HTMLBody)
}

func (c *wireComment) toComment(postID string) (Comment, error) {
	switch {
	case !nonEmpty(c.ID):
		return Comment{}, missing("comment._id")
	case !nonEmpty(c.PageURL):
		return Comment{}, missing("comment.pageUrl (" + *c.ID + ")")
	case c.PostedAt == nil:
		return Comment{}, missing("comment.postedAt (" + *c.ID + ")")
	case c.BaseScore == nil:
		return Comment{}, missing("comment.baseScore (" + *c.ID + ")")
	case c.VoteCount == nil:
		return Comment{}, missing("comment.voteCount (" + *c.ID + ")")
	}

	author, ok := authorName(c.Author, c.User)
	if !ok {
		author = "anonymous"
	}
	if nonEmpty(c.PostID) {
		postID = *c.PostID
	}
	var parent *string
	if nonEmpty(c.ParentCommentID) {
		parent = c.ParentCommentID
	}

	return Comment{
		ID:              *c.ID,
		ParentCommentID: parent,
		PostID:          postID,
		Author:          author,
		PageURL:         *c.PageURL,
		HTMLBody:        *c.HTMLBody,
		Markdown:        c.Contents.markdown(),
		BaseScore:       *c.BaseScore,
		VoteCount:       *c.VoteCount,
		PostedAt:        *c.PostedAt,
		User:            c.User.toUser(),
	}, nil
}
