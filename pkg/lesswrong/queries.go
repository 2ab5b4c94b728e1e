package lesswrong

import "github.com/MrToph/lesswrong-api/pkg/transport/graphql"

// CommentsView is the comment ordering requested from upstream.
const CommentsView = "postCommentsTop"

const userFields = `user { _id username displayName slug bio }`

// postQuery selects a single post by id.
var postQuery = graphql.MustParseDocument("post", `
query post($id: String) {
  post(input: {selector: {_id: $id}}) {
    result {
      _id
      title
      slug
      pageUrl
      postedAt
      baseScore
      voteCount
      commentCount
      wordCount
      htmlBody
      contents { markdown }
      author
      `+userFields+`
    }
  }
}`)

// commentsQuery lists comments for the post named in $terms.
var commentsQuery = graphql.MustParseDocument("comments", `
query comments($terms: JSON) {
  comments(input: {terms: $terms}) {
    results {
      _id
      parentCommentId
      postId
      pageUrl
      postedAt
      baseScore
      voteCount
      deleted
      htmlBody
      contents { markdown }
      author
      `+userFields+`
    }
  }
}`)

// PostQuery returns the canonical GraphQL document sent by GetPost.
func PostQuery() string { return postQuery }

// CommentsQuery returns the canonical GraphQL document sent by GetComments.
func CommentsQuery() string { return commentsQuery }

func postVariables(id string) map[string]interface{} {
	return map[string]interface{}{"id": id}
}

func commentsVariables(postID string, limit int) map[string]interface{} {
	return map[string]interface{}{
		"terms": map[string]interface{}{
			"view":   CommentsView,
			"postId": postID,
			"limit":  limit,
		},
	}
}
