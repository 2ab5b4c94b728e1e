package lesswrong

// Thread is a comment with its replies nested underneath.
type Thread struct {
	Comment Comment
	Replies []*Thread
}

// CommentsByID indexes comments by id. On duplicate ids the first wins.
func CommentsByID(comments []Comment) map[string]Comment {
	m := make(map[string]Comment, len(comments))
	for _, c := range comments {
		if _, ok := m[c.ID]; !ok {
			m[c.ID] = c
		}
	}
	return m
}

// Orphans returns the comments whose parent is not part of comments. With a
// bounded limit this happens whenever a reply outranks its parent.
func Orphans(comments []Comment) []Comment {
	byID := CommentsByID(comments)
	var out []Comment
	for _, c := range comments {
		if c.IsTopLevel() {
			continue
		}
		if _, ok := byID[*c.ParentCommentID]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// BuildTree nests replies under their parents, keeping input order at every
// level. Top-level comments, orphans and comments caught in a parent cycle
// become roots.
func BuildTree(comments []Comment) []*Thread {
	nodes := make(map[string]*Thread, len(comments))
	parents := make(map[string]string, len(comments))
	order := make([]*Thread, 0, len(comments))

	for _, c := range comments {
		if _, ok := nodes[c.ID]; ok {
			continue
		}
		t := &Thread{Comment: c}
		nodes[c.ID] = t
		order = append(order, t)
		if !c.IsTopLevel() {
			parents[c.ID] = *c.ParentCommentID
		}
	}

	var roots []*Thread
	for _, t := range order {
		parentID, hasParent := parents[t.Comment.ID]
		parent, inSet := nodes[parentID]
		if !hasParent || !inSet || cyclic(t.Comment.ID, parents) {
			roots = append(roots, t)
			continue
		}
		parent.Replies = append(parent.Replies, t)
	}
	return roots
}

// cyclic reports whether following parent links from id leads back to id.
func cyclic(id string, parents map[string]string) bool {
	seen := map[string]bool{id: true}
	cur := id
	for {
		next, ok := parents[cur]
		if !ok {
			return false
		}
		if next == id {
			return true
		}
		if seen[next] {
			// a loop further up that does not include id
			return false
		}
		seen[next] = true
		cur = next
	}
}

// Walk visits t and its replies depth first. Depth is 0 for t.
func (t *Thread) Walk(fn func(depth int, c Comment)) {
	t.walk(0, fn)
}

func (t *Thread) walk(depth int, fn func(int, Comment)) {
	fn(depth, t.Comment)
	for _, r := range t.Replies {
		r.walk(depth+1, fn)
	}
}

// Size returns the number of comments in the thread, t included.
func (t *Thread) Size() int {
	n := 1
	for _, r := range t.Replies {
		n += r.Size()
	}
	return n
}
