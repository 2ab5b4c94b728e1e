package lesswrong

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		html string
		want string
	}{
		{"<p>Hello <em>world</em></p>", "Hello world"},
		{"<p>Fish &amp; chips</p>\n", "Fish & chips"},
		{"", ""},
	}
	for _, tc := range tests {
		p := Post{HTMLBody: tc.html}
		if got := p.PlainText(); got != tc.want {
			t.Errorf("PlainText(%q) = %q, want %q", tc.html, got, tc.want)
		}
		c := Comment{HTMLBody: tc.html}
		if got := c.PlainText(); got != tc.want {
			t.Errorf("Comment.PlainText(%q) = %q, want %q", tc.html, got, tc.want)
		}
	}
}

func TestIsTopLevel(t *testing.T) {
	empty := ""
	parent := "p"
	if !(&Comment{}).IsTopLevel() {
		t.Error("nil parent should be top level")
	}
	if !(&Comment{ParentCommentID: &empty}).IsTopLevel() {
		t.Error("empty parent should be top level")
	}
	if (&Comment{ParentCommentID: &parent}).IsTopLevel() {
		t.Error("comment with parent should not be top level")
	}
}

func TestQueriesAreCanonical(t *testing.T) {
	if PostQuery() == "" || CommentsQuery() == "" {
		t.Fatal("queries must not be empty")
	}
	if PostQuery() == CommentsQuery() {
		t.Error("post and comments queries must differ")
	}
}
