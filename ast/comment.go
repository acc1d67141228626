package ast

// CommentKind distinguishes comments that stand on their own line(s)
// before the entity they document (Pre) from comments that share a
// line with, and trail, that entity (Post).
type CommentKind int

const (
	Pre CommentKind = iota
	Post
)

func (k CommentKind) String() string {
	if k == Post {
		return "post"
	}
	return "pre"
}

// Comment is one comment with its placement. Text excludes the leading
// '#' and the line terminator.
type Comment struct {
	Kind CommentKind
	Text string
}

// Comments is an ordered comment sequence attached to an item.
type Comments []Comment

func (cs *Comments) maybePush(c *Comment) {
	if c != nil {
		*cs = append(*cs, *c)
	}
}

// PreTexts returns the texts of the Pre-classified entries, in order.
func (cs Comments) PreTexts() []string {
	var res []string
	for _, c := range cs {
		if c.Kind == Pre {
			res = append(res, c.Text)
		}
	}
	return res
}

// PostTexts returns the texts of the Post-classified entries, in order.
func (cs Comments) PostTexts() []string {
	var res []string
	for _, c := range cs {
		if c.Kind == Post {
			res = append(res, c.Text)
		}
	}
	return res
}
