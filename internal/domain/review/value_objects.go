package review

import "strings"

const MaxCommentLength = 1000

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Comment is optional; the zero value means no comment.
type Comment struct {
	text string
}

func NewComment(s *string) (Comment, error) {
	if s == nil {
		return Comment{}, nil
	}
	t := strings.TrimSpace(*s)
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

func (c Comment) IsEmpty() bool { return c.text == "" }

func (c Comment) Ptr() *string {
	if c.text == "" {
		return nil
	}
	t := c.text
	return &t
}
