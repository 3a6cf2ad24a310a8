package curriculum

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	labelCode
	openParenCode
	closeParenCode
	slashCode
	kindCode
	targetCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	labelToken      = parsly.NewToken(labelCode, "Label", newLabelMatcher())
	openParenToken  = parsly.NewToken(openParenCode, "(", matcher.NewByte('('))
	closeParenToken = parsly.NewToken(closeParenCode, ")", matcher.NewByte(')'))
	slashToken      = parsly.NewToken(slashCode, "/", matcher.NewByte('/'))
	kindToken       = parsly.NewToken(kindCode, "Kind", newKindMatcher())
	targetToken     = parsly.NewToken(targetCode, "Target", newTargetMatcher())
)

func newLabelMatcher() parsly.Matcher {
	return &labelMatcher{}
}

func newKindMatcher() parsly.Matcher {
	return &kindMatcher{}
}

func newTargetMatcher() parsly.Matcher {
	return &targetMatcher{}
}

// labelMatcher matches the display label (everything before the opening parenthesis)
type labelMatcher struct{}

func (m *labelMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	matched := 0
	for i := pos; i < size; i++ {
		if input[i] == '(' {
			break
		}
		matched++
	}
	return matched
}

// kindMatcher matches the action kind (before the slash)
type kindMatcher struct{}

func (m *kindMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	matched := 0
	for i := pos; i < size; i++ {
		if input[i] == '/' || input[i] == ')' {
			break
		}
		matched++
	}
	return matched
}

// targetMatcher matches the action target (after the slash)
type targetMatcher struct{}

func (m *targetMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	matched := 0
	for i := pos; i < size; i++ {
		if input[i] == ')' {
			break
		}
		matched++
	}
	return matched
}
