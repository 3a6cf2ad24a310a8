package curriculum

import (
	"strings"

	"github.com/codelab/tutor/model"
	"github.com/viant/parsly"
)

// ParseShorthand parses the compact action notation: Label(kind/target)
func ParseShorthand(input []byte) (*model.Action, error) {
	cursor := parsly.NewCursor("", input, 0)

	matched := cursor.MatchAfterOptional(whitespaceToken, labelToken)
	if matched.Code != labelToken.Code {
		return nil, cursor.NewError(labelToken)
	}
	label := strings.TrimSpace(matched.Text(cursor))

	matched = cursor.MatchOne(openParenToken)
	if matched.Code != openParenToken.Code {
		return nil, cursor.NewError(openParenToken)
	}

	matched = cursor.MatchOne(kindToken)
	if matched.Code != kindToken.Code {
		return nil, cursor.NewError(kindToken)
	}
	kind := strings.TrimSpace(matched.Text(cursor))

	matched = cursor.MatchOne(slashToken)
	if matched.Code != slashToken.Code {
		return nil, cursor.NewError(slashToken)
	}

	matched = cursor.MatchOne(targetToken)
	if matched.Code != targetToken.Code {
		return nil, cursor.NewError(targetToken)
	}
	target := strings.TrimSpace(matched.Text(cursor))

	matched = cursor.MatchOne(closeParenToken)
	if matched.Code != closeParenToken.Code {
		return nil, cursor.NewError(closeParenToken)
	}
	return model.ParseAction(kind, label, target)
}
