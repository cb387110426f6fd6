package domain

import (
	"errors"
	"strings"
)

// Tag classifies a user's role or standing.
type Tag string

const (
	TagOwner     Tag = "owner"
	TagDeveloper Tag = "developer"
	TagManager   Tag = "manager"
	TagPremium   Tag = "premium"
	TagUser      Tag = "user"
)

var ErrInvalidTag = errors.New("invalid tag value")

// Tags is the closed set of values a user's tag may take.
var Tags = []Tag{TagOwner, TagDeveloper, TagManager, TagPremium, TagUser}

// ParseTag matches s case-insensitively against Tags and returns the
// canonical lower-case tag.
func ParseTag(s string) (Tag, error) {
	for _, t := range Tags {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", ErrInvalidTag
}
