package domain

import (
	"encoding/json"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

// User is a user record as stored by the account system. Only ID and Tag are
// interpreted here; every other stored field is carried in Attributes.
type User struct {
	ID         string
	Tag        string
	Attributes map[string]any
}

// MarshalJSON flattens Attributes next to the id and tag so the record is
// returned the way it is stored.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Attributes)+2)
	for k, v := range u.Attributes {
		out[k] = v
	}
	out["_id"] = u.ID
	if u.Tag != "" {
		out["tag"] = u.Tag
	}
	return json.Marshal(out)
}
