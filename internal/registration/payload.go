package registration

import (
	"errors"
	"math/rand/v2"
)

// maxPayloadID bounds the client generated id. Ids are not unique; the
// collaborator is expected to tolerate collisions.
const maxPayloadID = 4590

// ErrIncomplete is returned by NewPayload when a field is still invalid.
var ErrIncomplete = errors.New("registration form has invalid fields")

// Payload is the JSON body sent to the collaborator.
type Payload struct {
	ID       int    `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IDSource produces the payload id.
type IDSource func() int

// RandomID returns a pseudo-random id in [0, 4590).
func RandomID() int {
	return rand.IntN(maxPayloadID) //nolint:gosec // G404: id is a label, not a secret
}

// NewPayload builds the request body from a fully valid form.
// A nil ids falls back to RandomID.
func NewPayload(f Form, ids IDSource) (Payload, error) {
	if !f.AllValid() {
		return Payload{}, ErrIncomplete
	}
	if ids == nil {
		ids = RandomID
	}
	return Payload{
		ID:       ids(),
		UserName: f.Value(FieldUsername),
		Email:    f.Value(FieldEmail),
		Password: f.Value(FieldPassword),
	}, nil
}
