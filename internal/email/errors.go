package email

import (
	"errors"
	"fmt"
	"net/textproto"
)

// AuthError is returned when the relay rejects the sender's credential.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("smtp: authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// DeliveryError covers every other failure: dialing, TLS negotiation,
// envelope or data rejection.
type DeliveryError struct {
	Op  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("smtp: %s: %v", e.Op, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// authReplyCodes are SMTP replies that mean the credential was refused:
// 530 authentication required, 534 mechanism too weak / app password
// required, 535 credentials invalid, 538 encryption required for mechanism.
var authReplyCodes = map[int]bool{530: true, 534: true, 535: true, 538: true}

func isAuthReply(err error) bool {
	var protoErr *textproto.Error
	return errors.As(err, &protoErr) && authReplyCodes[protoErr.Code]
}
