package main

import (
	"errors"
	"fmt"

	"github.com/oomph-ac/webxr/oerror"
)

// errPayloadDecode wraps a payload that is not valid JSON.
type errPayloadDecode struct {
	err error
}

func (e errPayloadDecode) Error() string { return fmt.Sprintf("decode payload: %v", e.err) }
func (e errPayloadDecode) Unwrap() error { return e.err }

// isRecoverable reports whether the connection may keep going after err. Bad payloads are
// dropped and superseded by the next one; everything else ends the connection.
func isRecoverable(err error) bool {
	var (
		fe *oerror.FormatError
		de errPayloadDecode
	)
	return errors.As(err, &fe) || errors.As(err, &de)
}
