package model

import "github.com/pkg/errors"

// BodyState is embedded by requests that carry a body. Decoding never fails
// the request outright; a body that does not decode is kept here and
// reported by Validate, which services run only once the addressed list or
// item is known to exist.
type BodyState struct {
	bodyErr error
}

// SetBodyError records why the body could not be decoded.
func (b *BodyState) SetBodyError(err error) {
	b.bodyErr = err
}

// BodyError is a plain error, so it surfaces as a 500 rather than as a
// client error.
func (b *BodyState) BodyError() error {
	if b.bodyErr == nil {
		return nil
	}
	return errors.Errorf("decoding request body: %v", b.bodyErr)
}
