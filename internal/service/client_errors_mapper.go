// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"golang.org/x/text/message"
)

// newRequestError wraps err into a [RequestError] for op, rendering the
// message with p.
func newRequestError(p *message.Printer, op Operation, err error) *RequestError {
	if err == nil {
		return nil
	}

	key, ok := messageKeys[op]
	if !ok {
		key = string(op) + ": %s"
	}

	return &RequestError{
		Op:      op,
		Message: p.Sprintf(key, err.Error()),
		Err:     err,
	}
}
