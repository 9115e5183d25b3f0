package client

import (
	errs "github.com/feedlyapi/feedly-go/client/internal/errors"
	"github.com/feedlyapi/feedly-go/client/internal/types"
)

// Error is returned for transport failures, unencodable request bodies,
// undecodable responses and non-2xx answers to read calls. Use errors.As to inspect it.
type Error = errs.ClassifiedError

// ErrorCategory tells where in the request cycle an Error happened.
type ErrorCategory = errs.ErrorCategory

const (
	CategoryTransport = errs.Transport
	CategoryDecode    = errs.Decode
	CategoryStatus    = errs.Status
	CategoryEncode    = errs.Encode
)

// ErrUnknownInfoType is returned by GetInfoByType for a type outside the fixed set.
var ErrUnknownInfoType = types.ErrUnknownInfoType

// IsTransport reports whether err failed before any response arrived.
func IsTransport(err error) bool { return errs.Is(err, errs.Transport) }

// IsDecode reports whether err is an undecodable response body.
func IsDecode(err error) bool { return errs.Is(err, errs.Decode) }

// IsEncode reports whether a request body could not be marshaled.
func IsEncode(err error) bool { return errs.Is(err, errs.Encode) }

// IsStatus reports whether err is a non-2xx answer to a read call.
func IsStatus(err error) bool { return errs.Is(err, errs.Status) }
