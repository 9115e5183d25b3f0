package types

import "errors"

// ------------------------------
// Shared Errors
// ------------------------------

// ErrUnknownInfoType is returned for an InfoType outside the fixed set. No
// request is sent.
var ErrUnknownInfoType = errors.New("unknown info type")
