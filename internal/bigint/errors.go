package bigint

import "errors"

// ErrDivisionByZero is returned by DivMod, Div, Mod and ModCrypto when the
// denominator is the canonical zero value.
var ErrDivisionByZero = errors.New("bigint: division by zero")
