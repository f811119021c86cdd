// internal/imagery/provider.go
//
// Shared provider errors. The interface a provider has to satisfy is owned
// by its consumer (places.ImageFetcher); this package just implements it.

package imagery

import "errors"

// ErrUnavailable means no imagery could be produced for the coordinates.
// Callers treat it as recoverable: the round is simply not started.
var ErrUnavailable = errors.New("imagery unavailable")
