package httperr

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable marks failures of the backing store. Callers decide
// whether to retry; the core never does.
var ErrStoreUnavailable = errors.New("store_unavailable")

func StoreUnavailable(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
