package remote

import (
	"errors"
	"fmt"
)

// ErrNotFound: query berhasil tapi lookup satu baris tidak menemukan data.
var ErrNotFound = errors.New("record not found")

// QueryError: backend menolak query (status non-2xx / error SQL).
type QueryError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

func (e *QueryError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("remote query failed (status=%d code=%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("remote query failed (status=%d): %s", e.Status, e.Message)
}

// IsNotFound juga menganggap error PostgREST PGRST116 (single tanpa baris) sebagai not-found.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var qe *QueryError
	return errors.As(err, &qe) && qe.Code == "PGRST116"
}
