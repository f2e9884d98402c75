package weather

import (
	"errors"
	"fmt"

	"agrimoga/internal/i18n"
)

// Kind classifies a boundary fetch failure.
type Kind string

const (
	KindNoAPIKey     Kind = "no_api_key"
	KindNetwork      Kind = "network"
	KindStatus       Kind = "status"
	KindEmptyPayload Kind = "empty_payload"
	KindDecode       Kind = "decode"
)

// ErrPlaceNotFound is returned by Geocode when the provider knows no such place.
var ErrPlaceNotFound = errors.New("place not found")

// FetchError is every failure the provider client returns.
type FetchError struct {
	Op         string // forecast | geocode | reverse
	Kind       Kind
	StatusCode int
	Body       string // first bytes of a non-2xx body
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("weather %s: %s %d: %s", e.Op, e.Kind, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("weather %s: %s: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("weather %s: %s", e.Op, e.Kind)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// retryable reports whether another attempt may succeed.
func (e *FetchError) retryable() bool {
	return e.Kind == KindNetwork || (e.Kind == KindStatus && (e.StatusCode >= 500 || e.StatusCode == 429))
}

// KindOf extracts the failure kind, or "" for non-fetch errors.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// Warning turns a fetch failure into the localized user-facing message.
func Warning(err error, l i18n.Locale) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrPlaceNotFound) {
		return l.T(i18n.KeyWarnPlaceNotFound)
	}
	switch KindOf(err) {
	case KindNoAPIKey:
		return l.T(i18n.KeyWarnNoAPIKey)
	case KindStatus:
		return l.T(i18n.KeyWarnStatus)
	case KindEmptyPayload:
		return l.T(i18n.KeyWarnEmpty)
	case KindDecode:
		return l.T(i18n.KeyWarnDecode)
	default:
		return l.T(i18n.KeyWarnNetwork)
	}
}
