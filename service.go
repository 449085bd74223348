package rates

import (
	"context"
	"errors"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrRequestFailure       = errors.New("request failed")
	ErrMalformedResponse    = errors.New("malformed response")
)

type Service interface {
	Run(ctx context.Context, days int) (ResultSet, error)
}
