package contracts

import (
	"context"
	"time"
)

// LockerService is a redis backed mutex shared by every instance of the service. TryLock returns
// the token that must be presented to Unlock and Refresh.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, key, token string) error
	Refresh(ctx context.Context, key, token string, expiration time.Duration) error
}
