package update

import (
	"context"
	"time"
)

func loadContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
