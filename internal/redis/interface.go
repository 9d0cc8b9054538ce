package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the go-redis universal client
type Client interface {
	redis.UniversalClient
}
