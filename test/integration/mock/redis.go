package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
)

var redisOnce sync.Once
var miniRedis *miniredis.Miniredis

// NewRedis returns the shared in-process Redis server of the suite.
func NewRedis() *miniredis.Miniredis {
	redisOnce.Do(func() {
		m, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		miniRedis = m
	})
	return miniRedis
}

// RedisURL is the REDIS_URL pointing at the shared server.
func RedisURL() string {
	return "redis://" + NewRedis().Addr() + "/0"
}

func ClearRedis() {
	NewRedis().FlushAll()
}
