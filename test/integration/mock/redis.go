// Package mock provides test doubles for integration tests.
package mock

import (
	"fmt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// NewRedis starts an in-process redis and returns a client plus a cleanup
// function.
func NewRedis() (*redis.Client, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		panic(fmt.Sprintf("failed to start miniredis: %v", err))
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return client, func() {
		_ = client.Close()
		mr.Close()
	}
}
