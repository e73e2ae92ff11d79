// Package redis creates go-redis clients from environment configuration.
//
// Connect accepts redis:// and rediss:// URLs, retries PING with exponential
// backoff and returns a ready client. Healthcheck returns a ping probe suitable
// for readiness endpoints.
package redis
