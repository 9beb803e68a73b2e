// Package redis connects to a Redis server with retries and exposes a
// readiness check for it.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	health := httpserver.HealthCheckHandler(log, redis.Healthcheck(client))
//
// Errors wrap the go-redis cause with errors.Join, so both the sentinel
// and the cause match errors.Is.
package redis
