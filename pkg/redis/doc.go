// Package redis opens the optional Redis connection used to share
// in-flight submission locks between instances.
//
//	var cfg redis.Config // REDIS_URL, REDIS_POOL_SIZE, ...
//	client, err := redis.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	app := relayform.New(
//		relayform.WithHealthChecks(relayform.Check("redis", redis.Healthcheck(client))),
//		relayform.WithShutdownHook(redis.Shutdown(client)),
//	)
package redis
