// Package oauthstate provides docusign.StateStore implementations that keep
// the OAuth state parameter between the authorization redirect and the
// callback.
//
// MemoryStore is backed by github.com/patrickmn/go-cache and suits a single
// process. RedisStore is backed by github.com/redis/go-redis/v9 and lets any
// instance verify a callback. Both consume a state at most once; a second
// Consume of the same value fails with ErrStateNotFound.
//
// # Usage
//
//	client, err := oauthstate.Connect(ctx, oauthstate.RedisConfig{
//	    ConnectionURL:  "redis://localhost:6379/0",
//	    RetryAttempts:  3,
//	    RetryInterval:  time.Second,
//	    ConnectTimeout: 10 * time.Second,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	strategy, err := docusign.New(cfg,
//	    docusign.WithStateStore(oauthstate.NewRedisStore(client, "")),
//	)
package oauthstate
