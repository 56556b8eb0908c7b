package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/covet-app/covet/internal/logger"
)

// ConnectOptions defines MongoDB connection retry behavior.
type ConnectOptions struct {
	URI            string        // ex: "mongodb://localhost:27017"
	Database       string        // database name
	User           string        // optional
	Password       string        // optional
	DialTimeout    time.Duration // per-attempt dial timeout
	ConnectTimeout time.Duration // total time allowed for connection attempts
	RetryInterval  time.Duration // initial wait between retries, grows exponentially
	MaxWait        time.Duration // cap on the wait between retries
	PingTimeout    time.Duration // timeout for each ping attempt
	WarnThreshold  int           // warn (not error) up to this many attempts
}

func (o ConnectOptions) validate() error {
	if o.URI == "" {
		return fmt.Errorf("URI must be set")
	}
	if o.Database == "" {
		return fmt.Errorf("Database must be set")
	}
	if o.ConnectTimeout <= 0 || o.RetryInterval <= 0 || o.MaxWait <= 0 || o.PingTimeout <= 0 {
		return fmt.Errorf("all timeouts must be > 0")
	}
	return nil
}

// New connects to MongoDB with exponential-backoff retry, pinging until the
// server answers or ConnectTimeout is exhausted. Returns the client (for
// shutdown) and the database handle.
func New(opts ConnectOptions, log logger.Logger) (*mongo.Client, *mongo.Database, error) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetConnectTimeout(opts.DialTimeout)
	if opts.User != "" {
		clientOpts.SetAuth(options.Credential{
			Username:    opts.User,
			Password:    opts.Password,
			PasswordSet: opts.Password != "",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build mongo client: %w", err)
	}

	log.Info("connecting to mongodb",
		logger.String("database", opts.Database),
		logger.Duration("timeout", opts.ConnectTimeout))

	attempt := 0
	wait := opts.RetryInterval

	for {
		attempt++

		pingCtx, pingCancel := context.WithTimeout(ctx, opts.PingTimeout)
		err = client.Ping(pingCtx, readpref.Primary())
		pingCancel()

		if err == nil {
			if attempt > 1 {
				log.Warn("connected to mongodb after retry",
					logger.Int("attempts", attempt))
			} else {
				log.Info("connected to mongodb")
			}
			return client, client.Database(opts.Database), nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, nil, fmt.Errorf("mongodb unavailable after %d attempts (timeout: %v): %w",
				attempt, opts.ConnectTimeout, err)

		case <-timer.C:
			if attempt <= opts.WarnThreshold {
				log.Warn("mongodb connection failed, retrying",
					logger.Int("attempt", attempt),
					logger.Duration("next_retry_in", wait),
					logger.Error(err))
			} else {
				log.Error("mongodb still unavailable - connection attempts failing",
					logger.Int("attempt", attempt),
					logger.Duration("next_retry_in", wait),
					logger.Error(err))
			}
			wait *= 2
			if wait > opts.MaxWait {
				wait = opts.MaxWait
			}
		}
	}
}
