package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// PostgresPinger probes a PostgreSQL database with a scoped
// connect-ping-close round trip. The connection string is opaque to the
// probe loop; it is only handed to the driver.
type PostgresPinger struct {
	// URL is the connection string (postgres://...).
	URL string

	// ConnectTimeout bounds a single attempt. Zero means
	// DefaultConnectTimeout.
	ConnectTimeout time.Duration
}

// Ping opens a connection, executes the driver's no-op round trip, and
// closes the connection. Nothing is held open across calls.
func (p *PostgresPinger) Ping(ctx context.Context) error {
	timeout := p.ConnectTimeout
	if timeout == 0 {
		timeout = DefaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, p.URL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = conn.Close(ctx) }()

	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
