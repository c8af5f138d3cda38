// Package connector opens a single outbound TCP stream, writes a fixed
// greeting and reports whether the write went through.
package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/net/proxy"

	"hello_connector/internal/shared"
	"hello_connector/internal/shared/logger"
	"hello_connector/internal/shared/types"
)

// Payload is the exact byte sequence written on every run.
const Payload = "hello world\n"

// Connector 持有目标地址与拨号器。它本身不保存任何单次运行的状态。
type Connector struct {
	address      string
	dialer       proxy.ContextDialer
	writeTimeout time.Duration
	logger       zerolog.Logger
}

// New 根据客户端配置创建 Connector。
func New(cfg *types.ClientConf) (*Connector, error) {
	dialer, err := newDialer(cfg)
	if err != nil {
		return nil, err
	}
	c := NewWithDialer(cfg.Address, dialer)
	c.writeTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	if cfg.Socks5Proxy != "" {
		c.logger = c.logger.With().Str("socks5_proxy", cfg.Socks5Proxy).Logger()
	}
	return c, nil
}

// NewWithDialer creates a Connector that dials through the given dialer.
func NewWithDialer(address string, dialer proxy.ContextDialer) *Connector {
	return &Connector{
		address: address,
		dialer:  dialer,
		logger:  logger.WithComponent("connector").With().Str("address", address).Logger(),
	}
}

// Address returns the host:port this Connector dials.
func (c *Connector) Address() string {
	return c.address
}

// Connect dials the configured address over TCP. Failures are not retried.
func (c *Connector) Connect(ctx context.Context) (net.Conn, error) {
	conn, err := c.dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return nil, &ConnectError{Address: c.address, Err: err}
	}
	return conn, nil
}

// WriteAll hands every byte of b to conn in order, looping over short writes.
func (c *Connector) WriteAll(conn net.Conn, b []byte) error {
	if c.writeTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return &WriteError{Err: err}
		}
	}

	written := 0
	for written < len(b) {
		n, err := conn.Write(b[written:])
		written += n
		if err != nil {
			return &WriteError{Written: written, Err: err}
		}
		if n == 0 {
			return &WriteError{Written: written, Err: io.ErrShortWrite}
		}
	}
	return nil
}

// Run performs one connect/write lifecycle and prints the two status lines
// to out. Only a connect failure is returned; a write failure is reported as
// success=false and Run still returns nil.
func (c *Connector) Run(ctx context.Context, out io.Writer) error {
	runLogger := c.logger.With().Str("run_id", uuid.NewString()).Logger()

	conn, err := c.Connect(ctx)
	if err != nil {
		runLogger.Debug().Err(err).Msg("Connection could not be established.")
		return err
	}
	counted := shared.NewCountedConn(conn)
	defer counted.Close()

	fmt.Fprintln(out, "created stream")
	runLogger.Debug().Str("local_addr", conn.LocalAddr().String()).Msg("Stream created.")

	err = c.WriteAll(counted, []byte(Payload))
	success := err == nil
	if err != nil {
		var writeErr *WriteError
		if errors.As(err, &writeErr) {
			runLogger.Warn().Err(writeErr.Err).Int("written", writeErr.Written).Msg("Write to stream failed.")
		}
	}
	fmt.Fprintf(out, "wrote to stream; success=%t\n", success)

	runLogger.Debug().Uint64("uplink_bytes", counted.Stats().Uplink).Msg("Run finished.")
	return nil
}
