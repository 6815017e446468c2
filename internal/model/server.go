package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener the HTTP server accepts connections on.
type SecurityLayer interface {
	Listen(network, addr string) (net.Listener, error)
}

// Server is a long-running network server with graceful shutdown.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
