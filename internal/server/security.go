package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
)

// NewSecurityLayer picks the TLS listener when HTTPS is enabled and a plain one otherwise.
func NewSecurityLayer(enableHTTPS bool, certFileName, privateKeyFileName string) model.SecurityLayer {
	if enableHTTPS {
		return NewTLSListener(certFileName, privateKeyFileName)
	}
	return NewPlainListener()
}

// TLSListener serves HTTPS with a certificate loaded from disk on every Listen.
type TLSListener struct {
	certFileName       string
	privateKeyFileName string
}

func NewTLSListener(certFileName, privateKeyFileName string) *TLSListener {
	return &TLSListener{
		certFileName:       certFileName,
		privateKeyFileName: privateKeyFileName,
	}
}

// Listen loads the key pair and opens a TLS 1.2+ listener on addr.
func (l *TLSListener) Listen(network, addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFileName, l.privateKeyFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}
	return tls.Listen(network, addr, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	})
}

// PlainListener serves unencrypted HTTP. Used behind a TLS terminating proxy or locally.
type PlainListener struct{}

func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

func (l *PlainListener) Listen(network, addr string) (net.Listener, error) {
	return net.Listen(network, addr)
}
