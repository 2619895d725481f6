// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-patient-keeper/internal/config"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(http.NotFoundHandler(), config.StubConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoAddress)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	srv, err := NewServer(handler, config.StubConfig{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	// capture the real address of the ephemeral port
	addrCh := make(chan net.Addr, 1)
	s := srv.(*server)
	s.listen = func(network, address string) (net.Listener, error) {
		ln, err := net.Listen(network, address)
		if err == nil {
			addrCh <- ln.Addr()
		}
		return ln, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", addr))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunListenError(t *testing.T) {
	srv, err := NewServer(http.NotFoundHandler(), config.StubConfig{HTTPAddress: "127.0.0.1:1"}, logger.Nop())
	require.NoError(t, err)

	listenErr := errors.New("address in use")
	srv.(*server).listen = func(string, string) (net.Listener, error) { return nil, listenErr }

	assert.ErrorIs(t, srv.Run(context.Background()), listenErr)
}
