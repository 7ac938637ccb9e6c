package utils

import (
	"context"
	"crypto/tls"
	"net/http/httptrace"

	"github.com/davecgh/go-spew/spew"

	"github.com/kcctl/kcctl/internal/pkg/log"
)

// HTTPTracedContext returns a context.Context that logs connection events of a request to the Connect worker at trace level.
func HTTPTracedContext(ctx context.Context, logger *log.Logger) context.Context {
	trace := &httptrace.ClientTrace{
		DNSStart: func(dnsInfo httptrace.DNSStartInfo) {
			logger.Tracef("DNS Start; Host: %s", dnsInfo.Host)
		},
		DNSDone: func(dnsInfo httptrace.DNSDoneInfo) {
			logger.Tracef("DNS Done; Addrs: %v, Err: %v", dnsInfo.Addrs, dnsInfo.Err)
		},
		ConnectStart: func(network, addr string) {
			logger.Tracef("Connect Start; network=%s, addr=%s", network, addr)
		},
		ConnectDone: func(network, addr string, err error) {
			if err != nil {
				logger.Tracef("Connect Done; network=%s, addr=%s, error: %+v", network, addr, err)
				return
			}
			logger.Tracef("Connect Done; network=%s, addr=%s", network, addr)
		},
		TLSHandshakeStart: func() {
			logger.Trace("TLS Handshake Start")
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			logger.Tracef("TLS Handshake Done; State:\n%s", spew.Sdump(state))
			if err != nil {
				logger.Tracef("TLS Handshake Done; Error: %+v", err)
			}
		},
		GotConn: func(connInfo httptrace.GotConnInfo) {
			logger.Tracef("Got Conn; reused=%t, idle=%t", connInfo.Reused, connInfo.WasIdle)
		},
		WroteRequest: func(info httptrace.WroteRequestInfo) {
			if info.Err != nil {
				logger.Tracef("Wrote Request; Error: %+v", info.Err)
			}
		},
	}

	return httptrace.WithClientTrace(ctx, trace)
}
