package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/mood/pkg/app"
)

// Transport selects how the server is exposed.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

// DefaultPath is where the streamable HTTP handler is mounted.
const DefaultPath = "/mcp"

const shutdownTimeout = 5 * time.Second

// Runner serves the journal over MCP until ctx is done.
type Runner struct {
	Service *app.Service
	Name    string
	Version string

	Transport Transport
	Addr      string // host:port, port 0 picks one
	Path      string
	CertFile  string
	KeyFile   string

	// OnListening receives the endpoint URL once the HTTP listener is up.
	OnListening func(url string)
}

// ParseTransport accepts "http" (also the empty string) or "stdio".
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(s))); t {
	case "", TransportHTTP:
		return TransportHTTP, nil
	case TransportStdio:
		return TransportStdio, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected http or stdio)", s)
	}
}

func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil || r.Service.Controller == nil {
		return errors.New("mcp runner requires a journal")
	}
	transport, err := ParseTransport(string(r.Transport))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := r.Service.Watch(ctx); err != nil && !errors.Is(err, app.ErrWatchUnsupported) {
		return err
	}

	srv := r.newServer()
	if transport == TransportStdio {
		return server.ServeStdio(srv)
	}
	return r.serveHTTP(ctx, srv)
}

func (r Runner) newServer() *server.MCPServer {
	name, version := r.Name, r.Version
	if name == "" {
		name = "mood"
	}
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		name+" MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Log moods with activities, browse and summarize the mood history, and delete entries. "+
			"Call list_catalog for valid moods and activities. Only call clear_entries after the user confirms."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Service.Controller)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) tls() (bool, error) {
	switch {
	case r.CertFile == "" && r.KeyFile == "":
		return false, nil
	case r.CertFile == "" || r.KeyFile == "":
		return false, errors.New("both http tls cert and key must be provided")
	default:
		return true, nil
	}
}

func (r Runner) path() string {
	p := strings.TrimSpace(r.Path)
	if p == "" {
		return DefaultPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	useTLS, err := r.tls()
	if err != nil {
		return err
	}

	addr := r.Addr
	if addr == "" {
		addr = net.JoinHostPort("127.0.0.1", "8080")
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	path := r.path()
	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	if r.OnListening != nil {
		r.OnListening(endpointURL(ln.Addr(), addr, path, useTLS))
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if useTLS {
		err = httpSrv.ServeTLS(ln, r.CertFile, r.KeyFile)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// endpointURL describes where clients can reach the server. Wildcard hosts
// are replaced with the bound IP, or loopback when that is unspecified too.
func endpointURL(bound net.Addr, requested, path string, useTLS bool) string {
	scheme := "http"
	if useTLS {
		scheme = "https"
	}

	host, _, _ := net.SplitHostPort(requested)
	port := ""
	if tcp, ok := bound.(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
		if host == "" || host == "0.0.0.0" || host == "::" {
			host = "127.0.0.1"
			if tcp.IP != nil && !tcp.IP.IsUnspecified() {
				host = tcp.IP.String()
			}
		}
	} else {
		_, port, _ = net.SplitHostPort(bound.String())
	}
	return scheme + "://" + net.JoinHostPort(host, port) + path
}
