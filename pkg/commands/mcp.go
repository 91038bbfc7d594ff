package commands

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		host      string
		port      int
		path      string
		certFile  string
		keyFile   string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the journal to assistants over the Model Context Protocol.",
		Long: `Launch an MCP server that lets an assistant log moods, read the mood
history and delete entries through the Model Context Protocol.`,
		Example: `
mood mcp
mood mcp --http-port 0
mood mcp --transport stdio
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			t, err := mcp.ParseTransport(transport)
			if err != nil {
				return err
			}
			if port < 0 || port > 65535 {
				return fmt.Errorf("invalid http-port %d", port)
			}

			svc, err := openJournal(contextOf(cmd))
			if err != nil {
				return err
			}
			defer svc.Close()

			r := mcp.Runner{
				Service:   svc,
				Name:      "mood",
				Version:   version,
				Transport: t,
				Addr:      net.JoinHostPort(host, strconv.Itoa(port)),
				Path:      path,
				CertFile:  certFile,
				KeyFile:   keyFile,
				OnListening: func(url string) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", url)
				},
			}
			return r.Do(contextOf(cmd))
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "Transport to use: http or stdio.")
	cmd.Flags().StringVar(&host, "http-host", "127.0.0.1", "Host or interface for the HTTP transport.")
	cmd.Flags().IntVar(&port, "http-port", 8080, "Port for the HTTP transport, 0 picks a free one.")
	cmd.Flags().StringVar(&path, "http-path", mcp.DefaultPath, "HTTP endpoint path.")
	cmd.Flags().StringVar(&certFile, "http-tls-cert", "", "TLS certificate file for HTTPS.")
	cmd.Flags().StringVar(&keyFile, "http-tls-key", "", "TLS private key file for HTTPS.")

	topLevel.AddCommand(cmd)
}
