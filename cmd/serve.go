package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/worldclock/internal/ui"
	"github.com/agent-platform/tools/worldclock/internal/web"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve [city...]",
	Short: "Serve the world clock over HTTP",
	Long: `Starts an HTTP server with:
  /            Tile page, updated live over a websocket
  /api/clocks  JSON snapshot of every city
  /ws          Websocket feed, one frame per second
  /healthz     Liveness check

Unknown paths get a "page not found" view.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, args, false)
		if err != nil {
			return err
		}

		addr := e.cfg.Listen
		if serveListen != "" {
			addr = serveListen
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := web.New(web.Options{
			Builder: e.builder,
			Clock:   clockwork.NewRealClock(),
			Logger:  e.logger,
			Lang:    e.formatter.Locale(),
		})
		httpSrv := &http.Server{
			Addr:              addr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
			// Websocket views end with the root context.
			BaseContext: func(net.Listener) context.Context { return ctx },
		}

		go func() {
			<-ctx.Done()
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), ui.Dimf("Shutting down server..."))
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				e.logger.Warn("shutdown", "err", err)
			}
		}()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Boldf("  worldclock")+ui.Dimf(" - Relógio Mundial"))
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %s  %s\n", ui.Dimf("Listening:"), ui.Cyanf("http://%s", displayAddr(addr)))
		fmt.Fprintf(out, "  %s  %d\n", ui.Dimf("Cities:   "), e.catalog.Len())
		fmt.Fprintf(out, "  %s  %s\n", ui.Dimf("Locale:   "), e.formatter.Locale())
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Dimf("  Press Ctrl+C to stop"))
		fmt.Fprintln(out)

		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "address to listen on (overrides config)")
}

// displayAddr turns ":8080" into "localhost:8080" for the banner.
func displayAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host != "" {
		return addr
	}
	return net.JoinHostPort("localhost", port)
}
