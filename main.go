package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"k8s.io/utils/clock"

	"github.com/gayoung/portfolio/internal/alert"
	"github.com/gayoung/portfolio/internal/colorutil"
	"github.com/gayoung/portfolio/internal/config"
	"github.com/gayoung/portfolio/internal/i18n"
	"github.com/gayoung/portfolio/internal/logging"
	"github.com/gayoung/portfolio/internal/mailer"
	"github.com/gayoung/portfolio/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio site",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newDarkenCmd(), newMessagesCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			logging.SetupDefault(cfg.LogLevel, cfg.Mode)
			gin.SetMode(cfg.Mode)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	site, err := config.LoadSite(cfg.SiteConfig)
	if err != nil {
		log.Warn().Err(err).Msg("using built-in site profile")
	}

	bundle, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	st, err := store.Open(ctx, cfg.DBPath, generateToken())
	if err != nil {
		return err
	}
	defer st.Close()

	alerts := alert.NewRegistry(clock.RealClock{}, cfg.AlertTTL)
	defer alerts.Close()
	go alerts.Run(ctx)

	m := mailer.NewSMTP(mailer.Config{
		Host: cfg.SMTP.Host,
		Port: cfg.SMTP.Port,
		User: cfg.SMTP.User,
		Pass: cfg.SMTP.Pass,
		To:   cfg.SMTP.To,
	})

	srv, err := newServer(cfg, site, bundle, st, m, alerts)
	if err != nil {
		return err
	}
	handler, err := srv.routes()
	if err != nil {
		return fmt.Errorf("build routes: %w", err)
	}
	_, _ = srv.cleanupVisits(ctx)

	log.Info().Msg("admin access available at /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Debug().Str("token", srv.adminToken).Msg("admin token (dev only)")
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", httpSrv.Addr).Msg("listening")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func newDarkenCmd() *cobra.Command {
	var percentage float64

	cmd := &cobra.Command{
		Use:   "darken <color>",
		Short: "Print a #rrggbb color darkened by a fraction",
		Long: `Print a #rrggbb color darkened by a fraction.

Each channel loses round(channel * percentage). Invalid colors fall back to ` + colorutil.FallbackColor + `.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), colorutil.Darken(args[0], percentage))
			return err
		},
	}
	cmd.Flags().Float64VarP(&percentage, "percentage", "p", colorutil.DefaultDarkenPercentage, "Fraction to darken by, 0 to 1")
	return cmd
}

func newMessagesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List stored contact messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("limit must be a positive integer")
			}
			cfg := config.FromEnv()
			logging.SetupDefault(cfg.LogLevel, cfg.Mode)

			st, err := store.Open(cmd.Context(), cfg.DBPath, "")
			if err != nil {
				return err
			}
			defer st.Close()

			messages, err := st.ListMessages(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printMessages(cmd, messages)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of messages to show")
	return cmd
}

func printMessages(cmd *cobra.Command, messages []store.Message) error {
	if len(messages) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No messages")
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tNAME\tEMAIL\tDELIVERED\tMESSAGE")
	for _, m := range messages {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%s\n",
			m.ID, m.CreatedAt.Local().Format("2006-01-02 15:04"), m.Name, m.Email, m.Delivered, preview(m.Body, 40))
	}
	return w.Flush()
}

// preview shortens s to at most n runes on one line.
func preview(s string, n int) string {
	r := []rune(s)
	for i, c := range r {
		if c == '\n' || c == '\r' {
			r[i] = ' '
		}
	}
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "…"
}
