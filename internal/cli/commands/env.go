package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/roomdesk/roomdesk/internal/cli/auth"
	"github.com/roomdesk/roomdesk/internal/cli/client"
	"github.com/roomdesk/roomdesk/internal/cli/config"
	"github.com/roomdesk/roomdesk/internal/cli/gateway"
	"github.com/roomdesk/roomdesk/internal/cli/output"
	"github.com/roomdesk/roomdesk/internal/cli/serverselect"
	"github.com/roomdesk/roomdesk/internal/cli/session"
	envconfig "github.com/roomdesk/roomdesk/internal/config"
	"github.com/roomdesk/roomdesk/internal/logger"
)

// Option overrides how a command reaches the backend. Production wiring
// passes none; tests point commands at an httptest server and an in-memory store.
type Option func(*options)

type options struct {
	baseURL string
	store   auth.Store
	format  output.Format
	now     func() time.Time
}

// WithBaseURL skips server resolution and talks to baseURL directly.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithStore replaces the OS keyring credential store.
func WithStore(store auth.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithFormat fixes the output format instead of reading --output.
func WithFormat(format output.Format) Option {
	return func(o *options) {
		o.format = format
	}
}

func withClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func collect(opts []Option) *options {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// env is everything a command needs to talk to one backend.
type env struct {
	baseURL string
	alias   string
	session *auth.Session
	guard   *session.Guard
	api     *client.Client
	printer *output.Printer
	logger  zerolog.Logger
	out     io.Writer
	errOut  io.Writer
	now     func() time.Time
}

func (e *env) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// flagString reads a persistent flag inherited from the root command.
// Commands built on their own (as in tests) have no such flag and get "".
func flagString(cmd *cobra.Command, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}

// resolveBaseURL picks the backend: explicit option, then ROOMDESK_API_BASE_URL,
// then the server chosen from roomdesk.json.
func resolveBaseURL(cmd *cobra.Command, o *options, cfg *envconfig.Config) (baseURL, alias string, err error) {
	if o.baseURL != "" {
		return gateway.CleanBaseURL(o.baseURL), "", nil
	}
	if cfg.API.BaseURL != "" {
		return gateway.CleanBaseURL(cfg.API.BaseURL), "env", nil
	}

	projectConfig, err := config.LoadFromCurrentDir()
	if err != nil {
		return "", "", fmt.Errorf("failed to load config: %w\nRun 'roomdesk init <url>' to create a configuration file", err)
	}

	server, err := serverselect.ResolveServer(projectConfig, flagString(cmd, "server"))
	if err != nil {
		return "", "", err
	}
	return server.BaseURL(), server.Alias, nil
}

func newEnv(cmd *cobra.Command, o *options) (*env, error) {
	cfg, err := envconfig.Load()
	if err != nil {
		return nil, err
	}

	format := o.format
	if format == "" {
		format, err = output.ParseFormat(flagString(cmd, "output"))
		if err != nil {
			return nil, err
		}
	}

	baseURL, alias, err := resolveBaseURL(cmd, o, cfg)
	if err != nil {
		return nil, err
	}

	store := o.store
	if store == nil {
		store = auth.NewKeyringStore()
	}

	sess, err := auth.OpenSession(store, baseURL)
	if err != nil {
		return nil, err
	}

	log := logger.GetLogger().With().Str("server", baseURL).Logger()
	errOut := cmd.ErrOrStderr()

	guard := session.NewGuard(sess, func(int) {
		fmt.Fprintln(errOut, "Session expired or credentials rejected; run 'roomdesk login' or 'roomdesk otp request <email>'")
	}, log)

	gw := gateway.New(baseURL, sess,
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		gateway.WithNotifier(guard),
		gateway.WithLogger(log),
		gateway.WithRateLimit(cfg.API.RateLimit, 1),
	)

	e := &env{
		baseURL: baseURL,
		alias:   alias,
		session: sess,
		guard:   guard,
		api:     client.New(gw),
		printer: output.NewPrinter(cmd.OutOrStdout(), format),
		logger:  log,
		out:     cmd.OutOrStdout(),
		errOut:  errOut,
		now:     o.now,
	}
	e.warnIfExpired()

	return e, nil
}

// newAdminEnv is newEnv for staff-only commands. It refuses to continue
// without an access token; the backend still decides what the token may do.
func newAdminEnv(cmd *cobra.Command, o *options) (*env, error) {
	e, err := newEnv(cmd, o)
	if err != nil {
		return nil, err
	}
	if e.session.AccessToken() == "" {
		return nil, fmt.Errorf("admin commands require a staff login; run 'roomdesk login' first")
	}
	return e, nil
}

func (e *env) warnIfExpired() {
	access := e.session.AccessToken()
	if access == "" {
		return
	}
	info, err := auth.InspectToken(access)
	if err != nil {
		e.logger.Debug().Err(err).Msg("Stored access token is not a JWT")
		return
	}
	if info.Expired(e.now()) {
		if e.session.RefreshToken() != "" {
			e.logger.Warn().Time("expired_at", info.ExpiresAt).Msg("Access token expired; run 'roomdesk auth refresh'")
		} else {
			e.logger.Warn().Time("expired_at", info.ExpiresAt).Msg("Access token expired; run 'roomdesk login'")
		}
	}
}

func (e *env) serverLabel() string {
	if e.alias == "" {
		return e.baseURL
	}
	return fmt.Sprintf("%s (%s)", e.alias, e.baseURL)
}
