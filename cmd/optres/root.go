package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/charmingruby/optres/fp"
	"github.com/charmingruby/optres/internal/config"
	"github.com/charmingruby/optres/internal/logging"
	"github.com/charmingruby/optres/safe"
	"github.com/charmingruby/optres/seq"
	"github.com/charmingruby/optres/storage"
)

// errFailed is returned after a failed Result was printed so the process exits
// non-zero.
var errFailed = errors.New("optres: operation failed")

type app struct {
	configFile   string
	printMetrics bool
	failed       bool

	logger   *zap.Logger
	undo     func()
	registry *prometheus.Registry
	fetcher  *safe.Fetcher
	backends map[string]storage.Backend
	scopes   safe.Storages
	closers  []io.Closer
}

func newRootCmd() *cobra.Command {
	return (&app{}).command()
}

func (a *app) command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "optres",
		Short:         "Run safe adapters and print their Option or Result",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd); err != nil {
				return errors.Join(err, a.release())
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.OutOrStdout())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "configuration file")
	flags.BoolVar(&a.printMetrics, "print-metrics", false, "print adapter call counters after the command")
	flags.String("log-level", "info", "log level")
	flags.Duration("http-timeout", 0, "timeout of fetch requests")
	flags.String("redis-addr", "", "redis address backing the local scope; in-memory when empty")
	flags.String("redis-password", "", "redis password")
	flags.Int("redis-db", 0, "redis database")
	flags.String("key-prefix", "", "prefix of keys stored in redis")
	flags.Int("session-capacity", 0, "maximum number of session keys")
	flags.Duration("session-ttl", 0, "expiry of session keys")

	rootCmd.AddCommand(
		newFetchCmd(a),
		newGetCmd(a),
		newPutCmd(a),
		newParseCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd, a.configFile)
	if err != nil {
		return err
	}

	a.logger, err = logging.New(cfg.LogLevel())
	if err != nil {
		return err
	}
	a.undo = zap.ReplaceGlobals(a.logger)

	a.registry = prometheus.NewRegistry()
	metrics, err := safe.NewMetrics(a.registry)
	if err != nil {
		return err
	}
	opts := []safe.Option{safe.WithLogger(a.logger), safe.WithMetrics(metrics)}

	a.fetcher = safe.NewFetcher(append(opts, safe.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout()}))...)

	session := storage.NewMemory(cfg.SessionCapacity(), storage.WithTTL(cfg.SessionTTL()))
	a.closers = append(a.closers, session)

	var local storage.Backend
	if addr := cfg.RedisAddr(); addr != "" {
		r, err := storage.DialRedis(cmd.Context(), storage.RedisConfig{
			Addr:      addr,
			Password:  cfg.RedisPassword(),
			DB:        cfg.RedisDB(),
			KeyPrefix: cfg.KeyPrefix(),
		})
		if err != nil {
			return err
		}
		a.closers = append(a.closers, r)
		local = r
	} else {
		a.logger.Debug("no redis address configured, local scope is in-memory")
		mem := storage.NewMemory(cfg.SessionCapacity())
		a.closers = append(a.closers, mem)
		local = mem
	}

	a.backends = map[string]storage.Backend{"local": local, "session": session}
	a.scopes = safe.NewStorages(local, session, opts...)
	return nil
}

func (a *app) teardown(out io.Writer) error {
	if a.printMetrics {
		a.writeMetrics(out)
	}
	err := a.release()
	if a.failed {
		err = errors.Join(err, errFailed)
	}
	return err
}

// release closes every opened backend and restores the global logger. It also
// runs when setup fails part way, because cobra skips the post-run hook then.
func (a *app) release() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.undo != nil {
		a.undo()
		a.undo = nil
	}
	return errors.Join(errs...)
}

func (a *app) writeMetrics(out io.Writer) {
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Warn("gathering metrics", zap.Error(err))
		return
	}
	calls := seq.Filter(families, func(mf *dto.MetricFamily) bool {
		return mf.GetName() == "optres_safe_calls_total"
	})
	lines := seq.FlatMap(calls, func(mf *dto.MetricFamily) []string {
		return seq.Map(mf.GetMetric(), func(m *dto.Metric) string {
			labels := seq.Map(m.GetLabel(), func(l *dto.LabelPair) string {
				return l.GetName() + "=" + l.GetValue()
			})
			return fmt.Sprintf("%s{%s} %v", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		})
	})
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}

func (a *app) store(scope string) (*safe.Store, storage.Backend, error) {
	name := fp.Pipe(scope, strings.TrimSpace, strings.ToLower)
	switch name {
	case "local":
		return a.scopes.Local, a.backends[name], nil
	case "session":
		return a.scopes.Session, a.backends[name], nil
	default:
		return nil, nil, fmt.Errorf("unknown scope %q, want local or session", scope)
	}
}
