package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	domctx "github.com/reoring/domctx"
	"github.com/reoring/domctx/store"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "domctx",
	Short: "Inspect and score saved component contexts",
	Long: `domctx works with directories of saved component contexts: encoded
snapshots of settings keyed by the shape of the dataset domain they were
created for. It can list them, score them against a candidate domain
described in YAML, and prune stale ones.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <dir> [component]",
	Short: "List saved contexts and their ages",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(args[0], store.WithLogger(logger))
		if err != nil {
			return err
		}
		components, err := s.Components()
		if err != nil {
			return err
		}
		if len(args) == 2 {
			components = []string{args[1]}
		}
		for _, name := range components {
			ctxs, err := s.Load(name)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d context(s)\n", name, len(ctxs))
			for _, c := range ctxs {
				fmt.Printf("  %s  saved %s  columns=%d values=%d\n",
					c.ID, age(c.Time), len(c.OrderedDomain), len(c.Values))
			}
		}
		return nil
	},
}

var (
	domainPath string
	storeDir   string
	matchMode  string
	withMetas  bool
)

var matchCmd = &cobra.Command{
	Use:   "match <component>",
	Short: "Score every saved context of a component against a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := parseMatchMode(matchMode)
		if err != nil {
			return err
		}
		domain, err := loadDomain(domainPath)
		if err != nil {
			return err
		}
		s, err := store.New(storeDir, store.WithLogger(logger))
		if err != nil {
			return err
		}
		ctxs, err := s.Load(args[0])
		if err != nil {
			return err
		}

		h := domctx.NewHandler(
			domctx.MatchValues(mode),
			domctx.EncodeMetas(withMetas),
		)
		attrs, metas := h.EncodeDomain(domain)
		for _, c := range ctxs {
			fmt.Printf("%s  score=%.3f\n", c.ID, h.Match(c, attrs, metas))
		}
		return nil
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune <dir>",
	Short: "Drop contexts beyond the per-component limit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(args[0], store.WithLogger(logger))
		if err != nil {
			return err
		}
		all, err := s.LoadAll()
		if err != nil {
			return err
		}
		for name, ctxs := range all {
			if len(ctxs) <= store.MaxSavedContexts {
				continue
			}
			if err := s.Save(name, ctxs); err != nil {
				return err
			}
			fmt.Printf("%s: pruned to %d context(s)\n", name, store.MaxSavedContexts)
		}
		return nil
	},
}

func parseMatchMode(s string) (domctx.MatchMode, error) {
	switch s {
	case "none":
		return domctx.MatchNone, nil
	case "class":
		return domctx.MatchClass, nil
	case "all":
		return domctx.MatchAll, nil
	default:
		return 0, fmt.Errorf("unknown match mode %q (want none, class or all)", s)
	}
}

func age(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return time.Since(t).Round(time.Minute).String() + " ago"
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	matchCmd.Flags().StringVar(&domainPath, "domain", "", "YAML file describing the candidate domain")
	matchCmd.Flags().StringVar(&storeDir, "dir", ".", "directory of saved contexts")
	matchCmd.Flags().StringVar(&matchMode, "values", "none", "value-level matching: none, class or all")
	matchCmd.Flags().BoolVar(&withMetas, "metas", false, "encode meta columns as well")
	_ = matchCmd.MarkFlagRequired("domain")

	rootCmd.AddCommand(inspectCmd, matchCmd, pruneCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
