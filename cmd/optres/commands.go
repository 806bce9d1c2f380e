package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charmingruby/optres/result"
	"github.com/charmingruby/optres/safe"
	"github.com/charmingruby/optres/seq"
	"github.com/charmingruby/optres/task"
)

type outcome interface {
	fmt.Stringer
	IsErr() bool
}

func (a *app) report(cmd *cobra.Command, res outcome) error {
	fmt.Fprintln(cmd.OutOrStdout(), res)
	if res.IsErr() {
		a.failed = true
	}
	return nil
}

func newFetchCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "fetch <url>...",
		Short: "GET URLs concurrently and print each body as a Result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if asJSON {
				pending := seq.Map(args, func(url string) *task.Future[result.Result[any, error]] {
					return safe.FetchJSON[any](ctx, a.fetcher, url)
				})
				for _, fut := range pending {
					_ = a.report(cmd, fut.Wait())
				}
				return nil
			}
			pending := seq.Map(args, func(url string) *task.Future[result.Result[string, error]] {
				return a.fetcher.Text(ctx, url)
			})
			for _, fut := range pending {
				_ = a.report(cmd, fut.Wait())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "decode the body as JSON")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	var (
		scope  string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Read a key and print it as an Option, or as a Result with --json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := a.store(scope)
			if err != nil {
				return err
			}
			if asJSON {
				return a.report(cmd, safe.GetJSON[any](cmd.Context(), store, args[0]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Get(cmd.Context(), args[0]))
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "local", "storage scope: local or session")
	cmd.Flags().BoolVar(&asJSON, "json", false, "decode the stored text as JSON")
	return cmd
}

func newPutCmd(a *app) *cobra.Command {
	var scope string
	cmd := &cobra.Command{
		Use:   "put <key> <value>",
		Short: "Store a value under a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, backend, err := a.store(scope)
			if err != nil {
				return err
			}
			err = backend.SetItem(cmd.Context(), args[0], args[1])
			return a.report(cmd, result.FromTuple(args[0], err))
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "local", "storage scope: local or session")
	return cmd
}

func newParseCmd(a *app) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Decode JSON (or YAML) text and print it as a Result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asYAML {
				return a.report(cmd, safe.ParseYAML[any](args[0]))
			}
			return a.report(cmd, safe.ParseJSON[any](args[0]))
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "decode YAML instead of JSON")
	return cmd
}
