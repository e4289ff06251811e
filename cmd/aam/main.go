package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/icecave/appstatus/probe"
	"github.com/spf13/cobra"
)

var version = "notset"

const (
	exitOK     = 0
	exitUsage  = 2
	exitNoData = 3
	exitOutput = 4
)

// exitError is an error that carries the process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "aam: ", 0)

	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return exitOK
	}

	logger.Println(err)

	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}

	return exitUsage
}

type options struct {
	zabbixConfig string
	timeout      time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "aam",
		Short: "Feed application status reports to Zabbix",
		Long: `aam reads the monitored keys reported by an appstatus server and prints
them as zabbix_sender input. Pipe the output into "zabbix_sender -z <server> -i -"
to deliver the values.

Exit codes: 0 success, 2 usage error, 3 no data, 4 output failure.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(
		&opts.zabbixConfig,
		"zabbix-config",
		"/etc/zabbix/zabbix_server.conf",
		"Zabbix server configuration used to derive the request timeout",
	)
	root.PersistentFlags().DurationVar(
		&opts.timeout,
		"timeout",
		0,
		"request timeout, overrides the Zabbix server configuration",
	)

	root.AddCommand(
		&cobra.Command{
			Use:   "discovery <hostname> <url>",
			Short: "Print low-level discovery data for the keys at url",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				feed, err := opts.fetch(cmd.Context(), args[1])
				if err != nil {
					return err
				}

				items, err := probe.Discovery(args[0], feed)
				if err != nil {
					return &exitError{exitOutput, err}
				}

				return write(cmd.OutOrStdout(), items)
			},
		},
		&cobra.Command{
			Use:   "status <hostname> <url>",
			Short: "Print the status code of each key at url",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				feed, err := opts.fetch(cmd.Context(), args[1])
				if err != nil {
					return err
				}

				return write(cmd.OutOrStdout(), probe.Metrics(args[0], feed))
			},
		},
	)

	return root
}

func (opts *options) fetch(ctx context.Context, url string) (probe.Feed, error) {
	t := opts.timeout
	if t <= 0 {
		t = probe.TimeoutFromZabbixConfig(opts.zabbixConfig)
	}

	client := &probe.Client{
		UserAgent: fmt.Sprintf("AAMv2/%s", version),
		Timeout:   t,
	}

	feed, err := client.Fetch(ctx, url)
	if err != nil {
		return nil, &exitError{exitNoData, err}
	}

	if len(feed) == 0 {
		return nil, &exitError{exitNoData, fmt.Errorf("no keys reported by %s", url)}
	}

	return feed, nil
}

func write(w io.Writer, items []probe.Item) error {
	if err := probe.WriteSenderInput(w, items); err != nil {
		return &exitError{exitOutput, err}
	}

	return nil
}
