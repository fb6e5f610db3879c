package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"aliasspace/alias"
	"aliasspace/internal/common"
	"aliasspace/internal/logging"
	"aliasspace/internal/table"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1 // lookup misses, absent terms, table errors
	ExitUsage   = 2 // bad flags, unreadable or invalid table files
)

// exitError carries a specific exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func failure(err error) error { return &exitError{code: ExitFailure, err: err} }

// cli holds flag values and streams shared by all commands.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger

	logLevel  string
	logFormat string
	tablePath string

	missing  string
	sentinel string
	groups   bool
	output   string
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}

	root := c.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(stderr, "aliasctl: %v\n", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return ExitUsage
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "aliasctl",
		Short:         "Resolve alternate spellings to canonical representatives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Validate(c.logLevel, c.logFormat); err != nil {
				return err
			}

			c.logger = logging.Setup(c.stderr, c.logLevel, c.logFormat)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", "text", "log format: text, json")

	root.AddCommand(
		c.resolveCommand(),
		c.containsCommand(),
		c.checkCommand(),
		c.dumpCommand(),
	)

	return root
}

func (c *cli) addTableFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.tablePath, "table", "t", "", "path to the YAML alias table")
	_ = cmd.MarkFlagRequired("table")
}

func (c *cli) loadTable() (*table.File, error) {
	f, err := table.LoadFile(c.tablePath)
	if err != nil {
		return nil, err
	}

	c.logger.Info("alias table loaded",
		"path", c.tablePath,
		"name", f.Name,
		"representatives", len(f.Aliases),
		"processor", []string(f.Processor))

	return f, nil
}

func (c *cli) loadIndex() (*alias.Index, error) {
	f, err := c.loadTable()
	if err != nil {
		return nil, err
	}

	return f.Index(alias.WithLogger(c.logger))
}

// =============================================================================
// RESOLVE
// =============================================================================

func (c *cli) resolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [TERM...]",
		Short: "Print the representative of each term, reading stdin lines when no term is given",
		RunE:  c.runResolve,
	}

	c.addTableFlag(cmd)
	cmd.Flags().StringVar(&c.missing, "missing", "", "policy for unknown terms: passthrough, sentinel, raise (default passthrough)")
	cmd.Flags().StringVar(&c.sentinel, "sentinel", "", "value printed for unknown terms; implies --missing sentinel")

	return cmd
}

func (c *cli) missingPolicy(cmd *cobra.Command) (alias.MissingPolicy, error) {
	sentinelSet := cmd.Flags().Changed("sentinel")

	if c.missing == "" {
		if sentinelSet {
			return alias.Sentinel(c.sentinel), nil
		}

		return alias.Passthrough(), nil
	}

	kind, err := alias.ParsePolicyKind(c.missing)
	if err != nil {
		return alias.MissingPolicy{}, err
	}

	switch kind {
	case alias.PolicySentinel:
		return alias.Sentinel(c.sentinel), nil
	case alias.PolicyRaise:
		if sentinelSet {
			return alias.MissingPolicy{}, errors.New("--sentinel cannot be combined with --missing raise")
		}

		return alias.Raise(), nil
	default:
		if sentinelSet {
			return alias.MissingPolicy{}, errors.New("--sentinel cannot be combined with --missing passthrough")
		}

		return alias.Passthrough(), nil
	}
}

func (c *cli) runResolve(cmd *cobra.Command, args []string) error {
	policy, err := c.missingPolicy(cmd)
	if err != nil {
		return err
	}

	ix, err := c.loadIndex()
	if err != nil {
		return err
	}

	var (
		inputs  iter.Seq[string]
		scanErr error
	)

	if !common.IsEmpty(args) {
		inputs = slices.Values(args)
	} else {
		inputs = scanLines(c.stdin, &scanErr)
	}

	out := bufio.NewWriter(c.stdout)

	for rep, err := range ix.ResolveMany(inputs, policy) {
		if err != nil {
			return errors.Join(failure(err), flushOutput(out))
		}

		// bufio.Writer keeps the first write error; Flush reports it.
		if _, err := fmt.Fprintln(out, rep); err != nil {
			break
		}
	}

	if err := flushOutput(out); err != nil {
		return err
	}

	if scanErr != nil {
		return fmt.Errorf("read stdin: %w", scanErr)
	}

	return nil
}

func flushOutput(out *bufio.Writer) error {
	if err := out.Flush(); err != nil {
		return failure(fmt.Errorf("write output: %w", err))
	}

	return nil
}

// scanLines yields r line by line. A read error is stored in errp once the
// sequence ends.
func scanLines(r io.Reader, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}

		*errp = sc.Err()
	}
}

// =============================================================================
// CONTAINS
// =============================================================================

func (c *cli) containsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contains TERM...",
		Short: "Report whether each term has an entry; exits 1 if any is absent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, err := c.loadIndex()
			if err != nil {
				return err
			}

			var absent []string

			for _, term := range args {
				ok := ix.Contains(term)
				if !ok {
					absent = append(absent, term)
				}

				fmt.Fprintf(c.stdout, "%s\t%t\n", term, ok)
			}

			if !common.IsEmpty(absent) {
				return failure(fmt.Errorf("%d of %d terms not found in %s", len(absent), len(args), ix))
			}

			return nil
		},
	}

	c.addTableFlag(cmd)

	return cmd
}

// =============================================================================
// CHECK
// =============================================================================

func (c *cli) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report collisions, shadowed aliases and invalid entries; exits 1 on errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c.loadTable()
			if err != nil {
				return err
			}

			diags := table.Check(f)
			for _, d := range diags.All() {
				fmt.Fprintf(c.stdout, "%s: %s\n", d.Severity, d)
			}

			fmt.Fprintf(c.stdout, "%d errors, %d warnings, %d infos\n",
				len(diags.Errors), len(diags.Warnings), len(diags.Infos))

			if diags.HasErrors() {
				return failure(fmt.Errorf("table %s has %d errors", c.tablePath, len(diags.Errors)))
			}

			return nil
		},
	}

	c.addTableFlag(cmd)

	return cmd
}

// =============================================================================
// DUMP
// =============================================================================

func (c *cli) dumpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the lookup table (processed key to representative) as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, err := c.loadIndex()
			if err != nil {
				return err
			}

			if c.output != "" {
				if err := table.WriteFile(table.FromIndex(ix), c.output); err != nil {
					return failure(err)
				}

				c.logger.Info("alias table written", "path", c.output)

				return nil
			}

			var data []byte
			if c.groups {
				data, err = table.Marshal(table.FromIndex(ix))
			} else {
				data, err = yaml.Marshal(ix.Table())
			}

			if err != nil {
				return err
			}

			_, err = c.stdout.Write(data)

			return err
		},
	}

	c.addTableFlag(cmd)
	cmd.Flags().BoolVar(&c.groups, "groups", false, "print the normalized table file instead of the lookup table")
	cmd.Flags().StringVarP(&c.output, "output", "o", "", "write the normalized table file to this path instead of stdout")

	return cmd
}
