// provision manages voicegate users, factor keys and device tokens.
//
// Usage:
//
//	provision keygen
//	provision user --email ana@example.com --name Ana --factor Barcelona --factor Rex
//	provision replace-factor --user-id 7 --index 2 --value "Blue"
//	provision set-active --user-id 7 --active=false
//	provision device-token --client-id kitchen-speaker
//
// Everything except keygen reads the server configuration from the environment.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
)

type command struct {
	summary string
	run     func(ctx context.Context, args []string, stdout io.Writer) error
}

var commands = map[string]command{
	"keygen":         {summary: "generate a factor encryption identity", run: runKeygen},
	"user":           {summary: "create a user with up to three factors", run: runCreateUser},
	"replace-factor": {summary: "replace one factor of an existing user", run: runReplaceFactor},
	"set-active":     {summary: "activate or deactivate a user", run: runSetActive},
	"device-token":   {summary: "issue a device token for a client id", run: runDeviceToken},
}

var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		printUsage(stdout)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	return cmd.run(ctx, args[1:], stdout)
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: provision <command> [flags]")
	fmt.Fprintln(w)
	for _, name := range names {
		fmt.Fprintf(w, "  %-15s %s\n", name, commands[name].summary)
	}
}

// parseFlags parses args and rejects stray positional arguments.
func parseFlags(flagSet *pflag.FlagSet, args []string) error {
	flagSet.SetOutput(io.Discard)
	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, flagSet.Name(), err)
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		return fmt.Errorf("%w: %s: unexpected arguments %s", errUsage, flagSet.Name(), strings.Join(extra, " "))
	}
	return nil
}
