// devicesim is a text stand-in for a voice device. Each input line is sent to
// the Converse endpoint as an already transcribed utterance.
package main

import (
	"bufio"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/voicegate/internal/api/grpc/device"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	var (
		addr           string
		deviceToken    string
		useTLS         bool
		skipVerify     bool
		requestTimeout time.Duration
	)

	flagSet := pflag.NewFlagSet("devicesim", pflag.ContinueOnError)
	flagSet.StringVar(&addr, "addr", "localhost:50051", "voicegate server address")
	flagSet.StringVar(&deviceToken, "token", os.Getenv("VOICEGATE_DEVICE_TOKEN"), "device token issued by provision device-token")
	flagSet.BoolVar(&useTLS, "tls", false, "connect over TLS")
	flagSet.BoolVar(&skipVerify, "insecure-skip-verify", false, "skip TLS certificate verification")
	flagSet.DurationVar(&requestTimeout, "timeout", time.Minute, "per-turn request timeout")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if deviceToken == "" {
		return errors.New("device token is required (--token or VOICEGATE_DEVICE_TOKEN)")
	}

	creds := insecure.NewCredentials()
	if useTLS {
		creds = credentials.NewTLS(&tls.Config{InsecureSkipVerify: skipVerify}) //nolint:gosec
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer conn.Close()

	sim := &simulator{
		client:  device.NewClient(conn),
		token:   deviceToken,
		timeout: requestTimeout,
		out:     stdout,
	}
	return sim.loop(ctx, stdin)
}

type simulator struct {
	client  device.Client
	token   string
	timeout time.Duration
	out     io.Writer
}

// loop sends one turn per input line until EOF or a quit command.
func (s *simulator) loop(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(s.out, "type what the device would hear, /quit to leave")
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" {
			return nil
		}

		if err := s.turn(ctx, line); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(s.out, "! %v\n", err)
		}
	}
}

func (s *simulator) turn(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+s.token)

	var header metadata.MD
	resp, err := s.client.Converse(ctx, wrapperspb.String(text), grpc.Header(&header))
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "voicegate: %s\n", resp.GetValue())
	fmt.Fprintf(s.out, "  [state=%s listen=%ss heard=%q]\n",
		headerValue(header, device.HeaderSessionState),
		headerValue(header, device.HeaderRecordSeconds),
		unescape(headerValue(header, device.HeaderTranscription)))
	return nil
}

func headerValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

func unescape(value string) string {
	decoded, err := url.QueryUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}
