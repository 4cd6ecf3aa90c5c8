package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/dtroode/voicegate/internal/config"
	"github.com/dtroode/voicegate/internal/logger"
	"github.com/dtroode/voicegate/internal/repository/postgres"
	"github.com/dtroode/voicegate/internal/sealed"
	"github.com/dtroode/voicegate/internal/service"
	"github.com/dtroode/voicegate/internal/token"
)

func runKeygen(_ context.Context, args []string, stdout io.Writer) error {
	flagSet := pflag.NewFlagSet("keygen", pflag.ContinueOnError)
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}

	identity, recipient, err := sealed.GenerateIdentity()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "# public key: %s\n", recipient)
	fmt.Fprintf(stdout, "CRYPTO_AGE_IDENTITY=%s\n", identity)
	return nil
}

func runCreateUser(ctx context.Context, args []string, stdout io.Writer) error {
	var req service.NewUser

	flagSet := pflag.NewFlagSet("user", pflag.ContinueOnError)
	flagSet.StringVar(&req.Email, "email", "", "unique email address (required)")
	flagSet.StringVar(&req.Name, "name", "", "name used in greetings (required)")
	flagSet.StringVar(&req.VoiceCode, "voice-code", "", "four digit voice code (generated when empty)")
	flagSet.StringArrayVar(&req.Factors, "factor", nil, "knowledge factor, repeat up to three times")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	if req.Email == "" || req.Name == "" {
		return fmt.Errorf("%w: user: --email and --name are required", errUsage)
	}

	return withProvisioner(ctx, func(p *service.Provisioner) error {
		user, err := p.CreateUser(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "user_id=%d\nvoice_code=%s\n", user.ID, user.VoiceCode)
		return nil
	})
}

func runReplaceFactor(ctx context.Context, args []string, stdout io.Writer) error {
	var userID int64
	var index int
	var value string

	flagSet := pflag.NewFlagSet("replace-factor", pflag.ContinueOnError)
	flagSet.Int64Var(&userID, "user-id", 0, "user id (required)")
	flagSet.IntVar(&index, "index", 0, "factor position, 1 to 3 (required)")
	flagSet.StringVar(&value, "value", "", "new factor value, empty clears the factor")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	if userID <= 0 || index < 1 {
		return fmt.Errorf("%w: replace-factor: --user-id and --index are required", errUsage)
	}

	return withProvisioner(ctx, func(p *service.Provisioner) error {
		if err := p.ReplaceFactor(ctx, userID, index-1, value); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "factor %d of user %d replaced\n", index, userID)
		return nil
	})
}

func runSetActive(ctx context.Context, args []string, stdout io.Writer) error {
	var userID int64
	var active bool

	flagSet := pflag.NewFlagSet("set-active", pflag.ContinueOnError)
	flagSet.Int64Var(&userID, "user-id", 0, "user id (required)")
	flagSet.BoolVar(&active, "active", true, "whether the user may authenticate")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	if userID <= 0 {
		return fmt.Errorf("%w: set-active: --user-id is required", errUsage)
	}

	return withProvisioner(ctx, func(p *service.Provisioner) error {
		if err := p.SetActive(ctx, userID, active); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "user %d active=%t\n", userID, active)
		return nil
	})
}

func runDeviceToken(_ context.Context, args []string, stdout io.Writer) error {
	var clientID string

	flagSet := pflag.NewFlagSet("device-token", pflag.ContinueOnError)
	flagSet.StringVar(&clientID, "client-id", "", "stable identifier of the device (required)")
	if err := parseFlags(flagSet, args); err != nil {
		return err
	}
	if clientID == "" {
		return fmt.Errorf("%w: device-token: --client-id is required", errUsage)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	deviceToken, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.DeviceTokenTTL).IssueDeviceToken(clientID)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, deviceToken)
	return nil
}

func withProvisioner(ctx context.Context, fn func(p *service.Provisioner) error) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	sealer, err := sealed.NewSealer(cfg.Crypto.AgeIdentity)
	if err != nil {
		return err
	}

	db, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	lg := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return fn(service.NewProvisioner(postgres.NewUserRepository(db), postgres.NewContextRepository(db), sealer, lg))
}
