package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abdullahshafiq-20/RBAC-Management-IS/internal/config"
	"github.com/abdullahshafiq-20/RBAC-Management-IS/internal/domain/patient"
	"github.com/abdullahshafiq-20/RBAC-Management-IS/internal/platform/auth"
	"github.com/abdullahshafiq-20/RBAC-Management-IS/internal/platform/gdpr"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hmsctl",
		Short: "Data-protection tooling for the hospital records service",
	}

	rootCmd.AddCommand(keygenCmd())
	rootCmd.AddCommand(hashPasswordCmd())
	rootCmd.AddCommand(verifyPasswordCmd())
	rootCmd.AddCommand(selfcheckCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && level != zerolog.NoLevel {
		logger = logger.Level(level)
	}
	return logger
}

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a fresh 256-bit field encryption key",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := gdpr.GenerateKeyHex()
			if err != nil {
				return err
			}
			fmt.Println(key)
			fmt.Fprintln(os.Stderr, "Store this key securely. Losing it makes every encrypted field unreadable.")
			return nil
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password for seeding operator accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			ok, err := auth.VerifyPassword(args[0], hash)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("generated hash failed verification")
			}
			fmt.Println(hash)
			return nil
		},
	}
}

func verifyPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-password <password> <hash>",
		Short: "Check a password against a stored bcrypt hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := auth.VerifyPassword(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("password does not match")
			}
			fmt.Println("match")
			return nil
		},
	}
}

func selfcheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selfcheck",
		Short: "Run encryption, hashing, and anonymization round-trip checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSelfcheck(cfg, newLogger(cfg))
		},
	}
}

// runSelfcheck exercises the data-protection paths end to end and reports
// each result. It returns an error when any step fails so the exit code is
// usable from provisioning scripts.
func runSelfcheck(cfg *config.Config, logger zerolog.Logger) error {
	svc, err := gdpr.NewEncryptionService(cfg.EncryptionKey, logger)
	if err != nil {
		return err
	}

	failures := 0
	report := func(name string, ok bool) {
		status := "ok"
		if !ok {
			status = "FAIL"
			failures++
		}
		fmt.Printf("%-30s %s\n", name, status)
	}

	const sample = "Sensitive Patient Data"
	ciphertext, err := svc.EncryptField(sample)
	plaintext := ""
	if err == nil {
		plaintext, err = svc.DecryptField(ciphertext)
	}
	report("encrypt/decrypt round-trip", err == nil && plaintext == sample && ciphertext != sample)

	hash, err := auth.HashPassword("admin123")
	okRight, okWrong := false, true
	if err == nil {
		okRight, _ = auth.VerifyPassword("admin123", hash)
		okWrong, _ = auth.VerifyPassword("wrong", hash)
	}
	report("password hash/verify", err == nil && okRight && !okWrong)

	report("anonymize name", gdpr.AnonymizeName("John Doe", 1021) == "ANON_1021")
	report("mask contact", gdpr.MaskContact("+923001234567") == "XXX-XXX-4567")
	report("mask email", gdpr.MaskEmail("john.doe@email.com") == "j***@email.com")
	report("anonymize address", gdpr.AnonymizeAddress("123 Main St, Karachi") == "*****, Karachi")

	rec := patient.Record{ID: 1021, Name: "John Doe", Contact: "+923001234567", Diagnosis: "Type 2 Diabetes", BloodGroup: "B+"}
	masked := patient.MaskForRole(rec, auth.RoleReceptionist)
	report("role masking", masked.Diagnosis == patient.RestrictedDiagnosis && rec.Diagnosis == "Type 2 Diabetes")

	now := time.Now()
	deadline := gdpr.RetentionDeadline(now, cfg.RetentionDays)
	report("retention deadline", deadline.After(now))

	if svc.KeyGenerated() {
		fmt.Println()
		fmt.Println("Generated ephemeral key:", svc.KeyHex())
		fmt.Println("Set ENCRYPTION_KEY to this value to keep fields readable across restarts.")
	}

	if failures > 0 {
		return fmt.Errorf("%d selfcheck step(s) failed", failures)
	}
	fmt.Println("all checks passed")
	return nil
}
