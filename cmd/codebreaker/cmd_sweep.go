package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codebreaker/internal/oracle"
	"codebreaker/internal/solver"
)

var (
	sweepCount      int
	sweepLength     int
	sweepSeed       int64
	sweepExhaustive bool
	sweepMaxLength  int
)

// sweepCmd measures query costs over a batch of secrets. Sessions run
// strictly one after another: probe k+1 always depends on the answer to
// probe k, so there is nothing to parallelize.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Measure query counts over a batch of secrets",
	Long: `Runs discovery over many secrets and reports aggregate query counts.

By default secrets are generated at random. With --exhaustive, every
secret up to --sweep-max-length is tried instead.

Examples:
  codebreaker sweep --count 500 --seed 3
  codebreaker sweep --exhaustive --sweep-max-length 3`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().IntVar(&sweepCount, "count", 100, "Number of random secrets")
	sweepCmd.Flags().IntVar(&sweepLength, "length", 0, "Secret length (default: random up to max)")
	sweepCmd.Flags().Int64Var(&sweepSeed, "seed", 1, "Random seed")
	sweepCmd.Flags().BoolVar(&sweepExhaustive, "exhaustive", false, "Try every secret up to --sweep-max-length")
	sweepCmd.Flags().IntVar(&sweepMaxLength, "sweep-max-length", 3, "Maximum length for --exhaustive")
}

func runSweep(cmd *cobra.Command, args []string) error {
	var secrets []string
	if sweepExhaustive {
		if sweepMaxLength < 1 || sweepMaxLength > cfg.MaxLength {
			return fmt.Errorf("sweep-max-length must be between 1 and %d", cfg.MaxLength)
		}
		for n := 1; n <= sweepMaxLength; n++ {
			secrets = appendAllSecrets(secrets, alphabet, "", n)
		}
	} else {
		rng := rand.New(rand.NewSource(sweepSeed))
		for i := 0; i < sweepCount; i++ {
			length := sweepLength
			if length == 0 {
				length = 1 + rng.Intn(cfg.MaxLength)
			}
			secrets = append(secrets, randomSecret(rng, alphabet, length))
		}
	}
	if len(secrets) == 0 {
		return fmt.Errorf("no secrets to sweep")
	}

	minQ, maxQ, total := 0, 0, 0
	var worst string
	for i, secret := range secrets {
		harness, err := oracle.NewHarness(secret)
		if err != nil {
			return err
		}
		client := oracle.NewClient(harness, logger)
		result, err := solver.NewSession(client, alphabet, cfg.MaxLength, logger).Run()
		if err != nil {
			return fmt.Errorf("sweep failed on secret %q: %w", secret, err)
		}
		if result.Secret != secret {
			return fmt.Errorf("sweep mismatch: secret %q, got %q", secret, result.Secret)
		}

		q := result.Queries
		total += q
		if i == 0 || q < minQ {
			minQ = q
		}
		if q > maxQ {
			maxQ = q
			worst = secret
		}
	}

	logger.Info("sweep finished", zap.Int("secrets", len(secrets)))
	fmt.Printf("Secrets: %d\n", len(secrets))
	fmt.Printf("Queries: min %d, max %d (%s), mean %.2f\n",
		minQ, maxQ, worst, float64(total)/float64(len(secrets)))
	return nil
}

// appendAllSecrets appends every secret of the given remaining length that
// starts with prefix.
func appendAllSecrets(secrets []string, a solver.Alphabet, prefix string, remaining int) []string {
	if remaining == 0 {
		return append(secrets, prefix)
	}
	for _, sym := range a {
		secrets = appendAllSecrets(secrets, a, prefix+string(sym), remaining-1)
	}
	return secrets
}
