package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codebreaker/internal/oracle"
	"codebreaker/internal/solver"
)

var (
	solveRandom bool
	solveLength int
	solveSeed   int64
)

// solveCmd runs one discovery session against a local harness.
var solveCmd = &cobra.Command{
	Use:   "solve [secret]",
	Short: "Discover a secret held by a local oracle harness",
	Long: `Runs one discovery session against a local harness holding the given
secret. With --random, a secret is generated instead.

Examples:
  codebreaker solve ABC
  codebreaker solve --random --length 12 --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveRandom, "random", false, "Generate a random secret")
	solveCmd.Flags().IntVar(&solveLength, "length", 0, "Random secret length (default: random up to max)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 1, "Random seed")
}

func runSolve(cmd *cobra.Command, args []string) error {
	var secret string
	switch {
	case solveRandom:
		rng := rand.New(rand.NewSource(solveSeed))
		length := solveLength
		if length == 0 {
			length = 1 + rng.Intn(cfg.MaxLength)
		}
		if length < 1 || length > cfg.MaxLength {
			return fmt.Errorf("length must be between 1 and %d, got %d", cfg.MaxLength, length)
		}
		secret = randomSecret(rng, alphabet, length)
	case len(args) == 1:
		secret = args[0]
	default:
		return fmt.Errorf("provide a secret argument or --random")
	}

	if !alphabet.ValidSecret(secret) {
		return fmt.Errorf("secret must be non-empty and drawn from alphabet %s", alphabet)
	}
	if len(secret) > cfg.MaxLength {
		return fmt.Errorf("secret length %d exceeds max_length %d", len(secret), cfg.MaxLength)
	}

	harness, err := oracle.NewHarness(secret)
	if err != nil {
		return err
	}
	client := oracle.NewClient(harness, logger)
	session := solver.NewSession(client, alphabet, cfg.MaxLength, logger)

	result, err := session.Run()
	switch {
	case errors.Is(err, solver.ErrStalled):
		fmt.Printf("Stalled after %d queries; best candidate: %s\n", result.Queries, result.Secret)
		return err
	case err != nil:
		return err
	}

	logger.Info("session finished",
		zap.String("session", result.ID),
		zap.Int("queries", result.Queries))
	fmt.Printf("Secret code is found: %s (%d queries)\n", result.Secret, result.Queries)
	return nil
}

func randomSecret(rng *rand.Rand, a solver.Alphabet, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = a[rng.Intn(len(a))]
	}
	return string(b)
}
