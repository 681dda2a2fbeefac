package main

import (
	"math/rand"
	"testing"

	"codebreaker/internal/solver"
)

func TestRandomSecret(t *testing.T) {
	a := solver.DefaultAlphabet

	rng := rand.New(rand.NewSource(7))
	got := randomSecret(rng, a, 12)
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	if !a.ValidSecret(got) {
		t.Fatalf("secret %q contains symbols outside %s", got, a)
	}

	// Same seed, same secret.
	rng = rand.New(rand.NewSource(7))
	if again := randomSecret(rng, a, 12); again != got {
		t.Fatalf("non-deterministic for fixed seed: %q vs %q", got, again)
	}
}

func TestAppendAllSecrets(t *testing.T) {
	a := solver.DefaultAlphabet

	secrets := appendAllSecrets(nil, a, "", 2)
	if want := len(a) * len(a); len(secrets) != want {
		t.Fatalf("len = %d, want %d", len(secrets), want)
	}

	seen := make(map[string]bool, len(secrets))
	for _, s := range secrets {
		if len(s) != 2 || !a.ValidSecret(s) {
			t.Fatalf("bad secret %q", s)
		}
		if seen[s] {
			t.Fatalf("duplicate secret %q", s)
		}
		seen[s] = true
	}
}
