// Package corpustest generates deterministic FASTA fixture files for
// package corpus's tests, mirroring the role testutil.GenerateTestLogFile
// plays for the teacher's log-parsing tests.
package corpustest

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// WriteFasta writes seqs to a new FASTA file under dir and returns its
// path. Each sequence becomes one record with a synthetic header.
func WriteFasta(dir string, seqs []string) (string, error) {
	path := filepath.Join(dir, "corpus.fasta")
	var b strings.Builder
	for i, s := range seqs {
		fmt.Fprintf(&b, ">seq%d\n%s\n", i, s)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateRandomSequences returns n random sequences of the given length
// drawn uniformly from {A,C,T,G}, seeded by rng for reproducibility.
func GenerateRandomSequences(rng *rand.Rand, n, length int) []string {
	const alphabet = "ACTG"
	out := make([]string, n)
	for i := range out {
		b := make([]byte, length)
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		out[i] = string(b)
	}
	return out
}
