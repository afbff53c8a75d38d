package corpus

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dnapatterns/patternminer/pattern"
)

// FastaProvider is a restartable reader of a FASTA-formatted nucleotide
// file: each call to Sequences reopens the file from the beginning,
// satisfying the "each pass is a fresh enumeration" requirement the
// mining engine's repeated rescans depend on. Grounded on
// Scripts/readfasta.py's Reader/sequences and structurally on the
// teacher's logparser.Parser (streaming bufio.Scanner with a buffered
// line reader and one malformed-input decision point per record).
type FastaProvider struct {
	Path string
}

// NewFastaProvider returns a provider reading the FASTA file at path.
func NewFastaProvider(path string) *FastaProvider {
	return &FastaProvider{Path: path}
}

// Sequences implements pattern.SequenceProvider.
func (p *FastaProvider) Sequences(ctx context.Context, fn func(id int, seq []pattern.Symbol) error) error {
	f, err := os.Open(p.Path)
	if err != nil {
		return fmt.Errorf("corpus: open %s: %w", p.Path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	id := -1
	var builder strings.Builder

	flush := func() error {
		if id < 0 {
			return nil
		}
		seq, err := parseRecord(id, builder.String())
		if err != nil {
			return err
		}
		return fn(id, seq)
	}

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id++
			builder.Reset()
			continue
		}
		builder.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("corpus: read %s: %w", p.Path, err)
	}
	return flush()
}

// parseRecord validates and converts one FASTA record's concatenated
// sequence line(s) into symbols, rejecting upstream on any byte outside
// {A,C,T,G} rather than passing it deeper into the trie.
func parseRecord(id int, raw string) ([]pattern.Symbol, error) {
	seq := make([]pattern.Symbol, len(raw))
	for i := 0; i < len(raw); i++ {
		sym, err := pattern.ParseSymbol(raw[i])
		if err != nil {
			b := raw[i]
			if ise, ok := err.(*pattern.InvalidSymbolError); ok {
				b = ise.Byte
			}
			return nil, &ErrInvalidSymbol{SequenceID: id, Offset: i, Byte: b}
		}
		seq[i] = sym
	}
	return seq, nil
}
