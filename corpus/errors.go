package corpus

import "fmt"

// ErrInvalidSymbol reports the byte of a pattern.InvalidSymbolError
// together with the sequence and byte position at which it was
// encountered; the original error value is not kept. The core mining engine
// never sees a sequence that failed this check — the input contract is
// enforced here, at the corpus boundary, not downstream in package
// pattern (see DESIGN.md's Open Question resolution).
type ErrInvalidSymbol struct {
	SequenceID int
	Offset     int
	Byte       byte
}

func (e *ErrInvalidSymbol) Error() string {
	return fmt.Sprintf("corpus: sequence %d, offset %d: invalid symbol %q, want one of A, C, T, G", e.SequenceID, e.Offset, e.Byte)
}
