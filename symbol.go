package turing_machine

// A Symbol is one cell's worth of tape content. The alphabet is whatever the
// program's author uses, plus two reserved markers: BLANK is the implicit
// background symbol filling every cell the machine has never visited, and
// WILDCARD is overloaded the way the reference machines use it -- as a read
// symbol it matches anything, as a write symbol it means "leave the cell
// unchanged".
type Symbol byte

const (
	BLANK    = Symbol('#')
	WILDCARD = Symbol('?')
)

func (s Symbol) String() string {
	return string([]byte{byte(s)})
}

// SymbolsFromString splits a string into its symbols. No validation happens
// here; a '?' in an input tape is just a '?' cell.
func SymbolsFromString(input string) []Symbol {
	symbols := make([]Symbol, len(input))
	for i := 0; i < len(input); i++ {
		symbols[i] = Symbol(input[i])
	}
	return symbols
}
