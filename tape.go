package turing_machine

import (
	str "strings"
)

// A Tape is the machine's unbounded store: two stacks of symbols holding
// everything to the left and right of the head, plus the head symbol itself.
// Moving the head shuffles symbols between the stacks. Both stacks keep the
// cell adjacent to the head at the top (the end of the slice), so a move in
// either direction is an O(1) amortized push/pop pair.
//
// Cells off the end of either stack have never been visited and implicitly
// hold BLANK; moving onto one materializes it. Cells are never dropped --
// moving away and back leaves them in place even if nothing was written.
type Tape struct {
	Left  []Symbol // Left[0] is the leftmost materialized cell
	Right []Symbol // Right[0] is the rightmost materialized cell
	Head  Symbol
}

const TAPE_STACK_CAP = 16

// NewTape builds a tape from an initial symbol sequence. The first symbol
// goes under the head and the rest extend to the right, in order. An empty
// sequence yields a single BLANK cell under the head.
func NewTape(symbols []Symbol) *Tape {
	t := &Tape{
		Left:  make([]Symbol, 0, TAPE_STACK_CAP),
		Right: make([]Symbol, 0, TAPE_STACK_CAP),
		Head:  BLANK,
	}
	if len(symbols) == 0 {
		return t
	}
	t.Head = symbols[0]
	for i := len(symbols) - 1; i >= 1; i-- {
		t.Right = append(t.Right, symbols[i])
	}
	return t
}

func NewTapeFromString(input string) *Tape {
	return NewTape(SymbolsFromString(input))
}

// NewRandomTape builds a tape of count symbols drawn uniformly from the
// given alphabet.
func NewRandomTape(alphabet []Symbol, count uint) *Tape {
	symbols := make([]Symbol, count)
	for i := uint(0); i < count; i++ {
		symbols[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return NewTape(symbols)
}

// Read returns the symbol under the head. It cannot fail; the head always
// rests on a materialized cell.
func (t *Tape) Read() Symbol {
	return t.Head
}

// Write replaces the symbol under the head. Writing WILDCARD is the
// "make no change" sentinel and leaves the cell as it was.
func (t *Tape) Write(s Symbol) {
	if s == WILDCARD {
		return
	}
	t.Head = s
}

// MoveLeft shifts the head one cell to the left, materializing a BLANK cell
// if the destination has never been visited. The old head symbol is retained
// on the right stack.
func (t *Tape) MoveLeft() {
	t.Right = append(t.Right, t.Head)
	if len(t.Left) == 0 {
		t.Head = BLANK
		return
	}
	t.Head = t.Left[len(t.Left)-1]
	t.Left = t.Left[:len(t.Left)-1]
}

// MoveRight shifts the head one cell to the right. See MoveLeft.
func (t *Tape) MoveRight() {
	t.Left = append(t.Left, t.Head)
	if len(t.Right) == 0 {
		t.Head = BLANK
		return
	}
	t.Head = t.Right[len(t.Right)-1]
	t.Right = t.Right[:len(t.Right)-1]
}

// Stay leaves the head where it is.
func (t *Tape) Stay() {}

// Move dispatches on a Move command.
func (t *Tape) Move(m Move) {
	switch m {
	case MOVE_LEFT:
		t.MoveLeft()
	case MOVE_RIGHT:
		t.MoveRight()
	case MOVE_STAY:
		t.Stay()
	default:
		panic("Unknown Move [" + string([]byte{byte(m)}) + "] encountered!")
	}
}

// A Cell is one entry of the rendered tape window.
type Cell struct {
	Symbol Symbol
	Head   bool
}

// Cells returns the materialized window of the tape in left-to-right order
// with the head cell flagged. Diagnostics only; reading the window does not
// affect execution.
func (t *Tape) Cells() []Cell {
	cells := make([]Cell, 0, len(t.Left)+len(t.Right)+1)
	for _, s := range t.Left {
		cells = append(cells, Cell{Symbol: s})
	}
	cells = append(cells, Cell{Symbol: t.Head, Head: true})
	for i := len(t.Right) - 1; i >= 0; i-- {
		cells = append(cells, Cell{Symbol: t.Right[i]})
	}
	return cells
}

// String renders the materialized window with the head cell in braces and
// the rest space-delimited, e.g. "a b [c] d".
func (t *Tape) String() string {
	var sb str.Builder
	for _, s := range t.Left {
		sb.WriteByte(byte(s))
		sb.WriteByte(' ')
	}
	sb.WriteByte('[')
	sb.WriteByte(byte(t.Head))
	sb.WriteByte(']')
	for i := len(t.Right) - 1; i >= 0; i-- {
		sb.WriteByte(' ')
		sb.WriteByte(byte(t.Right[i]))
	}
	return sb.String()
}

// Contents returns the window's symbols as a plain string with the outer
// runs of BLANK stripped. This is what a run archives as its output.
func (t *Tape) Contents() string {
	window := make([]byte, 0, len(t.Left)+len(t.Right)+1)
	for _, s := range t.Left {
		window = append(window, byte(s))
	}
	window = append(window, byte(t.Head))
	for i := len(t.Right) - 1; i >= 0; i-- {
		window = append(window, byte(t.Right[i]))
	}
	return str.Trim(string(window), string([]byte{byte(BLANK)}))
}

// Equal compares tape content, not representation: stacks are compared after
// trimming the never-written BLANK cells on their outer ends, so a tape that
// merely materialized new blanks by wandering compares equal to one that
// never moved.
func (t *Tape) Equal(o *Tape) bool {
	if t.Head != o.Head {
		return false
	}
	a, b := trimOuterBlanks(t.Left), trimOuterBlanks(o.Left)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	a, b = trimOuterBlanks(t.Right), trimOuterBlanks(o.Right)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// trimOuterBlanks drops leading BLANK cells from a stack. Index 0 is the end
// farthest from the head for both stacks, so this only ever strips the outer
// edge of the materialized window.
func trimOuterBlanks(stack []Symbol) []Symbol {
	i := 0
	for i < len(stack) && stack[i] == BLANK {
		i++
	}
	return stack[i:]
}

// Clone copies the tape with its own backing storage. The stacks are copied
// element by element; sharing backing arrays between tapes that both append
// would let one run corrupt another.
func (t *Tape) Clone() *Tape {
	clone := &Tape{Head: t.Head}
	clone.Left = append(make([]Symbol, 0, len(t.Left)), t.Left...)
	clone.Right = append(make([]Symbol, 0, len(t.Right)), t.Right...)
	return clone
}
