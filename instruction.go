package turing_machine

import (
	"fmt"
)

// Move is a head movement command. The byte values match the letters the
// reference machines are written in.
type Move byte

const (
	MOVE_LEFT  = Move('L')
	MOVE_RIGHT = Move('R')
	MOVE_STAY  = Move('0')
)

func (m Move) String() string {
	return string([]byte{byte(m)})
}

// An Instruction is one transition rule: in state From, reading Read (or
// anything, if Read is WILDCARD), write Write (or nothing, if Write is
// WILDCARD), move the head per Move, and continue in state To. Instructions
// are immutable once built and live in a Program in declaration order.
type Instruction struct {
	From  *State
	Read  Symbol
	To    *State
	Write Symbol
	Move  Move
}

func NewInstruction(from *State, read Symbol, to *State, write Symbol, move Move) *Instruction {
	return &Instruction{
		From:  from,
		Read:  read,
		To:    to,
		Write: write,
		Move:  move,
	}
}

// Matches reports whether this instruction applies to the given state and
// head symbol. A WILDCARD read matches every symbol.
func (i *Instruction) Matches(state *State, head Symbol) bool {
	return i.From == state && (i.Read == head || i.Read == WILDCARD)
}

func (i *Instruction) String() string {
	return fmt.Sprintf("(%s, %s) -> (%s, %s, %s)", i.From, i.Read, i.To, i.Write, i.Move)
}
