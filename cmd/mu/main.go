package main

import (
	"fmt"

	rec "nickandperla.net/turing_machine/recursive"
)

// Exercises the μ-recursive combinators over a table of derived functions.
// Beware: Sqrt of a non-square diverges, exactly as the formalism says it
// must.

func main() {
	fmt.Printf("5        = %d\n", rec.Constant(5)())
	fmt.Printf("2 + 3    = %d\n", rec.Sum(2, 3))
	fmt.Printf("2 -' 1   = %d\n", rec.Pred(2))
	fmt.Printf("0 -' 1   = %d\n", rec.Pred(0))
	fmt.Printf("8 -' 3   = %d\n", rec.Sub(8, 3))
	fmt.Printf("5 -' 9   = %d\n", rec.Sub(5, 9))
	fmt.Printf("2 * 4    = %d\n", rec.Mul(2, 4))
	fmt.Printf("3 * 0    = %d\n", rec.Mul(3, 0))
	fmt.Printf("0 * 9    = %d\n", rec.Mul(0, 9))
	fmt.Printf("9 * 25   = %d\n", rec.Mul(9, 25))
	fmt.Printf("sgn(0)   = %d\n", rec.Sgn(0))
	fmt.Printf("sgn(5)   = %d\n", rec.Sgn(5))
	fmt.Printf("2 < 3    = %d\n", rec.Lt(2, 3))
	fmt.Printf("9 < 1    = %d\n", rec.Lt(9, 1))
	fmt.Printf("5 > 3    = %d\n", rec.Gt(5, 3))
	fmt.Printf("8 > 12   = %d\n", rec.Gt(8, 12))
	fmt.Printf("5 = 5    = %d\n", rec.Eq(5, 5))
	fmt.Printf("3 = 2    = %d\n", rec.Eq(3, 2))
	fmt.Printf("8 =/= 9  = %d\n", rec.Neq(8, 9))
	fmt.Printf("5 =/= 5  = %d\n", rec.Neq(5, 5))
	fmt.Printf("7^2      = %d\n", rec.Square(7))
	fmt.Printf("0^2      = %d\n", rec.Square(0))
	fmt.Printf("sqrt(0)  = %d\n", rec.Sqrt(0))
	fmt.Printf("sqrt(1)  = %d\n", rec.Sqrt(1))
	fmt.Printf("sqrt(25) = %d\n", rec.Sqrt(25))
}
