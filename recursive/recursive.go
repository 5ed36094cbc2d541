// Package recursive is a self-contained demonstration of the μ-recursive
// function formalism: every function is composed from the three primitives
// (zero, successor, projection) with the substitution, primitive-recursion
// and minimisation operators. It is pure arithmetic -- no tape, no machine
// state, no failure modes beyond nontermination (an unsatisfiable
// minimisation never returns, exactly as the formalism prescribes).
package recursive

// Fn is a k-ary function over the naturals. Arity is by convention, not
// enforced; composing functions of the wrong arity panics on a missing
// argument, which is an authoring mistake, not a runtime condition to
// handle.
type Fn func(xs ...uint) uint

// Zero ignores its arguments and returns 0.
func Zero(xs ...uint) uint {
	return 0
}

// Succ returns its first argument plus one.
func Succ(xs ...uint) uint {
	return xs[0] + 1
}

// Proj returns the i-th projection (0-indexed): Proj(i)(x0, ..., xk) = xi.
func Proj(i uint) Fn {
	return func(xs ...uint) uint {
		return xs[i]
	}
}

// Subst composes h with g1..gm:
// Subst(h, g1, ..., gm)(xs) = h(g1(xs), ..., gm(xs)).
func Subst(h Fn, gs ...Fn) Fn {
	return func(xs ...uint) uint {
		ys := make([]uint, len(gs))
		for i, g := range gs {
			ys[i] = g(xs...)
		}
		return h(ys...)
	}
}

// Recurse builds f by primitive recursion from g and h:
//
//	f(0, xs...)   = g(xs...)
//	f(y+1, xs...) = h(y, f(y, xs...), xs...)
func Recurse(g, h Fn) Fn {
	return func(xs ...uint) uint {
		y, rest := xs[0], xs[1:]
		acc := g(rest...)
		args := make([]uint, 0, len(rest)+2)
		for i := uint(0); i < y; i++ {
			args = append(args[:0], i, acc)
			args = append(args, rest...)
			acc = h(args...)
		}
		return acc
	}
}

// Minimise builds the μ-operator over f:
//
//	Minimise(f)(xs...) = the least z with f(z, xs...) = 0
//
// If no such z exists the function diverges; the formalism defines nothing
// else for it to do.
func Minimise(f Fn) Fn {
	return func(xs ...uint) uint {
		args := make([]uint, 0, len(xs)+1)
		for z := uint(0); ; z++ {
			args = append(args[:0], z)
			args = append(args, xs...)
			if f(args...) == 0 {
				return z
			}
		}
	}
}

// Constant builds the k-ary constant function returning n, by stacking n
// successors on zero.
func Constant(n uint) Fn {
	if n == 0 {
		return Zero
	}
	return Subst(Succ, Constant(n-1))
}

// Derived functions, composed exactly as the formalism builds them.
var (
	// Sum(x, y) = x + y
	Sum = Recurse(Proj(0), Subst(Succ, Proj(1)))

	// Pred(x) = x - 1 for x > 0, else 0
	Pred = Recurse(Zero, Proj(0))

	// Sub1(x, y) = y - x for x <= y, else 0 (note the flipped arguments)
	Sub1 = Recurse(Proj(0), Subst(Pred, Proj(1)))

	// Sub(x, y) = x - y for x >= y, else 0
	Sub = Subst(Sub1, Proj(1), Proj(0))

	// Mul(x, y) = x * y
	Mul = Recurse(Zero, Subst(Sum, Proj(1), Proj(2)))

	// Sgn(x) = 0 if x = 0, else 1
	Sgn = Recurse(Zero, Constant(1))

	// Cosgn(x) = 1 if x = 0, else 0
	Cosgn = Recurse(Constant(1), Zero)

	// Lt(x, y) = 1 if x < y, else 0; Lt(x, y) = Sgn(y - x)
	Lt = Subst(Sgn, Subst(Sub, Proj(1), Proj(0)))

	// Gt(x, y) = 1 if x > y, else 0; Gt(x, y) = Sgn(x - y)
	Gt = Subst(Sgn, Sub)

	// Eq(x, y) = 1 if x = y, else 0; Eq(x, y) = Cosgn(Lt(x, y) + Gt(x, y))
	Eq = Subst(Cosgn, Subst(Sum, Lt, Gt))

	// Neq(x, y) = 1 - Eq(x, y)
	Neq = Subst(Cosgn, Eq)

	// Square(x) = x * x
	Square = Subst(Mul, Proj(0), Proj(0))

	// Sqrt(x) = the exact square root of x; diverges when x is not a
	// perfect square.
	Sqrt = Minimise(Subst(Neq, Subst(Square, Proj(0)), Proj(1)))
)
