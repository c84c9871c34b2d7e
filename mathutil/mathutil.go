// Package mathutil holds small arithmetic helpers.
package mathutil

import "errors"

// ErrNegative reports a request for a negative sequence position.
var ErrNegative = errors.New("n must be non-negative")

// Fibonacci returns the nth Fibonacci number, computed iteratively.
func Fibonacci(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n <= 1 {
		return n, nil
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b, nil
}

// IsPrime reports whether n is prime, by trial division up to the square
// root of n.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
