// Package dice models the NdS+B dice notation stored in legacy mobile and
// object records.
package dice

import "fmt"

// Expression is a dice expression of the form {Count}d{Sides}+{Bonus}.
//
// Invariant: Count >= 0 and Sides >= 0. Legacy files use 0d0+N for fixed values.
type Expression struct {
	Count int `json:"count" yaml:"count"`
	Sides int `json:"sides" yaml:"sides"`
	Bonus int `json:"bonus" yaml:"bonus"`
}

// String renders the canonical form "{count}d{sides}+{bonus}".
// A negative bonus renders as "{count}d{sides}-{n}".
//
// Postcondition: Parse(e.String()) == e for every valid Expression.
func (e Expression) String() string {
	if e.Bonus < 0 {
		return fmt.Sprintf("%dd%d%d", e.Count, e.Sides, e.Bonus)
	}
	return fmt.Sprintf("%dd%d+%d", e.Count, e.Sides, e.Bonus)
}

// Min returns the smallest possible total.
func (e Expression) Min() int {
	if e.Sides == 0 {
		return e.Bonus
	}
	return e.Count + e.Bonus
}

// Max returns the largest possible total.
func (e Expression) Max() int {
	return e.Count*e.Sides + e.Bonus
}

// Mean returns the expected total of a roll.
//
// Postcondition: Min() <= Mean() <= Max().
func (e Expression) Mean() float64 {
	if e.Sides == 0 {
		return float64(e.Bonus)
	}
	return float64(e.Count)*float64(e.Sides+1)/2 + float64(e.Bonus)
}

// IsZero reports whether the expression is 0d0+0.
func (e Expression) IsZero() bool {
	return e == Expression{}
}
