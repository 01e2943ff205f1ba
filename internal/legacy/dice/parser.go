package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyExpression is returned by Parse for blank input.
var ErrEmptyExpression = errors.New("dice: empty expression")

// Parse parses a legacy dice field into an Expression.
// Supported forms: "2d6", "2d6+3", "4d8-2", "0d0+100". Surrounding whitespace is ignored.
//
// Precondition: expr is a single whitespace-free token.
// Postcondition: Returns an Expression with Count >= 0 and Sides >= 0, or a descriptive error.
func Parse(expr string) (Expression, error) {
	raw := expr
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return Expression{}, ErrEmptyExpression
	}

	dIdx := strings.IndexByte(s, 'd')
	if dIdx <= 0 {
		return Expression{}, fmt.Errorf("dice: missing count or 'd' in expression %q", raw)
	}

	count, err := strconv.Atoi(s[:dIdx])
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
	}
	if count < 0 {
		return Expression{}, fmt.Errorf("dice: invalid die count in %q: must be >= 0", raw)
	}

	rest := s[dIdx+1:]
	modOffset := strings.IndexAny(rest, "+-")

	sidesStr, modStr := rest, ""
	if modOffset >= 0 {
		sidesStr, modStr = rest[:modOffset], rest[modOffset:]
	}

	sides, err := strconv.Atoi(sidesStr)
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 0 {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 0", raw)
	}

	bonus := 0
	if modStr != "" {
		bonus, err = strconv.Atoi(modStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid bonus in %q: %w", raw, err)
		}
	}

	return Expression{Count: count, Sides: sides, Bonus: bonus}, nil
}

// MustParse parses expr and panics on error. Useful for test fixtures and package-level values.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}
