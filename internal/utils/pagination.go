// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"errors"
	"strconv"
)

// ErrNotPositiveInt is returned by ParsePositiveInt for input that is not
// a positive integer.
var ErrNotPositiveInt = errors.New("not a positive integer")

// ParsePositiveInt converts a query-string value to a positive int.
// An empty string yields the default; anything non-numeric or <= 0 is an
// error, because the pagination contract treats malformed limit/page as
// bad input rather than silently falling back.
//
// Example:
//
//	n, err := utils.ParsePositiveInt("5", 10)  // 5, nil
//	n, err = utils.ParsePositiveInt("", 10)    // 10, nil
//	n, err = utils.ParsePositiveInt("x", 10)   // 0, ErrNotPositiveInt
//	n, err = utils.ParsePositiveInt("-1", 10)  // 0, ErrNotPositiveInt
func ParsePositiveInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, ErrNotPositiveInt
	}
	return n, nil
}
