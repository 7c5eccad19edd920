// Package assert provides precondition checks that panic on programmer errors.
//
// Building with the assertions_disabled tag turns every check into a no-op.
package assert

import "fmt"

// failure builds the panic message for a failed assertion.
// If the first arg is a string it is used as a format string with the
// remaining args, otherwise all args are included verbatim.
func failure(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
