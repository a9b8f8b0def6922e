package cmd

import (
	"strconv"
	"strings"
)

// valueFlags consume the following token as their value
var valueFlags = map[string]bool{
	"--config": true,
	"--format": true,
	"--places": true,
}

// normalizeArgs moves operands behind "--" so that negative numbers such as
// -1 are not read as shorthand flags. Command words before the first number
// stay in front; flags keep their relative order.
func normalizeArgs(args []string) []string {
	var words, flags, operands []string
	seenOperand := false

	for i := 0; i < len(args); i++ {
		s := args[i]
		switch {
		case s == "--":
			operands = append(operands, args[i+1:]...)
			i = len(args)
		case isNumber(s):
			operands = append(operands, s)
			seenOperand = true
		case strings.HasPrefix(s, "-"):
			flags = append(flags, s)
			if valueFlags[s] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case seenOperand:
			operands = append(operands, s)
		default:
			words = append(words, s)
		}
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, words...)
	out = append(out, flags...)
	if len(operands) > 0 {
		out = append(out, "--")
		out = append(out, operands...)
	}
	return out
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
