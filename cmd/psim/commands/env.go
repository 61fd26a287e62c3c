package commands

import (
	"os"
	"strconv"
)

// defaultProcs returns the PSIM_PROCS environment variable as an int,
// or fallback if it is unset or unparsable. Unlike the teacher's
// SURP_IF/SURP_GROUP, this is an optional convenience override: the
// core library has no required environment variables (spec.md §6).
func defaultProcs(fallback int) int {
	v := os.Getenv("PSIM_PROCS")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
