package internal

// LookupArg scans args for adjacent "--key value" pairs and returns the
// value following the first occurrence of key, or fallback when the key
// is absent. The last element can never match: a key with no following
// value falls through to the fallback. This first-match, adjacent-pair
// contract is what the probe launchers rely on and must not be replaced
// with flag-package semantics (last-wins, "--key=value", errors on a
// trailing lone key).
func LookupArg(args []string, key, fallback string) string {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == key {
			return args[i+1]
		}
	}
	return fallback
}
