package cmd

// shortTypeScript is the single-dash long form accepted for --typescript.
const shortTypeScript = "-ts"

// NormalizeArgs rewrites arguments pflag cannot parse into their long form.
// "-ts" would otherwise be read as the shorthands -t and -s.
// Arguments after "--" are left alone.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}
		if a == shortTypeScript {
			a = "--typescript"
		}
		out = append(out, a)
	}
	return out
}
