// Package flagx lets several loaders share one command line: each loader
// picks out only the flags it owns and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args made of the allowed flags and their
// values. Two forms are recognised:
//
//	-d studyhub.db        flag and value as separate arguments
//	--config=conf.json    flag and value joined with '='
//
// A separate value is only taken when the next argument does not itself look
// like a flag. The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// NewFlagSet returns a quiet FlagSet that reports errors instead of exiting.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// JsonConfigPath extracts the config file path given with -c or -config.
// Other arguments are ignored. If neither flag is present, "" is returned.
func JsonConfigPath(args []string) string {
	var config string

	fs := NewFlagSet("json")
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return config
}
