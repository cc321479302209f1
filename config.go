package main

import (
	"log"
	"os"
	"strings"
)

var defaultFormat = parseOptions(os.Getenv("PHPREF"))

// parseOptions reads comma-separated PHPREF options and returns
// the default output format they select.
func parseOptions(s string) outputFormat {
	format := textFormat
	for _, opt := range strings.Split(s, ",") {
		switch opt = strings.TrimSpace(opt); opt {
		default:
			log.Printf("phpref: Unknown option %q", opt)
		case "":
		case "text", "json", "yaml":
			format.Set(opt)
		}
	}
	return format
}
