// Package main checks that every locale catalog defines the same keys with
// the same placeholders as the others.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"rpbot/internal/infrastructure/i18n"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("localecheck", flag.ContinueOnError)
	flags.SetOutput(stderr)
	dir := flags.String("dir", "", "directory holding <locale>.ftl catalogs (default: catalogs built into the bot)")
	quiet := flags.Bool("quiet", false, "only print issues")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	var fsys fs.FS = i18n.Embedded()
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}

	cs, err := i18n.LoadFromFS(fsys)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	report := i18n.Check(cs)
	for _, issue := range report.Issues {
		fmt.Fprintln(stdout, issue.String())
	}
	if !report.OK() {
		fmt.Fprintf(stderr, "%d issue(s) across %d locale(s)\n", len(report.Issues), len(report.Locales))
		return 1
	}
	if !*quiet {
		fmt.Fprintf(stdout, "%d keys consistent across %v\n", report.Keys, report.Locales)
	}
	return 0
}
