// Command weaponcheck loads weapon definitions with the built-in actions and
// reports every problem it finds. It exits 1 if any definition is unusable.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/automoto/doomerang-arsenal/actions"
	"github.com/automoto/doomerang-arsenal/assets"
	"github.com/automoto/doomerang-arsenal/weapon"
)

func main() {
	dir := flag.String("dir", "", "Directory of weapon definitions (empty = embedded set)")
	sources := flag.String("sources", "primary,secondary,ability,melee", "Comma separated input sources the game provides")
	verbose := flag.Bool("v", false, "Print a line for every weapon, not only broken ones")
	flag.Parse()

	var fsys fs.FS = assets.FS
	root := "weapons"
	if *dir != "" {
		fsys, root = os.DirFS(*dir), "."
	}

	// Build problems from the registry go to stderr alongside the report
	logger := log.New(os.Stderr, "weaponcheck: ", 0)
	catalog, err := weapon.LoadCatalog(fsys, root, actions.NewRegistry(), logger)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	if n := check(os.Stdout, catalog, strings.Split(*sources, ","), *verbose); n > 0 {
		fmt.Fprintf(os.Stdout, "%d of %d weapons have problems\n", n, catalog.Len())
		os.Exit(1)
	}
}

// check writes a report for each weapon and returns how many failed.
func check(w io.Writer, catalog *weapon.Catalog, sources []string, verbose bool) int {
	known := make(map[string]bool, len(sources))
	for _, s := range sources {
		if s = strings.TrimSpace(s); s != "" {
			known[s] = true
		}
	}

	failed := 0
	for _, name := range catalog.Names() {
		def, _ := catalog.Get(name)
		var problems []string
		if err := def.Validate(); err != nil {
			problems = append(problems, strings.Split(err.Error(), "\n")...)
		}
		for i, b := range def.Bindings {
			if b.Input != "" && len(known) > 0 && !known[b.Input] {
				problems = append(problems, fmt.Sprintf("binding %s: input %q is not provided", b.Label(i), b.Input))
			}
		}

		if len(problems) == 0 {
			if verbose {
				fmt.Fprintf(w, "ok   %s (%d bindings)\n", name, len(def.Bindings))
			}
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL %s\n", name)
		for _, p := range problems {
			fmt.Fprintf(w, "     %s\n", p)
		}
	}
	return failed
}
