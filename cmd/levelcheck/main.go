// Command levelcheck validates level files. With no arguments it checks the
// levels embedded in the binary; otherwise it checks the given files and
// directories on disk.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/mathbuilder/levels"
)

type source struct {
	name string
	read func() ([]byte, error)
}

func main() {
	watch := flag.Bool("watch", false, "revalidate files when they change")
	lint := flag.Bool("lint", false, "also report non-fatal authoring warnings")
	flag.Parse()

	log.SetFlags(0)

	sources, dirs, err := collect(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	failed := 0
	for _, src := range sources {
		if !check(src, *lint) {
			failed++
		}
	}

	if *watch {
		if len(dirs) == 0 {
			log.Fatal("levelcheck: -watch needs at least one directory or file on disk")
		}
		runWatch(dirs, *lint)
		return
	}

	if failed > 0 {
		log.Printf("%d of %d level files invalid", failed, len(sources))
		os.Exit(1)
	}
	log.Printf("%d level files ok", len(sources))
}

// collect resolves args into sources plus the directories to watch.
func collect(args []string) ([]source, []string, error) {
	if len(args) == 0 {
		names, err := levels.Names()
		if err != nil {
			return nil, nil, err
		}
		out := make([]source, 0, len(names))
		for _, name := range names {
			out = append(out, source{name: name, read: func() ([]byte, error) { return levels.Read(name) }})
		}
		return out, nil, nil
	}

	var out []source
	dirSet := map[string]struct{}{}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, nil, err
		}
		if !info.IsDir() {
			out = append(out, diskSource(arg))
			dirSet[filepath.Dir(arg)] = struct{}{}
			continue
		}
		dirSet[arg] = struct{}{}
		matches, err := filepath.Glob(filepath.Join(arg, "*.json"))
		if err != nil {
			return nil, nil, err
		}
		for _, m := range matches {
			out = append(out, diskSource(m))
		}
	}

	dirs := make([]string, 0, len(dirSet))
	for d := range dirSet {
		dirs = append(dirs, d)
	}
	return out, dirs, nil
}

func diskSource(path string) source {
	return source{name: path, read: func() ([]byte, error) { return os.ReadFile(path) }}
}

func check(src source, lint bool) bool {
	data, err := src.read()
	if err != nil {
		log.Printf("%s: %v", src.name, err)
		return false
	}

	res := levels.ValidateJSON(data)
	if !res.Valid {
		log.Printf("%s: invalid", src.name)
		for _, e := range res.Errors {
			log.Printf("  - %s", e)
		}
		return false
	}

	if lint {
		lvl, err := levels.Parse(data)
		if err != nil {
			log.Printf("%s: %v", src.name, err)
			return false
		}
		for _, w := range levels.Lint(lvl) {
			log.Printf("%s: warning: %s", src.name, w)
		}
	}

	log.Printf("%s: ok", src.name)
	return true
}

func runWatch(dirs []string, lint bool) {
	w, err := levels.NewWatcher(dirs...)
	if err != nil {
		log.Fatalf("levelcheck: watch: %v", err)
	}
	defer w.Close()

	log.Printf("watching %s", strings.Join(dirs, ", "))
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			if _, err := os.Stat(name); err != nil {
				log.Printf("%s: removed", name)
				continue
			}
			check(diskSource(name), lint)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("levelcheck: watch error: %v", err)
		}
	}
}
