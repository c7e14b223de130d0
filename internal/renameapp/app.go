// internal/renameapp/app.go
package renameapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fakit-core/fasta"
	"fakit/internal/appcore"
	"fakit/internal/cmdutil"
	"fakit/internal/renamecli"
	"fakit/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := renamecli.NewFlagSet("farename")
	fs.SetOutput(io.Discard)

	opts, err := renamecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "farename version %s\n", version.Version)
		return 0
	}

	logger := cmdutil.NewLogger(stderr, "farename", opts.Verbose, opts.Quiet)

	var visit appcore.Visit
	if opts.Prefix != "" {
		visit = prefixVisit(opts.Prefix, opts.KeepDesc)
	} else {
		idmap, err := loadMap(opts.MapFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		logger.Debug("loaded ID map", "path", opts.MapFile, "entries", len(idmap))
		visit = mapVisit(idmap, opts.Strict)
	}

	code := appcore.Run(parent, stdout, stderr, appcore.Options{Inputs: opts.Inputs}, visit)
	if code == 0 {
		logger.Debug("rename pass complete")
	}
	return code
}

// prefixVisit renames headers to >PREFIX_<n> in input order.
func prefixVisit(prefix string, keepDesc bool) appcore.Visit {
	n := 0
	return func(rec fasta.Record) (bool, fasta.Record, error) {
		n++
		header := fmt.Sprintf(">%s_%d", prefix, n)
		if keepDesc {
			if _, desc, ok := splitHeader(rec.Header); ok {
				header += " " + desc
			}
		}
		rec.Header = header
		return true, rec, nil
	}
}

// mapVisit rewrites the first header token through the ID map, keeping the
// description. Unmapped IDs pass through unless strict.
func mapVisit(idmap map[string]string, strict bool) appcore.Visit {
	return func(rec fasta.Record) (bool, fasta.Record, error) {
		id, desc, hasDesc := splitHeader(rec.Header)
		repl, ok := idmap[id]
		if !ok {
			if strict {
				return false, fasta.Record{}, fmt.Errorf("no mapping for %q", id)
			}
			return true, rec, nil
		}
		rec.Header = ">" + repl
		if hasDesc {
			rec.Header += " " + desc
		}
		return true, rec, nil
	}
}

// splitHeader returns the first token after '>' and the remaining
// description, reporting whether a description was present.
func splitHeader(header string) (id, desc string, hasDesc bool) {
	s := strings.TrimPrefix(header, ">")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimLeft(s[i:], " \t"), true
	}
	return s, "", false
}

// loadMap reads a TSV of old<TAB>new pairs. Blank lines and '#' comments
// are skipped.
func loadMap(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := make(map[string]string)
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		old, repl, ok := strings.Cut(text, "\t")
		if !ok || old == "" || repl == "" {
			return nil, fmt.Errorf("%s:%d: expected old<TAB>new", path, line)
		}
		m[old] = repl
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
