// Package debugfs reads zswap counters from the kernel debug filesystem.
package debugfs

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/haukened/zswapstat/internal/zswap/common/log"
	"github.com/haukened/zswapstat/internal/zswap/domain"
)

// ZswapDir is where the kernel exposes zswap statistics.
const ZswapDir = "/sys/kernel/debug/zswap"

// chdir is swapped out in tests.
var chdir = os.Chdir

// Open makes dir the working directory and returns a filesystem rooted there.
// Failures are reported as *domain.DirError.
func Open(dir string) (fs.FS, error) {
	if err := chdir(dir); err != nil {
		return nil, domain.NewDirError(dir, err)
	}
	log.Debug(map[string]any{"dir": dir}, "entered debug directory")
	return os.DirFS("."), nil
}

// Collect reads every regular file at the root of fsys as an integer entry.
//
// Entries are returned in directory order. Both required counters must be
// present; a counter with value zero is still present.
func Collect(fsys fs.FS) ([]domain.Entry, domain.Counters, error) {
	var counters domain.Counters

	dirEntries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, counters, fmt.Errorf("listing debug directory: %w", err)
	}

	entries := make([]domain.Entry, 0, len(dirEntries))
	var havePool, haveStored bool
	for _, de := range dirEntries {
		if de.IsDir() {
			log.Warn(map[string]any{"entry": de.Name()}, "skipping sub-directory")
			continue
		}

		entry, err := readEntry(fsys, de.Name())
		if err != nil {
			return nil, counters, err
		}
		entries = append(entries, entry)

		log.Debug(map[string]any{"entry": entry.Name, "value": entry.Value}, "read entry")

		switch entry.Name {
		case domain.EntryPoolTotalSize:
			if !havePool {
				counters.PoolTotalSize = entry.Value
				havePool = true
			}
		case domain.EntryStoredPages:
			if !haveStored {
				counters.StoredPages = entry.Value
				haveStored = true
			}
		}
	}

	if !havePool {
		return nil, counters, &domain.MissingValueError{Field: domain.EntryPoolTotalSize}
	}
	if !haveStored {
		return nil, counters, &domain.MissingValueError{Field: domain.EntryStoredPages}
	}
	return entries, counters, nil
}

func readEntry(fsys fs.FS, name string) (domain.Entry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("reading %s: %w", name, err)
	}
	if !utf8.Valid(data) {
		return domain.Entry{}, &domain.ParseError{Name: name, Raw: string(data)}
	}

	raw := strings.TrimSpace(string(data))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return domain.Entry{}, &domain.ParseError{Name: name, Raw: raw, Err: err}
	}
	return domain.Entry{Name: name, Raw: raw, Value: value}, nil
}
