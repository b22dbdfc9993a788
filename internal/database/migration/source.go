package migration

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"jobhunt/migrations"
)

type Migration struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

var fileRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

// Source returns the directory dir as a file system, or the migrations
// embedded in the binary when dir is empty.
func Source(dir string) fs.FS {
	if strings.TrimSpace(dir) == "" {
		return migrations.Files
	}
	return os.DirFS(dir)
}

// Load reads the V<version>__<name>.sql files at the root of fsys ordered by
// version. Other files are ignored; a missing root yields no migrations.
func Load(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	migs := make([]Migration, 0, len(entries))
	seen := make(map[int64]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		parts := fileRe.FindStringSubmatch(e.Name())
		if parts == nil {
			continue
		}

		version, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %s: bad version: %w", e.Name(), err)
		}
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("migration version %d used by %s and %s", version, prev, e.Name())
		}
		seen[version] = e.Name()

		m, err := readMigration(fsys, e.Name(), version, parts[2])
		if err != nil {
			return nil, err
		}
		migs = append(migs, m)
	}

	sort.Slice(migs, func(i, j int) bool { return migs[i].Version < migs[j].Version })
	return migs, nil
}

func readMigration(fsys fs.FS, filename string, version int64, name string) (Migration, error) {
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return Migration{}, err
	}
	body := strings.TrimSpace(string(b))
	if body == "" {
		return Migration{}, fmt.Errorf("migration %s is empty", filename)
	}

	sum := sha256.Sum256([]byte(body))
	return Migration{
		Version:  version,
		Name:     name,
		Filename: filename,
		SQL:      body,
		Checksum: hex.EncodeToString(sum[:]),
	}, nil
}
