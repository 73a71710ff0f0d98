// Command migration applies the schema under db/migrations against the
// database named by DB_URL.
package main

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	m, err := newMigrator()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Printf("close migrator: source=%v db=%v", srcErr, dbErr)
		}
	}()

	switch strings.ToLower(strings.TrimSpace(os.Args[1])) {
	case "up":
		err = runUp(m)
	case "down":
		err = runDown(m, os.Args[2:])
	case "version":
		err = printVersion(m)
	case "force":
		err = runForce(m, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Println("usage: migration <up|down [steps]|version|force <version>>")
}

func newMigrator() (*migrate.Migrate, error) {
	dsn := strings.TrimSpace(os.Getenv("DB_URL"))
	if dsn == "" {
		return nil, errors.New("DB_URL is required")
	}
	if disablePreparedBinary() {
		dsn = withDisabledPreparedBinary(dsn)
	}

	dir, err := migrationsDir()
	if err != nil {
		return nil, err
	}

	return migrate.New("file://"+filepath.ToSlash(dir), dsn)
}

func runUp(m *migrate.Migrate) error {
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Print("schema already up to date")
			return nil
		}
		return err
	}
	log.Print("migrations applied")
	return nil
}

func runDown(m *migrate.Migrate, args []string) error {
	steps := 1
	if len(args) > 0 {
		parsed, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || parsed <= 0 {
			return fmt.Errorf("down steps must be a positive integer, got %q", args[0])
		}
		steps = parsed
	}

	if err := m.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Print("nothing to roll back")
			return nil
		}
		return err
	}
	log.Printf("rolled back %d migration(s)", steps)
	return nil
}

func printVersion(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Println("version: none")
		fmt.Println("dirty: false")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}

	fmt.Printf("version: %d\n", version)
	fmt.Printf("dirty: %t\n", dirty)
	return nil
}

func runForce(m *migrate.Migrate, args []string) error {
	if len(args) == 0 {
		return errors.New("force requires a version argument")
	}
	version, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || version < 0 {
		return fmt.Errorf("version must be a non-negative integer, got %q", args[0])
	}

	if err := m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	log.Printf("forced version to %d", version)
	return nil
}

// migrationsDir prefers MIGRATIONS_DIR, then the repo-relative layout,
// then the container image path.
func migrationsDir() (string, error) {
	candidates := []string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}

	return "", errors.New("migration directory not found (checked MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)")
}

func disablePreparedBinary() bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("DB_DISABLE_PREPARED_BINARY")))
	return err == nil && value
}

func withDisabledPreparedBinary(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return dsn
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}
