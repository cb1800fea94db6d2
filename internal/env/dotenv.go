package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadResult describes what LoadFile did.
type LoadResult struct {
	// Found is false when the file does not exist.
	Found bool
	// Set lists the keys written to the process environment.
	Set []string
	// Skipped lists keys left alone because they were already defined
	// and override was false.
	Skipped []string
}

// LoadFile reads the dotenv file at path and writes its entries into the
// process environment. Existing variables are replaced only when override
// is true. A missing file is not an error; Found reports it.
func LoadFile(path string, override bool) (LoadResult, error) {
	var result LoadResult

	values, err := ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return result, nil
	}
	if err != nil {
		return result, err
	}
	result.Found = true

	for _, key := range values.Keys() {
		if _, exists := os.LookupEnv(key); exists && !override {
			result.Skipped = append(result.Skipped, key)
			continue
		}
		if err := os.Setenv(key, values[key]); err != nil {
			return result, fmt.Errorf("setting %s: %w", key, err)
		}
		result.Set = append(result.Set, key)
	}

	return result, nil
}

// ReadFile parses the dotenv file at path without touching the process
// environment. The returned error wraps fs.ErrNotExist for a missing file.
func ReadFile(path string) (Map, error) {
	if path == "" {
		return nil, fmt.Errorf("dotenv path is empty")
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return Map(values), nil
}
