package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
)

// ExpandInputs turns CLI arguments into the ordered input list. Files are kept
// in argument order, duplicates included; a directory contributes its
// supported entries in lexical order. Subdirectories are not walked.
func ExpandInputs(args []string, supported func(path string) bool) ([]string, error) {
	if len(args) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "expand inputs", fmt.Errorf("no input files given"))
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// Missing files still become inputs so they are reported as failures.
			paths = append(paths, arg)
			continue
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("read input dir %s: %w", arg, err)
		}
		var found []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			p := filepath.Join(arg, entry.Name())
			if supported == nil || supported(p) {
				found = append(found, p)
			}
		}
		sort.Strings(found)
		paths = append(paths, found...)
	}

	if len(paths) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "expand inputs", fmt.Errorf("no supported files in %v", args))
	}
	return paths, nil
}

// OutputPath appends the workbook extension when destination has none.
func OutputPath(destination string) string {
	if filepath.Ext(destination) == "" {
		return destination + ".xlsx"
	}
	return destination
}
