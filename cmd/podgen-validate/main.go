package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/godel-labs/go-podgen/pkg/manifest"
)

type violation struct {
	file    string
	message string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nValidate rendered pod manifests for Kata sandbox requirements.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var violations []violation
	for _, path := range paths {
		checked, err := validateFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "validate %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, checked...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				return violations[i].message < violations[j].message
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s\n", v.file, v.message)
		}
		os.Exit(1)
	}
}

func validateFile(path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	if err := manifest.Validate(string(raw)); err != nil {
		return []violation{{file: path, message: err.Error()}}, nil
	}

	return nil, nil
}
