// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks for missing or orphaned translation keys. It scans
// the Go source for i18n.T() and i18n.Td() calls and compares them
// against the YAML locale files.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

func main() {
	usedKeys, err := findUsedKeys(projectRoot)
	if err != nil {
		fmt.Printf("error finding used keys: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("found %d translation keys used in source code\n", len(usedKeys))

	localeFiles, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		fmt.Printf("error finding locale files: %v\n", err)
		os.Exit(1)
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		fmt.Printf("error loading primary locale %q: %v\n", primaryLocale, err)
		os.Exit(1)
	}
	fmt.Printf("loaded %d keys from %s\n\n", len(primaryKeys), primaryLocale)

	hasMissingKeys := false
	hasOrphanedKeys := false

	fmt.Println("--- orphaned keys (in primary locale but never used) ---")
	var orphanedKeys []string
	for key := range primaryKeys {
		if _, exists := usedKeys[key]; !exists {
			orphanedKeys = append(orphanedKeys, key)
		}
	}
	sort.Strings(orphanedKeys)
	for _, key := range orphanedKeys {
		fmt.Printf("  orphaned: %s\n", key)
		hasOrphanedKeys = true
	}
	if !hasOrphanedKeys {
		fmt.Println("  none")
	}

	fmt.Println("\n--- used keys missing from the primary locale ---")
	var undefinedKeys []string
	for key := range usedKeys {
		if _, exists := primaryKeys[key]; !exists {
			undefinedKeys = append(undefinedKeys, key)
		}
	}
	sort.Strings(undefinedKeys)
	for _, key := range undefinedKeys {
		fmt.Printf("  undefined: %s\n", key)
		hasMissingKeys = true
	}
	if len(undefinedKeys) == 0 {
		fmt.Println("  none")
	}

	fmt.Println("\n--- keys missing from secondary locales ---")
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		secondaryKeys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Printf("  error loading %s: %v\n", file, err)
			hasMissingKeys = true
			continue
		}

		var missingKeys []string
		for key := range primaryKeys {
			if _, exists := secondaryKeys[key]; !exists {
				missingKeys = append(missingKeys, key)
			}
		}
		sort.Strings(missingKeys)
		if len(missingKeys) == 0 {
			fmt.Printf("%s: complete\n", file)
			continue
		}
		for _, key := range missingKeys {
			fmt.Printf("%s: missing %s\n", file, key)
			hasMissingKeys = true
		}
	}

	fmt.Println()
	if hasMissingKeys {
		fmt.Println("found missing keys")
		os.Exit(1)
	}
	if hasOrphanedKeys {
		fmt.Println("found orphaned keys; consider removing them")
		return
	}
	fmt.Println("all translation files are consistent")
}

// findUsedKeys scans all non-test .go files for i18n.T and i18n.Td calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	re := regexp.MustCompile(`i18n\.Td?\("([^"]+)"`)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && (info.Name() == "tools" || strings.HasPrefix(info.Name(), "_")) {
			return filepath.SkipDir
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range re.FindAllStringSubmatch(string(content), -1) {
			keys[match[1]] = struct{}{}
		}
		return nil
	})

	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns the set of its keys.
// The locale files are flat, but nested maps are flattened with dots so
// a reorganization would not break the linter.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
