// Package prompts embeds the oracle prompt catalog. Each JSON file maps
// prompt keys to template text with {{.Key}} placeholders; coaching.json
// carries the one-shot generation prompts and interview.json the
// interviewer system instructions.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// Parsed catalog files, keyed by filename.
var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get looks up one prompt template by catalog file and key, e.g.
// Get("coaching.json", "resume_extraction").
func Get(filename, key string) (string, error) {
	catalog, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	prompt, exists := catalog[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}

	return prompt, nil
}

// MustGet is Get for prompts the program cannot run without; a missing
// entry is a packaging error, so it panics.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders with values from data.
// Placeholders without a matching key are left in place.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if catalog, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return catalog, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var catalog map[string]string
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = catalog
	cacheMu.Unlock()

	return catalog, nil
}
