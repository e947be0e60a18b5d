package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// netrcEntry represents credentials for a single machine in .netrc.
type netrcEntry struct {
	Machine  string
	Login    string
	Password string
}

// tokenFromNetrc looks up the password stored for host (or the default entry)
// in the user's .netrc. An absent file or entry yields an empty token, not an
// error.
func tokenFromNetrc(host string) (string, error) {
	path := findNetrcPath()
	if path == "" {
		return "", nil
	}

	entries, err := parseNetrc(path)
	if err != nil {
		return "", err
	}

	if entry, ok := entries[host]; ok {
		return entry.Password, nil
	}
	if entry, ok := entries["default"]; ok {
		return entry.Password, nil
	}
	return "", nil
}

// findNetrcPath locates the .netrc file: the NETRC environment variable
// first, then ~/.netrc.
func findNetrcPath() string {
	if path := os.Getenv("NETRC"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".netrc")
}

// parseNetrc reads a .netrc file into a machine -> entry map. Entries may
// span multiple lines; comment lines are skipped.
func parseNetrc(path string) (map[string]netrcEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("netrc: read: %w", err)
	}

	var tokens []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}

	entries := make(map[string]netrcEntry)
	var current netrcEntry
	save := func() {
		if current.Machine != "" {
			entries[current.Machine] = current
		}
	}

	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "machine":
			save()
			current = netrcEntry{}
			if i+1 < len(tokens) {
				current.Machine = tokens[i+1]
				i++
			}
		case "default":
			save()
			current = netrcEntry{Machine: "default"}
		case "login":
			if i+1 < len(tokens) {
				current.Login = tokens[i+1]
				i++
			}
		case "password":
			if i+1 < len(tokens) {
				current.Password = tokens[i+1]
				i++
			}
		}
	}
	save()

	return entries, nil
}
