package transform

import (
	"os"
	"path/filepath"
	"strings"
)

// LoadScripts registers every *.js file in dir as a transform named after
// the file. A missing directory is fine; unreadable files are skipped and
// reported back so the caller can warn.
func (e *Engine) LoadScripts(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var skipped []string
	for _, de := range entries {
		if de.IsDir() || filepath.Ext(de.Name()) != ".js" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, de.Name()))
		if err != nil {
			skipped = append(skipped, de.Name())
			continue
		}
		name := strings.TrimSuffix(de.Name(), ".js")
		e.RegisterScript(name, string(data))
	}
	return skipped
}
