package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed locations.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// LocationLines returns the raw catalog lines from the embedded default
// catalog. One location per line: continent|country|region|city|lat|lng.
func LocationLines() ([]string, error) {
	return readLines("locations.txt")
}
