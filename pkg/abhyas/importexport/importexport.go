package importexport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineLength bounds a single url line
const maxLineLength = 1024 * 1024

// Importer inserts urls and reports how many were new
type Importer interface {
	BulkImport(urls []string) (int64, error)
}

// Lister returns every stored url
type Lister interface {
	ListURLs() ([]string, error)
}

// ImportResult represents the result of an import operation.
// Skipped counts both duplicates inside the file and urls already stored.
type ImportResult struct {
	Read     int
	Imported int64
	Skipped  int64
}

// ReadLinks returns the non-blank lines of r with surrounding whitespace removed
func ReadLinks(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	links := []string{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		links = append(links, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return links, nil
}

// Import reads urls from r and inserts the new ones
func Import(store Importer, r io.Reader) (ImportResult, error) {
	links, err := ReadLinks(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read links: %w", err)
	}

	imported, err := store.BulkImport(links)
	if err != nil {
		return ImportResult{Read: len(links), Imported: imported}, err
	}

	return ImportResult{
		Read:     len(links),
		Imported: imported,
		Skipped:  int64(len(links)) - imported,
	}, nil
}

// ImportFile imports the urls listed in the file at path, one per line
func ImportFile(store Importer, path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	return Import(store, f)
}

// Export writes every stored url to w, one per line, and returns how many were written
func Export(store Lister, w io.Writer) (int, error) {
	urls, err := store.ListURLs()
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	for _, url := range urls {
		if _, err := bw.WriteString(url + "\n"); err != nil {
			return 0, err
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return len(urls), nil
}

// ExportFile writes every stored url to the file at path, replacing it
func ExportFile(store Lister, path string) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return Export(store, f)
}
