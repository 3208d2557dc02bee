package input

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"primecount/internal/domain"
)

// FileSource reads numbers from files on disk.
type FileSource struct {
	log logrus.FieldLogger
}

// NewFileSource returns a FileSource. A nil logger discards output.
func NewFileSource(log logrus.FieldLogger) *FileSource {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &FileSource{log: log}
}

// ReadNumbers reads path and tokenizes its contents.
func (s *FileSource) ReadNumbers(path string) (domain.NumberList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	numbers, skipped := parse(string(data))
	s.log.WithFields(logrus.Fields{
		"path":    path,
		"bytes":   len(data),
		"numbers": len(numbers),
		"skipped": skipped,
	}).Debug("parsed input")
	return numbers, nil
}

// Parse tokenizes text and returns the integers it contains, in order.
func Parse(text string) domain.NumberList {
	numbers, _ := parse(text)
	return numbers
}

func parse(text string) (domain.NumberList, int) {
	tokens := strings.FieldsFunc(text, isSeparator)
	numbers := make(domain.NumberList, 0, len(tokens))
	skipped := 0
	for _, token := range tokens {
		if token == "-" {
			skipped++
			continue
		}
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			skipped++
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers, skipped
}

func isSeparator(r rune) bool {
	if r == '-' {
		return false
	}
	return r < '0' || r > '9'
}
