package properties

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Loader reads properties sources into Trees.
type Loader struct {
	logger *zap.Logger
}

// LoaderOption configures Loader behaviour.
type LoaderOption func(*Loader)

// WithLogger reports skipped lines at debug level.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader constructs a Loader. Without options it logs nothing.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the file at path with a default Loader.
func Load(path string) (Tree, error) {
	return NewLoader().Load(path)
}

// Load opens path and parses it. Any open or read failure yields an error
// wrapping ErrRead and no tree.
func (l *Loader) Load(path string) (Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer func() {
		_ = f.Close()
	}()

	tree, err := l.Parse(f)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("properties loaded", zap.String("path", path), zap.Int("keys", len(tree)))
	return tree, nil
}

// Parse reads r line by line and builds a fresh Tree.
func (l *Loader) Parse(r io.Reader) (Tree, error) {
	tree := Tree{}
	br := bufio.NewReader(r)

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if line != "" {
			l.apply(tree, line, lineNo)
		}
		if errors.Is(err, io.EOF) {
			return tree, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
	}
}

func (l *Loader) apply(tree Tree, line string, lineNo int) {
	key, value, ok := ParseLine(line)
	if !ok {
		if content := stripComment(line); content != "" {
			l.logger.Debug("skipping line without key", zap.Int("line", lineNo), zap.String("content", content))
		}
		return
	}
	tree.insert(key, value)
}

// ParseLine applies the line rules: trim, drop everything from the first '#',
// then split on the first '=' when it is not the leading character. Both
// halves are trimmed. ok is false for lines that carry no entry.
func ParseLine(line string) (key, value string, ok bool) {
	line = stripComment(line)

	eq := strings.IndexByte(line, '=')
	if eq <= 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:eq])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(line[eq+1:]), true
}

func stripComment(line string) string {
	line = strings.TrimSpace(line)
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return line
}
