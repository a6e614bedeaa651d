package world

import (
	"fmt"
	"os"
	"strings"

	"frontbundle/internal/logging"
	"frontbundle/internal/types"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// PlaceholderPrefix starts the text substituted for a file that could not be read.
const PlaceholderPrefix = "// Error reading file: "

// newlines folds CRLF and lone CR into LF, as text-mode reads do.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Reader loads candidate files as text.
type Reader struct {
	validator transform.Transformer
}

// NewReader returns a Reader for the given encoding. Only UTF-8 is supported;
// config validation rejects anything else.
func NewReader(enc string) (*Reader, error) {
	switch strings.ToLower(enc) {
	case "", "utf-8", "utf8":
		return &Reader{validator: encoding.UTF8Validator}, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}
}

// ReadContent reads path fully and decodes it strictly. Invalid byte
// sequences are an error, not replaced.
func (r *Reader) ReadContent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if _, _, err := transform.Bytes(r.validator, data); err != nil {
		return "", fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return newlines.Replace(string(data)), nil
}

// Load turns a candidate into a payload entry. A read failure never
// propagates: the entry carries a placeholder embedding the error instead.
func (r *Reader) Load(c types.Candidate) types.PayloadEntry {
	content, err := r.ReadContent(c.FullPath)
	if err != nil {
		logging.Get(logging.CategoryRead).Warn("read failed for %s: %v", c.Path, err)
		return types.PayloadEntry{Path: c.Path, Content: Placeholder(err), ReadFailed: true}
	}
	logging.Read("read %s (%d bytes)", c.Path, len(content))
	return types.PayloadEntry{Path: c.Path, Content: content}
}

// LoadAll reads every candidate in order.
func (r *Reader) LoadAll(candidates []types.Candidate) []types.PayloadEntry {
	logging.ReadDebug("loading %d candidates", len(candidates))
	entries := make([]types.PayloadEntry, 0, len(candidates))
	for _, c := range candidates {
		entries = append(entries, r.Load(c))
	}
	return entries
}

// Placeholder renders the substitute content for a failed read.
func Placeholder(err error) string {
	return PlaceholderPrefix + err.Error()
}
