// Package textfile reads and writes source files regardless of their legacy encoding.
package textfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var errUndecodable = errors.New("undecodable input")

// codec decodes raw bytes, failing when the input is not valid for it.
type codec struct {
	name   string
	decode func([]byte) (string, error)
}

var codecs = map[string]codec{
	"utf-8": {"utf-8", func(b []byte) (string, error) {
		if bytes.HasPrefix(b, utf8BOM) || !utf8.Valid(b) {
			return "", errUndecodable
		}
		return string(b), nil
	}},
	"utf-8-sig": {"utf-8-sig", func(b []byte) (string, error) {
		rest, ok := bytes.CutPrefix(b, utf8BOM)
		if !ok || !utf8.Valid(rest) {
			return "", errUndecodable
		}
		return string(rest), nil
	}},
	"latin-1": {"latin-1", charmapDecoder(charmap.ISO8859_1)},
	"cp1252":  {"cp1252", charmapDecoder(charmap.Windows1252)},
}

func charmapDecoder(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(b []byte) (string, error) {
		out, err := cm.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

// DefaultEncodings is the order in which encodings are tried.
var DefaultEncodings = []string{"utf-8", "utf-8-sig", "latin-1", "cp1252"}

// Store implements domain.TextStore on the local filesystem. Reads tolerate
// legacy encodings; writes are always UTF-8 with LF line endings.
type Store struct {
	order []codec
}

// New creates a Store trying DefaultEncodings.
func New() *Store {
	s, _ := NewWithEncodings(DefaultEncodings...)
	return s
}

// NewWithEncodings creates a Store trying the named encodings in order.
func NewWithEncodings(names ...string) (*Store, error) {
	s := &Store{}
	for _, n := range names {
		c, ok := codecs[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unsupported encoding %q", n)
		}
		s.order = append(s.order, c)
	}
	return s, nil
}

// Decode converts raw bytes to LF-normalized text and names the encoding
// that succeeded. When every encoding fails it decodes as UTF-8, replacing
// invalid sequences with U+FFFD, and reports "utf-8-lossy".
func (s *Store) Decode(b []byte) (string, string) {
	for _, c := range s.order {
		if text, err := c.decode(b); err == nil {
			return normalizeLF(text), c.name
		}
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		out = bytes.ToValidUTF8(b, []byte("\uFFFD"))
	}
	return normalizeLF(strings.TrimPrefix(string(out), "\uFEFF")), "utf-8-lossy"
}

func (s *Store) Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, _ := s.Decode(b)
	return text, nil
}

func (s *Store) Write(path, content string) error {
	content = strings.TrimPrefix(normalizeLF(strings.ToValidUTF8(content, "\uFFFD")), "\uFEFF")
	return os.WriteFile(path, []byte(content), 0644)
}

func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *Store) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (s *Store) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

// Copy duplicates src to dst, keeping the permission bits and modification
// time of src.
func (s *Store) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

func (s *Store) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func normalizeLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
