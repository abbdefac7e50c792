package ldtkjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Category is a coarse classification of a decode failure.
type Category int

const (
	CategorySyntax Category = iota // malformed JSON
	CategoryData                   // well-formed JSON that does not fit the schema
	CategoryEOF                    // input ended early
)

func (c Category) String() string {
	switch c {
	case CategorySyntax:
		return "syntax"
	case CategoryData:
		return "data"
	case CategoryEOF:
		return "eof"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ErrTrailingData is wrapped by the DecodeError returned for input that
// continues after the document.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// DecodeError reports bytes that could not be decoded into the schema.
type DecodeError struct {
	Category Category
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ldtk json %s error: %v", e.Category, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnknownLayoutError is returned when worldLayout holds a literal outside the
// four supported layouts. It is surfaced wrapped in a DecodeError.
type UnknownLayoutError struct {
	Layout string
}

func (e *UnknownLayoutError) Error() string {
	return fmt.Sprintf("unknown world layout %q", e.Layout)
}

func (l *WorldLayout) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch WorldLayout(s) {
	case LayoutFree, LayoutGridVania, LayoutLinearHorizontal, LayoutLinearVertical:
		*l = WorldLayout(s)
		return nil
	}
	return &UnknownLayoutError{Layout: s}
}

// Decode reads a whole project document from r.
func Decode(r io.Reader) (*Project, error) {
	var p Project
	if err := decodeOne(r, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DecodeLevel reads a single external level file (.ldtkl).
func DecodeLevel(r io.Reader) (*Level, error) {
	var l Level
	if err := decodeOne(r, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// decodeOne decodes exactly one JSON value from r into v. Anything but
// whitespace after the value is a syntax error.
func decodeOne(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return classify(err)
	}
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err == nil:
		return &DecodeError{Category: CategorySyntax, Err: ErrTrailingData}
	default:
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
			return &DecodeError{Category: CategorySyntax, Err: fmt.Errorf("%w: %v", ErrTrailingData, err)}
		}
		return classify(err)
	}
}

// DecodeFile opens name within fsys and decodes it as a project.
func DecodeFile(fsys fs.FS, name string) (*Project, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open project %s: %w", name, err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode project %s: %w", name, err)
	}
	return p, nil
}

// DecodeLevelFile opens name within fsys and decodes it as an external level.
func DecodeLevelFile(fsys fs.FS, name string) (*Level, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", name, err)
	}
	defer f.Close()

	l, err := DecodeLevel(f)
	if err != nil {
		return nil, fmt.Errorf("decode level %s: %w", name, err)
	}
	return l, nil
}

func classify(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		layoutErr *UnknownLayoutError
	)
	switch {
	case errors.As(err, &syntaxErr):
		return &DecodeError{Category: CategorySyntax, Err: err}
	case errors.As(err, &typeErr), errors.As(err, &layoutErr):
		return &DecodeError{Category: CategoryData, Err: err}
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return &DecodeError{Category: CategoryEOF, Err: err}
	}
	// Anything else came from the underlying reader.
	return fmt.Errorf("read: %w", err)
}
