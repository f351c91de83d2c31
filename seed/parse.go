package seed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/projectida/seedcss/errs"
)

// parseInt converts a trimmed integer field, rejecting trailing garbage.
func parseInt(s string) (int, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, fmt.Errorf("%w: empty integer field", errs.ErrFormat)
	}

	v, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrFormat, s)
	}

	return v, nil
}

// parseFloat converts a trimmed floating-point field, rejecting trailing
// garbage.
func parseFloat(s string) (float64, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, fmt.Errorf("%w: empty float field", errs.ErrFormat)
	}

	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrFormat, s)
	}

	return v, nil
}

// trimBytes converts a fixed-width byte field to a string with surrounding
// spaces and NULs removed.
func trimBytes(b []byte) string {
	return strings.Trim(string(b), " \t\n\x00")
}

// variable returns the prefix of s up to the first '~' terminator, or all of
// s when no terminator is present.
func variable(s string) string {
	if i := strings.IndexByte(s, '~'); i >= 0 {
		return s[:i]
	}

	return s
}

// fieldReader is a cursor over the body of a control blockette. Fixed-width
// reads clamp at the end of the body, matching the substring semantics the
// format relies on for optional trailing fields; reads that start past the
// end fail with a length error.
type fieldReader struct {
	body  string
	pos   int
	btype string
}

func newFieldReader(body, btype string) *fieldReader {
	return &fieldReader{body: body, btype: btype}
}

// remaining reports the number of unread bytes.
func (r *fieldReader) remaining() int {
	return len(r.body) - r.pos
}

// fixed returns the next n bytes, clamped at the end of the body.
func (r *fieldReader) fixed(n int) (string, error) {
	if r.pos > len(r.body) {
		return "", fmt.Errorf("%w: blockette %s truncated", errs.ErrLength,
			r.btype)
	}
	end := r.pos + n
	if end > len(r.body) {
		end = len(r.body)
	}
	s := r.body[r.pos:end]
	r.pos = end

	return s, nil
}

// trimmed returns the next n bytes with surrounding spaces removed.
func (r *fieldReader) trimmed(n int) (string, error) {
	s, err := r.fixed(n)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(s), nil
}

// variable returns the next tilde-terminated field and advances past the
// terminator.
func (r *fieldReader) variable() (string, error) {
	if r.pos > len(r.body) {
		return "", fmt.Errorf("%w: blockette %s truncated", errs.ErrLength,
			r.btype)
	}
	v := variable(r.body[r.pos:])
	r.pos += len(v) + 1
	if r.pos > len(r.body) {
		r.pos = len(r.body)
	}

	return v, nil
}

// intField parses an n-byte integer field. A blank field yields -1; some
// fields can be blank, such as 052.subchannel.
func (r *fieldReader) intField(n int, name string) (int, error) {
	s, err := r.fixed(n)
	if err != nil {
		return 0, err
	}
	t := strings.TrimSpace(s)
	if t == "" {
		return -1, nil
	}

	v, err := strconv.Atoi(t)
	if err != nil {
		return 0, r.formatErr(name, s)
	}

	return v, nil
}

// floatField parses an n-byte floating point field.
func (r *fieldReader) floatField(n int, name string) (float64, error) {
	s, err := r.fixed(n)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, r.formatErr(name, s)
	}

	return v, nil
}

// timeField parses a tilde-terminated ASCII time field.
func (r *fieldReader) timeField(name string) (Time, error) {
	v, err := r.variable()
	if err != nil {
		return Time{}, err
	}

	return ParseTime(v, r.btype+"."+name)
}

func (r *fieldReader) formatErr(name, value string) error {
	return fmt.Errorf("%w: blockette %s field %s: %q", errs.ErrFormat,
		r.btype, name, value)
}
