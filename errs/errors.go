// Package errs defines the sentinel error values shared by the seedcss
// packages.
//
// The SEED framer classifies soft failures by kind: callers test with
// errors.Is against these sentinels and the framer's exception mask decides
// whether a kind is skipped or surfaced. Specific sites wrap a sentinel with
// fmt.Errorf("%w: ...") to add the blockette type and field name.
package errs

import "errors"

var (
	// ErrFormat reports a field that cannot be parsed. The wrapped message
	// names the blockette type and field.
	ErrFormat = errors.New("field format")

	// ErrLength reports a blockette whose declared length is shorter than
	// its fixed field set requires.
	ErrLength = errors.New("blockette length")

	// ErrHeader reports a malformed logical-record control header.
	ErrHeader = errors.New("record header")

	// ErrEncoding reports an unsupported or inconsistent sample encoding
	// format.
	ErrEncoding = errors.New("encoding format")

	// ErrSeqno reports a logical-record sequence number that is not an
	// integer.
	ErrSeqno = errors.New("record sequence number")

	// ErrSkipRecord marks the remainder of the current logical record as
	// unusable. It is internal to the framer and never escapes to callers.
	ErrSkipRecord = errors.New("skip record")

	// ErrShortRead reports a truncated read from the underlying stream,
	// as opposed to a clean end of volume.
	ErrShortRead = errors.New("short read")
)
