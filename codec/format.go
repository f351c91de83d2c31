package codec

// Format identifies a SEED sample encoding, using the encoding format codes
// of blockette 1000.
type Format uint8

const (
	FormatInt16   Format = 1  // 16-bit signed integers
	FormatInt24   Format = 2  // 24-bit signed integers
	FormatInt32   Format = 3  // 32-bit signed integers
	FormatFloat32 Format = 4  // IEEE single-precision floats
	FormatSteim1  Format = 10 // Steim-1 block-differential compression
	FormatSteim2  Format = 11 // Steim-2 block-differential compression
)

func (f Format) String() string {
	switch f {
	case FormatInt16:
		return "Int16"
	case FormatInt24:
		return "Int24"
	case FormatInt32:
		return "Int32"
	case FormatFloat32:
		return "Float32"
	case FormatSteim1:
		return "Steim1"
	case FormatSteim2:
		return "Steim2"
	default:
		return "Unknown"
	}
}

// Valid reports whether the format is one the decoder supports.
func (f Format) Valid() bool {
	switch f {
	case FormatInt16, FormatInt24, FormatInt32, FormatFloat32,
		FormatSteim1, FormatSteim2:
		return true
	default:
		return false
	}
}
