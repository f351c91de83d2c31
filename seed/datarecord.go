package seed

import (
	"github.com/projectida/seedcss/codec"
	"github.com/projectida/seedcss/endian"
)

// DataRecord is one parsed data record: the fixed header, the resolved byte
// order, the chained data blockettes, and the location of the compressed
// sample payload within the source volume. The payload itself is retained
// only in keep-data mode; otherwise consumers seek to FileOffset.
type DataRecord struct {
	Order  endian.Order
	RecLen int // record length from blockette 1000, or the logical length

	Header     DataHeader
	Blockettes []DataBlockette

	RecordOffset int64  // offset of this record in the source
	FileOffset   int64  // offset of the payload bytes in the source
	DataLength   int    // number of bytes of compressed payload
	Data         []byte // compressed payload, kept-data mode only

	SampleRate float64     // from the header or blockette 100
	Format     codec.Format // from blockette 1000 or dictionary B30
	ClockDrift float64     // from blockette 52
}

// B1000 returns the record's Blockette1000, or nil.
func (r *DataRecord) B1000() *Blockette1000 {
	for _, b := range r.Blockettes {
		if b1000, ok := b.(*Blockette1000); ok {
			return b1000
		}
	}

	return nil
}

// Decode decompresses the record's retained payload into samples. The
// record must have been read in keep-data mode.
func (r *DataRecord) Decode(out []float32) (int, error) {
	return codec.Decode(r.Format, r.Data, r.Order, r.Header.Nsamples, out)
}
