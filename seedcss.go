// Package seedcss converts Standard for the Exchange of Earthquake Data
// (SEED) volumes into the CSS 3.0 relational flat-file schema.
//
// The conversion core is split across focused packages:
//
//   - seed: the volume framer, blockette model, station table and
//     continuous-segment assembler
//   - codec: Steim-1/Steim-2 and fixed-width sample decoders
//   - resp: CSS response synthesis from the SEED response stages
//   - css: the CSS 3.0 row types, writers and update-mode readers
//   - convert: the end-to-end driver (tables, id allocation, waveforms)
//   - seedio: transparent decompression of volume files
//
// # Basic Usage
//
// Converting a volume with the defaults (update mode, waveforms included):
//
//	err := seedcss.Convert("volume.seed",
//	    convert.WithDir("tables"),
//	    convert.WithPrefix("local"),
//	    convert.WithRespDir("response"))
//
// Reading SEED objects directly:
//
//	vol, _ := seedio.Open("volume.seed")
//	defer vol.Close()
//	r, _ := seed.NewReader(vol)
//	for {
//	    obj, err := r.Next()
//	    if err != nil || obj == nil {
//	        break
//	    }
//	    // obj is a control blockette or a *seed.SeedData segment
//	}
//
// This package provides convenient top-level wrappers around the convert
// package; for fine-grained control use the sub-packages directly.
package seedcss

import "github.com/projectida/seedcss/convert"

// Convert runs one SEED to CSS conversion with the given options.
func Convert(seedFile string, opts ...convert.Option) error {
	c, err := convert.New(seedFile, opts...)
	if err != nil {
		return err
	}

	return c.Convert()
}
