// Package seed parses Standard for the Exchange of Earthquake Data (SEED)
// volumes, up to and including version 2.3.
//
// A SEED volume is a sequence of fixed-length logical records. Control
// records carry ASCII blockettes (volume indexes, abbreviation dictionaries,
// station and channel metadata, instrument response stages); data records
// carry a 48-byte binary header, a chain of binary data blockettes and a
// compressed sample payload. The Reader type frames logical records,
// dispatches control and data records, maintains the station table and the
// abbreviation dictionary, and groups contiguous data records into
// continuous SeedData segments.
//
// Blockette values are immutable after parse. The Reader owns all stations
// and dictionary entries for the lifetime of a volume; both are released
// when a new volume blockette (5, 10, 11 or 12) is seen.
package seed
