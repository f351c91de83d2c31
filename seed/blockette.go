package seed

// Blockette is implemented by all parsed SEED blockette variants. Callers
// dispatch on the concrete type; BlocketteType reports the numeric kind for
// diagnostics.
type Blockette interface {
	BlocketteType() int
}

// DictionaryBlockette is implemented by the abbreviation dictionary variants
// (30-34, 41-48). LookupCode returns the cross-reference key used by later
// blockettes.
type DictionaryBlockette interface {
	Blockette
	LookupCode() int
}

// UnknownBlockette holds the raw body of a control blockette whose type is
// not recognised.
type UnknownBlockette struct {
	Type   int
	Fields string
}

func (b *UnknownBlockette) BlocketteType() int { return b.Type }

// parseControlBlockette parses the body of a control blockette (framing and
// the 7-byte type+length prefix already stripped). An unrecognised type
// yields an UnknownBlockette and no error.
func parseControlBlockette(btype int, body string) (Blockette, error) {
	switch btype {
	case 5:
		return parseBlockette5(body)
	case 8:
		return parseBlockette8(body)
	case 10:
		return parseBlockette10(body)
	case 11:
		return parseBlockette11(body)
	case 12:
		return parseBlockette12(body)
	case 30:
		return parseBlockette30(body)
	case 31:
		return parseBlockette31(body)
	case 32:
		return parseBlockette32(body)
	case 33:
		return parseBlockette33(body)
	case 34:
		return parseBlockette34(body)
	case 35:
		return parseBlockette35(body)
	case 41:
		return parseBlockette41(body)
	case 42:
		return parseBlockette42(body)
	case 43:
		return parseBlockette43(body)
	case 44:
		return parseBlockette44(body)
	case 45:
		return parseBlockette45(body)
	case 46:
		return parseBlockette46(body)
	case 47:
		return parseBlockette47(body)
	case 48:
		return parseBlockette48(body)
	case 50:
		return parseBlockette50(body)
	case 51:
		return parseBlockette51(body)
	case 52:
		return parseBlockette52(body)
	case 53:
		return parseBlockette53(body)
	case 54:
		return parseBlockette54(body)
	case 55:
		return parseBlockette55(body)
	case 56:
		return parseBlockette56(body)
	case 57:
		return parseBlockette57(body)
	case 58:
		return parseBlockette58(body)
	case 59:
		return parseBlockette59(body)
	case 60:
		return parseBlockette60(body)
	case 61:
		return parseBlockette61(body)
	case 62:
		return parseBlockette62(body)
	case 70:
		return parseBlockette70(body)
	case 71:
		return parseBlockette71(body)
	case 72:
		return parseBlockette72(body)
	case 73:
		return parseBlockette73(body)
	case 74:
		return parseBlockette74(body)
	}

	log.Warnf("Unknown blockette type: %d", btype)

	return &UnknownBlockette{Type: btype, Fields: body}, nil
}
