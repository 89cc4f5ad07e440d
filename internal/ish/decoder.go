package ish

// Decoder turns ISH lines into Reports. It holds only read-only tables and
// is safe for concurrent use.
type Decoder struct {
	desc Descriptions
}

// NewDecoder returns a Decoder that renders codes through desc.
func NewDecoder(desc Descriptions) *Decoder {
	return &Decoder{desc: desc}
}

var defaultDecoder = NewDecoder(DefaultDescriptions())

// Decode decodes line with the standard code tables.
func Decode(line string) (*Report, error) {
	return defaultDecoder.Decode(line)
}

// Decode decodes a single record. Only structural problems with the line
// are errors; unknown codes and malformed numbers degrade to skipped codes
// and missing values.
func (d *Decoder) Decode(line string) (*Report, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Mandatory: decodeMandatory(tokens.Mandatory),
		entries:   map[string][]Entry{},
		present:   map[string]struct{}{},
		desc:      d.desc,
	}

	rest := tokens.Trailer
	if tokens.Additional != "" {
		add := dispatchAdditional(tokens.Additional)
		r.entries = add.entries
		r.present = add.present
		r.Skipped = add.skipped
		rest = add.trailer
	}

	t := parseTrailer(rest)
	r.Remarks = t.remarks
	r.QualityElements = t.quality
	r.OriginalObservation = t.original
	r.Unparsed = t.unparsed
	for _, rem := range r.Remarks {
		if rem.Kind == metarRemarkKind {
			m := scanMetarRemarks(rem.Text)
			r.Metar = &m
			break
		}
	}
	return r, nil
}
