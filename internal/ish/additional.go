package ish

// additional is the outcome of walking an ADD payload.
type additional struct {
	entries map[string][]Entry
	// present holds every code and identifier seen, including ones whose
	// body was cut short and therefore have no entries.
	present map[string]struct{}
	skipped []string
	trailer string
}

func (a *additional) mark(code, id string) {
	a.present[code] = struct{}{}
	a.present[id] = struct{}{}
	if _, ok := a.entries[code]; !ok {
		a.entries[code] = []Entry{}
	}
}

// dispatchAdditional decodes code(2)+variant(1)+body tokens until the payload
// ends or a REM, EQD or QNN marker starts the trailer.
func dispatchAdditional(payload string) additional {
	a := additional{
		entries: make(map[string][]Entry),
		present: make(map[string]struct{}),
	}

	pos := 0
	for pos < len(payload) {
		if pos+3 > len(payload) {
			a.skipped = append(a.skipped, payload[pos:])
			break
		}
		id := payload[pos : pos+3]
		if isTrailerMarker(id) {
			a.trailer = payload[pos:]
			break
		}

		spec, ok := lookupCode(id)
		if !ok || !isDigit(id[2]) {
			a.skipped = append(a.skipped, id)
			pos = resync(payload, pos+1)
			continue
		}

		code := id[:2]
		a.mark(code, id)
		start, end := pos+3, pos+3+spec.width
		// A garbled or short body must not swallow the trailer; the code
		// stays present with no entry, as with a truncated final token.
		if m := trailerMarkerWithin(payload, start, end); m >= 0 {
			a.trailer = payload[m:]
			break
		}
		if end > len(payload) {
			break
		}

		body := payload[start:end]
		var value Payload = Opaque{Body: body}
		if spec.decode != nil {
			value = spec.decode(body)
		}
		a.entries[code] = append(a.entries[code], Entry{
			Code:    code,
			Variant: int(id[2] - '0'),
			Raw:     body,
			Value:   value,
		})
		pos = end
	}
	return a
}

// resync returns the first offset at or after from that holds a known
// identifier or a section marker, or len(payload).
func resync(payload string, from int) int {
	for i := from; i+3 <= len(payload); i++ {
		id := payload[i : i+3]
		if isTrailerMarker(id) {
			return i
		}
		if !isDigit(id[2]) {
			continue
		}
		if _, ok := lookupCode(id); ok {
			return i
		}
	}
	return len(payload)
}

// trailerMarkerWithin returns the offset of the first REM, EQD or QNN marker
// that starts in payload[start:end], or -1.
func trailerMarkerWithin(payload string, start, end int) int {
	for i := start; i < end && i+3 <= len(payload); i++ {
		if isTrailerMarker(payload[i : i+3]) {
			return i
		}
	}
	return -1
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
