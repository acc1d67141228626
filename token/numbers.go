package token

// number scans an integer, float, or RFC3339 timestamp token starting
// at the current offset. Base prefixes commit to an integer token whose
// digit run is validated later at grammar-reduction time, so that a
// wrong digit for the declared base surfaces as a semantic error, not
// as two adjacent tokens.
func (s *Scanner) number(pos *Pos) (*Token, error) {
	d, n := s.d, len(s.d)
	i := s.i
	signed := false
	if d[i] == '+' || d[i] == '-' {
		signed = true
		i++
	}
	if i >= n || !asciiDigit(d[i]) {
		return nil, NewScanErr(ErrNumber, pos)
	}

	if !signed {
		if j, ok := s.dateTime(i); ok {
			tok := &Token{Type: TDateTime, Pos: pos, Bytes: d[s.i:j]}
			s.i = j
			return tok, nil
		}
	}
	// a signed base prefix still commits to one token so that the
	// reduction can reject the sign as a semantic error
	if d[i] == '0' && i+1 < n {
		switch d[i+1] {
		case 'b', 'o', 'x':
			j := i + 2
			for j < n && (asciiDigit(d[j]) || isAlpha(d[j]) || d[j] == '_') {
				j++
			}
			tok := &Token{Type: TInteger, Pos: pos, Bytes: d[s.i:j]}
			s.i = j
			return tok, nil
		}
	}

	j := digitRun(d, i)
	isFloat := false
	if j < n && d[j] == '.' && j+1 < n && (asciiDigit(d[j+1]) || d[j+1] == '_') {
		isFloat = true
		j = digitRun(d, j+1)
	}
	if e := expRun(d, j); e > j {
		isFloat = true
		j = e
	}
	typ := TInteger
	if isFloat {
		typ = TFloat
	}
	tok := &Token{Type: typ, Pos: pos, Bytes: d[s.i:j]}
	s.i = j
	return tok, nil
}

// dateTime reports whether an RFC3339 timestamp starts at i, returning
// the end offset of its character run. Any digit start shaped like
// `dddd-` commits to a timestamp token; the run is validated when the
// grammar reduces it.
func (s *Scanner) dateTime(i int) (int, bool) {
	d, n := s.d, len(s.d)
	if i+4 >= n || d[i+4] != '-' {
		return 0, false
	}
	for k := i; k < i+4; k++ {
		if !asciiDigit(d[k]) {
			return 0, false
		}
	}
	j := i
	for j < n && dateTimeChar(d[j]) {
		j++
	}
	return j, true
}

func dateTimeChar(c byte) bool {
	switch c {
	case '-', ':', '.', '+', 'T', 'Z', 't', 'z':
		return true
	}
	return asciiDigit(c)
}

func digitRun(d []byte, i int) int {
	for i < len(d) && (asciiDigit(d[i]) || d[i] == '_') {
		i++
	}
	return i
}

func expRun(d []byte, i int) int {
	n := len(d)
	if i >= n || (d[i] != 'e' && d[i] != 'E') {
		return i
	}
	j := i + 1
	if j < n && (d[j] == '+' || d[j] == '-') {
		j++
	}
	if j >= n || !(asciiDigit(d[j]) || d[j] == '_') {
		return i
	}
	return digitRun(d, j)
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
