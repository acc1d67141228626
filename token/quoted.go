package token

import "bytes"

// quoted scans one of the four quoted string forms starting at offset i
// and returns the offset just past the closing delimiter. Multi-line
// forms are tried before single-line forms so that `'''` is not read
// as an empty literal string followed by a stray quote.
func (s *Scanner) quoted(i int) (int, error) {
	d, n := s.d, len(s.d)
	q := d[i]
	if i+2 < n && d[i+1] == q && d[i+2] == q {
		return s.multiline(i, q)
	}
	j := i + 1
	for j < n {
		c := d[j]
		switch c {
		case q:
			return j + 1, nil
		case '\n':
			return 0, NewScanErr(ErrUnterminated, s.posDoc.Pos(i))
		case '\\':
			if q == '"' && j+1 < n {
				j++
			}
		}
		j++
	}
	return 0, NewScanErr(ErrUnterminated, s.posDoc.Pos(i))
}

func (s *Scanner) multiline(i int, q byte) (int, error) {
	d, n := s.d, len(s.d)
	delim := []byte{q, q, q}
	j := i + 3
	for j < n {
		if d[j] == '\\' && q == '"' && j+1 < n {
			j += 2
			continue
		}
		if d[j] == '\n' {
			s.posDoc.nl(j)
		}
		if d[j] == q && bytes.HasPrefix(d[j:], delim) {
			return j + 3, nil
		}
		j++
	}
	return 0, NewScanErr(ErrUnterminated, s.posDoc.Pos(i))
}
