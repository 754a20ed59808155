package text

// CountNewlines counts the number of LF bytes in b, used to pre-size output
// buffers before CRLF conversion.
func CountNewlines(b []byte) int {
	n := 0
	for _, c := range b {
		if c == '\n' {
			n++
		}
	}
	return n
}

// CopyWithCRLF appends src to dst, converting each embedded LF to CRLF.
// Returns the extended slice.
func CopyWithCRLF(dst []byte, src []byte) []byte {
	for _, c := range src {
		if c == '\n' {
			dst = append(dst, '\r', '\n')
			continue
		}
		dst = append(dst, c)
	}
	return dst
}
