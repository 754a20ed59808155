package text

// CeilDiv computes ceil(a/b) for positive b.
func CeilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// SegmentLayout scans text, skipping CSI sequences, breaking a new wrapped
// segment at each embedded LF, and returns the total display width (summed
// across all segments) and the physical row count obtained by wrapping each
// segment independently at the given width. A line ending in LF after
// content contributes one trailing empty row, matching the source's
// append-time layout computation.
func SegmentLayout(line []byte, width int) (displayWidth int, physicalLines int) {
	segmentWidth := 0
	hasContent := false
	endsWithNewline := false
	sawAnySegment := false

	i := 0
	for i < len(line) {
		if n := SkipCSI(line, i); n > 0 {
			i += n
			continue
		}
		if line[i] == '\n' {
			displayWidth += segmentWidth
			if segmentWidth == 0 {
				physicalLines++
			} else {
				physicalLines += CeilDiv(segmentWidth, width)
			}
			sawAnySegment = true
			segmentWidth = 0
			hasContent = false
			endsWithNewline = true
			i++
			continue
		}
		r, size := decodeRune(line[i:])
		if size <= 0 {
			segmentWidth++
			hasContent = true
			endsWithNewline = false
			i++
			continue
		}
		segmentWidth += CharWidth(r)
		hasContent = true
		endsWithNewline = false
		i += size
	}

	// Finalize the last (or only) segment.
	displayWidth += segmentWidth
	if segmentWidth == 0 {
		if !sawAnySegment {
			physicalLines = 1
		}
		// else: the trailing empty segment after the final LF is handled
		// below by the ends-with-newline special case.
	} else {
		physicalLines += CeilDiv(segmentWidth, width)
	}

	if endsWithNewline && hasContentBeforeLastNewline(line) {
		physicalLines++
	}

	return displayWidth, physicalLines
}

// hasContentBeforeLastNewline reports whether line has any non-CSI content
// at all, used to decide whether a trailing LF should contribute an extra
// empty physical row (it should only do so for a non-empty line).
func hasContentBeforeLastNewline(line []byte) bool {
	i := 0
	for i < len(line) {
		if n := SkipCSI(line, i); n > 0 {
			i += n
			continue
		}
		if line[i] != '\n' {
			return true
		}
		i++
	}
	return false
}

// RecomputePhysicalLines recomputes the physical row count for a cached
// displayWidth at a new width, using pure arithmetic rather than re-scanning
// the original text. This intentionally does not account for embedded LF
// segmentation and is not equivalent to SegmentLayout's own sum of
// per-segment rows for multi-line entries — preserved to match the source's
// own width-change recomputation.
func RecomputePhysicalLines(displayWidth, width int) int {
	if displayWidth == 0 {
		return 1
	}
	return CeilDiv(displayWidth, width)
}
