package textfmt

import (
	"regexp"
	"strings"
)

// Format normalizes a raw answer from the remote service into
// display-ready markdown-like text: consistent "- " bullets, bolded
// inline labels and headers, numbered items on their own paragraph,
// and single blank-line spacing.
//
// The transform is a fixed, ordered pipeline of rewrite passes; later
// passes assume the normal form produced by earlier ones, so the order
// is part of the contract. Format is total over all string inputs,
// returns empty input unchanged, and is idempotent on its own output.
func Format(raw string) string {
	if raw == "" {
		return raw
	}
	out := raw
	for _, p := range passes {
		out = p.apply(out)
	}
	return out
}

// pass is a single pure rewrite step.
type pass struct {
	name  string
	apply func(string) string
}

var passes = []pass{
	{"collapse-spaces", collapseSpaces},
	{"repair-split-hyphens", repairSplitHyphens},
	{"promote-bullet-labels", promoteBulletLabels},
	{"split-inline-bullets", splitInlineBullets},
	{"normalize-bullet-markers", normalizeBulletMarkers},
	{"promote-headers", promoteHeaders},
	{"isolate-numbered-items", isolateNumberedItems},
	{"collapse-blank-lines", collapseBlankLines},
	{"break-after-headers", breakAfterHeaders},
	{"separate-bullet-blocks", separateBulletBlocks},
	{"tidy", tidy},
}

var (
	reHorizontalWS = regexp.MustCompile(`[^\S\n]+`)
	reEdgeSpace    = regexp.MustCompile(` ?\n ?`)

	// A bullet glyph wedged inside what should be a single hyphenated
	// phrase: mid-sentence with a lowercase continuation, or split
	// across a rewrapped line break.
	reGlyphInPhrase    = regexp.MustCompile(`([A-Za-z]) • ([a-z])`)
	reGlyphAtLineEnd   = regexp.MustCompile(`([A-Za-z]) ?•\n([a-z])`)
	reGlyphGluedOnLine = regexp.MustCompile(`([A-Za-z])\n•([A-Za-z])`)

	reLabelThenBullet = regexp.MustCompile(`(^|\n)([A-Za-z][A-Za-z ]*): [-•] `)
	reBulletWithLabel = regexp.MustCompile(`(^|\n)[-•] ?([A-Za-z][A-Za-z ]*): `)

	reInlineBullet = regexp.MustCompile(` [-•] `)

	reGlyphLineStart = regexp.MustCompile(`(^|\n)[•‣▪] ?`)
	reGluedDash      = regexp.MustCompile(`(^|\n)-([A-Za-z])`)

	reHeaderLabel = regexp.MustCompile(`^[A-Za-z][A-Za-z ]*:`)

	reNumberedItem = regexp.MustCompile(`\s+(\d+\. )`)

	reBlankRun = regexp.MustCompile(`\n{3,}`)

	reBoldHeaderInline = regexp.MustCompile(`(^|\n)(\*\*[A-Za-z][A-Za-z ]*:\*\*) `)
)

// collapseSpaces squashes runs of horizontal whitespace to a single
// space and trims the string ends. Line breaks are preserved; they are
// a distinct signal for the later passes.
func collapseSpaces(s string) string {
	s = reHorizontalWS.ReplaceAllString(s, " ")
	s = reEdgeSpace.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// repairSplitHyphens rejoins hyphenated phrases that an upstream
// rewrap broke with a bullet glyph, e.g. "work • life" -> "work-life".
func repairSplitHyphens(s string) string {
	s = reGlyphInPhrase.ReplaceAllString(s, "$1-$2")
	s = reGlyphAtLineEnd.ReplaceAllString(s, "$1-$2")
	s = reGlyphGluedOnLine.ReplaceAllString(s, "$1-$2")
	return s
}

// promoteBulletLabels turns a leading "Label:" segment on a bulleted
// line into a bolded inline label with a normalized bullet, covering
// both "Label: - rest" and "- Label: rest" shapes at string start or
// after a newline.
func promoteBulletLabels(s string) string {
	s = reLabelThenBullet.ReplaceAllString(s, "$1- **$2:** ")
	s = reBulletWithLabel.ReplaceAllString(s, "$1- **$2:** ")
	return s
}

// splitInlineBullets moves bare bullet markers that appear mid-line
// onto their own "- " line, so each item runs to the next bullet,
// blank line, or end of string.
func splitInlineBullets(s string) string {
	return reInlineBullet.ReplaceAllString(s, "\n- ")
}

// normalizeBulletMarkers collapses remaining stray markers at line
// starts to the single canonical "- " form.
func normalizeBulletMarkers(s string) string {
	s = reGlyphLineStart.ReplaceAllString(s, "$1- ")
	s = reGluedDash.ReplaceAllString(s, "$1- $2")
	return s
}

// promoteHeaders bolds a remaining line-leading "Header Text:" label
// (letters and spaces only, not already bolded, not a bullet). A bare
// header line gains a blank line after it; a header with trailing
// content is split later by breakAfterHeaders.
func promoteHeaders(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isBullet(line) {
			out = append(out, line)
			continue
		}
		head := reHeaderLabel.FindString(line)
		if head == "" {
			out = append(out, line)
			continue
		}
		rest := line[len(head):]
		if rest == "" {
			out = append(out, "**"+head+"**", "")
			continue
		}
		out = append(out, "**"+head+"**"+rest)
	}
	return strings.Join(out, "\n")
}

// isolateNumberedItems forces each "1.", "2.", ... marker onto its own
// paragraph.
func isolateNumberedItems(s string) string {
	return reNumberedItem.ReplaceAllString(s, "\n\n$1")
}

// collapseBlankLines squashes three or more consecutive line breaks to
// exactly two (one blank line).
func collapseBlankLines(s string) string {
	return reBlankRun.ReplaceAllString(s, "\n\n")
}

// breakAfterHeaders moves content that trails a bolded header onto its
// own line. Bulleted lines keep their labels inline.
func breakAfterHeaders(s string) string {
	return reBoldHeaderInline.ReplaceAllString(s, "$1$2\n")
}

// separateBulletBlocks ensures exactly one blank line between a bullet
// block and the non-bullet text above it.
func separateBulletBlocks(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if isBullet(line) && i > 0 && lines[i-1] != "" && !isBullet(lines[i-1]) {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// tidy drops blank lines wedged between consecutive bullets, so a
// block reads as one list, and trims the string edges.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if line == "" && i > 0 && i < len(lines)-1 && isBullet(lines[i-1]) && isBullet(lines[i+1]) {
			continue
		}
		out = append(out, line)
	}
	s = strings.Join(out, "\n")
	s = strings.TrimPrefix(s, "\n")
	return strings.TrimSpace(s)
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "- ")
}
