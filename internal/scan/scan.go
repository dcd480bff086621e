// Package scan implements the reader's text pipeline as pure, separately
// testable stages: comment and whitespace stripping, block splitting, and
// parameter extraction. Stages operate on whole texts, in a fixed order;
// the caller (the root package) owns type conversion.
package scan

import (
	"regexp"
	"sort"
	"strings"
)

var (
	leftCommentRe  = regexp.MustCompile(`(?m)^[ \t]*!.*\n?`)
	rightCommentRe = regexp.MustCompile(`(?m)[ \t]*!.*$`)
	emptyLineRe    = regexp.MustCompile(`(?m)^[ \t]*\r?\n`)
	trailingWSRe   = regexp.MustCompile(`(?m)[ \t]+$`)
	blockRe        = regexp.MustCompile(`(?s)&(\w+)\s*(.*?)\s+/`)
	singleRe       = regexp.MustCompile(`(?m)^[ \t]*(\w+)[ \t]*=[ \t]*(.*[^,])$`)
	multiRe        = regexp.MustCompile(`(\w+)[ \t]*=[ \t]*((?:.*,\n)+.*[^,]\n?)`)
)

// Block is one `&name ... /` section located by SplitBlocks.
type Block struct {
	Name string
	Body string
}

// Assignment is one extracted `name = value` pair. Multi-line continuations
// keep one fragment per source line, leading/trailing whitespace stripped.
type Assignment struct {
	Name      string
	Fragments []string
}

// StripComments removes whole-line comments, then trailing `! ...`
// fragments.
func StripComments(text string) string {
	text = leftCommentRe.ReplaceAllString(text, "")
	return rightCommentRe.ReplaceAllString(text, "")
}

// StripEmptyLines removes blank and whitespace-only lines.
func StripEmptyLines(text string) string {
	return emptyLineRe.ReplaceAllString(text, "")
}

// StripTrailingWhitespace removes trailing spaces and tabs per line. Leading
// whitespace is kept; values strip it later.
func StripTrailingWhitespace(text string) string {
	return trailingWSRe.ReplaceAllString(text, "")
}

// SplitBlocks finds every `&name ... /` section. Text outside any section is
// discarded, and a block missing its closing slash is silently dropped.
func SplitBlocks(text string) []Block {
	matches := blockRe.FindAllStringSubmatch(text, -1)
	out := make([]Block, 0, len(matches))
	for _, m := range matches {
		out = append(out, Block{Name: m[1], Body: m[2]})
	}
	return out
}

// ExtractParams pulls single-line and multi-line assignments out of a block
// body, preserving source order. A single-line value runs to end of line and
// must not end in a comma; a multi-line value spans lines that each end in a
// comma except the last.
func ExtractParams(body string) []Assignment {
	type located struct {
		start int
		asn   Assignment
	}
	var found []located

	multiSpans := multiRe.FindAllStringSubmatchIndex(body, -1)
	for _, span := range multiSpans {
		name := body[span[2]:span[3]]
		raw := body[span[4]:span[5]]
		lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
		frags := make([]string, 0, len(lines))
		for _, line := range lines {
			frags = append(frags, strings.TrimSpace(line))
		}
		found = append(found, located{start: span[0], asn: Assignment{Name: name, Fragments: frags}})
	}

	for _, span := range singleRe.FindAllStringSubmatchIndex(body, -1) {
		if withinAny(span[0], multiSpans) {
			continue
		}
		name := body[span[2]:span[3]]
		value := strings.TrimSpace(body[span[4]:span[5]])
		found = append(found, located{start: span[0], asn: Assignment{Name: name, Fragments: []string{value}}})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].start < found[j].start })
	out := make([]Assignment, len(found))
	for i, f := range found {
		out[i] = f.asn
	}
	return out
}

func withinAny(pos int, spans [][]int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}
