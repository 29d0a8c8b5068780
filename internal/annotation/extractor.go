package annotation

import (
	"regexp"
	"strings"
)

// blockPattern matches /** ... */ blocks. The non-greedy group keeps
// adjacent blocks in the same source unit separate.
var blockPattern = regexp.MustCompile(`(?s)/\*\*(.*?)\*/`)

// Extract scans raw source text for doc-comment blocks and parses each one
// into an Annotation. Source text without any block yields an empty result;
// malformed content inside a single block never aborts the scan.
func Extract(src string) []Annotation {
	matches := blockPattern.FindAllStringSubmatch(src, -1)
	if len(matches) == 0 {
		return nil
	}

	anns := make([]Annotation, 0, len(matches))
	for _, m := range matches {
		anns = append(anns, parseBlock(m[1]))
	}
	return anns
}

// parseBlock splits one delimiter-stripped block into description and tags.
// The first paragraph before any tag line forms the description; every
// other line is appended to the body of the most recent tag.
func parseBlock(raw string) Annotation {
	var ann Annotation
	var desc []string
	var current *Tag

	for _, line := range strings.Split(raw, "\n") {
		line = stripLeader(line)

		if title, rest, ok := splitTagLine(line); ok {
			ann.Tags = append(ann.Tags, Tag{Title: title, Body: rest})
			current = &ann.Tags[len(ann.Tags)-1]
			continue
		}
		if current != nil {
			if current.Body == "" {
				current.Body = line
			} else {
				current.Body += "\n" + line
			}
			continue
		}
		desc = append(desc, line)
	}

	ann.Description = firstParagraph(desc)
	return ann
}

// firstParagraph joins leading lines up to the first blank line that follows
// non-blank content.
func firstParagraph(lines []string) string {
	var para []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		para = append(para, line)
	}
	return strings.TrimSpace(strings.Join(para, "\n"))
}

// stripLeader removes the conventional " * " prefix from one line of a block
// while preserving the remaining indentation, which is significant for
// YAML-formatted tag bodies.
func stripLeader(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "*") {
		trimmed = strings.TrimPrefix(trimmed, "*")
		trimmed = strings.TrimPrefix(trimmed, " ")
	}
	return trimmed
}

// splitTagLine reports whether the line opens a new @-tag and, if so,
// returns the tag title and the remainder of the line.
func splitTagLine(line string) (title, rest string, ok bool) {
	s := strings.TrimSpace(line)
	if len(s) < 2 || s[0] != '@' {
		return "", "", false
	}
	s = s[1:]
	if idx := strings.IndexAny(s, " \t"); idx != -1 {
		return s[:idx], strings.TrimSpace(s[idx+1:]), true
	}
	return s, "", true
}
