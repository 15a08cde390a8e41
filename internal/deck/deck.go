// Package deck parses a markdown document into an ordered deck of slides.
//
// Sections are delimited by a horizontal rule on its own line (three or more
// hyphens, optionally padded with whitespace). A section may embed speaker
// notes behind a "?>" marker; the notes run to the first blank line or to the
// end of the section and are stripped from the slide body.
package deck

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultTitle is used when the first slide carries no level-1 heading.
const DefaultTitle = "Presentation"

// Slide is one unit of displayed content, cut from one section of the
// source document. Notes holds the speaker notes extracted from a ?>
// marker; empty means the section had none.
type Slide struct {
	Content string
	Notes   string
}

// Document is a fully parsed deck: a title plus slides in source order.
// A Document always contains at least one slide.
type Document struct {
	Title  string
	Slides []Slide
}

var (
	separatorRe = regexp.MustCompile(`\n\s*-{3,}\s*\n`)
	titleRe     = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	notesRe     = regexp.MustCompile(`(?s)\?>\s*(.*?)(\n\n|\z)`)
)

// Parse splits raw into slides. It never fails: a document without
// separators yields a single slide, a missing heading falls back to
// DefaultTitle, and an unterminated notes marker captures to the end of
// its section.
func Parse(raw string) Document {
	sections := separatorRe.Split(raw, -1)

	// The title comes from the first level-1 heading of the first section
	// only. The heading stays in the slide body.
	title := DefaultTitle
	if m := titleRe.FindStringSubmatch(sections[0]); m != nil {
		title = strings.TrimSpace(m[1])
	}

	slides := make([]Slide, 0, len(sections))
	for _, section := range sections {
		body, notes := splitNotes(section)
		slides = append(slides, Slide{
			Content: strings.TrimSpace(body),
			Notes:   notes,
		})
	}

	return Document{Title: title, Slides: slides}
}

// splitNotes removes the first ?> marker and its capture from section.
// The terminating blank line stays in the body so the paragraphs around
// the marker remain separated.
func splitNotes(section string) (body, notes string) {
	m := notesRe.FindStringSubmatchIndex(section)
	if m == nil {
		return section, ""
	}
	notes = strings.TrimSpace(section[m[2]:m[3]])
	body = section[:m[0]] + section[m[4]:]
	return body, notes
}

// Load reads the file at path and parses it into a Document.
func Load(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading deck %q: %w", path, err)
	}
	return Parse(string(raw)), nil
}
