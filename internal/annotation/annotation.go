// Package annotation extracts structured doc-comment blocks from raw source
// text. A block is delimited by /** and */ and contains a leading free-text
// description followed by @-tag sections, each of which may span multiple
// lines.
package annotation

// Tag is one @label section of a doc-comment block. Body holds everything
// after the label up to the next tag line or the end of the block.
type Tag struct {
	Title string
	Body  string
}

// Annotation is one parsed doc-comment block.
type Annotation struct {
	Description string
	Tags        []Tag
}
