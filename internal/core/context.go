package core

import "strings"

// Context carries the raw content of a collected file together with the
// path it came from. Parsers consume a Context; how the content was
// obtained (local read, archive, remote collection) is the collector's
// business, not theirs.
type Context struct {
	// Path is the canonical location of the file on the host, e.g.
	// "/etc/autofs.conf".
	Path string
	// Content is the raw text of the file.
	Content string
}

// Lines splits the content into lines. Both LF and CRLF endings are
// accepted; the terminating newline does not produce a trailing empty
// line by itself, but intermediate empty lines are preserved.
func (c Context) Lines() []string {
	content := strings.ReplaceAll(c.Content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
