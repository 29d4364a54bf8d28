// Package tag provides a barebones HTML tag scanner. It reports each tag it
// encounters with its attributes and knows nothing about what the tags mean.
//
// The scanner does not build a DOM, decode entities or validate document
// structure (it does not check that <meta> appears inside <head>). Comments
// end at the first '>' after "<!", so comments containing '>' are not
// supported.
//
// A backslash escapes the next character both inside tags and in text, so
// "\>" in text neither closes nor opens anything. Besides double quotes, a
// single quote at the start of an attribute value also quotes it:
// content='a b' yields "a b" rather than "'a" and a stray "b'" attribute.
package tag

import (
	"strings"
	"unicode"
)

// Func receives a tag name and its attributes. The attribute map is owned by
// the callee.
type Func func(name string, attrs map[string]string)

type state int

const (
	stateStart state = iota
	stateComment
	stateTagName
	stateAttrName
	stateAttrValue
)

// Scanner reports the tags found in HTML text.
//
// A Scanner holds per-document state and is not safe for concurrent use.
type Scanner struct {
	state state
	depth int // open tag markers

	tok     strings.Builder
	name    string
	attrs   map[string]string
	key     string // attribute name awaiting its value
	keyDone bool   // key was ended by whitespace, not '='
	quote   rune   // active quote character, 0 outside quotes
	quoted  bool   // the current attribute value was quoted
	escaped bool   // the previous character was an unconsumed backslash
	closing bool   // a '/' was seen; accumulate nothing until '>'
}

// NewScanner returns a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan is a convenience for scanning text with a fresh Scanner.
func Scan(text string, onTag Func) bool {
	return NewScanner().Scan(text, onTag)
}

// Scan reads text and calls onTag for every tag with a non-empty name, in
// document order. Closing tags (</p>) and tags whose name runs straight into
// a slash (<br/>) have no name and are not reported; a tag whose name was
// complete before the slash (<meta content="x" />) is.
//
// Scan returns false if onTag is nil, if a '>' closes a tag that was never
// opened, or if the text ends inside a tag or comment. Tags reported before
// a failure stay reported.
func (s *Scanner) Scan(text string, onTag Func) bool {
	if onTag == nil {
		return false
	}
	s.state = stateStart
	s.depth = 0
	s.resetTag()

	runes := []rune(text)
	for i, r := range runes {
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		if !s.step(r, next, onTag) {
			return false
		}
	}
	return s.depth == 0
}

func (s *Scanner) step(r, next rune, onTag Func) bool {
	switch s.state {
	case stateStart:
		if s.escaped {
			s.escaped = false
			return true
		}
		switch r {
		case '\\':
			s.escaped = true
		case '<':
			s.open(next)
		case '>':
			return s.pop()
		}
		return true
	case stateComment:
		if r == '>' {
			s.state = stateStart
			return s.pop()
		}
		return true
	}

	switch {
	case s.escaped:
		s.escaped = false
		s.accumulate(r)
	case r == '\\':
		s.escaped = true
		return true
	case s.quote != 0:
		if r == s.quote {
			s.quote = 0
		} else {
			s.accumulate(r)
		}
	case r == '"' || (r == '\'' && s.state == stateAttrValue && s.tok.Len() == 0 && !s.quoted):
		s.quote = r
		if s.state == stateAttrValue {
			s.quoted = true
		}
	case r == '>':
		return s.finish(onTag)
	case r == '<':
		s.open(next)
		return true
	case unicode.IsSpace(r) || r == '=':
		s.terminate(r)
	default:
		s.accumulate(r)
	}

	if s.quote == 0 && next == '/' && !s.closing {
		s.closing = true
		if s.state == stateTagName {
			s.tok.Reset()
		}
	}
	return true
}

// open starts a new tag or comment. Any tag in progress is abandoned but its
// marker stays open.
func (s *Scanner) open(next rune) {
	s.resetTag()
	s.depth++
	if next == '!' {
		s.state = stateComment
		return
	}
	s.state = stateTagName
	if next == '/' {
		s.closing = true
	}
}

func (s *Scanner) pop() bool {
	if s.depth == 0 {
		return false
	}
	s.depth--
	return true
}

func (s *Scanner) accumulate(r rune) {
	if s.closing {
		return
	}
	if s.state == stateAttrName && s.keyDone {
		s.store(s.key, "")
		s.key, s.keyDone = "", false
	}
	s.tok.WriteRune(r)
}

// terminate ends the token in progress on whitespace or '='.
func (s *Scanner) terminate(r rune) {
	switch s.state {
	case stateTagName:
		if s.tok.Len() > 0 {
			s.name = s.take()
			s.state = stateAttrName
		}
	case stateAttrName:
		if r == '=' {
			if s.tok.Len() > 0 {
				s.key = s.take()
			}
			s.keyDone = false
			s.quoted = false
			s.state = stateAttrValue
		} else if s.tok.Len() > 0 {
			s.key = s.take()
			s.keyDone = true
		}
	case stateAttrValue:
		if s.tok.Len() > 0 || s.quoted {
			s.store(s.key, s.take())
			s.key, s.quoted = "", false
			s.state = stateAttrName
		}
	}
}

// finish completes the current tag on '>'.
func (s *Scanner) finish(onTag Func) bool {
	switch s.state {
	case stateTagName:
		s.name = s.take()
	case stateAttrName:
		if s.keyDone {
			s.store(s.key, "")
		}
		if s.tok.Len() > 0 {
			s.store(s.take(), "")
		}
	case stateAttrValue:
		s.store(s.key, s.take())
	}

	name, attrs := s.name, s.attrs
	s.state = stateStart
	s.resetTag()

	if !s.pop() {
		return false
	}
	if name != "" {
		onTag(name, attrs)
	}
	return true
}

func (s *Scanner) store(key, value string) {
	if key != "" {
		s.attrs[key] = value
	}
}

func (s *Scanner) take() string {
	v := s.tok.String()
	s.tok.Reset()
	return v
}

func (s *Scanner) resetTag() {
	s.tok.Reset()
	s.name = ""
	s.attrs = make(map[string]string)
	s.key = ""
	s.keyDone = false
	s.quote = 0
	s.quoted = false
	s.escaped = false
	s.closing = false
}
