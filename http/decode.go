package http

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/ogpeek"
	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// Decode converts an HTML document to UTF-8. The encoding comes from a byte
// order mark, the charset parameter of contentType, or a <meta charset>
// declaration. Undeclared documents that are not valid UTF-8 are run
// through a statistical detector.
//
// Decode rejects binary content (images, archives, PDFs) with EINVALID.
func Decode(data []byte, contentType string) (string, error) {
	if mt := mimetype.Detect(data); !isText(mt) {
		return "", ogpeek.Errorf(ogpeek.EINVALID, "not an HTML document (%s)", mt.String())
	}

	enc, name, certain := charset.DetermineEncoding(data, contentType)
	if !certain && name == "windows-1252" && !declaresCharset(data) {
		if e, n := detectCharset(data); e != nil {
			enc, name = e, n
		}
	}
	if name == "utf-8" {
		return string(data), nil
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

// detectCharset guesses the encoding of undeclared text. It returns a nil
// encoding when the guess is not a known label.
func detectCharset(data []byte) (encoding.Encoding, string) {
	res, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || res == nil {
		return nil, ""
	}
	return charset.Lookup(res.Charset)
}

// declaresCharset reports whether the document head mentions a charset.
// windows-1252 is also the fallback when nothing is declared.
func declaresCharset(data []byte) bool {
	head := data[:min(len(data), 1024)]
	return bytes.Contains(bytes.ToLower(head), []byte("charset"))
}

// isText reports whether mt is a text type. HTML, XML and plain text all
// descend from text/plain.
func isText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
