package ogpeek

import (
	"strconv"
	"strings"
)

// FormatRecord renders a record as an indented field listing for display.
// Unset optional fields are omitted; nested records are rendered inline.
func FormatRecord(r Record) string {
	var w fieldWriter
	w.record(r)
	return strings.TrimSuffix(w.b.String(), "\n")
}

// FormatRecords formats records separated by blank lines.
func FormatRecords(records []Record) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, FormatRecord(r))
	}
	return strings.Join(parts, "\n\n")
}

type fieldWriter struct {
	b     strings.Builder
	depth int
}

func (w *fieldWriter) line(s string) {
	w.b.WriteString(strings.Repeat("\t", w.depth))
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *fieldWriter) str(name, value string) {
	if value != "" {
		w.line(name + ": " + value)
	}
}

func (w *fieldWriter) required(name, value string) {
	w.line(name + ": " + value)
}

func (w *fieldWriter) list(name string, values []string) {
	if len(values) > 0 {
		w.line(name + ": " + strings.Join(values, ", "))
	}
}

func (w *fieldWriter) num(name string, v *int) {
	if v != nil {
		w.line(name + ": " + strconv.Itoa(*v))
	}
}

func (w *fieldWriter) dec(name string, v *float64) {
	if v != nil {
		w.line(name + ": " + strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func (w *fieldWriter) date(name string, v *DateTime) {
	if v != nil {
		w.line(name + ": " + v.String())
	}
}

func (w *fieldWriter) nested(name string, r Record) {
	w.line(name + ":")
	w.depth++
	w.record(r)
	w.depth--
}

func (w *fieldWriter) record(r Record) {
	w.line(string(r.Kind()) + " {")
	w.depth++
	w.metadata(r.Common())

	switch r := r.(type) {
	case *Image:
		w.visual(&r.VisualMedia)
	case *Song:
		w.media(&r.Media)
		w.num("duration", r.Duration)
		for _, a := range r.Albums {
			w.nested("album", a)
		}
		w.num("disc", r.Disc)
		w.num("track", r.Track)
		for _, p := range r.Musicians {
			w.nested("musician", p)
		}
	case *Album:
		w.media(&r.Media)
		if r.Song != nil {
			w.nested("song", r.Song)
		}
		w.num("disc", r.Disc)
		w.num("track", r.Track)
		for _, p := range r.Musicians {
			w.nested("musician", p)
		}
		w.date("releaseDate", r.ReleaseDate)
	case *Playlist:
		w.media(&r.Media)
		for _, s := range r.Songs {
			w.nested("song", s)
		}
		w.num("disc", r.Disc)
		w.num("track", r.Track)
		for _, p := range r.Creators {
			w.nested("creator", p)
		}
	case *RadioStation:
		w.media(&r.Media)
		for _, p := range r.Creators {
			w.nested("creator", p)
		}
	case *Movie:
		w.video(&r.Video)
	case *TVShow:
		w.video(&r.Video)
	case *OtherVideo:
		w.video(&r.Video)
	case *Episode:
		w.video(&r.Video)
		if r.Series != nil {
			w.nested("series", r.Series)
		}
	case *Article:
		w.date("publishedTime", r.PublishedTime)
		w.date("modifiedTime", r.ModifiedTime)
		w.date("expirationTime", r.ExpirationTime)
		for _, p := range r.Authors {
			w.nested("author", p)
		}
		w.str("section", r.Section)
		w.list("tags", r.Tags)
	case *Book:
		for _, p := range r.Authors {
			w.nested("author", p)
		}
		w.str("isbn", r.ISBN)
		w.date("releaseDate", r.ReleaseDate)
		w.list("tags", r.Tags)
	case *Profile:
		w.str("firstName", r.FirstName)
		w.str("lastName", r.LastName)
		w.str("username", r.Username)
		w.str("gender", r.Gender)
	}

	w.depth--
	w.line("}")
}

func (w *fieldWriter) metadata(m *Metadata) {
	w.required("title", m.Title)
	w.required("imageUrl", m.ImageURL)
	w.required("url", m.URL)
	w.str("audioUrl", m.AudioURL)
	w.str("description", m.Description)
	if m.Determiner != nil {
		w.line("determiner: " + strconv.Quote(string(*m.Determiner)))
	}
	w.str("locale", m.Locale)
	w.list("alternateLocales", m.AlternateLocales)
	w.str("siteName", m.SiteName)
	w.str("videoUrl", m.VideoURL)
}

func (w *fieldWriter) media(m *Media) {
	w.str("mediaUrl", m.MediaURL)
	w.str("secureUrl", m.SecureURL)
	w.str("mimeType", m.MIMEType)
}

func (w *fieldWriter) visual(v *VisualMedia) {
	w.media(&v.Media)
	w.dec("width", v.Width)
	w.dec("height", v.Height)
}

func (w *fieldWriter) video(v *Video) {
	w.visual(&v.VisualMedia)
	for _, p := range v.Actors {
		w.nested("actor", p)
	}
	w.list("roles", v.Roles)
	for _, p := range v.Directors {
		w.nested("director", p)
	}
	for _, p := range v.Writers {
		w.nested("writer", p)
	}
	w.num("duration", v.Duration)
	w.date("releaseDate", v.ReleaseDate)
	w.list("tags", v.Tags)
}
