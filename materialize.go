package ogpeek

import (
	"math"
	"strconv"
	"strings"
)

// Materialize builds the record described by bag, choosing the kind from
// og:type. It returns false when the bag has no og:type. Unknown og:type
// values produce a *Metadata carrying only the common fields.
func Materialize(bag Bag) (Record, bool) {
	typ, ok := bag.Type()
	if !ok {
		return nil, false
	}

	switch Kind(typ) {
	case KindSong:
		return NewSong(bag), true
	case KindAlbum:
		return NewAlbum(bag), true
	case KindPlaylist:
		return NewPlaylist(bag), true
	case KindRadioStation:
		return NewRadioStation(bag), true
	case KindMovie:
		return NewMovie(bag), true
	case KindEpisode:
		return NewEpisode(bag), true
	case KindTVShow:
		return NewTVShow(bag), true
	case KindOtherVideo:
		return NewOtherVideo(bag), true
	case KindArticle:
		return NewArticle(bag), true
	case KindBook:
		return NewBook(bag), true
	case KindProfile:
		return NewProfile(bag), true
	default:
		return NewMetadata(bag), true
	}
}

// MaterializeAll materializes each bag in order, dropping bags that yield
// no record.
func MaterializeAll(bags []Bag) []Record {
	records := make([]Record, 0, len(bags))
	for _, bag := range bags {
		if r, ok := Materialize(bag); ok {
			records = append(records, r)
		}
	}
	return records
}

// NewMetadata builds the common fields from bag regardless of og:type.
func NewMetadata(bag Bag) *Metadata {
	m := newMetadata(bag)
	return &m
}

func newMetadata(bag Bag) Metadata {
	m := Metadata{Raw: bag}
	m.Type, _ = bag.Type()
	m.Title, _ = bag.str("og:title")
	m.ImageURL, _ = bag.str("og:image")
	m.URL, _ = bag.str("og:url")

	m.AudioURL, _ = bag.str("og:audio")
	m.Description, _ = bag.str("og:description")
	if s, ok := bag.str("og:determiner"); ok {
		if d, ok := ParseDeterminer(s); ok {
			m.Determiner = &d
		}
	}
	m.Locale, _ = bag.str("og:locale")
	m.AlternateLocales = bag.strs("og:locale:alternate")
	m.SiteName, _ = bag.str("og:site_name")
	m.VideoURL, _ = bag.str("og:video")
	return m
}

// NewImage builds an image from the og:image properties of bag.
func NewImage(bag Bag) *Image {
	img := &Image{VisualMedia: VisualMedia{Media: Media{Metadata: newMetadata(bag)}}}
	if s, ok := bag.str("og:image:url", "og:image"); ok {
		img.MediaURL = s
	}
	img.SecureURL, _ = bag.str("og:image:secure_url")
	img.MIMEType, _ = bag.str("og:image:type")
	img.Width = decimal(bag, "og:image:width")
	img.Height = decimal(bag, "og:image:height")
	return img
}

func newMusic(bag Bag) Music {
	mu := Music{Media: Media{Metadata: newMetadata(bag)}}
	if s, ok := bag.str("og:audio:url", "og:audio"); ok {
		mu.MediaURL = s
	}
	mu.SecureURL, _ = bag.str("og:audio:secure_url")
	mu.MIMEType, _ = bag.str("og:audio:type")
	return mu
}

// NewSong builds a song from bag.
func NewSong(bag Bag) *Song {
	return &Song{
		Music:     newMusic(bag),
		Duration:  integer(bag, ns("music:duration")...),
		Albums:    albums(bag.bags(ns("music:album")...)),
		Disc:      integer(bag, ns("music:album:disc")...),
		Track:     integer(bag, ns("music:track")...),
		Musicians: profiles(bag.bags(ns("music:musician")...)),
	}
}

// NewAlbum builds an album from bag.
func NewAlbum(bag Bag) *Album {
	a := &Album{
		Music:       newMusic(bag),
		Disc:        integer(bag, ns("music:album:disc")...),
		Track:       integer(bag, ns("music:track")...),
		Musicians:   profiles(bag.bags(ns("music:musician")...)),
		ReleaseDate: datetime(bag, ns("music:release_date")...),
	}
	if nested, ok := bag.bag(ns("music:song")...); ok {
		a.Song = NewSong(nested)
	}
	return a
}

// NewPlaylist builds a playlist from bag.
func NewPlaylist(bag Bag) *Playlist {
	p := &Playlist{
		Music:    newMusic(bag),
		Disc:     integer(bag, ns("music:album:disc")...),
		Track:    integer(bag, ns("music:track")...),
		Creators: profiles(bag.bags(ns("music:creator")...)),
	}
	for _, nested := range bag.bags(ns("music:song")...) {
		p.Songs = append(p.Songs, NewSong(nested))
	}
	return p
}

// NewRadioStation builds a radio station from bag.
func NewRadioStation(bag Bag) *RadioStation {
	return &RadioStation{
		Music:    newMusic(bag),
		Creators: profiles(bag.bags(ns("music:creator")...)),
	}
}

func newVideo(bag Bag) Video {
	v := Video{VisualMedia: VisualMedia{Media: Media{Metadata: newMetadata(bag)}}}
	if s, ok := bag.str("og:video:url", "og:video"); ok {
		v.MediaURL = s
	}
	v.SecureURL, _ = bag.str("og:video:secure_url")
	v.MIMEType, _ = bag.str("og:video:type")
	v.Width = decimal(bag, "og:video:width")
	v.Height = decimal(bag, "og:video:height")

	v.Actors = profiles(bag.bags(ns("video:actor")...))
	v.Roles = bag.strs(ns("video:actor:role")...)
	v.Directors = profiles(bag.bags(ns("video:director")...))
	v.Writers = profiles(bag.bags(ns("video:writer")...))
	v.Duration = integer(bag, ns("video:duration")...)
	v.ReleaseDate = datetime(bag, ns("video:release_date")...)
	v.Tags = bag.strs(ns("video:tag")...)
	return v
}

// NewMovie builds a movie from bag.
func NewMovie(bag Bag) *Movie { return &Movie{Video: newVideo(bag)} }

// NewTVShow builds a TV show from bag.
func NewTVShow(bag Bag) *TVShow { return &TVShow{Video: newVideo(bag)} }

// NewOtherVideo builds a video of no particular kind from bag.
func NewOtherVideo(bag Bag) *OtherVideo { return &OtherVideo{Video: newVideo(bag)} }

// NewEpisode builds an episode from bag. The series is always a TV show.
func NewEpisode(bag Bag) *Episode {
	e := &Episode{Video: newVideo(bag)}
	if nested, ok := bag.bag(ns("video:series")...); ok {
		e.Series = NewTVShow(nested)
	}
	return e
}

// NewArticle builds an article from bag.
func NewArticle(bag Bag) *Article {
	a := &Article{
		Metadata:       newMetadata(bag),
		PublishedTime:  datetime(bag, ns("article:published_time")...),
		ModifiedTime:   datetime(bag, ns("article:modified_time")...),
		ExpirationTime: datetime(bag, ns("article:expiration_time")...),
		Authors:        profiles(bag.bags(ns("article:author")...)),
		Tags:           bag.strs(ns("article:tag")...),
	}
	a.Section, _ = bag.str(ns("article:section")...)
	return a
}

// NewBook builds a book from bag.
func NewBook(bag Bag) *Book {
	b := &Book{
		Metadata:    newMetadata(bag),
		Authors:     profiles(bag.bags(ns("book:author")...)),
		ReleaseDate: datetime(bag, ns("book:release_date")...),
		Tags:        bag.strs(ns("book:tag")...),
	}
	b.ISBN, _ = bag.str(ns("book:isbn")...)
	return b
}

// NewProfile builds a profile from bag.
func NewProfile(bag Bag) *Profile {
	p := &Profile{Metadata: newMetadata(bag)}
	p.FirstName, _ = bag.str(ns("profile:first_name")...)
	p.LastName, _ = bag.str(ns("profile:last_name")...)
	p.Username, _ = bag.str(ns("profile:username")...)
	p.Gender, _ = bag.str(ns("profile:gender")...)
	return p
}

func profiles(bags []Bag) []*Profile {
	if len(bags) == 0 {
		return nil
	}
	out := make([]*Profile, 0, len(bags))
	for _, b := range bags {
		out = append(out, NewProfile(b))
	}
	return out
}

func albums(bags []Bag) []*Album {
	if len(bags) == 0 {
		return nil
	}
	out := make([]*Album, 0, len(bags))
	for _, b := range bags {
		out = append(out, NewAlbum(b))
	}
	return out
}

// integer parses a decimal integer, leaving the field unset when malformed.
func integer(bag Bag, keys ...string) *int {
	s, ok := bag.str(keys...)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// decimal parses a finite decimal number, leaving the field unset when
// malformed.
func decimal(bag Bag, keys ...string) *float64 {
	s, ok := bag.str(keys...)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func datetime(bag Bag, keys ...string) *DateTime {
	s, ok := bag.str(keys...)
	if !ok {
		return nil
	}
	dt, ok := ParseDateTime(strings.TrimSpace(s))
	if !ok {
		return nil
	}
	return &dt
}
