package ogpeek

// Kind identifies the variant of a Record.
type Kind string

// Record kinds. Dispatched kinds use their og:type value.
const (
	KindGeneric      Kind = "generic"
	KindImage        Kind = "image"
	KindSong         Kind = "music.song"
	KindAlbum        Kind = "music.album"
	KindPlaylist     Kind = "music.playlist"
	KindRadioStation Kind = "music.radio_station"
	KindMovie        Kind = "video.movie"
	KindEpisode      Kind = "video.episode"
	KindTVShow       Kind = "video.tv_show"
	KindOtherVideo   Kind = "video.other"
	KindArticle      Kind = "article"
	KindBook         Kind = "book"
	KindProfile      Kind = "profile"
)

// Record is one typed Open Graph object. The set of implementations is
// closed: *Metadata, *Image, *Song, *Album, *Playlist, *RadioStation, *Movie,
// *Episode, *TVShow, *OtherVideo, *Article, *Book and *Profile.
//
// Records are built once from a Bag and never modified afterwards.
type Record interface {
	// Kind reports the variant.
	Kind() Kind

	// Common returns the fields shared by every variant.
	Common() *Metadata
}

// Metadata holds the fields common to every kind of object. On its own it is
// the record for og:type values without a dedicated kind (e.g. "website").
type Metadata struct {
	// Type is the raw og:type value, empty for directly built records.
	Type string `json:"type,omitempty"`

	// Title, ImageURL and URL are required by Open Graph but default to ""
	// when missing.
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	URL      string `json:"url"`

	AudioURL         string      `json:"audioUrl,omitempty"`
	Description      string      `json:"description,omitempty"`
	Determiner       *Determiner `json:"determiner,omitempty"`
	Locale           string      `json:"locale,omitempty"`
	AlternateLocales []string    `json:"alternateLocales,omitempty"`
	SiteName         string      `json:"siteName,omitempty"`
	VideoURL         string      `json:"videoUrl,omitempty"`

	// Raw is the bag the record was built from.
	Raw Bag `json:"-"`
}

// Kind returns KindGeneric. The og:type value is kept in Type.
func (m *Metadata) Kind() Kind { return KindGeneric }

// Common returns m. Variants inherit it through embedding.
func (m *Metadata) Common() *Metadata { return m }

// Media extends Metadata for any kind of multimedia. MediaURL locates the
// media file itself; the embedded URL stays the canonical page URL.
type Media struct {
	Metadata
	MediaURL  string `json:"mediaUrl,omitempty"`
	SecureURL string `json:"secureUrl,omitempty"`
	MIMEType  string `json:"mimeType,omitempty"`
}

// VisualMedia extends Media for visually rendered media.
type VisualMedia struct {
	Media
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// Image describes an og:image. MediaURL is the image location.
type Image struct {
	VisualMedia
}

// Kind returns KindImage.
func (i *Image) Kind() Kind { return KindImage }

// Music is the base of audio records. MediaURL is taken from og:audio:url,
// then og:audio.
type Music struct {
	Media
}

// Song is a song on an album or in a playlist.
type Song struct {
	Music
	Duration  *int       `json:"duration,omitempty"`
	Albums    []*Album   `json:"albums,omitempty"`
	Disc      *int       `json:"disc,omitempty"`
	Track     *int       `json:"track,omitempty"`
	Musicians []*Profile `json:"musicians,omitempty"`
}

// Kind returns KindSong.
func (s *Song) Kind() Kind { return KindSong }

// Album is a music album.
type Album struct {
	Music
	Song        *Song      `json:"song,omitempty"`
	Disc        *int       `json:"disc,omitempty"`
	Track       *int       `json:"track,omitempty"`
	Musicians   []*Profile `json:"musicians,omitempty"`
	ReleaseDate *DateTime  `json:"releaseDate,omitempty"`
}

// Kind returns KindAlbum.
func (a *Album) Kind() Kind { return KindAlbum }

// Playlist is a collection of songs made by any number of people.
type Playlist struct {
	Music
	Songs    []*Song    `json:"songs,omitempty"`
	Disc     *int       `json:"disc,omitempty"`
	Track    *int       `json:"track,omitempty"`
	Creators []*Profile `json:"creators,omitempty"`
}

// Kind returns KindPlaylist.
func (p *Playlist) Kind() Kind { return KindPlaylist }

// RadioStation is a station broadcasting songs.
type RadioStation struct {
	Music
	Creators []*Profile `json:"creators,omitempty"`
}

// Kind returns KindRadioStation.
func (r *RadioStation) Kind() Kind { return KindRadioStation }

// Video is the base of video records. MediaURL is taken from og:video:url,
// then og:video.
type Video struct {
	VisualMedia
	Actors      []*Profile `json:"actors,omitempty"`
	Roles       []string   `json:"roles,omitempty"`
	Directors   []*Profile `json:"directors,omitempty"`
	Writers     []*Profile `json:"writers,omitempty"`
	Duration    *int       `json:"duration,omitempty"`
	ReleaseDate *DateTime  `json:"releaseDate,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// Movie is a film.
type Movie struct{ Video }

// Kind returns KindMovie.
func (m *Movie) Kind() Kind { return KindMovie }

// TVShow is a multi-episode show.
type TVShow struct{ Video }

// Kind returns KindTVShow.
func (t *TVShow) Kind() Kind { return KindTVShow }

// OtherVideo is a video that fits no other kind.
type OtherVideo struct{ Video }

// Kind returns KindOtherVideo.
func (o *OtherVideo) Kind() Kind { return KindOtherVideo }

// Episode is one episode of a TV show.
type Episode struct {
	Video
	Series *TVShow `json:"series,omitempty"`
}

// Kind returns KindEpisode.
func (e *Episode) Kind() Kind { return KindEpisode }

// Article is an essay, blog post, paper or news story.
type Article struct {
	Metadata
	PublishedTime  *DateTime  `json:"publishedTime,omitempty"`
	ModifiedTime   *DateTime  `json:"modifiedTime,omitempty"`
	ExpirationTime *DateTime  `json:"expirationTime,omitempty"`
	Authors        []*Profile `json:"authors,omitempty"`
	Section        string     `json:"section,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
}

// Kind returns KindArticle.
func (a *Article) Kind() Kind { return KindArticle }

// Book is a published or unpublished book.
type Book struct {
	Metadata
	Authors     []*Profile `json:"authors,omitempty"`
	ISBN        string     `json:"isbn,omitempty"`
	ReleaseDate *DateTime  `json:"releaseDate,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// Kind returns KindBook.
func (b *Book) Kind() Kind { return KindBook }

// Profile describes a person. Gender is free-form.
type Profile struct {
	Metadata
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Username  string `json:"username,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

// Kind returns KindProfile.
func (p *Profile) Kind() Kind { return KindProfile }
