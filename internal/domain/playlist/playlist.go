package playlist

// Key is the fixed storage key for the playlist collection
const Key = "bridallink_playlists"

// Moment names the part of the wedding a playlist belongs to
type Moment string

const (
	MomentCeremony   Moment = "ceremony"
	MomentCocktail   Moment = "cocktail"
	MomentDinner     Moment = "dinner"
	MomentFirstDance Moment = "first-dance"
	MomentParty      Moment = "party"
)

// IsValid checks if the moment is a recognized Moment
func (m Moment) IsValid() bool {
	switch m {
	case MomentCeremony, MomentCocktail, MomentDinner, MomentFirstDance, MomentParty:
		return true
	}
	return false
}

// Song is a single playlist entry
type Song struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Playlist is a named song list for one moment of the day
type Playlist struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Moment Moment `json:"moment"`
	Songs  []Song `json:"songs"`
}

// RecordID returns the playlist identifier
func (p Playlist) RecordID() string {
	return p.ID
}

// HasSong reports whether a song with the given id is in the playlist
func (p Playlist) HasSong(songID string) bool {
	for _, s := range p.Songs {
		if s.ID == songID {
			return true
		}
	}
	return false
}
