// Package playlist provides the music playlist operations: song
// management per wedding moment, CSV import and export. Unlike the
// guest import, a playlist import is all-or-nothing: a file yielding no
// valid songs leaves the playlist untouched.
package playlist

import (
	"bytes"
	"context"
	"encoding/csv"

	"github.com/bridallink/backend/internal/domain/playlist"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/csvx"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
)

// Service provides playlist operations
type Service struct {
	playlists *persistence.Collection[playlist.Playlist]
	ids       shared.IDProvider
}

// NewService creates a playlist service
func NewService(playlists *persistence.Collection[playlist.Playlist]) *Service {
	return &Service{playlists: playlists, ids: shared.UUIDProvider{}}
}

// CreatePlaylistRequest represents a request to create a playlist
type CreatePlaylistRequest struct {
	Name   string `json:"name" binding:"required"`
	Moment string `json:"moment" binding:"required"`
}

// AddSongRequest represents a request to add a song
type AddSongRequest struct {
	Title  string `json:"title" binding:"required"`
	Artist string `json:"artist"`
	Notes  string `json:"notes"`
}

// ImportResult reports the outcome of a playlist CSV import
type ImportResult struct {
	Imported int             `json:"imported"`
	Errors   []csvx.RowError `json:"errors,omitempty"`
}

// List returns all playlists
func (s *Service) List(ctx context.Context) []playlist.Playlist {
	return s.playlists.All(ctx)
}

// Get returns one playlist by identifier
func (s *Service) Get(ctx context.Context, id string) (playlist.Playlist, error) {
	p, ok := s.playlists.Get(ctx, id)
	if !ok {
		return playlist.Playlist{}, shared.ErrNotFound
	}
	return p, nil
}

// Create adds an empty playlist for one moment of the day
func (s *Service) Create(ctx context.Context, req CreatePlaylistRequest) (playlist.Playlist, error) {
	moment := playlist.Moment(req.Moment)
	if req.Name == "" || !moment.IsValid() {
		return playlist.Playlist{}, shared.ErrInvalidInput
	}
	p := s.playlists.Create(ctx, func(id string) playlist.Playlist {
		return playlist.Playlist{ID: id, Name: req.Name, Moment: moment, Songs: []playlist.Song{}}
	})
	return p, nil
}

// AddSong appends a song to a playlist
func (s *Service) AddSong(ctx context.Context, playlistID string, req AddSongRequest) (playlist.Playlist, error) {
	if req.Title == "" {
		return playlist.Playlist{}, shared.ErrInvalidInput
	}
	song := playlist.Song{
		ID:     s.ids.NewID(),
		Title:  req.Title,
		Artist: req.Artist,
		Notes:  req.Notes,
	}
	p, ok := s.playlists.Update(ctx, playlistID, func(p playlist.Playlist) playlist.Playlist {
		p.Songs = append(p.Songs, song)
		return p
	})
	if !ok {
		return playlist.Playlist{}, shared.ErrNotFound
	}
	return p, nil
}

// RemoveSong deletes a song from a playlist
func (s *Service) RemoveSong(ctx context.Context, playlistID, songID string) (playlist.Playlist, error) {
	p, ok := s.playlists.Get(ctx, playlistID)
	if !ok {
		return playlist.Playlist{}, shared.ErrNotFound
	}
	if !p.HasSong(songID) {
		return playlist.Playlist{}, shared.ErrNotFound
	}
	p, _ = s.playlists.Update(ctx, playlistID, func(p playlist.Playlist) playlist.Playlist {
		for i, song := range p.Songs {
			if song.ID == songID {
				p.Songs = append(p.Songs[:i], p.Songs[i+1:]...)
				break
			}
		}
		return p
	})
	return p, nil
}

// Delete removes a playlist
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.playlists.Delete(ctx, id) {
		return shared.ErrNotFound
	}
	return nil
}

// ImportCSV parses a song CSV and appends the songs to the playlist.
// A file that yields no valid songs aborts the import; the playlist is
// only written when at least one song parsed.
func (s *Service) ImportCSV(ctx context.Context, playlistID string, data []byte) (ImportResult, error) {
	if _, ok := s.playlists.Get(ctx, playlistID); !ok {
		return ImportResult{}, shared.ErrNotFound
	}
	parser, err := csvx.ParseBytes(data)
	if err != nil {
		return ImportResult{}, err
	}

	rows, rowErrors := parser.ReadAll()
	result := ImportResult{Errors: rowErrors}
	var songs []playlist.Song
	for _, row := range rows {
		title := row.Get("title", "song", "song title", "track")
		if title == "" {
			result.Errors = append(result.Errors,
				csvx.NewRowError(row.Number, "title", "row has no song title"))
			continue
		}
		songs = append(songs, playlist.Song{
			ID:     s.ids.NewID(),
			Title:  title,
			Artist: row.Get("artist", "by"),
			Notes:  row.Get("notes", "comment"),
		})
	}

	if len(songs) == 0 {
		return ImportResult{}, shared.ErrNoRowsImported
	}

	s.playlists.Update(ctx, playlistID, func(p playlist.Playlist) playlist.Playlist {
		p.Songs = append(p.Songs, songs...)
		return p
	})
	result.Imported = len(songs)
	return result, nil
}

// ExportCSV renders a playlist's songs as a CSV file
func (s *Service) ExportCSV(ctx context.Context, playlistID string) ([]byte, error) {
	p, ok := s.playlists.Get(ctx, playlistID)
	if !ok {
		return nil, shared.ErrNotFound
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Title", "Artist", "Notes"}); err != nil {
		return nil, err
	}
	for _, song := range p.Songs {
		if err := w.Write([]string{song.Title, song.Artist, song.Notes}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
