package playlist

import (
	"context"
	"strings"
	"testing"

	domain "github.com/bridallink/backend/internal/domain/playlist"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/bridallink/backend/internal/infrastructure/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	st := store.NewMemoryStore()
	return NewService(persistence.NewCollection[domain.Playlist](st, domain.Key))
}

func TestCreatePlaylistValidatesMoment(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, CreatePlaylistRequest{Name: "Party hits", Moment: "party"})
	require.NoError(t, err)
	assert.Equal(t, domain.MomentParty, p.Moment)

	_, err = svc.Create(ctx, CreatePlaylistRequest{Name: "Oops", Moment: "afterparty"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestAddAndRemoveSong(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, CreatePlaylistRequest{Name: "First dance", Moment: "first-dance"})
	require.NoError(t, err)

	p, err = svc.AddSong(ctx, p.ID, AddSongRequest{Title: "At Last", Artist: "Etta James"})
	require.NoError(t, err)
	require.Len(t, p.Songs, 1)

	p, err = svc.RemoveSong(ctx, p.ID, p.Songs[0].ID)
	require.NoError(t, err)
	assert.Empty(t, p.Songs)

	_, err = svc.RemoveSong(ctx, p.ID, "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestImportCSVAppendsSongs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, CreatePlaylistRequest{Name: "Dinner", Moment: "dinner"})
	require.NoError(t, err)

	csvFile := strings.Join([]string{
		"Title,Artist",
		"Fly Me to the Moon,Frank Sinatra",
		",No Title Band",
		"La Vie en Rose,Edith Piaf",
	}, "\n")

	result, err := svc.ImportCSV(ctx, p.ID, []byte(csvFile))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 1)

	stored, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Songs, 2)
}

func TestImportCSVAbortsWhenNothingParses(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, CreatePlaylistRequest{Name: "Ceremony", Moment: "ceremony"})
	require.NoError(t, err)

	csvFile := "Title,Artist\n,Nameless\n,Also Nameless\n"
	_, err = svc.ImportCSV(ctx, p.ID, []byte(csvFile))
	assert.ErrorIs(t, err, shared.ErrNoRowsImported)

	stored, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Songs)
}

func TestImportCSVUnknownPlaylist(t *testing.T) {
	svc := newTestService()

	_, err := svc.ImportCSV(context.Background(), "missing", []byte("Title\nSong"))
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestExportCSVRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, CreatePlaylistRequest{Name: "Cocktail", Moment: "cocktail"})
	require.NoError(t, err)
	_, err = svc.AddSong(ctx, p.ID, AddSongRequest{Title: "Golden", Artist: "Jill Scott"})
	require.NoError(t, err)

	data, err := svc.ExportCSV(ctx, p.ID)
	require.NoError(t, err)

	result, err := svc.ImportCSV(ctx, p.ID, data)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	stored, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, stored.Songs, 2)
	assert.Equal(t, stored.Songs[0].Title, stored.Songs[1].Title)
}
