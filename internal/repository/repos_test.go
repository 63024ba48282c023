package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/repository"
	"github.com/alexanderramin/workstats/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRepo_CountsRoundTrip(t *testing.T) {
	store := repository.NewSQLiteBlobStore(testutil.NewTestDB(t))
	repo := repository.NewDraftRepo(store)
	ctx := context.Background()

	empty, err := repo.LoadCounts(ctx, domain.KindPersonnel)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.False(t, empty.HasData())

	draft := domain.CounterMap{"Zone 220": 3, domain.ParkingKey: 2}
	require.NoError(t, repo.SaveCounts(ctx, domain.KindPersonnel, draft))

	got, err := repo.LoadCounts(ctx, domain.KindPersonnel)
	require.NoError(t, err)
	assert.Equal(t, draft, got)

	// Bikes draft is stored separately.
	bikes, err := repo.LoadCounts(ctx, domain.KindBikes)
	require.NoError(t, err)
	assert.Empty(t, bikes)
}

func TestDraftRepo_CorruptBlobYieldsEmptyAndError(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.Put(repository.KeyDraftBikes, []byte(`{not json`))
	repo := repository.NewDraftRepo(store)

	got, err := repo.LoadCounts(context.Background(), domain.KindBikes)
	require.Error(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDraftRepo_OfficeSentinelRoundTrip(t *testing.T) {
	store := testutil.NewMemoryStore()
	repo := repository.NewDraftRepo(store)
	ctx := context.Background()

	office := domain.OfficeMap{}
	office.Set("50", "EK 1", domain.Count(2))
	office.Set("50", "EK 2", domain.Empty)
	require.NoError(t, repo.SaveOffice(ctx, office))

	raw, err := store.Load(ctx, repository.KeyDraftOffice)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"-"`)

	got, err := repo.LoadOffice(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Count(2), got.Get("50", "EK 1"))
	assert.True(t, got.Get("50", "EK 2").Empty)

	require.NoError(t, repo.Clear(ctx, domain.KindOffice))
	assert.False(t, store.Has(repository.KeyDraftOffice))
}

func TestDraftRepo_UnknownKind(t *testing.T) {
	repo := repository.NewDraftRepo(testutil.NewMemoryStore())
	err := repo.SaveCounts(context.Background(), domain.Kind("boats"), domain.CounterMap{})
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestHistoryRepo_PreservesOrder(t *testing.T) {
	store := repository.NewDiskvBlobStore(t.TempDir())
	repo := repository.NewHistoryRepo(store)
	ctx := context.Background()

	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	ledger := domain.Ledger{}
	ledger.Prepend(testutil.NewTestEntry(domain.KindBikes, testutil.WithDate(now.AddDate(0, 0, -1)),
		testutil.WithCounts(domain.CounterMap{"MPA": 1}), testutil.WithImages(testutil.NewTestImage("a"))))
	ledger.Prepend(testutil.NewTestEntry(domain.KindOffice, testutil.WithDate(now),
		testutil.WithRoom("50", map[string]domain.OfficeValue{"EK 1": domain.Count(1), "EK 2": domain.Empty})))
	require.NoError(t, repo.Save(ctx, ledger))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, ledger.Entries[0].ID, got.Entries[0].ID)
	assert.Equal(t, domain.KindOffice, got.Entries[0].Kind)
	assert.True(t, got.Entries[0].Items["EK 2"].Empty)
	assert.Equal(t, []byte("jpeg:a"), got.Entries[1].Images[0].Data)
	assert.True(t, got.Entries[1].Date.Equal(now.AddDate(0, 0, -1)))

	require.NoError(t, repo.Clear(ctx))
	cleared, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, cleared.Len())
}

func TestAttachmentRepo_EmptySaveRemovesBlob(t *testing.T) {
	store := testutil.NewMemoryStore()
	repo := repository.NewAttachmentRepo(store)
	ctx := context.Background()

	set := domain.AttachmentSet{testutil.NewTestImage("1"), testutil.NewTestImage("2")}
	require.NoError(t, repo.Save(ctx, set))
	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, set, got)

	require.NoError(t, repo.Save(ctx, nil))
	assert.False(t, store.Has(repository.KeyBikeImages))
}

func TestSettingsRepo_DefaultsAndNormalize(t *testing.T) {
	store := testutil.NewMemoryStore()
	repo := repository.NewSettingsRepo(store)
	ctx := context.Background()

	s, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)

	// Partial blob keeps defaults for missing fields.
	store.Put(repository.KeySettings, []byte(`{"theme":"light","language":"xx"}`))
	s, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, s.Theme)
	assert.Equal(t, domain.LangUA, s.Language)
	assert.True(t, s.Vibration)

	s.WebhookURL = "https://example.test/hook"
	require.NoError(t, repo.Save(ctx, s))
	raw, err := store.Load(ctx, repository.KeySettings)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"webhookUrl":"https://example.test/hook"`)
}

func TestIdentityRepo_LoadSaveDelete(t *testing.T) {
	repo := repository.NewIdentityRepo(testutil.NewMemoryStore())
	ctx := context.Background()

	id, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, id)

	require.NoError(t, repo.Save(ctx, domain.Identity{ID: 42, FirstName: "Ann", AuthDate: 1700000000, Hash: "abc"}))
	id, err = repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(42), id.ID)

	require.NoError(t, repo.Delete(ctx))
	id, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestMarkerRepo_SeparateCadences(t *testing.T) {
	store := testutil.NewMemoryStore()
	repo := repository.NewMarkerRepo(store)
	ctx := context.Background()

	m, err := repo.Load(ctx, domain.ResetDaily)
	require.NoError(t, err)
	assert.Empty(t, m)

	require.NoError(t, repo.Save(ctx, domain.ResetDaily, "2026-03-04"))
	require.NoError(t, repo.Save(ctx, domain.ResetWeekly, "2026-W10"))

	daily, err := repo.Load(ctx, domain.ResetDaily)
	require.NoError(t, err)
	weekly, err := repo.Load(ctx, domain.ResetWeekly)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", daily)
	assert.Equal(t, "2026-W10", weekly)
	assert.True(t, store.Has(repository.KeyLastActiveDate))
	assert.True(t, store.Has(repository.KeyLastActiveWeek))
}
