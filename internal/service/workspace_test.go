package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/alexanderramin/workstats/internal/repository"
	"github.com/alexanderramin/workstats/internal/testutil"
	"github.com/alexanderramin/workstats/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday of ISO week 10.
var day0 = time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

type fakeSender struct {
	mu       sync.Mutex
	payloads []webhook.Payload
	urls     []string
	err      error
}

func (f *fakeSender) Send(_ context.Context, url string, p webhook.Payload) (webhook.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	f.payloads = append(f.payloads, p)
	if f.err != nil {
		return webhook.Result{}, f.err
	}
	return webhook.Result{PresumedSent: true}, nil
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.Name)
	}
	return out
}

func newTestWorkspace(store repository.BlobStore, at time.Time, opts ...Option) *Workspace {
	base := []Option{
		WithClock(testutil.FixedClock(at)),
		WithLocation(time.UTC),
	}
	return NewWorkspace(store, append(base, opts...)...)
}

// seedSameDay writes markers so a cold start at day0 keeps every draft.
func seedSameDay(store *testutil.MemoryStore) {
	store.Put(repository.KeyLastActiveDate, []byte(domain.DayKey(day0, time.UTC)))
	store.Put(repository.KeyLastActiveWeek, []byte(domain.ISOWeekKey(day0, time.UTC)))
}

func TestColdStart_SameDayKeepsDrafts(t *testing.T) {
	store := testutil.NewMemoryStore()
	seedSameDay(store)
	store.Put(repository.KeyDraftPersonnel, []byte(`{"Zone 220":4}`))
	store.Put(repository.KeyDraftOffice, []byte(`{"50":{"EK 1":2,"EK 2":"-"}}`))
	store.Put(repository.KeyBikeImages, []byte(`[{"mime":"image/jpeg","data":"AQI="}]`))
	ws := newTestWorkspace(store, day0.Add(5*time.Hour))
	ctx := context.Background()

	res, err := ws.ColdStart(ctx)
	require.NoError(t, err)
	assert.False(t, res.Daily.Discard)
	assert.False(t, res.Weekly.Discard)
	assert.Empty(t, res.Warnings)

	counts, err := ws.Counts(ctx, domain.KindPersonnel)
	require.NoError(t, err)
	assert.Equal(t, 4, counts.Get("Zone 220"))

	office, err := ws.Office(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Count(2), office.Get("50", "EK 1"))

	imgs, err := ws.Images(ctx)
	require.NoError(t, err)
	require.Len(t, imgs, 1)
	assert.Equal(t, []byte{1, 2}, imgs[0].Data)
}

func TestColdStart_NewDayDiscardsDailyDraftsOnly(t *testing.T) {
	store := testutil.NewMemoryStore()
	seedSameDay(store)
	store.Put(repository.KeyDraftPersonnel, []byte(`{"Zone 220":4}`))
	store.Put(repository.KeyDraftBikes, []byte(`{"MPA":1}`))
	store.Put(repository.KeyDraftOffice, []byte(`{"50":{"EK 1":2}}`))
	store.Put(repository.KeyBikeImages, []byte(`[{"mime":"image/jpeg","data":"AQI="}]`))

	// Thursday of the same ISO week.
	next := day0.AddDate(0, 0, 1)
	ws := newTestWorkspace(store, next)
	ctx := context.Background()

	res, err := ws.ColdStart(ctx)
	require.NoError(t, err)
	assert.True(t, res.Daily.Discard)
	assert.Equal(t, "2026-03-04", res.Daily.Previous)
	assert.Equal(t, "2026-03-05", res.Daily.Current)
	assert.False(t, res.Weekly.Discard)

	personnel, _ := ws.Counts(ctx, domain.KindPersonnel)
	bikes, _ := ws.Counts(ctx, domain.KindBikes)
	imgs, _ := ws.Images(ctx)
	office, _ := ws.Office(ctx)
	assert.Empty(t, personnel)
	assert.Empty(t, bikes)
	assert.Empty(t, imgs)
	assert.Equal(t, domain.Count(2), office.Get("50", "EK 1"))

	raw, err := store.Load(ctx, repository.KeyDraftPersonnel)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
	assert.False(t, store.Has(repository.KeyBikeImages))

	marker, err := store.Load(ctx, repository.KeyLastActiveDate)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", string(marker))
}

func TestColdStart_NewISOWeekDiscardsOffice(t *testing.T) {
	store := testutil.NewMemoryStore()
	seedSameDay(store)
	store.Put(repository.KeyDraftOffice, []byte(`{"50":{"EK 1":2}}`))

	// Monday of ISO week 11.
	ws := newTestWorkspace(store, time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	res, err := ws.ColdStart(ctx)
	require.NoError(t, err)
	assert.True(t, res.Weekly.Discard)
	assert.Equal(t, "2026-W11", res.Weekly.Current)

	office, _ := ws.Office(ctx)
	assert.False(t, office.RoomHasData("50"))

	marker, err := store.Load(ctx, repository.KeyLastActiveWeek)
	require.NoError(t, err)
	assert.Equal(t, "2026-W11", string(marker))
}

func TestColdStart_MissingMarkersReset(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.Put(repository.KeyDraftPersonnel, []byte(`{"Zone 220":4}`))
	ws := newTestWorkspace(store, day0)

	res, err := ws.ColdStart(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Daily.Discard)
	assert.True(t, res.Weekly.Discard)
	assert.True(t, store.Has(repository.KeyLastActiveDate))
	assert.True(t, store.Has(repository.KeyLastActiveWeek))
}

func TestColdStart_RunsOnce(t *testing.T) {
	store := testutil.NewMemoryStore()
	obs := &recordingObserver{}
	ws := newTestWorkspace(store, day0, WithObserver(obs))
	ctx := context.Background()

	first, err := ws.ColdStart(ctx)
	require.NoError(t, err)
	second, err := ws.ColdStart(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []string{"cold-start"}, obs.names())
}

func TestColdStart_CorruptBlobsLoadAsEmpty(t *testing.T) {
	store := testutil.NewMemoryStore()
	seedSameDay(store)
	store.Put(repository.KeyDraftBikes, []byte(`{broken`))
	store.Put(repository.KeyHistory, []byte(`not json`))
	store.Put(repository.KeySettings, []byte(`[]`))
	ws := newTestWorkspace(store, day0)
	ctx := context.Background()

	res, err := ws.ColdStart(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	bikes, err := ws.Counts(ctx, domain.KindBikes)
	require.NoError(t, err)
	assert.Empty(t, bikes)
	hist, err := ws.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, hist)
	s, err := ws.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestColdStart_ResetWriteFailureIsWarning(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.FailKeys = map[string]bool{repository.KeyDraftBikes: true}
	ws := newTestWorkspace(store, day0)

	res, err := ws.ColdStart(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Error(), repository.KeyDraftBikes)
}

func TestAdjust_FloorsAtZeroAndPersists(t *testing.T) {
	store := testutil.NewMemoryStore()
	ws := newTestWorkspace(store, day0)
	ctx := context.Background()

	res, err := ws.Adjust(ctx, domain.KindPersonnel, "Zone 230", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Value)

	res, err = ws.Adjust(ctx, domain.KindPersonnel, "Zone 230", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Value)

	res, err = ws.Adjust(ctx, domain.KindPersonnel, domain.ParkingKey, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Value)

	reloaded := newTestWorkspace(store, day0.Add(time.Hour))
	counts, err := reloaded.Counts(ctx, domain.KindPersonnel)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Get("Zone 230"))
	assert.Equal(t, 50, counts.Get(domain.ParkingKey))
}

func TestAdjust_RejectsUnknownKeysAndOffice(t *testing.T) {
	ws := newTestWorkspace(testutil.NewMemoryStore(), day0)
	ctx := context.Background()

	_, err := ws.Adjust(ctx, domain.KindBikes, "Unicycle", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = ws.Adjust(ctx, domain.KindBikes, domain.ParkingKey, 1)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = ws.Adjust(ctx, domain.KindOffice, "EK 1", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestAdjust_PersistFailureKeepsValueAndWarns(t *testing.T) {
	store := testutil.NewMemoryStore()
	ws := newTestWorkspace(store, day0)
	ctx := context.Background()
	_, err := ws.ColdStart(ctx)
	require.NoError(t, err)

	store.FailKeys = map[string]bool{repository.KeyDraftBikes: true}
	res, err := ws.Adjust(ctx, domain.KindBikes, "MPA", 3)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Value)
	require.Len(t, res.Warnings, 1)

	counts, _ := ws.Counts(ctx, domain.KindBikes)
	assert.Equal(t, 3, counts.Get("MPA"))
}

func TestSetOffice_ValidatesAndIgnoresHiddenItems(t *testing.T) {
	store := testutil.NewMemoryStore()
	ws := newTestWorkspace(store, day0)
	ctx := context.Background()

	res, err := ws.SetOffice(ctx, "20", "EK 1", domain.Count(1))
	require.NoError(t, err)
	assert.False(t, res.Written)

	_, err = ws.SetOffice(ctx, "20", "EK 13", domain.Count(2))
	assert.ErrorIs(t, err, domain.ErrValueOutOfRange)

	_, err = ws.SetOffice(ctx, "999", "EK 13", domain.Count(1))
	assert.ErrorIs(t, err, domain.ErrUnknownRoom)

	res, err = ws.SetOffice(ctx, "20", "EK 13", domain.Count(1))
	require.NoError(t, err)
	assert.True(t, res.Written)

	res, err = ws.SetOffice(ctx, "162", "EK 5", domain.Empty)
	require.NoError(t, err)
	assert.True(t, res.Written)

	office, _ := ws.Office(ctx)
	assert.True(t, office.Get("20", "EK 1").Empty)
	assert.Equal(t, domain.Count(1), office.Get("20", "EK 13"))
	assert.True(t, office.RoomHasData("162"))
}

func TestClearDraft(t *testing.T) {
	store := testutil.NewMemoryStore()
	ws := newTestWorkspace(store, day0)
	ctx := context.Background()

	_, err := ws.Adjust(ctx, domain.KindBikes, "MV", 2)
	require.NoError(t, err)
	_, err = ws.SetOffice(ctx, "50", "EK 3", domain.Count(4))
	require.NoError(t, err)

	_, err = ws.ClearDraft(ctx, domain.KindBikes)
	require.NoError(t, err)
	_, err = ws.ClearDraft(ctx, domain.KindOffice)
	require.NoError(t, err)

	bikes, _ := ws.Counts(ctx, domain.KindBikes)
	office, _ := ws.Office(ctx)
	assert.Empty(t, bikes)
	assert.Empty(t, office)

	assert.False(t, store.Has(repository.KeyDraftBikes))
	assert.False(t, store.Has(repository.KeyDraftOffice))

	restarted := newTestWorkspace(store, day0.Add(time.Hour))
	bikes, _ = restarted.Counts(ctx, domain.KindBikes)
	office, _ = restarted.Office(ctx)
	assert.Empty(t, bikes)
	assert.Empty(t, office)
}

func TestImages_AttachRemoveClear(t *testing.T) {
	store := testutil.NewMemoryStore()
	ws := newTestWorkspace(store, day0)
	ctx := context.Background()

	for _, tag := range []string{"a", "b", "c"} {
		_, err := ws.AttachImage(ctx, testutil.NewTestImage(tag))
		require.NoError(t, err)
	}

	res, err := ws.RemoveImage(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	_, err = ws.RemoveImage(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	imgs, _ := ws.Images(ctx)
	require.Len(t, imgs, 2)
	assert.Equal(t, []byte("jpeg:c"), imgs[1].Data)

	_, err = ws.ClearImages(ctx)
	require.NoError(t, err)
	assert.False(t, store.Has(repository.KeyBikeImages))
}

func TestSettingsAndIdentity(t *testing.T) {
	store := testutil.NewMemoryStore()
	ws := newTestWorkspace(store, day0)
	ctx := context.Background()

	lang := domain.LangNL
	url := "https://hook.example"
	s, warnings, err := ws.UpdateSettings(ctx, domain.SettingsPatch{Language: &lang, WebhookURL: &url})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, domain.LangNL, s.Language)
	assert.True(t, s.HasWebhook())

	who, err := ws.Whoami(ctx)
	require.NoError(t, err)
	assert.Nil(t, who)

	require.NoError(t, ws.Login(ctx, domain.Identity{ID: 7, FirstName: "Ann", Hash: "h"}))

	reloaded := newTestWorkspace(store, day0)
	s, err = reloaded.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LangNL, s.Language)
	who, err = reloaded.Whoami(ctx)
	require.NoError(t, err)
	require.NotNil(t, who)
	assert.Equal(t, "Ann", who.DisplayName())

	require.NoError(t, reloaded.Logout(ctx))
	assert.False(t, store.Has(repository.KeyIdentity))
}

func TestUpdateSettings_PersistFailureIsWarning(t *testing.T) {
	store := testutil.NewMemoryStore()
	ws := newTestWorkspace(store, day0)
	ctx := context.Background()
	_, err := ws.ColdStart(ctx)
	require.NoError(t, err)

	store.Err = errors.New("disk full")
	store.FailKeys = map[string]bool{repository.KeySettings: true}
	theme := domain.ThemeLight
	s, warnings, err := ws.UpdateSettings(ctx, domain.SettingsPatch{Theme: &theme})

	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, s.Theme)
	require.Len(t, warnings, 1)
	assert.EqualError(t, warnings[0], "disk full")
}
