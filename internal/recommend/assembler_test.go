// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package recommend

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/careercanvas/internal/catalog"
	"github.com/tomtom215/careercanvas/internal/models"
)

type fakePrefs struct {
	elements map[int][]models.LikedElement
	err      error
	calls    int
}

func (f *fakePrefs) ListLikedElements(_ context.Context, userID int) ([]models.LikedElement, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.elements[userID], nil
}

// gatedPrefs holds its first load until release is closed, so a test can
// change the user's likes while that load is in flight.
type gatedPrefs struct {
	mu       sync.Mutex
	elements map[int][]models.LikedElement
	loads    int
	started  chan struct{}
	release  chan struct{}
}

func newGatedPrefs() *gatedPrefs {
	return &gatedPrefs{
		elements: make(map[int][]models.LikedElement),
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
}

func (g *gatedPrefs) ListLikedElements(_ context.Context, userID int) ([]models.LikedElement, error) {
	g.mu.Lock()
	g.loads++
	first := g.loads == 1
	out := slices.Clone(g.elements[userID])
	g.mu.Unlock()

	if first {
		close(g.started)
		<-g.release
	}
	return out, nil
}

func (g *gatedPrefs) add(userID int, e models.LikedElement) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.elements[userID] = append(g.elements[userID], e)
}

type mapCache struct {
	mu      sync.Mutex
	entries map[int]*Snapshot
	getErr  error
}

func newMapCache() *mapCache { return &mapCache{entries: make(map[int]*Snapshot)} }

func (c *mapCache) Get(_ context.Context, userID int) (*Snapshot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	s, ok := c.entries[userID]
	return s, ok, nil
}

func (c *mapCache) Set(_ context.Context, userID int, s *Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = s
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, userID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	return nil
}

func (c *mapCache) Backend() string { return "test" }

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]models.Career{
		{ID: 1, Field: "Technology", Skills: []string{"Python", "SQL"}, SalaryMin: 80, SalaryMax: 150, WorkSetting: "Office / Remote"},
		{ID: 2, Field: "Technology", Skills: []string{"Python", "Excel"}, SalaryMin: 85, SalaryMax: 160},
		{ID: 3, Field: "Finance", Skills: []string{"Excel"}, SalaryMin: 60, SalaryMax: 100},
		{ID: 4, Field: "Technology", Skills: []string{"Go"}, SalaryMin: 120, SalaryMax: 200},
		{ID: 5, Field: "Technology", Skills: []string{"HTML"}, SalaryMin: 40, SalaryMax: 60},
		{ID: 6, Field: "Design", Skills: []string{"Figma"}, SalaryMin: 70, SalaryMax: 110, WorkSetting: "Office / Remote"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func newTestAssembler(t *testing.T, prefs PreferenceSource, cache SnapshotCache) *Assembler {
	t.Helper()
	a, err := NewAssembler(DefaultConfig(), testCatalog(t), prefs, cache, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func ids(items []ScoredCareer) []int {
	out := make([]int, len(items))
	for i, sc := range items {
		out[i] = sc.ID
	}
	return out
}

func TestNewAssemblerValidation(t *testing.T) {
	if _, err := NewAssembler(Config{}, testCatalog(t), &fakePrefs{}, nil, zerolog.Nop()); err == nil {
		t.Error("zero config accepted")
	}
	if _, err := NewAssembler(DefaultConfig(), nil, &fakePrefs{}, nil, zerolog.Nop()); err == nil {
		t.Error("nil catalog accepted")
	}
}

func TestPersonalizedFeedWithoutPreferences(t *testing.T) {
	a := newTestAssembler(t, &fakePrefs{}, nil)
	feed, err := a.PersonalizedFeed(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ids(feed), []int{1, 2, 3, 4, 5, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("feed = %v, want catalog order %v", got, want)
	}
}

func TestPersonalizedFeedRanking(t *testing.T) {
	prefs := &fakePrefs{
		elements: map[int][]models.LikedElement{
			9: {
				like(models.ElementWorkSetting, "Office / Remote"),
				like(models.ElementSkill, "Excel"),
			},
		},
	}
	a := newTestAssembler(t, prefs, nil)

	feed, err := a.PersonalizedFeed(context.Background(), 9)
	if err != nil {
		t.Fatal(err)
	}
	// 1 and 6 score 40 (work setting), 2 and 3 score 20 (Excel); ties keep
	// catalog order.
	if got, want := ids(feed), []int{1, 6, 2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("feed = %v, want %v", got, want)
	}
	if feed[0].Score != 40 || feed[2].Score != 20 || feed[5].Score != 0 {
		t.Errorf("unexpected scores %+v", feed)
	}
}

func TestPersonalizedFeedDirectLikeDominates(t *testing.T) {
	prefs := &fakePrefs{
		elements: map[int][]models.LikedElement{
			1: {
				like(models.ElementSkill, "Python"),
				like(models.ElementField, "Technology"),
				likeOn(6, models.ElementSoftSkill, "Curiosity"),
			},
		},
	}
	a := newTestAssembler(t, prefs, nil)

	feed, err := a.PersonalizedFeed(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if feed[0].ID != 6 || feed[0].Score != 100 {
		t.Errorf("first = %d (%d), want directly liked career 6", feed[0].ID, feed[0].Score)
	}
}

func TestPersonalizedFeedDeterministic(t *testing.T) {
	prefs := &fakePrefs{
		elements: map[int][]models.LikedElement{
			1: {like(models.ElementField, "Technology"), like(models.ElementSkill, "Figma")},
		},
	}
	a := newTestAssembler(t, prefs, nil)

	first, err := a.PersonalizedFeed(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := a.PersonalizedFeed(context.Background(), 1)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(ids(first), ids(again)) {
			t.Fatalf("run %d: %v != %v", i, ids(again), ids(first))
		}
	}
}

func TestPersonalizedFeedStoreFailure(t *testing.T) {
	a := newTestAssembler(t, &fakePrefs{err: errors.New("connection reset")}, nil)
	_, err := a.PersonalizedFeed(context.Background(), 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestSnapshotCaching(t *testing.T) {
	prefs := &fakePrefs{
		elements: map[int][]models.LikedElement{1: {like(models.ElementSkill, "Go")}},
	}
	cache := newMapCache()
	a := newTestAssembler(t, prefs, cache)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := a.PersonalizedFeed(ctx, 1); err != nil {
			t.Fatal(err)
		}
	}
	if prefs.calls != 1 {
		t.Errorf("store read %d times, want 1", prefs.calls)
	}

	a.InvalidateSnapshot(ctx, 1)
	if _, err := a.PersonalizedFeed(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if prefs.calls != 2 {
		t.Errorf("store read %d times after invalidation, want 2", prefs.calls)
	}
}

func TestSnapshotInvalidatedDuringLoadIsNotCached(t *testing.T) {
	prefs := newGatedPrefs()
	cache := newMapCache()
	a := newTestAssembler(t, prefs, cache)
	ctx := context.Background()

	done := make(chan *Snapshot)
	go func() {
		s, err := a.Snapshot(ctx, 9)
		if err != nil {
			t.Error(err)
		}
		done <- s
	}()

	<-prefs.started
	prefs.add(9, likeOn(4, models.ElementSkill, "Go"))
	a.InvalidateSnapshot(ctx, 9)
	close(prefs.release)

	if stale := <-done; stale == nil || !stale.Empty() {
		t.Fatalf("in-flight load = %+v, want the empty pre-like snapshot", stale)
	}
	if _, ok, _ := cache.Get(ctx, 9); ok {
		t.Fatal("pre-like snapshot was written to the cache after invalidation")
	}

	fresh, err := a.Snapshot(ctx, 9)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Empty() || !fresh.Has(models.ElementSkill, "Go") {
		t.Errorf("snapshot after like and invalidate = %+v, want the liked skill", fresh)
	}
}

func TestSnapshotCacheErrorFallsBackToStore(t *testing.T) {
	prefs := &fakePrefs{}
	cache := newMapCache()
	cache.getErr = errors.New("redis down")
	a := newTestAssembler(t, prefs, cache)

	if _, err := a.PersonalizedFeed(context.Background(), 1); err != nil {
		t.Fatalf("cache failure leaked: %v", err)
	}
	if prefs.calls != 1 {
		t.Errorf("store calls = %d, want 1", prefs.calls)
	}
}

func TestRelated(t *testing.T) {
	a := newTestAssembler(t, &fakePrefs{}, nil)
	ctx := context.Background()

	related, err := a.Related(ctx, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(related) != 3 {
		t.Fatalf("len = %d, want 3", len(related))
	}
	if related[0].ID != 2 || related[0].Score != 150 {
		t.Errorf("top related = %d (%d), want 2 (150)", related[0].ID, related[0].Score)
	}
	for _, sc := range related {
		if sc.ID == 1 {
			t.Error("related list contains the source career")
		}
	}

	all, err := a.Related(ctx, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("unbounded related len = %d, want 5", len(all))
	}

	none, err := a.Related(ctx, 1, 0)
	if err != nil || len(none) != 0 {
		t.Errorf("limit 0 = %v, %v", none, err)
	}
}

func TestRelatedErrors(t *testing.T) {
	a := newTestAssembler(t, &fakePrefs{}, nil)
	if _, err := a.Related(context.Background(), 999, 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id error = %v", err)
	}
	if _, err := a.Related(context.Background(), 1, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative limit error = %v", err)
	}
}

func TestAdvancementBoundary(t *testing.T) {
	source := &models.Career{ID: 1, Field: "F", SalaryMin: 100, SalaryMax: 150}
	related := []ScoredCareer{
		{Career: &models.Career{ID: 2, Field: "F", SalaryMin: 120}},   // exactly 1.2x, excluded
		{Career: &models.Career{ID: 3, Field: "F", SalaryMin: 120.5}}, // included
		{Career: &models.Career{ID: 4, Field: "G", SalaryMin: 200}},   // other field
		{Career: &models.Career{ID: 5, Field: "F", SalaryMin: 130}},
		{Career: &models.Career{ID: 6, Field: "F", SalaryMin: 140}},
		{Career: &models.Career{ID: 7, Field: "F", SalaryMin: 150}}, // over the cap
	}
	got := Advancement(source, related)
	if want := []int{3, 5, 6}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Advancement() = %v, want %v", ids(got), want)
	}
}

func TestPreviousSteps(t *testing.T) {
	source := &models.Career{ID: 1, Field: "F", SalaryMin: 100, SalaryMax: 150}
	related := []ScoredCareer{
		{Career: &models.Career{ID: 2, Field: "F", SalaryMax: 80}}, // exactly 0.8x, excluded
		{Career: &models.Career{ID: 3, Field: "F", SalaryMax: 79}},
		{Career: &models.Career{ID: 4, Field: "G", SalaryMax: 10}},
		{Career: &models.Career{ID: 5, Field: "F", SalaryMax: 50}},
		{Career: &models.Career{ID: 6, Field: "F", SalaryMax: 40}}, // over the cap
	}
	got := PreviousSteps(source, related)
	if want := []int{3, 5}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("PreviousSteps() = %v, want %v", ids(got), want)
	}
}

func TestCareerPath(t *testing.T) {
	a := newTestAssembler(t, &fakePrefs{}, nil)
	path, err := a.CareerPath(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if path.Career.ID != 1 {
		t.Errorf("career = %d", path.Career.ID)
	}
	// 80*1.2 = 96: only career 4 (120) qualifies in Technology.
	if got := ids(path.Advancement); !reflect.DeepEqual(got, []int{4}) {
		t.Errorf("advancement = %v, want [4]", got)
	}
	// 80*0.8 = 64: career 5 tops out at 60.
	if got := ids(path.Previous); !reflect.DeepEqual(got, []int{5}) {
		t.Errorf("previous = %v, want [5]", got)
	}

	if _, err := a.CareerPath(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id error = %v", err)
	}
}

func TestRelatedHonoursCancellation(t *testing.T) {
	a := newTestAssembler(t, &fakePrefs{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.Related(ctx, 1, 3); !errors.Is(err, ErrUnavailable) {
		t.Errorf("cancelled context error = %v, want ErrUnavailable", err)
	}
}
