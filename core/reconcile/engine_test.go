package reconcile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSource returns a fixed snapshot or error.
type fakeSource struct {
	items []rec
	err   error
	calls int
}

func (s *fakeSource) Fetch(ctx context.Context) ([]rec, error) {
	s.calls++
	return s.items, s.err
}

// memStore is an in-memory store with per-key failure injection.
type memStore struct {
	active  map[string]rec
	removed map[string]rec
	fail    map[string]error
	ops     []string
}

func newMemStore(codes ...string) *memStore {
	s := &memStore{active: map[string]rec{}, removed: map[string]rec{}, fail: map[string]error{}}
	for _, c := range codes {
		s.active[c] = rec{Code: c}
	}
	return s
}

func (s *memStore) ExistingActiveCodes(ctx context.Context) map[string]struct{} {
	out := make(map[string]struct{}, len(s.active))
	for k := range s.active {
		out[k] = struct{}{}
	}
	return out
}

func (s *memStore) Insert(ctx context.Context, item rec) error {
	s.ops = append(s.ops, "add:"+item.Code)
	if err := s.fail[item.Code]; err != nil {
		return &StoreError{Op: ActionAdd, Key: item.Code, Err: err}
	}
	if _, ok := s.active[item.Code]; ok {
		return &StoreError{Op: ActionAdd, Key: item.Code, Err: errors.New("duplicate key")}
	}
	s.active[item.Code] = item
	return nil
}

func (s *memStore) Update(ctx context.Context, item rec) error {
	s.ops = append(s.ops, "update:"+item.Code)
	if err := s.fail[item.Code]; err != nil {
		return err
	}
	s.active[item.Code] = item
	return nil
}

func (s *memStore) SoftDelete(ctx context.Context, key string) error {
	s.ops = append(s.ops, "delete:"+key)
	if err := s.fail[key]; err != nil {
		return &StoreError{Op: ActionDelete, Key: key, Err: err}
	}
	s.removed[key] = s.active[key]
	delete(s.active, key)
	return nil
}

func newTestEngine(src Source[rec], store Store[rec]) *Engine[rec] {
	return NewEngine(Spec[rec]{Name: "test", Source: src, Store: store, Key: recKey}, zap.NewNop())
}

func TestEngine_Run_Scenario(t *testing.T) {
	store := newMemStore("A", "B", "C")
	engine := newTestEngine(&fakeSource{items: recs("B", "C", "D")}, store)

	result := engine.Run(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, 1, result.Deleted)
	assert.Empty(t, result.Errors)
	assert.NotNil(t, result.Errors)
	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.Timestamp.IsZero())

	// Strict apply order: delete, update, add
	assert.Equal(t, []string{"delete:A", "update:B", "update:C", "add:D"}, store.ops)
}

func TestEngine_Run_Idempotent(t *testing.T) {
	store := newMemStore()
	src := &fakeSource{items: recs("1", "2", "3")}
	engine := newTestEngine(src, store)

	first := engine.Run(context.Background())
	require.True(t, first.Success)
	assert.Equal(t, 3, first.Added)

	plan, err := engine.Plan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plan.ToAdd)
	assert.Empty(t, plan.ToDelete)
	assert.Equal(t, []string{"1", "2", "3"}, keysOf(plan.ToUpdate))

	second := engine.Run(context.Background())
	assert.True(t, second.Success)
	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 3, second.Updated)
	assert.Equal(t, 0, second.Deleted)
	assert.Empty(t, second.Errors)
}

func TestEngine_Run_PartialFailureIsolation(t *testing.T) {
	codes := make([]string, 10)
	for i := range codes {
		codes[i] = fmt.Sprintf("L%02d", i)
	}
	store := newMemStore()
	store.fail["L04"] = errors.New("constraint violation")

	result := newTestEngine(&fakeSource{items: recs(codes...)}, store).Run(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, 9, result.Added)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "add L04: constraint violation", result.Errors[0])
	assert.Len(t, store.active, 9)
}

func TestEngine_Run_ErrorsInApplyOrder(t *testing.T) {
	store := newMemStore("A", "B")
	store.fail["A"] = errors.New("down")
	store.fail["B"] = errors.New("timeout")
	store.fail["C"] = errors.New("dup")

	result := newTestEngine(&fakeSource{items: recs("B", "C")}, store).Run(context.Background())

	assert.Equal(t, []string{
		"delete A: down",
		"update B: timeout",
		"add C: dup",
	}, result.Errors)
	assert.Zero(t, result.Added+result.Updated+result.Deleted)
}

func TestEngine_Run_FetchFailureAborts(t *testing.T) {
	store := newMemStore("A")
	fetchErr := &FetchError{URL: "http://feed", Err: context.DeadlineExceeded}

	result := newTestEngine(&fakeSource{err: fetchErr}, store).Run(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, []string{fetchErr.Error()}, result.Errors)
	assert.Zero(t, result.Added)
	assert.Zero(t, result.Updated)
	assert.Zero(t, result.Deleted)
	assert.Empty(t, store.ops)
}

func TestEngine_Run_CanceledContext(t *testing.T) {
	store := newMemStore("A")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newTestEngine(&fakeSource{items: recs("B")}, store).Run(ctx)

	assert.False(t, result.Success)
	assert.Equal(t, []string{
		"delete A: context canceled",
		"add B: context canceled",
	}, result.Errors)
	assert.Empty(t, store.ops)
}

type panicStore struct{ *memStore }

func (p panicStore) Update(ctx context.Context, item rec) error { panic("boom") }

func TestEngine_Run_PanicIsRecordedPerRecord(t *testing.T) {
	store := panicStore{newMemStore("A")}

	result := newTestEngine(&fakeSource{items: recs("A", "B")}, store).Run(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, []string{"update A: panic: boom"}, result.Errors)
	assert.Equal(t, 1, result.Added)
}

// mockStore is a testify mock for baseline behaviour.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) ExistingActiveCodes(ctx context.Context) map[string]struct{} {
	args := m.Called(ctx)
	if s, ok := args.Get(0).(map[string]struct{}); ok {
		return s
	}
	return nil
}

func (m *mockStore) LoadActiveCodes(ctx context.Context) (map[string]struct{}, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(map[string]struct{})
	return s, args.Error(1)
}

func (m *mockStore) Insert(ctx context.Context, item rec) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockStore) Update(ctx context.Context, item rec) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockStore) SoftDelete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestEngine_Baseline_SoftFail(t *testing.T) {
	store := new(mockStore)
	// Adapter swallowed an outage: empty baseline, everything is inserted
	store.On("ExistingActiveCodes", mock.Anything).Return(nil)
	store.On("Insert", mock.Anything, mock.Anything).Return(nil)

	result := newTestEngine(&fakeSource{items: recs("A", "B")}, store).Run(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Added)
	store.AssertNotCalled(t, "LoadActiveCodes", mock.Anything)
}

func TestEngine_Baseline_Strict(t *testing.T) {
	store := new(mockStore)
	store.On("LoadActiveCodes", mock.Anything).Return(nil, errors.New("connection refused"))

	engine := NewEngine(Spec[rec]{
		Name:                "test",
		Source:              &fakeSource{items: recs("A")},
		Store:               store,
		Key:                 recKey,
		FailOnBaselineError: true,
	}, zap.NewNop())

	result := engine.Run(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, []string{"baseline test: connection refused"}, result.Errors)
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "ExistingActiveCodes", mock.Anything)
}

func TestEngine_Plan_StrictBaselineIsStoreError(t *testing.T) {
	store := new(mockStore)
	store.On("LoadActiveCodes", mock.Anything).Return(nil, errors.New("connection refused"))

	engine := NewEngine(Spec[rec]{
		Name:                "test",
		Source:              &fakeSource{items: recs("A")},
		Store:               store,
		Key:                 recKey,
		FailOnBaselineError: true,
	}, zap.NewNop())

	plan, err := engine.Plan(context.Background())
	assert.Nil(t, plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStore)

	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, ActionBaseline, se.Op)
	assert.Equal(t, "test", se.Key)
}

func TestEngine_ApplyPlan(t *testing.T) {
	store := newMemStore("X")
	engine := newTestEngine(&fakeSource{items: recs("Y")}, store)

	plan, err := engine.Plan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, store.ops, "planning must not mutate")

	result := engine.apply(context.Background(), zap.NewNop(), plan)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Deleted)
}

func TestErrors_Is(t *testing.T) {
	assert.ErrorIs(t, &FetchError{Err: context.DeadlineExceeded}, ErrFetch)
	assert.ErrorIs(t, &FetchError{Err: context.DeadlineExceeded}, context.DeadlineExceeded)
	assert.ErrorIs(t, &ParseError{Format: "xml", Err: errors.New("eof")}, ErrParse)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", &StoreError{Op: ActionAdd, Key: "k", Err: errors.New("x")}), ErrStore)

	assert.Equal(t, "fetch http://f: unexpected status 503", (&FetchError{URL: "http://f", StatusCode: 503}).Error())
}
