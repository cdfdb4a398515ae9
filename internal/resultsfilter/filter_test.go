package resultsfilter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"learnpath/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFetcher records each state and answers with respond.
type recordingFetcher struct {
	mu      sync.Mutex
	calls   []FilterState
	respond func(state FilterState) (*dto.DataResponse, error)
}

func (f *recordingFetcher) Fetch(ctx context.Context, state FilterState) (*dto.DataResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, state)
	f.mu.Unlock()
	return f.respond(state)
}

func (f *recordingFetcher) Calls() []FilterState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FilterState(nil), f.calls...)
}

func items(n int) []dto.ResultItem {
	out := make([]dto.ResultItem, n)
	for i := range out {
		out[i] = dto.ResultItem{Titel: fmt.Sprintf("course-%d", i), Niveau: i % 4}
	}
	return out
}

func staticFetcher(status string, n int) *recordingFetcher {
	return &recordingFetcher{respond: func(FilterState) (*dto.DataResponse, error) {
		return &dto.DataResponse{Status: status, Data: items(n)}, nil
	}}
}

func TestStars(t *testing.T) {
	assert.Equal(t, "No rating", Stars(0))
	assert.Equal(t, "No rating", Stars(-1))
	assert.Equal(t, "★★★", Stars(3))
}

func TestInitialize(t *testing.T) {
	page := NewMemoryPage("14", "MLAI,GENAI", "2.5", "MLAI", "GENAI", "AIETHIC")
	fetcher := staticFetcher("Here are elearning matching your interest & level", 3)
	f := New(page, fetcher)

	f.Initialize(context.Background())

	assert.Equal(t, []string{"all", "Workshop", "E-Learning", "Guide"}, page.TypeOptions)
	calls := fetcher.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, FilterState{Score: 14, Topics: []string{"MLAI", "GENAI"}, Time: 2.5}, calls[0])

	grid, alert, visible, renders := page.Snapshot()
	assert.Len(t, grid, 3)
	assert.True(t, visible)
	assert.Equal(t, "Here are elearning matching your interest & level", alert)
	assert.Equal(t, 1, renders)
}

func TestInitialize_BadHoldersFallBackToZero(t *testing.T) {
	page := NewMemoryPage("lots", "", "")
	fetcher := staticFetcher("", 0)
	New(page, fetcher).Initialize(context.Background())

	require.Len(t, fetcher.Calls(), 1)
	assert.Equal(t, FilterState{}, fetcher.Calls()[0])
}

func TestFetchAndRender_CapsAtSixInOrder(t *testing.T) {
	page := NewMemoryPage("0", "", "")
	f := New(page, staticFetcher("", 10))

	require.NoError(t, f.FetchAndRender(context.Background(), FilterState{}))

	grid, _, _, _ := page.Snapshot()
	require.Len(t, grid, MaxCards)
	for i, c := range grid {
		assert.Equal(t, fmt.Sprintf("course-%d", i), c.Title)
		assert.Equal(t, Stars(i%4), c.Stars)
	}
}

func TestFetchAndRender_BannerShowAndHide(t *testing.T) {
	page := NewMemoryPage("0", "", "")
	status := "No elearnings matching your criteria. Listing all learnings"
	fetcher := &recordingFetcher{}
	fetcher.respond = func(FilterState) (*dto.DataResponse, error) {
		s := status
		status = ""
		return &dto.DataResponse{Status: s, Data: items(1)}, nil
	}
	f := New(page, fetcher)
	ctx := context.Background()

	require.NoError(t, f.FetchAndRender(ctx, FilterState{}))
	_, _, visible, _ := page.Snapshot()
	assert.True(t, visible)

	require.NoError(t, f.FetchAndRender(ctx, FilterState{}))
	_, _, visible, _ = page.Snapshot()
	assert.False(t, visible)
}

func TestFetchAndRender_FailureLeavesGrid(t *testing.T) {
	page := NewMemoryPage("0", "", "")
	fail := false
	fetcher := &recordingFetcher{respond: func(FilterState) (*dto.DataResponse, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return &dto.DataResponse{Status: "ok", Data: items(2)}, nil
	}}
	f := New(page, fetcher)
	ctx := context.Background()

	require.NoError(t, f.FetchAndRender(ctx, FilterState{}))
	before, alert, visible, renders := page.Snapshot()

	fail = true
	assert.Error(t, f.FetchAndRender(ctx, FilterState{}))
	after, alertAfter, visibleAfter, rendersAfter := page.Snapshot()
	assert.Equal(t, before, after)
	assert.Equal(t, alert, alertAfter)
	assert.Equal(t, visible, visibleAfter)
	assert.Equal(t, renders, rendersAfter)
}

func TestOnFilterChange_Checkbox(t *testing.T) {
	page := NewMemoryPage("9", "MLAI", "0", "MLAI", "DACL", "AIETHIC", "GENAI")
	fetcher := staticFetcher("", 1)
	f := New(page, fetcher)
	ctx := context.Background()

	page.SetChecked("GENAI", true)
	page.SetChecked("DACL", true)
	require.NoError(t, f.OnFilterChange(ctx, Event{Kind: CheckboxChanged}))

	calls := fetcher.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"DACL", "GENAI"}, calls[0].Topics)
	_, topic, _ := page.Holders()
	assert.Equal(t, "DACL,GENAI", topic)
}

func TestOnFilterChange_Slider(t *testing.T) {
	page := NewMemoryPage("9", "", "0")
	fetcher := staticFetcher("", 1)
	f := New(page, fetcher)
	ctx := context.Background()

	for _, v := range []string{"1", "2", "3", "4"} {
		require.NoError(t, f.OnFilterChange(ctx, Event{Kind: SliderDragged, Value: v}))
	}
	assert.Empty(t, fetcher.Calls())

	require.NoError(t, f.OnFilterChange(ctx, Event{Kind: SliderReleased, Value: "4"}))
	calls := fetcher.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, 4.0, calls[0].Time)
	assert.Equal(t, 9.0, calls[0].Score)
	assert.Equal(t, "4", page.TimeDisplay)
	_, _, timeHolder := page.Holders()
	assert.Equal(t, "4", timeHolder)

	assert.Error(t, f.OnFilterChange(ctx, Event{Kind: SliderReleased, Value: "far"}))
	assert.Len(t, fetcher.Calls(), 1)
}

func TestOnFilterChange_TypeIsNotWired(t *testing.T) {
	page := NewMemoryPage("9", "", "0")
	fetcher := staticFetcher("", 1)
	f := New(page, fetcher)

	require.NoError(t, f.OnFilterChange(context.Background(), Event{Kind: TypeSelected, Value: "Workshop"}))
	assert.Empty(t, fetcher.Calls())
	assert.Error(t, f.OnFilterChange(context.Background(), Event{Kind: EventKind(99)}))
}

func TestFetchAndRender_DropsStaleResponse(t *testing.T) {
	page := NewMemoryPage("0", "", "")
	releaseOld := make(chan struct{})
	oldStarted := make(chan struct{})
	fetcher := &recordingFetcher{respond: func(state FilterState) (*dto.DataResponse, error) {
		if state.Time == 1 {
			close(oldStarted)
			<-releaseOld
			return &dto.DataResponse{Status: "old", Data: items(1)}, nil
		}
		return &dto.DataResponse{Status: "new", Data: items(2)}, nil
	}}
	f := New(page, fetcher)
	ctx := context.Background()

	done := make(chan error)
	go func() { done <- f.FetchAndRender(ctx, FilterState{Time: 1}) }()
	<-oldStarted

	require.NoError(t, f.FetchAndRender(ctx, FilterState{Time: 2}))
	close(releaseOld)
	require.NoError(t, <-done)

	grid, alert, _, renders := page.Snapshot()
	assert.Equal(t, "new", alert)
	assert.Len(t, grid, 2)
	assert.Equal(t, 1, renders)
}

func TestHTTPFetcher(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/data", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok","data":[{"Titel":"Intro","Niveau":2}]}`)
	}))
	defer srv.Close()

	resp, err := NewHTTPFetcher(srv.URL+"/", srv.Client()).Fetch(context.Background(),
		FilterState{Score: 12, Topics: []string{"MLAI", "GENAI"}, Time: 2.5})
	require.NoError(t, err)
	assert.Equal(t, "score=12&topic=MLAI,GENAI&time=2.5", gotQuery)
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 2, resp.Data[0].Niveau)
}

func TestHTTPFetcher_Errors(t *testing.T) {
	bodies := map[string]struct {
		status int
		body   string
	}{
		"server error":   {status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		"schema failure": {status: http.StatusOK, body: `{"items":[]}`},
		"not json":       {status: http.StatusOK, body: `<html>`},
	}
	for name, tc := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			_, err := NewHTTPFetcher(srv.URL, nil).Fetch(context.Background(), FilterState{})
			assert.Error(t, err)
		})
	}
}

func TestDataURL(t *testing.T) {
	assert.Equal(t, "http://x/data?score=0&topic=&time=0", DataURL("http://x", FilterState{}))
	u := DataURL("http://x/", FilterState{Score: 3, Topics: []string{"A & B", "C"}, Time: 1})
	assert.True(t, strings.HasPrefix(u, "http://x/data?score=3&topic=A+%26+B,C&time=1"), u)
}

func TestMemoryPage_CheckedTopicsKeepDocumentOrder(t *testing.T) {
	page := NewMemoryPage("", "", "", "a", "b", "c")
	page.SetChecked("c", true)
	page.SetChecked("a", true)
	page.SetChecked("b", true)
	page.SetChecked("b", false)
	assert.Equal(t, []string{"a", "c"}, page.CheckedTopics())
	assert.Equal(t, []string{"a", "b", "c"}, page.Topics())
}
