package exercisedb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"alcyxob/fittrack/internal/domain"

	"github.com/coocood/freecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExercisesFromAPI(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exercises", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "secret", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "exercisedb.p.rapidapi.com", r.Header.Get("x-rapidapi-host"))
		_, _ = w.Write([]byte(`{"data":[{"exerciseId":"a","name":"push up","bodyParts":["chest"]}]}`))
	}))
	defer ts.Close()

	c := &Client{APIKey: "secret", Host: "exercisedb.p.rapidapi.com", BaseURL: ts.URL, HTTPClient: ts.Client()}
	exercises, source := c.Exercises(context.Background())
	assert.Equal(t, SourceAPI, source)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Push up", exercises[0].Name)
	assert.Equal(t, "Chest", exercises[0].Muscle)
}

func TestExercisesFallback(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"forbidden", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"You are not subscribed to this API."}`))
		}},
		{"unexpected shape", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"items":[{"name":"squat"}]}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
			exercises, source := c.Exercises(context.Background())
			assert.Equal(t, SourceFallback, source)
			assertFallback(t, exercises)
		})
	}
}

func TestExercisesFallbackOnNetworkError(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := &Client{BaseURL: url}
	exercises, source := c.Exercises(context.Background())
	assert.Equal(t, SourceFallback, source)
	assertFallback(t, exercises)
}

func TestExercisesCached(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[{"id":"1","name":"squat","bodyPart":"upper legs"}]`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client(), Limit: 10, Cache: freecache.NewCache(1024 * 1024)}
	first, source := c.Exercises(context.Background())
	assert.Equal(t, SourceAPI, source)
	second, source := c.Exercises(context.Background())
	assert.Equal(t, SourceCache, source)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFallbackCatalogIsACopy(t *testing.T) {
	catalog := FallbackCatalog()
	catalog[0].Name = "changed"
	assert.Equal(t, "Bench Press", FallbackCatalog()[0].Name)
}

func assertFallback(t *testing.T, exercises []domain.Exercise) {
	t.Helper()
	require.Len(t, exercises, 8)
	names := make([]string, len(exercises))
	for i, ex := range exercises {
		names[i] = ex.Name
	}
	assert.Equal(t, []string{
		"Bench Press", "Squat", "Deadlift", "Pull Up",
		"Dumbbell Curl", "Tricep Dip", "Lunges", "Shoulder Press",
	}, names)
}
