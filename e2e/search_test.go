//go:build e2e && unix

package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSearchShowsResults(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	svc := tf.StartService(WithResponse(searchResponse{
		Employees: sampleEmployees(),
		Summary:   "Two engineers match",
	}))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Search("  python developers "))

	require.True(t, tf.SeePlain("Two engineers match"), "Should show the summary")
	require.True(t, tf.SeePlain("2 found"), "Should show the result count")
	require.True(t, tf.SeePlain("Ada Lovelace"), "Should show the first card")
	require.True(t, tf.SeePlain("Engineering • 6 years • Joined 2018-01-01"), "Should show the info line")
	require.Equal(t, []string{"python developers"}, svc.Queries(), "Query is trimmed and sent once")
}

func TestInitialQueryFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	svc := tf.StartService(WithResponse(searchResponse{Employees: sampleEmployees()[1:]}))
	require.NoError(t, tf.StartApp("--query", "cobol"))

	require.True(t, tf.SeePlain("Grace Hopper"), "Initial query should run on start")
	require.Equal(t, []string{"cobol"}, svc.Queries())
}

func TestEmptyResultSet(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.StartService(WithResponse(searchResponse{Employees: []employee{}}))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Search("xyzzy"))
	require.True(t, tf.SeePlain("No employees matched"), "Should show the empty hint")
	require.False(t, tf.OutputContainsPlain("Results:", 300*time.Millisecond), "No results header for an empty set")
}

func TestFailureShowsNotice(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.StartService(WithStatus(http.StatusInternalServerError))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Search("python"))
	require.True(t, tf.SeePlain("Search failed."), "Should show the failure notice")
}

func TestEnterIgnoredWhileSearching(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	gate := make(chan struct{})
	svc := tf.StartService(WithGate(gate), WithResponse(searchResponse{Employees: sampleEmployees()}))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Search("python"))
	require.True(t, tf.SeePlain("Searching..."), "Should show the busy indicator")

	require.NoError(t, tf.SendEnter())
	require.NoError(t, tf.SendEnter())
	time.Sleep(300 * time.Millisecond)
	close(gate)

	require.True(t, tf.SeePlain("Ada Lovelace"), "Should show results once released")
	require.Len(t, svc.Queries(), 1, "Repeated enter while busy sends nothing")
}

func TestPresetKey(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	svc := tf.StartService(WithResponse(searchResponse{Employees: sampleEmployees()}))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Try:"), "Should show the presets")

	require.NoError(t, tf.Browse())
	require.NoError(t, tf.SendKeys("4"))

	require.True(t, tf.SeePlain("Ada Lovelace"), "Preset should run a search")
	require.Equal(t, []string{"Data scientists"}, svc.Queries())
}
