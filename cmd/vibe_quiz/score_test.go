package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/vibe-quiz/internal/types"
)

func writeSwipes(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "swipes.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func sampleSwipes() []types.SwipeResult {
	return []types.SwipeResult{
		{Card: types.Card{ID: "1", Title: "Puppies", ThemeTags: []string{"animals"}, Category: "animals"}, Liked: true},
		{Card: types.Card{ID: "2", Title: "Rockets", ThemeTags: []string{"space"}, Category: "space"}, Liked: false},
		{Card: types.Card{ID: "3", Title: "Kittens", ThemeTags: []string{"animals"}, Category: "animals"}, Skipped: true},
	}
}

func setScoreFlags(t *testing.T, in, out string) {
	t.Helper()
	scoreInput, scoreOutput, scoreVerbose = in, out, false
	t.Cleanup(func() { scoreInput, scoreOutput, scoreVerbose = "", "", false })
}

func TestScoreCommand_List(t *testing.T) {
	setScoreFlags(t, writeSwipes(t, sampleSwipes()), "")
	cmd, out, _ := newTestCommand()

	require.NoError(t, runScore(cmd, nil))

	var result types.QuizResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 3, result.TotalSwipes)
	assert.Equal(t, 1, result.LikedCount)
	assert.Equal(t, 1, result.SkipCount)
	assert.NotEmpty(t, result.Personality.ID)
	require.NotEmpty(t, result.TopThemes)
	assert.Equal(t, "animals", result.TopThemes[0].Theme)
}

func TestScoreCommand_WrappedAndFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "result.json")
	setScoreFlags(t, writeSwipes(t, map[string]any{"results": sampleSwipes()}), outPath)
	scoreVerbose = true
	cmd, out, errOut := newTestCommand()

	require.NoError(t, runScore(cmd, nil))
	assert.Contains(t, out.String(), "Scored 3 swipes")
	assert.Contains(t, errOut.String(), "YOUR VIBE")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var result types.QuizResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 3, result.TotalSwipes)
}

func TestScoreCommand_Errors(t *testing.T) {
	cmd, _, _ := newTestCommand()

	setScoreFlags(t, filepath.Join(t.TempDir(), "missing.json"), "")
	err := runScore(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read swipe history")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0644))
	setScoreFlags(t, bad, "")
	err = runScore(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
}
