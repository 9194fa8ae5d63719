package flashcard

import (
	"math/rand/v2"
	"testing"

	"go_vi_dict/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func entry(word, meaning string) model.WordEntry {
	return model.WordEntry{Word: word, Definitions: []model.Definition{{ViMeaning: meaning}}}
}

func assertDistinct(t *testing.T, options []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, o := range options {
		assert.False(t, seen[o], "duplicate option %q", o)
		seen[o] = true
	}
}

func TestBuildOptions(t *testing.T) {
	tests := []struct {
		name        string
		correct     string
		others      []string
		wantFillers int
	}{
		{"誤答が十分にある", "con mèo", []string{"con chó", "con chim", "con cá", "con bò"}, 0},
		{"誤答が1つ", "con mèo", []string{"con chó"}, 2},
		{"誤答なし", "con mèo", nil, 3},
		{"正解と同じ語義や空文字は除外", "con mèo", []string{"con mèo", "", "con chó", "con chó"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := BuildOptions(tt.correct, tt.others, testRand())
			require.Len(t, opts, OptionCount)
			assert.Contains(t, opts, tt.correct)
			assertDistinct(t, opts)

			fillers := 0
			for _, o := range opts {
				for _, f := range Fillers {
					if o == f {
						fillers++
					}
				}
			}
			assert.Equal(t, tt.wantFillers, fillers)
		})
	}

	t.Run("正解がフィラーと同じでも4つの異なる選択肢", func(t *testing.T) {
		opts := BuildOptions("Cần xem lại", nil, testRand())
		require.Len(t, opts, OptionCount)
		assertDistinct(t, opts)
	})
}

func TestBuildQuiz(t *testing.T) {
	entries := []model.WordEntry{
		entry("cat", "con mèo"),
		entry("dog", "con chó"),
		entry("bird", "con chim"),
	}
	entries[0].Phonetic = "/kæt/"
	entries[0].PartOfSpeech = "noun"

	qs := BuildQuiz(entries, testRand())
	require.Len(t, qs, 3)
	for i, q := range qs {
		assert.Equal(t, i, q.Index)
		assert.Equal(t, entries[i].Word, q.Word)
		require.Len(t, q.Options, OptionCount)
		assert.Contains(t, q.Options, entries[i].FirstMeaning())
		assertDistinct(t, q.Options)
	}
	assert.Equal(t, "/kæt/", qs[0].Phonetic)
	assert.Equal(t, "noun", qs[0].PartOfSpeech)
}

func TestScore(t *testing.T) {
	assert.Equal(t, 70, Score(14, 20))
	assert.Equal(t, 33, Score(1, 3))
	assert.Equal(t, 67, Score(2, 3))
	assert.Equal(t, 100, Score(5, 5))
	assert.Equal(t, 0, Score(0, 0))
	assert.Equal(t, 50, Score(1, 2))
}

func TestGrade(t *testing.T) {
	expected := []model.WordEntry{
		entry("cat", "con mèo"),
		entry("dog", "con chó"),
		entry("bird", "con chim"),
		entry("fish", "con cá"),
	}
	res := Grade(expected, []string{"con mèo", "con mèo", "con chim"})

	assert.Equal(t, []int{0, 2}, res.CorrectAnswers)
	assert.Equal(t, []int{1, 3}, res.IncorrectAnswers, "回答のない問題は不正解")
	assert.Equal(t, 50, res.Score)

	empty := Grade(nil, nil)
	assert.NotNil(t, empty.CorrectAnswers)
	assert.NotNil(t, empty.IncorrectAnswers)
	assert.Equal(t, 0, empty.Score)
}

func TestSample(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	got := Sample(items, 4, testRand())
	assert.Len(t, got, 4)
	assert.Subset(t, items, got)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, items, "元のスライスは変更しない")

	all := Sample(items, 100, testRand())
	assert.ElementsMatch(t, items, all)

	assert.Empty(t, Sample(items, 0, testRand()))
	assert.NotNil(t, Sample[int](nil, 5, testRand()))
}

func TestValidateProgress(t *testing.T) {
	assert.NoError(t, ValidateProgress([]int{0, 2}, []int{1}, 3))
	assert.NoError(t, ValidateProgress([]int{}, []int{}, 0))
	assert.ErrorIs(t, ValidateProgress([]int{3}, nil, 3), model.ErrInvalidInput)
	assert.ErrorIs(t, ValidateProgress([]int{-1}, nil, 3), model.ErrInvalidInput)
	assert.ErrorIs(t, ValidateProgress([]int{1}, []int{1}, 3), model.ErrInvalidInput)
}
