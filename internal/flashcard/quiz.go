// Package flashcard はフラッシュカードの出題・採点ロジックです。DBやHTTPには依存しません
package flashcard

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"go_vi_dict/internal/model"
)

// OptionCount は1問あたりの選択肢の数
const OptionCount = 4

// Fillers は誤答候補が足りないときに使う固定の選択肢
var Fillers = []string{"Tôi không biết", "Không chắc chắn", "Cần xem lại"}

// BuildOptions は正解と、others から重複なしに選んだ最大3つの誤答を混ぜて返します。
// 誤答が足りなければ Fillers で埋めます。
func BuildOptions(correct string, others []string, rng *rand.Rand) []string {
	options := []string{correct}

	pool := make([]string, 0, len(others))
	for _, m := range others {
		if m != "" && m != correct {
			pool = append(pool, m)
		}
	}
	for len(options) < OptionCount && len(pool) > 0 {
		i := rng.IntN(len(pool))
		m := pool[i]
		pool = slices.Delete(pool, i, i+1)
		if !slices.Contains(options, m) {
			options = append(options, m)
		}
	}

	for _, f := range Fillers {
		if len(options) >= OptionCount {
			break
		}
		if !slices.Contains(options, f) {
			options = append(options, f)
		}
	}
	// 正解がフィラーと同じ場合のみ到達する
	for n := 2; len(options) < OptionCount; n++ {
		options = append(options, fmt.Sprintf("%s (%d)", Fillers[len(Fillers)-1], n))
	}

	Shuffle(options, rng)
	return options
}

// BuildQuiz はセット内の各単語について選択肢付きの問題を作ります。
// 誤答は同じセットの他の単語の最初の語義から選びます。
func BuildQuiz(entries []model.WordEntry, rng *rand.Rand) []model.QuizQuestion {
	meanings := make([]string, len(entries))
	for i, e := range entries {
		meanings[i] = e.FirstMeaning()
	}

	questions := make([]model.QuizQuestion, 0, len(entries))
	for i, e := range entries {
		others := make([]string, 0, len(meanings)-1)
		others = append(others, meanings[:i]...)
		others = append(others, meanings[i+1:]...)

		questions = append(questions, model.QuizQuestion{
			Index:        i,
			Word:         e.Word,
			Phonetic:     e.Phonetic,
			PartOfSpeech: e.PartOfSpeech,
			Options:      BuildOptions(meanings[i], others, rng),
		})
	}
	return questions
}

// IsCorrect は回答が最初の語義と完全一致するかを返します
func IsCorrect(entry model.WordEntry, answer string) bool {
	return answer != "" && answer == entry.FirstMeaning()
}

// Score は正答率を 0..100 の整数に四捨五入します。total が0なら0
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(total)))
}

// Grade は expected[i] に対する answers[i] を採点します
func Grade(expected []model.WordEntry, answers []string) model.GradeResult {
	res := model.GradeResult{CorrectAnswers: []int{}, IncorrectAnswers: []int{}}
	for i, e := range expected {
		var a string
		if i < len(answers) {
			a = answers[i]
		}
		if IsCorrect(e, a) {
			res.CorrectAnswers = append(res.CorrectAnswers, i)
		} else {
			res.IncorrectAnswers = append(res.IncorrectAnswers, i)
		}
	}
	res.Score = Score(len(res.CorrectAnswers), len(expected))
	return res
}
