package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go_vi_dict/internal/config"
	"go_vi_dict/internal/dictionary"
	"go_vi_dict/internal/flashcard"
	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardService interface {
	// GetDailySet はその日のセットを返します。なければ nil, nil
	GetDailySet(ctx context.Context, userID uuid.UUID, date string) (*model.DailyWordSet, error)
	SaveDailySet(ctx context.Context, userID uuid.UUID, req *model.SaveDailySetRequest) (*model.DailyWordSet, error)
	// GetHistoryWords は excludeDate 以外のセットの単語から無作為に選んだものを返します
	GetHistoryWords(ctx context.Context, userID uuid.UUID, excludeDate string) ([]model.WordEntry, error)
	// GetProgress はその日の学習結果を返します。セットか結果がなければ nil, nil
	GetProgress(ctx context.Context, userID uuid.UUID, date string) (*model.UserProgress, error)
	SaveProgress(ctx context.Context, userID uuid.UUID, req *model.SaveProgressRequest) (*model.UserProgress, error)
	SaveSelectedWords(ctx context.Context, userID uuid.UUID, req *model.BulkSelectedWordsRequest) (int64, error)
	GetSelectedWords(ctx context.Context, userID uuid.UUID) ([]string, error)
	GetCandidates(ctx context.Context, userID uuid.UUID, limit int) ([]model.WordEntry, error)
	GetQuiz(ctx context.Context, userID uuid.UUID, date, excludeDate string) ([]model.QuizQuestion, error)
	GradeHistory(ctx context.Context, userID uuid.UUID, req *model.GradeHistoryRequest) (*model.GradeResult, error)
}

type flashcardService struct {
	db           *gorm.DB
	dailySetRepo repository.DailySetRepository
	progressRepo repository.ProgressRepository
	selectedRepo repository.SelectedWordRepository
	catalogue    *dictionary.Catalogue
	cfg          config.FlashcardConfig
	newRand      func() *rand.Rand
}

func NewFlashcardService(
	db *gorm.DB,
	dailySetRepo repository.DailySetRepository,
	progressRepo repository.ProgressRepository,
	selectedRepo repository.SelectedWordRepository,
	catalogue *dictionary.Catalogue,
	cfg config.FlashcardConfig,
) FlashcardService {
	if catalogue == nil {
		catalogue = dictionary.New(nil)
	}
	return &flashcardService{
		db:           db,
		dailySetRepo: dailySetRepo,
		progressRepo: progressRepo,
		selectedRepo: selectedRepo,
		catalogue:    catalogue,
		cfg:          cfg,
		newRand:      flashcard.NewRand,
	}
}

func validDate(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}

func invalidDate(field string) error {
	return model.NewAppError("INVALID_DATE", "Date must be in YYYY-MM-DD format", field, model.ErrInvalidInput)
}

func (s *flashcardService) GetDailySet(ctx context.Context, userID uuid.UUID, date string) (*model.DailyWordSet, error) {
	logger := middleware.GetLogger(ctx)
	if !validDate(date) {
		return nil, invalidDate("date")
	}

	set, err := s.dailySetRepo.FindByDate(ctx, s.db, userID, date)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		logger.Error("Failed to fetch daily word set", "error", err, "date", date)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to fetch daily word set", "", err)
	}
	return set, nil
}

func (s *flashcardService) SaveDailySet(ctx context.Context, userID uuid.UUID, req *model.SaveDailySetRequest) (*model.DailyWordSet, error) {
	logger := middleware.GetLogger(ctx)

	if req.Date == "" || len(req.WordData) == 0 {
		return nil, model.NewAppError("MISSING_FIELDS", "Date and wordData are required", "", model.ErrInvalidInput)
	}
	if !validDate(req.Date) {
		return nil, invalidDate("date")
	}
	if limit := s.cfg.DailySetSize; limit > 0 && len(req.WordData) > limit {
		return nil, model.NewAppError("TOO_MANY_WORDS", fmt.Sprintf("A daily set can contain at most %d words", limit), "wordData", model.ErrInvalidInput)
	}
	entries := make([]model.WordEntry, len(req.WordData))
	for i, e := range req.WordData {
		e.Word = strings.TrimSpace(e.Word)
		if err := e.Validate(); err != nil {
			return nil, model.NewAppError("INVALID_WORD_ENTRY", fmt.Sprintf("wordData[%d] is invalid", i), "wordData", err)
		}
		entries[i] = e
	}

	set := &model.DailyWordSet{UserID: userID, Date: req.Date, WordData: entries}
	if err := s.dailySetRepo.Upsert(ctx, s.db, set); err != nil {
		logger.Error("Failed to save daily word set", "error", err, "date", req.Date)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save daily word set", "", err)
	}

	logger.Info("Daily word set saved", "daily_set_id", set.ID, "date", set.Date, "words", len(set.WordData))
	return set, nil
}

func (s *flashcardService) GetHistoryWords(ctx context.Context, userID uuid.UUID, excludeDate string) ([]model.WordEntry, error) {
	logger := middleware.GetLogger(ctx)
	if excludeDate != "" && !validDate(excludeDate) {
		return nil, invalidDate("excludeDate")
	}

	words, err := s.historyEntries(ctx, s.db, userID, excludeDate)
	if err != nil {
		logger.Error("Failed to fetch history words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to fetch daily word set", "", err)
	}
	return flashcard.Sample(words, s.cfg.HistorySampleSize, s.newRand()), nil
}

// historyEntries は excludeDate 以外の全セットの単語を平坦化します
func (s *flashcardService) historyEntries(ctx context.Context, db *gorm.DB, userID uuid.UUID, excludeDate string) ([]model.WordEntry, error) {
	sets, err := s.dailySetRepo.FindAllExceptDate(ctx, db, userID, excludeDate)
	if err != nil {
		return nil, err
	}
	var words []model.WordEntry
	for _, set := range sets {
		words = append(words, set.WordData...)
	}
	return words, nil
}

func (s *flashcardService) GetProgress(ctx context.Context, userID uuid.UUID, date string) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	if date == "" {
		return nil, model.NewAppError("MISSING_DATE", "Date parameter required", "date", model.ErrInvalidInput)
	}
	if !validDate(date) {
		return nil, invalidDate("date")
	}

	set, err := s.dailySetRepo.FindByDate(ctx, s.db, userID, date)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		logger.Error("Failed to fetch daily word set for progress", "error", err, "date", date)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to fetch user progress", "", err)
	}

	progress, err := s.progressRepo.FindBySetID(ctx, s.db, userID, set.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		logger.Error("Failed to fetch user progress", "error", err, "daily_set_id", set.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to fetch user progress", "", err)
	}
	return progress, nil
}

// SaveProgress は結果を後勝ちで保存します。スコアは回答インデックスから再計算します
func (s *flashcardService) SaveProgress(ctx context.Context, userID uuid.UUID, req *model.SaveProgressRequest) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx).With("date", req.Date)
	var saved *model.UserProgress

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		set, err := s.dailySetRepo.FindByDate(ctx, tx, userID, req.Date)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("DAILY_SET_NOT_FOUND", "Daily word set not found", "date", model.ErrNotFound)
			}
			logger.Error("Failed to fetch daily word set for progress", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save user progress", "", err)
		}

		if err := flashcard.ValidateProgress(req.CorrectAnswers, req.IncorrectAnswers, len(set.WordData)); err != nil {
			return model.NewAppError("INVALID_ANSWERS", "Answer indices do not match the daily word set", "correctAnswers", err)
		}

		score := flashcard.Score(len(req.CorrectAnswers), len(req.CorrectAnswers)+len(req.IncorrectAnswers))
		if req.Score != nil && *req.Score != score {
			logger.Warn("Client score differs from computed score", "client_score", *req.Score, "score", score)
		}

		progress := &model.UserProgress{
			UserID:           userID,
			DailySetID:       set.ID,
			CorrectAnswers:   nonNil(req.CorrectAnswers),
			IncorrectAnswers: nonNil(req.IncorrectAnswers),
			Score:            score,
			CompletedAt:      time.Now(),
		}
		if err := s.progressRepo.Upsert(ctx, tx, progress); err != nil {
			logger.Error("Failed to upsert user progress", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save user progress", "", err)
		}
		saved = progress
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User progress saved", "daily_set_id", saved.DailySetID, "score", saved.Score)
	return saved, nil
}

func nonNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

func (s *flashcardService) SaveSelectedWords(ctx context.Context, userID uuid.UUID, req *model.BulkSelectedWordsRequest) (int64, error) {
	logger := middleware.GetLogger(ctx)
	if len(req.Words) == 0 || req.SelectedDate == "" {
		return 0, model.NewAppError("MISSING_FIELDS", "Words array and selectedDate are required", "", model.ErrInvalidInput)
	}

	rows := make([]*model.SelectedWord, 0, len(req.Words))
	for _, w := range req.Words {
		w = strings.TrimSpace(w)
		if w == "" {
			return 0, model.NewAppError("INVALID_WORD", "Words must not be empty", "words", model.ErrInvalidInput)
		}
		rows = append(rows, &model.SelectedWord{UserID: userID, Word: w, SelectedDate: req.SelectedDate})
	}

	var saved int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.selectedRepo.CreateBatch(ctx, tx, rows)
		saved = n
		return err
	})
	if err != nil {
		logger.Error("Failed to save selected words", "error", err, "count", len(rows))
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save selected words", "", err)
	}

	logger.Info("Selected words saved", "count", saved, "selected_date", req.SelectedDate)
	return saved, nil
}

// GetSelectedWords は選択履歴の単語を無作為に返します。
// 既定では全ユーザーが対象で、flashcard.selected_words_user_scoped で本人に限定します。
func (s *flashcardService) GetSelectedWords(ctx context.Context, userID uuid.UUID) ([]string, error) {
	logger := middleware.GetLogger(ctx)

	var scope *uuid.UUID
	if s.cfg.SelectedWordsUserScoped {
		scope = &userID
	}
	words, err := s.selectedRepo.Sample(ctx, s.db, scope, s.cfg.SelectedWordsSample)
	if err != nil {
		logger.Error("Failed to fetch selected words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to fetch selected words", "", err)
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

// GetCandidates は本人が過去に選んでいない辞書の単語から候補を選びます
func (s *flashcardService) GetCandidates(ctx context.Context, userID uuid.UUID, limit int) ([]model.WordEntry, error) {
	logger := middleware.GetLogger(ctx)
	if limit <= 0 || limit > s.cfg.CandidatePoolSize {
		limit = s.cfg.CandidatePoolSize
	}

	selected, err := s.selectedRepo.ListWordsByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list selected words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to generate words", "", err)
	}
	return s.catalogue.Candidates(selected, limit, s.newRand()), nil
}

// GetQuiz は date のセット、または excludeDate 以外の履歴から問題を作ります
func (s *flashcardService) GetQuiz(ctx context.Context, userID uuid.UUID, date, excludeDate string) ([]model.QuizQuestion, error) {
	var entries []model.WordEntry
	if date != "" {
		set, err := s.GetDailySet(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		if set == nil {
			return nil, model.NewAppError("DAILY_SET_NOT_FOUND", "Daily word set not found", "date", model.ErrNotFound)
		}
		entries = set.WordData
	} else {
		history, err := s.GetHistoryWords(ctx, userID, excludeDate)
		if err != nil {
			return nil, err
		}
		entries = history
	}
	return flashcard.BuildQuiz(entries, s.newRand()), nil
}

// GradeHistory は復習モードの回答を採点します。結果は保存しません
func (s *flashcardService) GradeHistory(ctx context.Context, userID uuid.UUID, req *model.GradeHistoryRequest) (*model.GradeResult, error) {
	logger := middleware.GetLogger(ctx)
	if len(req.Answers) == 0 {
		return nil, model.NewAppError("MISSING_FIELDS", "Answers are required", "answers", model.ErrInvalidInput)
	}

	history, err := s.historyEntries(ctx, s.db, userID, "")
	if err != nil {
		logger.Error("Failed to fetch history words for grading", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to grade answers", "", err)
	}
	byWord := make(map[string]model.WordEntry, len(history))
	for _, e := range history {
		key := strings.ToLower(e.Word)
		if _, ok := byWord[key]; !ok {
			byWord[key] = e
		}
	}

	expected := make([]model.WordEntry, len(req.Answers))
	answers := make([]string, len(req.Answers))
	for i, a := range req.Answers {
		e, ok := byWord[strings.ToLower(strings.TrimSpace(a.Word))]
		if !ok {
			// 履歴にない単語は辞書で採点する。どちらにもなければ不正解
			e, _ = s.catalogue.Lookup(a.Word)
		}
		expected[i] = e
		answers[i] = a.Answer
	}

	res := flashcard.Grade(expected, answers)
	return &res, nil
}
