package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go_vi_dict/internal/middleware"
	"go_vi_dict/internal/model"
	"go_vi_dict/internal/service"
	"go_vi_dict/internal/webutil"
)

type FlashcardHandler struct {
	service service.FlashcardService
}

func NewFlashcardHandler(s service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{service: s}
}

type dailySetResponse struct {
	Set *model.DailyWordSet `json:"set"`
}

type historyWordsResponse struct {
	HistoryWords []model.WordEntry `json:"historyWords"`
}

type savedDailySetResponse struct {
	Set     *model.DailyWordSet `json:"set"`
	Message string              `json:"message"`
}

type progressResponse struct {
	Progress *model.UserProgress `json:"progress"`
}

type savedProgressResponse struct {
	Progress *model.UserProgress `json:"progress"`
	Message  string              `json:"message"`
}

type savedSelectedWordsResponse struct {
	Message    string `json:"message"`
	SavedCount int64  `json:"savedCount"`
}

type selectedWordsResponse struct {
	Words []string `json:"words"`
}

type candidatesResponse struct {
	Words []model.WordEntry `json:"words"`
}

type quizResponse struct {
	Questions []model.QuizQuestion `json:"questions"`
}

// GetDailySet は date があればその日のセットを、なければ excludeDate 以外の履歴単語を返します
func (h *FlashcardHandler) GetDailySet(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	if date := q.Get("date"); date != "" {
		set, err := h.service.GetDailySet(r.Context(), principal.UserID, date)
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		webutil.RespondWithJSON(w, http.StatusOK, dailySetResponse{Set: set}, logger)
		return
	}

	words, err := h.service.GetHistoryWords(r.Context(), principal.UserID, q.Get("excludeDate"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, historyWordsResponse{HistoryWords: words}, logger)
}

// SaveDailySet はその日のセットを保存します (同じ日付は上書き)
func (h *FlashcardHandler) SaveDailySet(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	var req model.SaveDailySetRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Invalid daily set request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	set, err := h.service.SaveDailySet(r.Context(), principal.UserID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, savedDailySetResponse{Set: set, Message: "Word set saved successfully"}, logger)
}

// GetProgress はその日の学習結果を返します
func (h *FlashcardHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	progress, err := h.service.GetProgress(r.Context(), principal.UserID, r.URL.Query().Get("date"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progressResponse{Progress: progress}, logger)
}

// SaveProgress は学習結果を保存します
func (h *FlashcardHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	var req model.SaveProgressRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid progress request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.SaveProgress(r.Context(), principal.UserID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Progress rejected: no daily set", "date", req.Date)
		}
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, savedProgressResponse{Progress: progress, Message: "Progress saved successfully"}, logger)
}

// SaveSelectedWords は選択した単語を履歴に追記します
func (h *FlashcardHandler) SaveSelectedWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	var req model.BulkSelectedWordsRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid selected words request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	n, err := h.service.SaveSelectedWords(r.Context(), principal.UserID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, savedSelectedWordsResponse{
		Message:    fmt.Sprintf("Successfully saved %d words to history", n),
		SavedCount: n,
	}, logger)
}

// GetSelectedWords は選択履歴から無作為に単語を返します
func (h *FlashcardHandler) GetSelectedWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	words, err := h.service.GetSelectedWords(r.Context(), principal.UserID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, selectedWordsResponse{Words: words}, logger)
}

// GetCandidates は新しいセット用の候補を辞書から返します
func (h *FlashcardHandler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "limit must be a non-negative integer", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = n
	}

	words, err := h.service.GetCandidates(r.Context(), principal.UserID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, candidatesResponse{Words: words}, logger)
}

// GetQuiz は4択クイズを返します。正解はレスポンスに含めない
func (h *FlashcardHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	q := r.URL.Query()
	questions, err := h.service.GetQuiz(r.Context(), principal.UserID, q.Get("date"), q.Get("excludeDate"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, quizResponse{Questions: questions}, logger)
}

// GradeHistory は復習モードの回答を採点します
func (h *FlashcardHandler) GradeHistory(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())
	principal, ok := currentPrincipal(w, r, logger)
	if !ok {
		return
	}

	var req model.GradeHistoryRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid grade request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.GradeHistory(r.Context(), principal.UserID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
