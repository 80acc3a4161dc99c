package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dukedan/consensus-backend/internal/domain"
	"github.com/dukedan/consensus-backend/internal/service/debate"
)

// debateService defines the minimal interface needed by DebateHandler.
type debateService interface {
	GetTopicBundle(ctx context.Context, input debate.GetTopicBundleInput) (*debate.TopicBundle, error)
	ListTopTopics(ctx context.Context) ([]domain.TopicSummary, error)
	CreateTopic(ctx context.Context, input debate.CreateTopicInput) (*domain.Topic, error)
	CreateArgument(ctx context.Context, input debate.CreateArgumentInput) (*domain.Argument, error)
	RemoveArgument(ctx context.Context, argumentID uuid.UUID) error
	CreateComment(ctx context.Context, input debate.CreateCommentInput) (*domain.Comment, error)
	RemoveComment(ctx context.Context, commentID uuid.UUID) error
	ApplyVote(ctx context.Context, input debate.ApplyVoteInput) (*debate.VoteResult, error)
	RemoveVote(ctx context.Context, input debate.RemoveVoteInput) (*debate.VoteResult, error)
}

// DebateHandler serves the topic, argument, comment and vote endpoints.
type DebateHandler struct {
	svc debateService
	log *slog.Logger
}

// NewDebateHandler creates a DebateHandler.
func NewDebateHandler(svc debateService, logger *slog.Logger) *DebateHandler {
	return &DebateHandler{svc: svc, log: logger.With("handler", "debate")}
}

// ---------------------------------------------------------------------------
// Request / response shapes
// ---------------------------------------------------------------------------

type createTopicRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type createArgumentRequest struct {
	Side string `json:"side"`
	Body string `json:"body"`
}

type createCommentRequest struct {
	ParentID *string `json:"parentId,omitempty"`
	Body     string  `json:"body"`
}

type voteRequest struct {
	Value int `json:"value"`
}

type topicBundleResponse struct {
	Topic     topicResponse      `json:"topic"`
	Arguments []argumentResponse `json:"arguments"`
	Meta      bundleMetaResponse `json:"meta"`
}

type bundleMetaResponse struct {
	Ordering           string `json:"ordering"`
	RequestedArguments int    `json:"requestedArguments"`
	ReturnedArguments  int    `json:"returnedArguments"`
}

type topicResponse struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   *string      `json:"description,omitempty"`
	Slug          string       `json:"slug"`
	Creator       userResponse `json:"creator"`
	IsActive      bool         `json:"isActive"`
	Tags          []string     `json:"tags"`
	ProArguments  int          `json:"proArguments"`
	ConArguments  int          `json:"conArguments"`
	Score         int          `json:"score"`
	UpvoteCount   int          `json:"upvoteCount"`
	DownvoteCount int          `json:"downvoteCount"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type argumentResponse struct {
	ID            string            `json:"id"`
	Side          string            `json:"side"`
	Body          string            `json:"body"`
	Creator       userResponse      `json:"creator"`
	UpvoteCount   int               `json:"upvoteCount"`
	DownvoteCount int               `json:"downvoteCount"`
	Score         int               `json:"score"`
	Comments      []commentResponse `json:"comments"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type commentResponse struct {
	ID        string       `json:"id"`
	ParentID  *string      `json:"parentId,omitempty"`
	Body      string       `json:"body"`
	Creator   userResponse `json:"creator"`
	CreatedAt time.Time    `json:"createdAt"`
}

type topicSummaryResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	UpvoteCount   int       `json:"upvoteCount"`
	DownvoteCount int       `json:"downvoteCount"`
	TotalVotes    int       `json:"totalVotes"`
	CreatorName   string    `json:"creatorName"`
	CreatedAt     time.Time `json:"createdAt"`
}

type voteResponse struct {
	TargetType    string `json:"targetType"`
	TargetID      string `json:"targetId"`
	UpvoteCount   int    `json:"upvoteCount"`
	DownvoteCount int    `json:"downvoteCount"`
	Score         int    `json:"score"`
	Changed       bool   `json:"changed"`
}

// ---------------------------------------------------------------------------
// Read endpoints
// ---------------------------------------------------------------------------

// GetTopic handles GET /api/topics/{id}. Query parameters num_arguments and
// ordering tune the argument selection; malformed values fall back to
// defaults instead of erroring.
func (h *DebateHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	q := r.URL.Query()
	bundle, err := h.svc.GetTopicBundle(r.Context(), debate.GetTopicBundleInput{
		TopicID:       topicID,
		ArgumentLimit: debate.ParseArgumentLimit(q.Get("num_arguments")),
		Ordering:      debate.ParseOrdering(q.Get("ordering")),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicBundleResponse(bundle))
}

// TopTopics handles GET /api/top-topics.
func (h *DebateHandler) TopTopics(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListTopTopics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]topicSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, topicSummaryResponse{
			ID:            s.ID.String(),
			Title:         s.Title,
			UpvoteCount:   s.UpvoteCount,
			DownvoteCount: s.DownvoteCount,
			TotalVotes:    s.TotalVotes,
			CreatorName:   s.CreatorName,
			CreatedAt:     s.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"topics": resp})
}

// ---------------------------------------------------------------------------
// Write endpoints
// ---------------------------------------------------------------------------

// CreateTopic handles POST /api/topics.
func (h *DebateHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topic, err := h.svc.CreateTopic(r.Context(), debate.CreateTopicInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(topic))
}

// CreateArgument handles POST /api/topics/{id}/arguments.
func (h *DebateHandler) CreateArgument(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req createArgumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	arg, err := h.svc.CreateArgument(r.Context(), debate.CreateArgumentInput{
		TopicID: topicID,
		Side:    domain.ArgumentSide(req.Side),
		Body:    req.Body,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, argumentResponse{
		ID:            arg.ID.String(),
		Side:          arg.Side.String(),
		Body:          arg.Body,
		Creator:       userResponse{ID: arg.CreatedBy.String()},
		UpvoteCount:   arg.UpvoteCount,
		DownvoteCount: arg.DownvoteCount,
		Score:         arg.Score,
		Comments:      []commentResponse{},
		CreatedAt:     arg.CreatedAt,
	})
}

// DeleteArgument handles DELETE /api/arguments/{id}.
func (h *DebateHandler) DeleteArgument(w http.ResponseWriter, r *http.Request) {
	argumentID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveArgument(r.Context(), argumentID); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateComment handles POST /api/arguments/{id}/comments.
func (h *DebateHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	argumentID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		id, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid parentId")
			return
		}
		parentID = &id
	}

	comment, err := h.svc.CreateComment(r.Context(), debate.CreateCommentInput{
		ArgumentID: argumentID,
		ParentID:   parentID,
		Body:       req.Body,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var respParent *string
	if comment.ParentID != nil {
		s := comment.ParentID.String()
		respParent = &s
	}
	writeJSON(w, http.StatusCreated, commentResponse{
		ID:        comment.ID.String(),
		ParentID:  respParent,
		Body:      comment.Body,
		Creator:   userResponse{ID: comment.CreatedBy.String()},
		CreatedAt: comment.CreatedAt,
	})
}

// DeleteComment handles DELETE /api/comments/{id}.
func (h *DebateHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveComment(r.Context(), commentID); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// VoteTopic handles POST /api/topics/{id}/vote.
func (h *DebateHandler) VoteTopic(w http.ResponseWriter, r *http.Request) {
	h.applyVote(w, r, domain.VoteTargetTopic)
}

// VoteArgument handles POST /api/arguments/{id}/vote.
func (h *DebateHandler) VoteArgument(w http.ResponseWriter, r *http.Request) {
	h.applyVote(w, r, domain.VoteTargetArgument)
}

// UnvoteTopic handles DELETE /api/topics/{id}/vote.
func (h *DebateHandler) UnvoteTopic(w http.ResponseWriter, r *http.Request) {
	h.removeVote(w, r, domain.VoteTargetTopic)
}

// UnvoteArgument handles DELETE /api/arguments/{id}/vote.
func (h *DebateHandler) UnvoteArgument(w http.ResponseWriter, r *http.Request) {
	h.removeVote(w, r, domain.VoteTargetArgument)
}

func (h *DebateHandler) applyVote(w http.ResponseWriter, r *http.Request, target domain.VoteTarget) {
	targetID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.ApplyVote(r.Context(), debate.ApplyVoteInput{
		TargetType: target,
		TargetID:   targetID,
		Value:      domain.VoteValue(req.Value),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVoteResponse(result))
}

func (h *DebateHandler) removeVote(w http.ResponseWriter, r *http.Request, target domain.VoteTarget) {
	targetID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.svc.RemoveVote(r.Context(), debate.RemoveVoteInput{
		TargetType: target,
		TargetID:   targetID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVoteResponse(result))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (h *DebateHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathUUID parses the named path segment as a UUID, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func toTopicBundleResponse(bundle *debate.TopicBundle) topicBundleResponse {
	args := make([]argumentResponse, 0, len(bundle.Arguments))
	for _, a := range bundle.Arguments {
		comments := make([]commentResponse, 0, len(a.Comments))
		for _, c := range a.Comments {
			var parentID *string
			if c.ParentID != nil {
				s := c.ParentID.String()
				parentID = &s
			}
			comments = append(comments, commentResponse{
				ID:        c.ID.String(),
				ParentID:  parentID,
				Body:      c.Body,
				Creator:   toCreatorResponse(c.Creator),
				CreatedAt: c.CreatedAt,
			})
		}
		args = append(args, argumentResponse{
			ID:            a.ID.String(),
			Side:          a.Side.String(),
			Body:          a.Body,
			Creator:       toCreatorResponse(a.Creator),
			UpvoteCount:   a.UpvoteCount,
			DownvoteCount: a.DownvoteCount,
			Score:         a.Score,
			Comments:      comments,
			CreatedAt:     a.CreatedAt,
		})
	}

	t := bundle.Topic
	return topicBundleResponse{
		Topic: topicResponse{
			ID:            t.ID.String(),
			Title:         t.Title,
			Description:   t.Description,
			Slug:          t.Slug,
			Creator:       toCreatorResponse(t.Creator),
			IsActive:      t.IsActive,
			Tags:          t.Tags,
			ProArguments:  t.ArgumentCounts.Pro,
			ConArguments:  t.ArgumentCounts.Con,
			Score:         t.Score,
			UpvoteCount:   t.UpvoteCount,
			DownvoteCount: t.DownvoteCount,
			CreatedAt:     t.CreatedAt,
			UpdatedAt:     t.UpdatedAt,
		},
		Arguments: args,
		Meta: bundleMetaResponse{
			Ordering:           bundle.Meta.Ordering.String(),
			RequestedArguments: bundle.Meta.RequestedArguments,
			ReturnedArguments:  bundle.Meta.ReturnedArguments,
		},
	}
}

// toCreatorResponse renders an identity embedded in public content. Email is
// dropped: only the owner sees their address, via /api/auth/me.
func toCreatorResponse(identity domain.Identity) userResponse {
	return userResponse{
		ID:   identity.ID.String(),
		Name: identity.Name,
	}
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:            t.ID.String(),
		Title:         t.Title,
		Description:   t.Description,
		Slug:          t.Slug,
		Creator:       userResponse{ID: t.CreatedBy.String()},
		IsActive:      t.IsActive,
		Tags:          t.Tags,
		ProArguments:  t.ArgumentCounts.Pro,
		ConArguments:  t.ArgumentCounts.Con,
		Score:         t.Score,
		UpvoteCount:   t.UpvoteCount,
		DownvoteCount: t.DownvoteCount,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func toVoteResponse(result *debate.VoteResult) voteResponse {
	return voteResponse{
		TargetType:    result.TargetType.String(),
		TargetID:      result.TargetID.String(),
		UpvoteCount:   result.Counters.UpvoteCount,
		DownvoteCount: result.Counters.DownvoteCount,
		Score:         result.Counters.Score,
		Changed:       result.Changed,
	}
}
