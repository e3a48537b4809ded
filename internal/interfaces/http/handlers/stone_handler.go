package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"stone-shop.backend/internal/domain/entities"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/interfaces/http/response"
	"stone-shop.backend/internal/usecases"
)

// StoneHandler handles the informational catalog: stones with their
// comments and FAQs.
type StoneHandler struct {
	stoneUsecase *usecases.StoneUsecase
}

// NewStoneHandler creates a new stone handler
func NewStoneHandler(stoneUsecase *usecases.StoneUsecase) *StoneHandler {
	return &StoneHandler{stoneUsecase: stoneUsecase}
}

// parseUintParam reads a numeric path parameter
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.Error(c, domainerrors.Validation("Invalid input.", map[string]string{
			name: "A valid integer is required.",
		}))
		return 0, false
	}
	return uint(id), true
}

// ListStones returns every stone with nested comments and FAQs
// GET /api/v1/stones
func (h *StoneHandler) ListStones(c *gin.Context) {
	stones, err := h.stoneUsecase.ListStones(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Stones retrieved.", gin.H{
		"stones": stones,
	})
}

// CreateStone creates a catalog stone
// POST /api/v1/stones
func (h *StoneHandler) CreateStone(c *gin.Context) {
	var input entities.CreateStoneInput
	if !bindJSON(c, &input) {
		return
	}

	stone, err := h.stoneUsecase.CreateStone(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Stone created.", gin.H{
		"stone": stone,
	})
}

// ListComments returns the comments of one stone
// GET /api/v1/stones/:id/comments
func (h *StoneHandler) ListComments(c *gin.Context) {
	stoneID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.stoneUsecase.ListComments(c.Request.Context(), stoneID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Comments retrieved.", gin.H{
		"comments": comments,
	})
}

// CreateComment appends a public comment under a stone
// POST /api/v1/stones/:id/comments
func (h *StoneHandler) CreateComment(c *gin.Context) {
	stoneID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input entities.CreateCommentInput
	if !bindJSON(c, &input) {
		return
	}

	comment, err := h.stoneUsecase.CreateComment(c.Request.Context(), stoneID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Comment created.", gin.H{
		"comment": comment,
	})
}

// ListFAQs returns the FAQs of one stone
// GET /api/v1/stones/:id/faqs
func (h *StoneHandler) ListFAQs(c *gin.Context) {
	stoneID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	faqs, err := h.stoneUsecase.ListFAQs(c.Request.Context(), stoneID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "FAQs retrieved.", gin.H{
		"faqs": faqs,
	})
}

// CreateFAQ appends a question under a stone
// POST /api/v1/stones/:id/faqs
func (h *StoneHandler) CreateFAQ(c *gin.Context) {
	stoneID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input entities.CreateFAQInput
	if !bindJSON(c, &input) {
		return
	}

	faq, err := h.stoneUsecase.CreateFAQ(c.Request.Context(), stoneID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "FAQ created.", gin.H{
		"faq": faq,
	})
}

// AnswerFAQ overwrites the answer of a FAQ (staff only, gated at the route)
// PATCH /api/v1/faqs/:id/answer
func (h *StoneHandler) AnswerFAQ(c *gin.Context) {
	faqID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input entities.AnswerFAQInput
	if !bindJSON(c, &input) {
		return
	}

	faq, err := h.stoneUsecase.AnswerFAQ(c.Request.Context(), faqID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "FAQ answered.", gin.H{
		"faq": faq,
	})
}
