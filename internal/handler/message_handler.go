package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"alumniport/internal/errors"
	"alumniport/internal/service"
)

// MessageHandler handles direct-message endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessageRequest represents a direct-message request.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func otherUserID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrUserNotFound)
		return uuid.Nil, echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return id, nil
}

// SendMessage godoc
// @Summary Send a direct message to a user
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Receiver user ID"
// @Param request body SendMessageRequest true "Message content"
// @Success 200 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /messages/{userId} [post]
func (h *MessageHandler) SendMessage(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	receiverID, err := otherUserID(c)
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	message, err := h.messageService.Send(c.Request().Context(), claims, receiverID, req.Content)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, message)
}

// GetConversation godoc
// @Summary List messages exchanged with a user, newest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Other user ID"
// @Success 200 {array} model.Message
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /messages/{userId} [get]
func (h *MessageHandler) GetConversation(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	otherID, err := otherUserID(c)
	if err != nil {
		return err
	}

	messages, err := h.messageService.Conversation(c.Request().Context(), claims, otherID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, messages)
}
