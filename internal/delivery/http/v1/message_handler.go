package v1

import (
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

func NewMessageHandler(r *gin.RouterGroup, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	messages := r.Group("/messages")
	{
		messages.POST("", handler.Create)
		messages.GET("/user/:userId", handler.ListForUser)
		messages.GET("/conversation/:userId1/:userId2", handler.Conversation)
		messages.PUT("/:id", handler.Update)
		messages.DELETE("/:id", handler.Delete)
	}
}

type UpdateMessageRequest struct {
	Text string `json:"text"`
}

// CreateMessage godoc
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message  body      domain.CreateMessageInput  true  "Message"
// @Success      201      {object}  response.Response{data=domain.Message}
// @Failure      400      {object}  response.Response
// @Router       /messages [post]
func (h *MessageHandler) Create(c *gin.Context) {
	var req domain.CreateMessageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	msg, err := h.messageUC.CreateMessage(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent", msg)
}

// ListUserMessages godoc
// @Summary      List a user's messages
// @Description  Messages sent or received by the user, newest first, with both participants expanded.
// @Tags         messages
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=[]domain.MessageView}
// @Failure      400     {object}  response.Response
// @Router       /messages/user/{userId} [get]
func (h *MessageHandler) ListForUser(c *gin.Context) {
	msgs, err := h.messageUC.ListForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Messages retrieved", msgs)
}

// Conversation godoc
// @Summary      Conversation between two users
// @Description  Both directions, oldest first. Argument order does not matter.
// @Tags         messages
// @Produce      json
// @Param        userId1  path      string  true  "First user ID"
// @Param        userId2  path      string  true  "Second user ID"
// @Success      200      {object}  response.Response{data=[]domain.MessageView}
// @Failure      400      {object}  response.Response
// @Router       /messages/conversation/{userId1}/{userId2} [get]
func (h *MessageHandler) Conversation(c *gin.Context) {
	msgs, err := h.messageUC.GetConversation(c.Request.Context(), c.Param("userId1"), c.Param("userId2"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conversation retrieved", msgs)
}

// UpdateMessage godoc
// @Summary      Edit a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Message ID"
// @Param        message  body      UpdateMessageRequest  true  "New text"
// @Success      200      {object}  response.Response{data=domain.Message}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /messages/{id} [put]
func (h *MessageHandler) Update(c *gin.Context) {
	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	msg, err := h.messageUC.UpdateMessage(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message updated", msg)
}

// DeleteMessage godoc
// @Summary      Delete a message
// @Tags         messages
// @Produce      json
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messageUC.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message deleted", nil)
}
