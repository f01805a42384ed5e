package handlers

import (
	"strconv"

	"firmsite/helper"
	"firmsite/models"
	"firmsite/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService    services.ContactService
	newsletterService services.NewsletterService
	Helper            *helper.HTTPHelper
}

func NewContactHandler(contactService services.ContactService, newsletterService services.NewsletterService) *ContactHandler {
	return &ContactHandler{
		contactService:    contactService,
		newsletterService: newsletterService,
		Helper:            &helper.HTTPHelper{},
	}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	message, err := h.contactService.SubmitContact(req, c.ClientIP())
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Message received", gin.H{"id": message.ID})
}

func (h *ContactHandler) SubmitAppointment(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	message, err := h.contactService.SubmitAppointment(req, c.ClientIP())
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Appointment request received", gin.H{"id": message.ID})
}

func (h *ContactHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	subscriber, err := h.newsletterService.Subscribe(req, c.ClientIP())
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Subscribed", gin.H{"email": subscriber.Email})
}

func (h *ContactHandler) Unsubscribe(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		h.Helper.SendBadRequest(c, "Token required", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.newsletterService.Unsubscribe(token); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Unsubscribed", h.Helper.EmptyJsonMap())
}

func (h *ContactHandler) GetMessages(c *gin.Context) {
	kind := models.ContactKind(c.Query("kind"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	messages, total, err := h.contactService.GetMessages(kind, page, limit)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"messages": messages,
		"paging":   h.Helper.GeneratePaging(c, 0, 0, limit, page, int(total)),
	})
}

func (h *ContactHandler) GetSubscribers(c *gin.Context) {
	subscribers, err := h.newsletterService.GetSubscribers()
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", subscribers)
}
