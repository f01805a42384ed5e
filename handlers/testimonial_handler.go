package handlers

import (
	"strconv"

	"firmsite/helper"
	"firmsite/models"
	"firmsite/services"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialService services.TestimonialService
	Helper             *helper.HTTPHelper
}

func NewTestimonialHandler(testimonialService services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService, Helper: &helper.HTTPHelper{}}
}

func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	testimonial, err := h.testimonialService.CreateTestimonial(req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Testimonial created successfully", testimonial)
}

func (h *TestimonialHandler) GetTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.GetTestimonials(false)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", testimonials)
}

func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid testimonial ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	testimonial, err := h.testimonialService.UpdateTestimonial(uint(id), req)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Testimonial updated successfully", testimonial)
}

func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid testimonial ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.testimonialService.DeleteTestimonial(uint(id)); err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Testimonial deleted successfully", h.Helper.EmptyJsonMap())
}
