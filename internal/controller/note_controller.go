package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swaraj-shubh/notebook/internal/dto"
	"github.com/swaraj-shubh/notebook/internal/pkg/serverutils"
	"github.com/swaraj-shubh/notebook/internal/service"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	service service.INoteService
}

func NewNoteController(service service.INoteService) INoteController {
	return &noteController{service: service}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notebooks/:id/notes")
	h.Post("/", c.Create)
	h.Patch("/:note_id", c.Update)
	h.Delete("/:note_id", c.Delete)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	notebookId := ctx.Params("id")

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), notebookId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	notebookId := ctx.Params("id")
	noteId := ctx.Params("note_id")

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), notebookId, noteId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	notebookId := ctx.Params("id")
	noteId := ctx.Params("note_id")

	err := c.service.Delete(ctx.Context(), notebookId, noteId)
	if err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
