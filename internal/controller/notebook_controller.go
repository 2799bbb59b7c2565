package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swaraj-shubh/notebook/internal/dto"
	"github.com/swaraj-shubh/notebook/internal/pkg/serverutils"
	"github.com/swaraj-shubh/notebook/internal/service"
)

const defaultListLimit = 50

type INotebookController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type notebookController struct {
	service service.INotebookService
}

func NewNotebookController(service service.INotebookService) INotebookController {
	return &notebookController{service: service}
}

func (c *notebookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notebooks")
	h.Post("/", c.Create)
	h.Get("/", c.GetAll)
	h.Get("/:id", c.Show)
	h.Delete("/:id", c.Delete)
}

func (c *notebookController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *notebookController) GetAll(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", defaultListLimit)

	res, err := c.service.GetAll(ctx.Context(), int64(limit))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *notebookController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *notebookController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	err := c.service.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
