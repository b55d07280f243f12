package handler

import (
	"strconv"

	authhandler "github.com/RafalauriSantos/totask-server/internal/auth/handler"
	autherror "github.com/RafalauriSantos/totask-server/internal/errors"
	"github.com/RafalauriSantos/totask-server/internal/task/domain"
	"github.com/RafalauriSantos/totask-server/internal/task/dto"
	"github.com/RafalauriSantos/totask-server/internal/task/service"
	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	userID := c.Locals(authhandler.LocalsUserID).(int)

	tasks, err := h.taskService.List(c.Context(), userID)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": autherror.HTTPMessage(err),
		})
	}

	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskOutput(t))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals(authhandler.LocalsUserID).(int)

	var input dto.CreateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	task, err := h.taskService.Create(c.Context(), userID, input.Texto)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": autherror.HTTPMessage(err),
		})
	}

	return c.Status(fiber.StatusOK).JSON(taskOutput(*task))
}

// Update covers both PATCH shapes: a body with texto edits the text, an
// empty body (or one without texto) toggles completion.
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	userID := c.Locals(authhandler.LocalsUserID).(int)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": autherror.ErrTaskNotFound.Error(),
		})
	}

	var input dto.UpdateTaskInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid input",
			})
		}
	}

	if input.Texto != "" {
		task, err := h.taskService.UpdateText(c.Context(), userID, id, input.Texto)
		if err != nil {
			return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
				"error": autherror.HTTPMessage(err),
			})
		}

		return c.Status(fiber.StatusOK).JSON(dto.UpdatedTextOutput{ID: task.ID, Texto: task.Text})
	}

	newStatus, err := h.taskService.ToggleCompletion(c.Context(), userID, id)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": autherror.HTTPMessage(err),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToggleOutput{NovoStatus: newStatus})
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals(authhandler.LocalsUserID).(int)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": autherror.ErrTaskNotFound.Error(),
		})
	}

	if err := h.taskService.Delete(c.Context(), userID, id); err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": autherror.HTTPMessage(err),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "task deleted"})
}

func taskOutput(t domain.Task) dto.TaskOutput {
	return dto.TaskOutput{ID: t.ID, Texto: t.Text, Concluida: t.Completed}
}
