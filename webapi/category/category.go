package category

import (
	"errors"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/domain/category"
	"github.com/autoconnect/backend/pkg/middleware"
	categorysvc "github.com/autoconnect/backend/pkg/service/category"
	"github.com/autoconnect/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the category CRUD endpoints under /api/categories.
func Routes(app *fiber.App, categorySvc *categorysvc.Service, cfg *config.App) {
	group := app.Group("/api/categories", middleware.JwtProtected(cfg.Auth.Jwt))
	group.Post("/", CreateCategory(categorySvc))
	group.Get("/", ListCategories(categorySvc))
	group.Get("/:id", GetCategory(categorySvc))
	group.Put("/:id", UpdateCategory(categorySvc))
	group.Delete("/:id", DeleteCategory(categorySvc))
}

// CreateCategory returns a Fiber handler creating a category.
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "Category"
// @Success 201 {object} CreateCategoryResponse
// @Failure 400 {object} common.ErrorResponse "Required fields missing"
// @Failure 500 {object} common.ErrorResponse "Unknown server error"
// @Router /api/categories [post]
// @Security Bearer
func CreateCategory(categorySvc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateCategoryRequest](c)
		if input == nil {
			return err
		}
		created, err := categorySvc.Create(c.UserContext(), categorysvc.CreateParams{
			CategoryID: input.CategoryID,
			Name:       input.Name,
			Type:       input.Type,
			Color:      input.Color,
			Icon:       input.Icon,
		})
		if err != nil {
			common.LogFailure("Failed to create category", err)
			return common.WriteFailure(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(CreateCategoryResponse{
			Message:  "Category created successfully",
			Category: created,
		})
	}
}

// ListCategories returns a Fiber handler listing categories by name.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} category.Category
// @Router /api/categories [get]
// @Security Bearer
func ListCategories(categorySvc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := categorySvc.List(c.UserContext())
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, common.MsgUnknownServerError, err)
		}
		if list == nil {
			list = []*category.Category{}
		}
		return c.JSON(list)
	}
}

// GetCategory returns a Fiber handler fetching one category.
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} category.Category
// @Failure 404 {object} common.ErrorResponse
// @Router /api/categories/{id} [get]
// @Security Bearer
func GetCategory(categorySvc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := common.ParseID(c)
		if !ok {
			return nil
		}
		found, err := categorySvc.Get(c.UserContext(), id)
		if err != nil {
			return common.NotFoundOrError(c, "Category", err)
		}
		return c.JSON(found)
	}
}

// UpdateCategory returns a Fiber handler merging the supplied fields.
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} category.Category
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/categories/{id} [put]
// @Security Bearer
func UpdateCategory(categorySvc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := common.ParseID(c)
		if !ok {
			return nil
		}
		input, err := common.BindAndValidate[UpdateCategoryRequest](c)
		if input == nil {
			return err
		}
		updated, err := categorySvc.Update(c.UserContext(), id, category.Update{
			Name:  input.Name,
			Type:  input.Type,
			Color: input.Color,
			Icon:  input.Icon,
		})
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				return common.WriteFailure(c, err)
			}
			return common.NotFoundOrError(c, "Category", err)
		}
		return c.JSON(updated)
	}
}

// DeleteCategory returns a Fiber handler deleting a category.
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/categories/{id} [delete]
// @Security Bearer
func DeleteCategory(categorySvc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := common.ParseID(c)
		if !ok {
			return nil
		}
		if err := categorySvc.Delete(c.UserContext(), id); err != nil {
			return common.NotFoundOrError(c, "Category", err)
		}
		return c.JSON(common.MessageResponse{Message: "Category deleted successfully"})
	}
}
