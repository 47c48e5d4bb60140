package server

import (
	"chronicle/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/v1/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()

	posts, err := s.postService.FindAll(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if posts == nil {
		posts = []models.Post{}
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/v1/posts/:id.
// A malformed id is answered exactly like a missing post: 404 with no body.
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	post, err := s.postService.FindByID(ctx, id)
	if err != nil {
		if isInvalidID(err) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if post == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return c.JSON(post)
}

// CreatePost handles POST /api/v1/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()

	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Any client-supplied _id is discarded by the service.
	id, err := s.postService.Create(ctx, post)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"_id": id})
}

// UpdatePost handles PUT /api/v1/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.postService.Update(ctx, post, id)
	if err != nil {
		if isInvalidID(err) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if !updated {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return c.SendStatus(fiber.StatusOK)
}

// DeletePost handles DELETE /api/v1/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	removed, err := s.postService.Remove(ctx, id)
	if err != nil {
		if isInvalidID(err) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if !removed {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
