package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"content-planner/dto"
	"content-planner/models"
	"content-planner/services"
)

// GetContextHandler godoc
// @Summary      Get a project's context profile
// @Tags         context
// @Param        id   path   string  true  "Project ObjectID"
// @Produce      json
// @Success      200  {object}  models.ProjectContext
// @Router       /projects/{id}/context [get]
func GetContextHandler(svc *services.ContextService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_project_id"})
			return
		}
		pc, err := svc.Get(c.Request.Context(), projectID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_load_context"})
			return
		}
		c.JSON(http.StatusOK, pc)
	}
}

// SaveContextHandler godoc
// @Summary      Save a project's context profile
// @Tags         context
// @Param        id    path  string                 true  "Project ObjectID"
// @Param        body  body  models.ProjectContext  true  "Context profile"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /projects/{id}/context [put]
func SaveContextHandler(svc *services.ContextService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_project_id"})
			return
		}
		var pc models.ProjectContext
		if err := c.ShouldBindJSON(&pc); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
			return
		}
		pc.ProjectID = projectID
		if err := svc.Save(c.Request.Context(), &pc); err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_save_context"})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "context_saved"})
	}
}
