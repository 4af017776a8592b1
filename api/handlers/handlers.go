package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"content-planner/dto"
	"content-planner/models"
	"content-planner/services"
)

func parseObjectIDs(hexIDs []string) ([]primitive.ObjectID, bool) {
	out := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, h := range hexIDs {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, false
		}
		out = append(out, id)
	}
	return out, true
}

// RequestGenerationHandler godoc
// @Summary      Generate content for a post
// @Description  Claims the post and runs the full generation pipeline. A concurrent request on the same post is rejected with ALREADY_IN_PROGRESS.
// @Tags         posts
// @Param        id   path   string  true  "Post ObjectID"
// @Produce      json
// @Success      200  {object}  dto.GenerationOutcomeDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id}/generate [post]
func RequestGenerationHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_post_id"})
			return
		}
		out := svc.RequestGeneration(c.Request.Context(), id)
		c.JSON(http.StatusOK, dto.GenerationOutcomeDTO{Success: out.Success, Error: out.Error})
	}
}

// ListPostsHandler godoc
// @Summary      List a project's posts
// @Description  Lists posts, reclaiming any post stuck in generating past the stale window first.
// @Tags         posts
// @Param        id      path   string    true   "Project ObjectID"
// @Param        status  query  []string  false  "Status filter"
// @Produce      json
// @Success      200  {array}  dto.PostDTO
// @Router       /projects/{id}/posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_project_id"})
			return
		}
		var filter []models.Status
		for _, s := range c.QueryArray("status") {
			st := models.Status(s)
			if !st.Valid() {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_status"})
				return
			}
			filter = append(filter, st)
		}
		posts, err := svc.List(c.Request.Context(), projectID, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_list_posts"})
			return
		}
		out := make([]dto.PostDTO, 0, len(posts))
		for _, p := range posts {
			out = append(out, dto.NewPostDTO(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

// PublishPostsHandler godoc
// @Summary      Publish posts
// @Description  Publishes each post that has generated content; posts without content are skipped and counted separately.
// @Tags         posts
// @Param        body  body  dto.PostIDsRequest  true  "Post ids"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.PublishResultDTO
// @Router       /posts/publish [post]
func PublishPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids, ok := bindPostIDs(c)
		if !ok {
			return
		}
		res, err := svc.Publish(c.Request.Context(), ids)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_publish"})
			return
		}
		c.JSON(http.StatusOK, dto.PublishResultDTO{Published: res.Published, Skipped: res.Skipped})
	}
}

// RestorePostsHandler godoc
// @Summary      Restore posts
// @Description  Restores posts from saved, trash or published. Target state is drafted when content exists, idea otherwise.
// @Tags         posts
// @Param        body  body  dto.PostIDsRequest  true  "Post ids"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.RestoreResultDTO
// @Router       /posts/restore [post]
func RestorePostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids, ok := bindPostIDs(c)
		if !ok {
			return
		}
		res, err := svc.Restore(c.Request.Context(), ids)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_restore"})
			return
		}
		c.JSON(http.StatusOK, dto.RestoreResultDTO{Restored: res.Restored})
	}
}

// SavePostsHandler godoc
// @Summary      Save posts for later
// @Tags         posts
// @Param        body  body  dto.PostIDsRequest  true  "Post ids"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.CountResultDTO
// @Router       /posts/save [post]
func SavePostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids, ok := bindPostIDs(c)
		if !ok {
			return
		}
		n, err := svc.SaveForLater(c.Request.Context(), ids)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_save"})
			return
		}
		c.JSON(http.StatusOK, dto.CountResultDTO{Changed: n})
	}
}

// ApprovePostsHandler godoc
// @Summary      Approve drafted posts
// @Tags         posts
// @Param        body  body  dto.PostIDsRequest  true  "Post ids"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.CountResultDTO
// @Router       /posts/approve [post]
func ApprovePostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids, ok := bindPostIDs(c)
		if !ok {
			return
		}
		n, err := svc.Approve(c.Request.Context(), ids)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_approve"})
			return
		}
		c.JSON(http.StatusOK, dto.CountResultDTO{Changed: n})
	}
}

// TrashPostsHandler godoc
// @Summary      Move posts to trash
// @Tags         posts
// @Param        body  body  dto.PostIDsRequest  true  "Post ids"
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.CountResultDTO
// @Router       /posts/trash [post]
func TrashPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids, ok := bindPostIDs(c)
		if !ok {
			return
		}
		n, err := svc.Trash(c.Request.Context(), ids)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_trash"})
			return
		}
		c.JSON(http.StatusOK, dto.CountResultDTO{Changed: n})
	}
}

// DeletePostHandler godoc
// @Summary      Permanently delete a post
// @Description  Destructive; trash is the recoverable path.
// @Tags         posts
// @Param        id   path   string  true  "Post ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /posts/{id} [delete]
func DeletePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_post_id"})
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "failed_to_delete"})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "post_deleted"})
	}
}

// GetPostContentHandler godoc
// @Summary      Get a post's generated content
// @Description  Returns the generated HTML and stamps viewed_at on first open.
// @Tags         posts
// @Param        id   path   string  true  "Post ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PostContentDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id}/content [get]
func GetPostContentHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_post_id"})
			return
		}
		post, content, err := svc.GetContent(c.Request.Context(), id)
		if err != nil {
			if err == services.ErrNoContentYet {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "no_content_yet"})
				return
			}
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not_found"})
			return
		}
		c.JSON(http.StatusOK, dto.PostContentDTO{
			PostID:          post.ID.Hex(),
			SEOTitle:        post.SEOTitle,
			MetaDescription: post.MetaDescription,
			HTML:            content.HTML,
		})
	}
}

func bindPostIDs(c *gin.Context) ([]primitive.ObjectID, bool) {
	var req dto.PostIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request_body"})
		return nil, false
	}
	ids, ok := parseObjectIDs(req.PostIDs)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_post_id"})
		return nil, false
	}
	return ids, true
}
