package blogsapi

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"blog-app/config"
	"blog-app/internal/domain/blogs"
	"blog-app/internal/infra/imagestore"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Handler orchestrates validation, the image store and the repository
// for the five blog endpoints.
type Handler struct {
	repo   *blogs.Repository
	images *imagestore.Store
	upload config.UploadConfig

	// Only the rich-text description passes through bluemonday. The
	// plain-text fields are stored as submitted; escaping them here
	// would corrupt titles like "Fish & Chips" (entity-escaped text
	// no longer round-trips or matches keyword searches).
	richText *bluemonday.Policy
}

func NewHandler(db *gorm.DB, cfg config.UploadConfig) *Handler {
	return &Handler{
		repo:     blogs.NewRepository(db),
		images:   imagestore.New(cfg.Dir),
		upload:   cfg,
		richText: bluemonday.UGCPolicy(),
	}
}

// ------------------------------
// GET /blogs
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	list, err := h.repo.List(c.Query("keyword"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Status: false, Message: "Failed to load blogs"})
		return
	}

	if list == nil {
		list = []blogs.Blog{}
	}
	c.JSON(http.StatusOK, Response{Status: true, Data: list})
}

// ------------------------------
// GET /blogs/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if ok {
		blog, err := h.repo.Get(id)
		if err == nil {
			c.JSON(http.StatusOK, Response{Status: true, Data: blogWithDate{
				Blog: *blog,
				Date: blog.CreatedAt.Format(displayDateLayout),
			}})
			return
		}
		if err != blogs.ErrNotFound {
			c.JSON(http.StatusInternalServerError, Response{Status: false, Message: "Failed to load blog"})
			return
		}
	}

	// The detail endpoint answers misses with 200 and status=false,
	// which is what the list page's client expects.
	c.JSON(http.StatusOK, Response{Status: false, Message: "Blog not found"})
}

// ------------------------------
// POST /blogs
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	author := strings.TrimSpace(c.PostForm("author"))

	verrs := blogs.ValidationErrors{}
	validateFields(title, author, verrs)

	file, err := c.FormFile("image")
	if err != nil {
		verrs.Add("image", "The image field is required.")
	}

	var data []byte
	var ext string
	if file != nil {
		data, ext = validateImage(file, h.upload, verrs)
	}

	if len(verrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, Response{Status: false, Message: "Validation failed", Errors: verrs})
		return
	}

	name, err := h.images.Save(data, ext, title)
	if err != nil {
		log.Printf("blog create: %v", err)
		c.JSON(http.StatusInternalServerError, Response{Status: false, Message: "Failed to upload image"})
		return
	}

	blog := blogs.Blog{
		Title:       title,
		Author:      author,
		Description: h.sanitizedRichText(c.PostForm("description")),
		ShortDesc:   optionalString(c.PostForm("shortDesc")),
		Image:       &name,
	}

	if err := h.repo.Create(&blog); err != nil {
		// Compensate: the file was written before the insert, remove
		// it so a failed create leaves nothing behind.
		if derr := h.images.Delete(name); derr != nil {
			log.Printf("blog create: compensating delete: %v", derr)
		}
		log.Printf("blog create: %v", err)
		c.JSON(http.StatusInternalServerError, Response{Status: false, Message: "Failed to create blog"})
		return
	}

	c.JSON(http.StatusCreated, Response{Status: true, Message: "Blog added successfully.", Data: blog})
}

// ------------------------------
// PUT /blogs/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	blog, stop := h.lookup(c)
	if stop {
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	author := strings.TrimSpace(c.PostForm("author"))

	verrs := blogs.ValidationErrors{}
	validateFields(title, author, verrs)

	// Image is optional on update; when omitted the stored file stays.
	file, _ := c.FormFile("image")
	var data []byte
	var ext string
	if file != nil {
		data, ext = validateImage(file, h.upload, verrs)
	}

	if len(verrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, Response{Status: false, Message: "Please fix the errors", Errors: verrs})
		return
	}

	// Write the replacement first; the old file is only removed once
	// the record points at the new one, so a failed save or a failed
	// update never leaves the record referencing a missing file.
	var oldImage *string
	if file != nil {
		name, err := h.images.Save(data, ext, title)
		if err != nil {
			log.Printf("blog update: %v", err)
			c.JSON(http.StatusInternalServerError, Response{Status: false, Message: "Failed to upload image"})
			return
		}
		oldImage = blog.Image
		blog.Image = &name
	}

	blog.Title = title
	blog.Author = author
	blog.Description = h.sanitizedRichText(c.PostForm("description"))
	blog.ShortDesc = optionalString(c.PostForm("shortDesc"))

	if err := h.repo.Update(blog); err != nil {
		if file != nil {
			if derr := h.images.Delete(*blog.Image); derr != nil {
				log.Printf("blog update: compensating delete: %v", derr)
			}
		}
		log.Printf("blog update: %v", err)
		c.JSON(http.StatusInternalServerError, Response{Status: false, Message: "Failed to update blog"})
		return
	}

	if oldImage != nil {
		if err := h.images.Delete(*oldImage); err != nil {
			log.Printf("blog update: %v", err)
		}
	}

	c.JSON(http.StatusOK, Response{Status: true, Message: "Blog updated successfully.", Data: blog})
}

// ------------------------------
// DELETE /blogs/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	blog, stop := h.lookup(c)
	if stop {
		return
	}

	if blog.Image != nil {
		if err := h.images.Delete(*blog.Image); err != nil {
			log.Printf("blog delete: %v", err)
		}
	}

	if err := h.repo.Delete(blog.ID); err != nil {
		log.Printf("blog delete: %v", err)
		c.JSON(http.StatusInternalServerError, Response{Status: false, Message: "Failed to delete blog"})
		return
	}

	c.JSON(http.StatusOK, Response{Status: true, Message: "Blog deleted successfully."})
}

// lookup resolves :id to a blog, answering 404 itself on a miss.
func (h *Handler) lookup(c *gin.Context) (*blogs.Blog, bool) {
	id, ok := parseID(c.Param("id"))
	if ok {
		blog, err := h.repo.Get(id)
		if err == nil {
			return blog, false
		}
		if err != blogs.ErrNotFound {
			c.JSON(http.StatusInternalServerError, Response{Status: false, Message: "Failed to load blog"})
			return nil, true
		}
	}
	c.JSON(http.StatusNotFound, Response{Status: false, Message: "Blog not found."})
	return nil, true
}

// sanitizedRichText keeps safe HTML from the editor; empty input
// becomes NULL, matching the nullable columns.
func (h *Handler) sanitizedRichText(s string) *string {
	s = strings.TrimSpace(h.richText.Sanitize(s))
	if s == "" {
		return nil
	}
	return &s
}

// optionalString maps an absent or blank form value to NULL.
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
