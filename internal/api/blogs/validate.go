package blogsapi

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"blog-app/config"
	"blog-app/internal/domain/blogs"
)

const (
	titleMinLen  = 10
	authorMinLen = 3
)

func validateFields(title, author string, verrs blogs.ValidationErrors) {
	if title == "" {
		verrs.Add("title", "The title field is required.")
	} else if utf8.RuneCountInString(title) < titleMinLen {
		verrs.Add("title", fmt.Sprintf("The title field must be at least %d characters.", titleMinLen))
	}

	if author == "" {
		verrs.Add("author", "The author field is required.")
	} else if utf8.RuneCountInString(author) < authorMinLen {
		verrs.Add("author", fmt.Sprintf("The author field must be at least %d characters.", authorMinLen))
	}
}

// validateImage checks extension, size and sniffed content type against
// the configured limits. The file contents and normalized extension are
// returned so the caller does not read the upload twice.
func validateImage(file *multipart.FileHeader, cfg config.UploadConfig, verrs blogs.ValidationErrors) ([]byte, string) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))

	allowed := false
	for _, a := range cfg.AllowedExts {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		verrs.Add("image", fmt.Sprintf("The image field must be a file of type: %s.", strings.Join(cfg.AllowedExts, ", ")))
		return nil, ""
	}

	if file.Size > cfg.MaxImageBytes {
		verrs.Add("image", fmt.Sprintf("The image field must not be greater than %d kilobytes.", cfg.MaxImageBytes/1024))
		return nil, ""
	}

	f, err := file.Open()
	if err != nil {
		verrs.Add("image", "The image could not be read.")
		return nil, ""
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		verrs.Add("image", "The image could not be read.")
		return nil, ""
	}

	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		verrs.Add("image", "The image field must be an image.")
		return nil, ""
	}

	return data, ext
}
