package blogsapi

import "blog-app/internal/domain/blogs"

// Response is the envelope every blog endpoint answers with.
type Response struct {
	Status  bool                `json:"status"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Data    any                 `json:"data,omitempty"`
}

// blogWithDate adds the human-readable date the detail view shows.
type blogWithDate struct {
	blogs.Blog
	Date string `json:"date"`
}

const displayDateLayout = "02 Jan, 2006"
