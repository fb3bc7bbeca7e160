package devserver

import "github.com/labstack/echo/v4"

// problem is the error body every failing endpoint returns, in the
// problem-details shape the SDK decodes.
type problem struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeProblem(c echo.Context, status int, title, detail string) error {
	return c.JSON(status, problem{
		Type:   "about:blank",
		Title:  title,
		Status: status,
		Detail: detail,
	})
}
