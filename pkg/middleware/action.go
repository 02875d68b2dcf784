// pkg/middleware/action.go

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Легаси-клиенты шлют все записи как POST формы с полем _method (или action),
// выбирающим семантическую операцию: GET/POST/PUT/DELETE/assign_user.
// ActionOverride декодирует этот enum один раз на входе и превращает его
// в настоящий (resource, verb)-маршрут: PUT/DELETE подменяют метод,
// assign_user уходит на endpoint назначений.
func ActionOverride() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method == http.MethodPost {
				action := c.FormValue("_method")
				if action == "" {
					action = c.FormValue("action")
				}
				switch action {
				case http.MethodPut, http.MethodDelete:
					req.Method = action
				case "assign_user":
					req.URL.Path = "/api/asignaciones"
				}
			}
			return next(c)
		}
	}
}
