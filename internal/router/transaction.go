package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/icemanhv/forum/internal/db"
)

// Transaction opens one database transaction per mutating request and puts
// it in the request context. The transaction commits only when the handler
// returns cleanly; every error or panic exit rolls back, so a request that
// fails partway leaves nothing half-written.
func Transaction(gdb *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			default:
				return next(c)
			}

			tx := gdb.WithContext(c.Request().Context()).Begin()
			if tx.Error != nil {
				return tx.Error
			}

			req := c.Request()
			c.SetRequest(req.WithContext(db.WithTx(req.Context(), tx)))

			defer func() {
				if r := recover(); r != nil {
					tx.Rollback()
					panic(r)
				}
			}()

			if err := next(c); err != nil {
				tx.Rollback()
				return err
			}
			return tx.Commit().Error
		}
	}
}
