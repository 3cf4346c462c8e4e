package handlers

import (
	"mime"
	"net/http"

	"palettepad/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		zap.S().Errorf("[http][handler] %s %s failed code=%s err=%v", c.Request.Method, c.FullPath(), appErr.Code, appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// attachment builds a Content-Disposition value that survives non-ASCII
// filenames.
func attachment(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}
