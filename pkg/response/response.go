package response

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/ChrisHallak/course-scheduling/pkg/errors"
)

// JSON sends a success payload as-is. The scheduling endpoints keep the wire
// contract of the service they replaced, so there is no envelope.
func JSON(c *gin.Context, status int, payload any) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, payload)
}

// Error sends a failure in the legacy shape: a "detail" field holding either
// a single message or the list of accumulated violation messages.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)

	var detail any = appErr.Message
	if len(appErr.Details) > 0 {
		detail = appErr.Details
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"detail": detail})
}
