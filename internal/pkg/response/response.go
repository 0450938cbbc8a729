package response

import "github.com/gin-gonic/gin"

// OK writes a success envelope. The payload keys are merged next to
// "success": true, keeping the flat response shape every endpoint uses.
func OK(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Error writes the flat error envelope: {"success": false, "error": msg}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
