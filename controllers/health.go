package controllers

import (
	"net/http"

	"corpora/core"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

// Status reports whether the corpus database is reachable.
func (h HealthController) Status(c *gin.Context) {
	db, err := core.GetDB()
	if err == nil {
		err = db.Raw(`SELECT 1`).Row().Err()
	}

	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
