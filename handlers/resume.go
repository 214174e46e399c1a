package handlers

import (
	"net/http"
	"time"

	"educonnect/models"

	"github.com/gin-gonic/gin"
)

// GetResume returns the user's resume, or an empty skeleton if none was
// ever saved. The resume lives in memory for the session only.
func (a *API) GetResume(c *gin.Context) {
	userID := c.GetString("userId")

	resume, ok := a.Store.Resume(userID)
	if !ok {
		resume = models.Resume{
			Education:  []models.ResumeEntry{},
			Experience: []models.ResumeEntry{},
			Skills:     []string{},
		}
	}
	c.JSON(http.StatusOK, resume)
}

// PutResume replaces the whole resume document.
func (a *API) PutResume(c *gin.Context) {
	var resume models.Resume
	if err := c.ShouldBindJSON(&resume); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resume.UpdatedAt = time.Now().Unix()
	a.Store.SetResume(c.GetString("userId"), resume)

	c.JSON(http.StatusOK, resume)
}
