package handlers

import (
	"net/http"

	"educonnect/fixtures"
	"educonnect/models"

	"github.com/gin-gonic/gin"
)

func (a *API) ListAchievements(c *gin.Context) {
	badges := fixtures.Achievements()
	c.JSON(http.StatusOK, gin.H{"achievements": badges, "count": len(badges)})
}

// MyAchievements pairs the badge catalog with the seeded progress. The
// progress data is static; there is no earn/update path.
func (a *API) MyAchievements(c *gin.Context) {
	user, ok := a.currentUser(c)
	if !ok {
		return
	}

	progress := fixtures.Progress()
	out := make([]models.UserAchievement, 0)
	for _, badge := range fixtures.Achievements() {
		p := progress[badge.ID]
		ua := models.UserAchievement{
			Achievement: badge,
			Earned:      p >= 100,
			Progress:    p,
		}
		if ua.Earned {
			ua.EarnedAt = user.CreatedAt
		}
		out = append(out, ua)
	}

	c.JSON(http.StatusOK, gin.H{"achievements": out, "count": len(out)})
}
