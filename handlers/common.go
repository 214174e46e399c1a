package handlers

import (
	"context"
	"net/http"
	"time"

	"educonnect/config"
	"educonnect/database"
	"educonnect/models"
	"educonnect/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const fallbackAvatar = "https://upload.wikimedia.org/wikipedia/commons/8/89/Portrait_Placeholder.png"

// API carries the shared state handlers need. The collection store is
// injected here rather than reached through a package global so tests can
// run each suite against its own instance.
type API struct {
	Store *store.Store
	Cfg   *config.Config
}

func New(st *store.Store, cfg *config.Config) *API {
	return &API{Store: st, Cfg: cfg}
}

// currentUser loads the authenticated user from the registry. On failure it
// writes the 401 response and reports false; callers just return.
func (a *API) currentUser(c *gin.Context) (models.User, bool) {
	userID, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return models.User{}, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := database.Users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
		return models.User{}, false
	}
	if user.Avatar == "" {
		user.Avatar = fallbackAvatar
	}
	return user, true
}
