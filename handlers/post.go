package handlers

import (
	"errors"
	"net/http"
	"time"

	"educonnect/feed"
	"educonnect/models"
	"educonnect/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Type     models.PostType      `json:"type"`
	Title    string               `json:"title"`
	Content  string               `json:"content" binding:"required"`
	Metadata *models.PostMetadata `json:"metadata"`
}

func (a *API) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Type == "" {
		req.Type = models.PostTypeText
	}
	if !models.KnownPostType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown post type"})
		return
	}

	user, ok := a.currentUser(c)
	if !ok {
		return
	}

	now := time.Now().Unix()
	post := models.Post{
		ID:        uuid.NewString(),
		Type:      req.Type,
		Title:     req.Title,
		Content:   req.Content,
		Author:    user.Summary(),
		Comments:  []models.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
		Metadata:  req.Metadata,
	}

	if err := a.Store.CreatePost(post); err != nil {
		if errors.Is(err, store.ErrNoAuthor) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Post requires an authenticated author"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Feed runs the query pipeline over the current post collection. The
// response echoes the query so the client can tell "no posts" apart from
// "no matches".
func (a *API) Feed(c *gin.Context) {
	search := c.Query("search")
	typeFilter := c.DefaultQuery("type", feed.FilterAll)
	sortMode := feed.SortMode(c.DefaultQuery("sort", string(feed.SortRecent)))

	if !feed.KnownSortMode(sortMode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown sort mode"})
		return
	}
	if typeFilter != feed.FilterAll && !models.KnownPostType(models.PostType(typeFilter)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown type filter"})
		return
	}

	posts := feed.Query(a.Store.AllPosts(), search, typeFilter, sortMode)

	c.JSON(http.StatusOK, gin.H{
		"posts":  posts,
		"count":  len(posts),
		"search": search,
		"type":   typeFilter,
		"sort":   sortMode,
	})
}

func (a *API) LikePost(c *gin.Context) {
	id := c.Param("id")
	likes, ok := a.Store.IncrementLikes(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"postId": id, "likes": likes})
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (a *API) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := a.currentUser(c)
	if !ok {
		return
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		Author:    user.Summary(),
		Content:   req.Content,
		CreatedAt: time.Now().Unix(),
	}

	if !a.Store.AddComment(c.Param("id"), comment) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
