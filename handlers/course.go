package handlers

import (
	"net/http"
	"strings"

	"educonnect/fixtures"
	"educonnect/models"
	"educonnect/store"

	"github.com/gin-gonic/gin"
)

// catalogCourse looks up a course in the static catalog.
func catalogCourse(id string) (models.Course, bool) {
	for _, c := range fixtures.Courses() {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// ListCourses returns the catalog, optionally narrowed by level and a
// case-insensitive substring search over title, description and tags.
func (a *API) ListCourses(c *gin.Context) {
	level := c.Query("level")
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	courses := make([]models.Course, 0)
	for _, course := range fixtures.Courses() {
		if level != "" && string(course.Level) != level {
			continue
		}
		if search != "" {
			corpus := strings.ToLower(course.Title + " " + course.Description + " " + strings.Join(course.Tags, " "))
			if !strings.Contains(corpus, search) {
				continue
			}
		}
		courses = append(courses, course)
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses, "count": len(courses)})
}

func (a *API) GetCourse(c *gin.Context) {
	course, ok := catalogCourse(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// toggleCourse flips membership of the course in the user's named
// collection. The course is value-copied into the collection; wishlist and
// enrollment hold independent copies.
func (a *API) toggleCourse(c *gin.Context, name string) {
	course, ok := catalogCourse(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	userID := c.GetString("userId")
	member := a.Store.Toggle(store.Scoped(name, userID), course)

	c.JSON(http.StatusOK, gin.H{
		"courseId": course.ID,
		"member":   member,
	})
}

func (a *API) ToggleEnrollment(c *gin.Context) { a.toggleCourse(c, store.Enrolled) }
func (a *API) ToggleWishlist(c *gin.Context)   { a.toggleCourse(c, store.Wishlist) }

// ToggleManaged requires the instructor role (enforced in the router).
func (a *API) ToggleManaged(c *gin.Context) { a.toggleCourse(c, store.Managed) }

func (a *API) listCourses(c *gin.Context, name string) {
	userID := c.GetString("userId")
	courses := a.Store.Courses(store.Scoped(name, userID))
	c.JSON(http.StatusOK, gin.H{"courses": courses, "count": len(courses)})
}

func (a *API) Enrollments(c *gin.Context)    { a.listCourses(c, store.Enrolled) }
func (a *API) WishlistItems(c *gin.Context)  { a.listCourses(c, store.Wishlist) }
func (a *API) ManagedCourses(c *gin.Context) { a.listCourses(c, store.Managed) }
