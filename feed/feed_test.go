package feed

import (
	"testing"

	"educonnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func ids(posts []models.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func samplePosts() []models.Post {
	return []models.Post{
		{
			ID: "a", Type: models.PostTypeText, Content: "Loving REACT so far",
			Author: models.Author{Name: "Aisha"}, Likes: 10, CreatedAt: 100,
		},
		{
			ID: "b", Type: models.PostTypeCourse, Title: "New cohort",
			Content: "seats open",
			Author:  models.Author{Name: "Marco", Title: "Mentor"},
			Likes:   3, CreatedAt: 200,
			Metadata: &models.PostMetadata{
				Course: &models.CourseMeta{CourseID: "c1", CourseTitle: "Distributed Systems"},
			},
		},
		{
			ID: "c", Type: models.PostTypeResource, Title: "Reading list",
			Content: "papers",
			Author:  models.Author{Name: "Lena"},
			Likes:   3, Shares: intp(4), CreatedAt: 300,
			Comments: []models.Comment{{ID: "c1"}, {ID: "c2"}},
			Metadata: &models.PostMetadata{
				Resource: &models.ResourceMeta{ResourceTitle: "Systems papers"},
				Tags:     []string{"golang", "interviews"},
			},
		},
	}
}

func TestEmptyQueryPassthrough(t *testing.T) {
	posts := samplePosts()

	out := Query(posts, "", FilterAll, SortRecent)
	require.Len(t, out, len(posts))
	assert.Equal(t, []string{"c", "b", "a"}, ids(out))
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	posts := samplePosts()

	Query(posts, "", FilterAll, SortRecent)
	assert.Equal(t, []string{"a", "b", "c"}, ids(posts))
}

func TestSearchIsCaseInsensitiveSubstringOr(t *testing.T) {
	posts := samplePosts()

	// "React hooks": post a contains only "REACT", not "hooks" - OR
	// semantics keep it
	out := Query(posts, "React hooks", FilterAll, SortRecent)
	assert.Equal(t, []string{"a"}, ids(out))
}

func TestSearchCoversMetadataAndAuthorFields(t *testing.T) {
	posts := samplePosts()

	// course title in metadata
	assert.Equal(t, []string{"b"}, ids(Query(posts, "distributed", FilterAll, SortRecent)))
	// tag
	assert.Equal(t, []string{"c"}, ids(Query(posts, "golang", FilterAll, SortRecent)))
	// resource title
	assert.Equal(t, []string{"c"}, ids(Query(posts, "papers", FilterAll, SortRecent)))
	// author name and author title
	assert.Equal(t, []string{"a"}, ids(Query(posts, "aisha", FilterAll, SortRecent)))
	assert.Equal(t, []string{"b"}, ids(Query(posts, "mentor", FilterAll, SortRecent)))
}

func TestSearchNoMatch(t *testing.T) {
	out := Query(samplePosts(), "quantum", FilterAll, SortRecent)
	assert.Empty(t, out)
}

func TestTypeFilter(t *testing.T) {
	posts := samplePosts()

	out := Query(posts, "", string(models.PostTypeCourse), SortRecent)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)

	out = Query(posts, "", "announcement", SortRecent)
	assert.Empty(t, out)
}

func TestRecentVersusPopular(t *testing.T) {
	posts := []models.Post{
		{ID: "a", Likes: 10, CreatedAt: 100},
		{ID: "b", Likes: 3, CreatedAt: 200},
	}

	assert.Equal(t, []string{"b", "a"}, ids(Query(posts, "", FilterAll, SortRecent)))
	assert.Equal(t, []string{"a", "b"}, ids(Query(posts, "", FilterAll, SortPopular)))
}

func TestPopularSortIsStable(t *testing.T) {
	posts := []models.Post{
		{ID: "a", Likes: 5, CreatedAt: 100},
		{ID: "b", Likes: 5, CreatedAt: 200},
		{ID: "c", Likes: 9, CreatedAt: 50},
	}

	// a and b tie on likes and keep their relative input order
	assert.Equal(t, []string{"c", "a", "b"}, ids(Query(posts, "", FilterAll, SortPopular)))
}

func TestEngagementScore(t *testing.T) {
	p := models.Post{
		Likes:    5,
		Comments: []models.Comment{{ID: "1"}, {ID: "2"}},
	}
	// missing shares counts as 0, never excludes
	assert.Equal(t, 7, Engagement(p))

	p.Shares = intp(3)
	assert.Equal(t, 10, Engagement(p))
}

func TestTrendingSort(t *testing.T) {
	posts := samplePosts()

	// engagement: a=10, b=3, c=3+2+4=9
	assert.Equal(t, []string{"a", "c", "b"}, ids(Query(posts, "", FilterAll, SortTrending)))
}

func TestUnknownSortModeBehavesAsRecent(t *testing.T) {
	posts := samplePosts()
	assert.Equal(t, ids(Query(posts, "", FilterAll, SortRecent)),
		ids(Query(posts, "", FilterAll, SortMode("bogus"))))
}

func TestQueryIsReferentiallyTransparent(t *testing.T) {
	posts := samplePosts()

	first := Query(posts, "react", FilterAll, SortPopular)
	second := Query(posts, "react", FilterAll, SortPopular)
	assert.Equal(t, first, second)
}
