// Package feed derives the displayed post list from the raw post collection
// and the transient query inputs. Query is pure: same inputs, same output,
// and the input slice is never mutated.
package feed

import (
	"sort"
	"strings"

	"educonnect/models"
)

// SortMode selects the display ordering.
type SortMode string

const (
	SortRecent   SortMode = "recent"
	SortPopular  SortMode = "popular"
	SortTrending SortMode = "trending"
)

// FilterAll passes every post type through the filter stage.
const FilterAll = "all"

// KnownSortMode reports whether m is a declared sort mode.
func KnownSortMode(m SortMode) bool {
	return m == SortRecent || m == SortPopular || m == SortTrending
}

// Query applies the fixed pipeline: search, then type filter, then sort.
// An unknown sort mode behaves as SortRecent.
func Query(posts []models.Post, search, typeFilter string, mode SortMode) []models.Post {
	posts = applySearch(posts, search)
	posts = applyTypeFilter(posts, typeFilter)
	return sortPosts(posts, mode)
}

// applySearch retains posts whose corpus contains at least one of the
// lowercased query terms. OR semantics: a multi-word query broadens the
// result rather than narrowing it.
func applySearch(posts []models.Post, search string) []models.Post {
	terms := strings.Fields(strings.ToLower(search))
	if len(terms) == 0 {
		return posts
	}

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		c := corpus(p)
		for _, t := range terms {
			if strings.Contains(c, t) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// corpus concatenates the searchable text of a post, lowercased. Missing
// optional fields contribute nothing.
func corpus(p models.Post) string {
	parts := []string{p.Content, p.Title, p.Author.Name, p.Author.Title}
	if m := p.Metadata; m != nil {
		parts = append(parts, m.Tags...)
		if m.Course != nil {
			parts = append(parts, m.Course.CourseTitle)
		}
		if m.Resource != nil {
			parts = append(parts, m.Resource.ResourceTitle)
		}
		if m.Achievement != nil {
			parts = append(parts, m.Achievement.BadgeName)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func applyTypeFilter(posts []models.Post, filter string) []models.Post {
	if filter == "" || filter == FilterAll {
		return posts
	}
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if string(p.Type) == filter {
			out = append(out, p)
		}
	}
	return out
}

// Engagement is the trending score: likes + comment count + shares. A
// missing share counter scores as 0, it never excludes the post.
func Engagement(p models.Post) int {
	shares := 0
	if p.Shares != nil {
		shares = *p.Shares
	}
	return p.Likes + len(p.Comments) + shares
}

// sortPosts returns a freshly ordered slice. Sorts are stable: posts with
// equal keys keep their relative input order.
func sortPosts(posts []models.Post, mode SortMode) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)

	switch mode {
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	case SortTrending:
		sort.SliceStable(out, func(i, j int) bool { return Engagement(out[i]) > Engagement(out[j]) })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	}
	return out
}
