// Package fixtures is the static data source seeded at process start:
// the course catalog, the initial feed and the achievement catalog. The
// slices returned here are read-only seed data; callers must never mutate
// them in place.
package fixtures

import "educonnect/models"

func intp(v int) *int { return &v }

// Courses returns the course catalog.
func Courses() []models.Course {
	return []models.Course{
		{
			ID:          "course-go-basics",
			Title:       "Go Fundamentals",
			Description: "Syntax, tooling and the standard library from zero.",
			Instructor:  "Dana Whitfield",
			Level:       models.CourseLevelBeginner,
			Rating:      4.7,
			Enrolled:    1823,
			Duration:    "6 weeks",
			Tags:        []string{"go", "backend"},
		},
		{
			ID:          "course-react-hooks",
			Title:       "Modern React with Hooks",
			Description: "State, effects and custom hooks in real applications.",
			Instructor:  "Miguel Arenas",
			Level:       models.CourseLevelIntermediate,
			Rating:      4.5,
			Enrolled:    2914,
			Duration:    "4 weeks",
			Tags:        []string{"react", "frontend"},
		},
		{
			ID:          "course-distributed",
			Title:       "Distributed Systems",
			Description: "Consensus, replication and failure models.",
			Instructor:  "Priya Raman",
			Level:       models.CourseLevelAdvanced,
			Rating:      4.9,
			Enrolled:    968,
			Duration:    "10 weeks",
			Tags:        []string{"systems", "consensus"},
		},
		{
			ID:          "course-sql-found",
			Title:       "SQL Foundations",
			Description: "Queries, joins and schema design for beginners.",
			Instructor:  "Dana Whitfield",
			Level:       models.CourseLevelBeginner,
			Rating:      4.3,
			Enrolled:    4102,
			Duration:    "3 weeks",
			Tags:        []string{"sql", "databases"},
		},
		{
			ID:          "course-ml-intro",
			Title:       "Machine Learning Basics",
			Description: "Regression, classification and evaluation.",
			Instructor:  "Priya Raman",
			Level:       models.CourseLevelIntermediate,
			Rating:      4.6,
			Enrolled:    3377,
			Duration:    "8 weeks",
			Tags:        []string{"ml", "python"},
		},
		{
			ID:          "course-ux-design",
			Title:       "UX Design Principles",
			Description: "Research, wireframes and usability testing.",
			Instructor:  "Miguel Arenas",
			Level:       models.CourseLevelBeginner,
			Rating:      4.4,
			Enrolled:    1540,
			Duration:    "5 weeks",
			Tags:        []string{"design", "ux"},
		},
	}
}

// Posts returns the initial feed, newest-first.
func Posts() []models.Post {
	aisha := models.Author{
		ID: "user-aisha", Name: "Aisha Bello", Email: "aisha@educonnect.dev",
		Title: "CS Student", Role: models.RoleStudent,
	}
	marco := models.Author{
		ID: "user-marco", Name: "Marco Diaz", Email: "marco@educonnect.dev",
		Title: "Data Science Mentor", Role: models.RoleInstructor,
	}
	lena := models.Author{
		ID: "user-lena", Name: "Lena Fischer", Email: "lena@educonnect.dev",
		Title: "Frontend Developer", Role: models.RoleStudent,
	}

	return []models.Post{
		{
			ID:      "post-6",
			Type:    models.PostTypeAnnouncement,
			Title:   "Platform maintenance this weekend",
			Content: "EduConnect will be read-only on Saturday between 02:00 and 04:00 UTC.",
			Author:  marco,
			Likes:   4,
			CreatedAt: 1756200000, UpdatedAt: 1756200000,
		},
		{
			ID:      "post-5",
			Type:    models.PostTypeResource,
			Title:   "Free systems design reading list",
			Content: "Collected the papers that helped me most when preparing for interviews.",
			Author:  lena,
			Likes:   19,
			Shares:  intp(6),
			Comments: []models.Comment{
				{ID: "comment-5a", Author: aisha, Content: "Bookmarked, thanks!", CreatedAt: 1756113700},
			},
			CreatedAt: 1756113600, UpdatedAt: 1756113600,
			Metadata: &models.PostMetadata{
				Resource: &models.ResourceMeta{ResourceTitle: "Systems Design Reading List", ResourceURL: "https://example.com/reading-list"},
				Tags:     []string{"systems", "interviews"},
			},
		},
		{
			ID:      "post-4",
			Type:    models.PostTypeAchievement,
			Content: "Earned my first badge after a month of daily practice!",
			Author:  aisha,
			Likes:   32,
			CreatedAt: 1756027200, UpdatedAt: 1756027200,
			Metadata: &models.PostMetadata{
				Achievement: &models.AchievementMeta{BadgeName: "Streak Keeper", BadgeIcon: "flame"},
			},
		},
		{
			ID:      "post-3",
			Type:    models.PostTypeCourse,
			Title:   "New cohort: Modern React with Hooks",
			Content: "Enrollment for the spring cohort is open, limited to 200 seats.",
			Author:  marco,
			Likes:   11,
			Shares:  intp(2),
			CreatedAt: 1755940800, UpdatedAt: 1755940800,
			Metadata: &models.PostMetadata{
				Course: &models.CourseMeta{CourseID: "course-react-hooks", CourseTitle: "Modern React with Hooks"},
				Tags:   []string{"react", "cohort"},
			},
		},
		{
			ID:      "post-2",
			Type:    models.PostTypeDiscussion,
			Title:   "How do you stay motivated on long courses?",
			Content: "Halfway through Distributed Systems and losing steam. Tips welcome.",
			Author:  aisha,
			Likes:   7,
			Comments: []models.Comment{
				{ID: "comment-2a", Author: marco, Content: "Pair up with a study buddy.", CreatedAt: 1755854500},
				{ID: "comment-2b", Author: lena, Content: "Small daily goals work for me.", CreatedAt: 1755854600},
			},
			CreatedAt: 1755854400, UpdatedAt: 1755854400,
		},
		{
			ID:      "post-1",
			Type:    models.PostTypeText,
			Content: "Hello EduConnect! Excited to learn with all of you.",
			Author:  lena,
			Likes:   15,
			CreatedAt: 1755768000, UpdatedAt: 1755768000,
		},
	}
}

// Achievements returns the badge catalog.
func Achievements() []models.Achievement {
	return []models.Achievement{
		{ID: "badge-first-steps", Name: "First Steps", Description: "Complete your first lesson.", Icon: "footprints", Points: 10, Rarity: "common"},
		{ID: "badge-streak", Name: "Streak Keeper", Description: "Learn 30 days in a row.", Icon: "flame", Points: 50, Rarity: "rare"},
		{ID: "badge-helper", Name: "Community Helper", Description: "Post 10 answers on discussion boards.", Icon: "hands-helping", Points: 40, Rarity: "rare"},
		{ID: "badge-scholar", Name: "Scholar", Description: "Finish 5 courses.", Icon: "graduation-cap", Points: 100, Rarity: "epic"},
		{ID: "badge-founder", Name: "Early Adopter", Description: "Join during the launch semester.", Icon: "rocket", Points: 25, Rarity: "legendary"},
	}
}

// Progress returns the static per-badge progress shown for every user.
// There is no update mechanism; this mirrors the seeded product state.
func Progress() map[string]int {
	return map[string]int{
		"badge-first-steps": 100,
		"badge-streak":      100,
		"badge-helper":      60,
		"badge-scholar":     40,
		"badge-founder":     100,
	}
}
