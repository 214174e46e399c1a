package models

// PostType discriminates which metadata variant a post carries.
type PostType string

const (
	PostTypeText         PostType = "text"
	PostTypeAchievement  PostType = "achievement"
	PostTypeCourse       PostType = "course"
	PostTypeResource     PostType = "resource"
	PostTypeAnnouncement PostType = "announcement"
	PostTypeDiscussion   PostType = "discussion"
)

// KnownPostType reports whether t is one of the declared post types.
func KnownPostType(t PostType) bool {
	switch t {
	case PostTypeText, PostTypeAchievement, PostTypeCourse,
		PostTypeResource, PostTypeAnnouncement, PostTypeDiscussion:
		return true
	}
	return false
}

// Author is a user summary copied into a post at creation time. It is a
// snapshot, not a live reference; later profile edits do not propagate.
type Author struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	Avatar string `bson:"avatar" json:"avatar"`
	Title  string `bson:"title,omitempty" json:"title,omitempty"`
	Role   string `bson:"role" json:"role"`
}

// Comment is immutable once created. No edit or delete operation exists.
type Comment struct {
	ID        string `bson:"id" json:"id"`
	Author    Author `bson:"author" json:"author"`
	Content   string `bson:"content" json:"content"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}

type AchievementMeta struct {
	BadgeName string `bson:"badgeName" json:"badgeName"`
	BadgeIcon string `bson:"badgeIcon,omitempty" json:"badgeIcon,omitempty"`
}

type CourseMeta struct {
	CourseID    string `bson:"courseId" json:"courseId"`
	CourseTitle string `bson:"courseTitle" json:"courseTitle"`
}

type ResourceMeta struct {
	ResourceTitle string `bson:"resourceTitle" json:"resourceTitle"`
	ResourceURL   string `bson:"resourceUrl,omitempty" json:"resourceUrl,omitempty"`
}

// PostMetadata is the tagged-union payload attached to a post. Which field is
// set follows the post type; only the type discriminant is validated.
type PostMetadata struct {
	Achievement *AchievementMeta `bson:"achievement,omitempty" json:"achievement,omitempty"`
	Course      *CourseMeta      `bson:"course,omitempty" json:"course,omitempty"`
	Resource    *ResourceMeta    `bson:"resource,omitempty" json:"resource,omitempty"`
	Tags        []string         `bson:"tags,omitempty" json:"tags,omitempty"`
}

type Post struct {
	ID        string        `bson:"_id" json:"id"`
	Type      PostType      `bson:"type" json:"type"`
	Title     string        `bson:"title,omitempty" json:"title,omitempty"`
	Content   string        `bson:"content" json:"content"`
	Author    Author        `bson:"author" json:"author"`
	Likes     int           `bson:"likes" json:"likes"`
	Comments  []Comment     `bson:"comments" json:"comments"`
	Shares    *int          `bson:"shares,omitempty" json:"shares,omitempty"` // display-only counter
	CreatedAt int64         `bson:"createdAt" json:"createdAt"`
	UpdatedAt int64         `bson:"updatedAt" json:"updatedAt"`
	Metadata  *PostMetadata `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

func (p Post) EntityID() string { return p.ID }
