package models

type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "Beginner"
	CourseLevelIntermediate CourseLevel = "Intermediate"
	CourseLevelAdvanced     CourseLevel = "Advanced"
)

type Course struct {
	ID          string      `bson:"_id" json:"id"`
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description" json:"description"`
	Instructor  string      `bson:"instructor" json:"instructor"`
	Level       CourseLevel `bson:"level" json:"level"`
	Rating      float64     `bson:"rating" json:"rating"`
	Enrolled    int         `bson:"enrolled" json:"enrolled"`
	Duration    string      `bson:"duration,omitempty" json:"duration,omitempty"`
	Tags        []string    `bson:"tags,omitempty" json:"tags,omitempty"`
}

func (c Course) EntityID() string { return c.ID }
