package model

// Curriculum is the ordered set of sessions presented to the learner. The
// zero value is the empty curriculum that malformed documents degrade to.
type Curriculum struct {
	Title    string     `json:"title,omitempty" yaml:"title,omitempty"`
	Sessions []*Session `json:"sessions,omitempty" yaml:"sessions,omitempty"`
}

// Session groups an ordered run of lessons under one label. It is a
// curriculum unit, unrelated to the terminal sessions of the execution pool.
type Session struct {
	Label       string    `json:"label" yaml:"label"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Lessons     []*Lesson `json:"lessons,omitempty" yaml:"lessons,omitempty"`
}

// Lesson holds one lesson with its optional markdown reference, file
// reference and action list.
type Lesson struct {
	Label    string    `json:"label" yaml:"label"`
	Markdown string    `json:"markdown,omitempty" yaml:"markdown,omitempty"`
	File     string    `json:"file,omitempty" yaml:"file,omitempty"`
	Actions  []*Action `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// IsEmpty reports whether the curriculum has no sessions.
func (c *Curriculum) IsEmpty() bool {
	return c == nil || len(c.Sessions) == 0
}

// LessonCount returns the total number of lessons across all sessions.
func (c *Curriculum) LessonCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, session := range c.Sessions {
		count += len(session.Lessons)
	}
	return count
}
