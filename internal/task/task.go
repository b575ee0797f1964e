// Package task handles task files and their frontmatter.
package task

import (
	"time"
)

// Task represents a to-do item parsed from a markdown file.
type Task struct {
	ID        int       `yaml:"id" json:"id"`
	Text      string    `yaml:"text" json:"text"`
	Priority  string    `yaml:"priority" json:"priority"`
	Category  string    `yaml:"category" json:"category"`
	Completed bool      `yaml:"completed" json:"completed"`
	Created   time.Time `yaml:"created" json:"created"`
	Updated   time.Time `yaml:"updated" json:"updated"`

	// Body is the optional markdown note below the frontmatter (not in YAML).
	Body string `yaml:"-" json:"body,omitempty"`

	// File is the path to the task file (not in YAML).
	File string `yaml:"-" json:"file,omitempty"`
}

// Clone returns a shallow copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}
