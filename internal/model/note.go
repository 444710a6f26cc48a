package model

import "time"

// NoteType indicates how a note was produced.
type NoteType string

// Note type constants.
const (
	NoteGenerated NoteType = "generated_notes"
	NoteKeyPoints NoteType = "key_points"
	NoteUploaded  NoteType = "uploaded"
)

// Note represents a summarized body of text.
type Note struct {
	CreatedAt time.Time
	ID        string
	Title     string
	Content   string
	Type      NoteType
	KeyPoints []string
}
