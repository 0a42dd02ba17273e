package main

import (
	"time"

	"github.com/google/uuid"

	"taskboard/internal/tasks"
)

// seedLocalTasks returns a collection of demo tasks for local development.
func seedLocalTasks() []tasks.Task {
	now := time.Now().UTC()

	return []tasks.Task{
		{
			ID:          uuid.New(),
			Title:       "Buy milk",
			Description: "2% from the corner shop",
			Completed:   true,
			CreatedAt:   now.Add(-3 * time.Hour),
		},
		{
			ID:          uuid.New(),
			Title:       "Water the plants",
			Description: "Ferns in the hallway need extra",
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			ID:          uuid.New(),
			Title:       "Book dentist appointment",
			Description: "Preferably a morning slot next week",
			CreatedAt:   now.Add(-1 * time.Hour),
		},
		{
			ID:          uuid.New(),
			Title:       "Review pull requests",
			Description: "Two open reviews pending since Friday",
			CreatedAt:   now,
		},
	}
}
