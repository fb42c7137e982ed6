package model

import "time"

// Lesson is a bookable class in the lessons collection
type Lesson struct {
	ID          interface{} `bson:"_id" json:"_id"`
	Subject     string      `bson:"subject" json:"subject"`
	Location    string      `bson:"location" json:"location"`
	Price       float64     `bson:"price" json:"price"`
	Spaces      int         `bson:"spaces" json:"spaces"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Image       string      `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time   `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time   `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SeedLessons returns the canonical lesson catalogue with numeric IDs
func SeedLessons() []Lesson {
	return []Lesson{
		{ID: 1, Subject: "Algebra II", Location: "Room 204", Price: 38, Spaces: 5,
			Description: "Quadratic, exponential, and polynomial problem solving with guided practice.", Image: "algebra.svg"},
		{ID: 2, Subject: "Biology Lab", Location: "Science Lab B", Price: 42, Spaces: 5,
			Description: "Microscope work and dissections that bring cellular biology to life.", Image: "biology-lab.svg"},
		{ID: 3, Subject: "Chemistry Honors", Location: "Chemistry Lab", Price: 44, Spaces: 5,
			Description: "Reactions, stoichiometry, and weekly safety-focused experiments.", Image: "chemistry-honors.svg"},
		{ID: 4, Subject: "Physics Workshop", Location: "Innovation Studio", Price: 46, Spaces: 5,
			Description: "Motion labs, energy challenges, and simple robotics tie-ins.", Image: "physics-workshop.svg"},
		{ID: 5, Subject: "English Literature", Location: "Library Commons", Price: 36, Spaces: 5,
			Description: "Close reading, essay writing, and seminar-style discussions.", Image: "english-literature.svg"},
		{ID: 6, Subject: "World History", Location: "Room 112", Price: 34, Spaces: 5,
			Description: "Global movements and key decisions from ancient to modern eras.", Image: "world-history.svg"},
		{ID: 7, Subject: "Computer Science Principles", Location: "Tech Lab", Price: 48, Spaces: 5,
			Description: "Algorithms, interactive apps, and ethical computing foundations.", Image: "computer-science-principles.svg"},
		{ID: 8, Subject: "French Conversation", Location: "Language Studio", Price: 33, Spaces: 5,
			Description: "Roleplay, listening drills, and everyday vocabulary.", Image: "french-conversation.svg"},
		{ID: 9, Subject: "Studio Art", Location: "Art Atelier", Price: 40, Spaces: 5,
			Description: "Charcoal, acrylics, and mixed media portfolio pieces.", Image: "studio-art.svg"},
		{ID: 10, Subject: "Music Ensemble", Location: "Music Room", Price: 37, Spaces: 5,
			Description: "Contemporary charts and small-group performance skills.", Image: "music-ensemble.svg"},
		{ID: 11, Subject: "AP Economics", Location: "Room 305", Price: 45, Spaces: 5,
			Description: "Market simulations and data-driven policy case studies.", Image: "ap-economics.svg"},
		{ID: 12, Subject: "Health & Wellness", Location: "Wellness Center", Price: 32, Spaces: 5,
			Description: "Nutrition, mindfulness, and fitness planning for balanced living.", Image: "health-wellness.svg"},
		{ID: 13, Subject: "Environmental Science", Location: "Greenhouse Lab", Price: 41, Spaces: 5,
			Description: "Ecosystems, sustainability challenges, and field data collection.", Image: "environmental-science.svg"},
	}
}
