// Package models defines the data structures (models) that map to database tables.
// GORM uses these structs to generate SQL queries and map database rows back to Go values.
// The struct field tags (the backtick strings like `gorm:"..."`) tell GORM how to handle
// each field: its column type, constraints, default values, and relationships.
//
// The data model represents a golf tour where:
//   - A Tour is a season of Rounds, each played on a Course
//   - Courses carry a par and stroke index per hole, per tee (M or F)
//   - Players belong to the tour roster and are assigned to each Round (RoundPlayer)
//   - Scores are stored per player, per round, per hole
//   - Pairs and teams (TourEntity) group players for the group competitions
//   - H2ZLeg rows split the tour into "hero to zero" legs
//
// The scoring engine never reads these structs directly; the repository flattens them
// into tour.Input rows first.
package models

import (
	"time"

	// uuid provides universally unique identifiers for primary keys.
	// IDs are generated in BeforeCreate hooks rather than by a database default so the
	// same models work on PostgreSQL and on the in-memory SQLite used by tests.
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- Enums ---
// Go doesn't have a built-in enum keyword, so we simulate them using a named string type
// plus constants. The columns are plain text so the schema stays portable.

// UserRole represents a caller's permission level, carried in the JWT "role" claim.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"   // Full access
	UserRoleManager UserRole = "manager" // Can run exports and manage tours
	UserRoleUser    UserRole = "user"    // Read-only leaderboards
)

// EntityKind says whether a TourEntity is a pair or a team.
type EntityKind string

const (
	EntityKindPair EntityKind = "pair"
	EntityKindTeam EntityKind = "team"
)

// Base carries the UUID primary key shared by every table.
type Base struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// BeforeCreate assigns a fresh UUID when the caller did not set one.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// --- Models ---
// Each struct below maps to a database table. GORM uses the struct name (snake_cased and
// pluralized) as the table name by default: Tour -> tours, CoursePar -> course_pars, etc.

// Tour is the top-level container: one season of rounds with one roster.
type Tour struct {
	Base
	Name      string `gorm:"not null"`
	TeamBestM int    `gorm:"not null;default:2"` // How many best scores per hole count in team best-M
	CreatedAt time.Time
	UpdatedAt time.Time
	Rounds    []Round      `gorm:"foreignKey:TourID"`
	Players   []Player     `gorm:"foreignKey:TourID"`
	Entities  []TourEntity `gorm:"foreignKey:TourID"`
	Legs      []H2ZLeg     `gorm:"foreignKey:TourID"`
}

// Course is a golf course. Hole data lives in CoursePar, one row per hole per tee.
type Course struct {
	Base
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Pars      []CoursePar `gorm:"foreignKey:CourseID"`
}

// CoursePar is the par and stroke index of one hole for one tee.
// The unique index prevents two rows for the same course, tee and hole.
type CoursePar struct {
	Base
	CourseID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_course_tee_hole"`
	Tee         string    `gorm:"not null;uniqueIndex:idx_course_tee_hole"` // "M" or "F"
	HoleNumber  int       `gorm:"not null;uniqueIndex:idx_course_tee_hole"` // Usually 1-18; some imports use 0-17
	Par         int       `gorm:"not null"`
	StrokeIndex int       `gorm:"not null"` // 1 = hardest hole, receives the first handicap stroke
}

// Round is one round of the tour.
type Round struct {
	Base
	TourID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null"`
	Course    Course    `gorm:"foreignKey:CourseID"`
	RoundNo   *int      // Optional; nil means "use the round's position in the tour"
	PlayedOn  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Player is a member of the tour roster.
type Player struct {
	Base
	TourID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	Gender    string    `gorm:"not null;default:''"` // Drives the default tee when none is assigned
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoundPlayer records whether a player is playing a round, with what handicap and off which tee.
type RoundPlayer struct {
	Base
	RoundID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_round_player"`
	PlayerID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_round_player"`
	Playing         bool      `gorm:"not null"`
	PlayingHandicap *int      // nil is treated as 0
	Tee             *string   // Optional tee override ("M" or "F")
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Score is one hole of one player's card. Pickup means "no score"; it wins over Strokes.
type Score struct {
	Base
	RoundID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_round_player_hole"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_round_player_hole"`
	HoleNumber int       `gorm:"not null;uniqueIndex:idx_round_player_hole"`
	Strokes    *int      // nil when the hole has not been entered or was picked up
	Pickup     bool      `gorm:"not null;default:false"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// TourEntity is a named pair or team within a tour.
type TourEntity struct {
	Base
	TourID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	Kind    EntityKind         `gorm:"not null"`
	Name    string             `gorm:"not null"`
	Members []TourEntityMember `gorm:"foreignKey:EntityID"`
}

// TourEntityMember is a join table placing a Player into a TourEntity.
// Composite primary key prevents listing the same player twice.
type TourEntityMember struct {
	EntityID uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlayerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"not null;default:0"` // Keeps member order stable
}

// H2ZLeg is one "hero to zero" leg: an inclusive span of round numbers.
type H2ZLeg struct {
	Base
	TourID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tour_leg"`
	LegNo        int       `gorm:"not null;uniqueIndex:idx_tour_leg"`
	StartRoundNo int       `gorm:"not null"`
	EndRoundNo   int       `gorm:"not null"`
}

// TableName keeps the table name readable; GORM would otherwise produce "h2_z_legs".
func (H2ZLeg) TableName() string { return "h2z_legs" }

// All lists every model in dependency order, for AutoMigrate in tests and tools.
func All() []any {
	return []any{
		&Tour{}, &Course{}, &CoursePar{}, &Round{}, &Player{},
		&RoundPlayer{}, &Score{}, &TourEntity{}, &TourEntityMember{}, &H2ZLeg{},
	}
}
