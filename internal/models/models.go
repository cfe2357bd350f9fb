package models

import "time"

// Instructor is a coach identity. Login is by the unique code, minted at
// signup behind the master code.
type Instructor struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Code      string    `gorm:"column:code;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Favorites []InstructorPlayer `gorm:"foreignKey:InstructorID"`
}

// TableName specifies the table name for GORM
func (Instructor) TableName() string {
	return "instructors"
}

// Player is owned by the whole instructor pool; any instructor may view or
// edit any player.
type Player struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	Name       string    `gorm:"column:name;not null"`
	Age        int       `gorm:"column:age;not null"`
	Phone      *string   `gorm:"column:phone"`
	LoginCode  string    `gorm:"column:login_code;uniqueIndex"`
	AvatarPath *string   `gorm:"column:avatar_path"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	Metrics        []Metric        `gorm:"foreignKey:PlayerID"`
	Notes          []CoachNote     `gorm:"foreignKey:PlayerID"`
	AssignedDrills []AssignedDrill `gorm:"foreignKey:PlayerID"`
}

// TableName specifies the table name for GORM
func (Player) TableName() string {
	return "players"
}

// InstructorPlayer records whether an instructor has favorited a player.
// At most one row per (instructor, player) pair, created lazily on the
// first favorite toggle. Player deletion does not cascade here.
type InstructorPlayer struct {
	ID           uint `gorm:"column:id;primaryKey"`
	InstructorID uint `gorm:"column:instructor_id;index"`
	PlayerID     uint `gorm:"column:player_id;index"`
	IsFavorite   bool `gorm:"column:is_favorite;default:false"`
}

// TableName specifies the table name for GORM
func (InstructorPlayer) TableName() string {
	return "instructor_players"
}

// Metric is a timestamped performance sample. Exit velocity is required at
// the handler level; launch angle and spin rate stay NULL when not supplied.
type Metric struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	PlayerID     uint      `gorm:"column:player_id;index"`
	Date         time.Time `gorm:"column:date"`
	ExitVelocity *float64  `gorm:"column:exit_velocity"`
	LaunchAngle  *float64  `gorm:"column:launch_angle"`
	SpinRate     *float64  `gorm:"column:spin_rate"`
}

// TableName specifies the table name for GORM
func (Metric) TableName() string {
	return "metrics"
}

// CoachNote is free text from an instructor about a player. SharedToPlayer
// controls whether the player sees it on their dashboard.
type CoachNote struct {
	ID             uint      `gorm:"column:id;primaryKey"`
	PlayerID       uint      `gorm:"column:player_id;index"`
	InstructorID   uint      `gorm:"column:instructor_id"`
	Content        string    `gorm:"column:content;not null"`
	SharedToPlayer bool      `gorm:"column:shared_to_player;default:false"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (CoachNote) TableName() string {
	return "coach_notes"
}

// Drill is an uploaded instructional file.
type Drill struct {
	ID                   uint      `gorm:"column:id;primaryKey"`
	Title                string    `gorm:"column:title;not null"`
	Filename             string    `gorm:"column:filename;not null"`
	UploaderInstructorID uint      `gorm:"column:uploader_instructor_id"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Drill) TableName() string {
	return "drills"
}

// AssignedDrill links a player to a drill. No uniqueness constraint: the
// same drill may be assigned to the same player more than once.
type AssignedDrill struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	PlayerID   uint      `gorm:"column:player_id;index"`
	DrillID    uint      `gorm:"column:drill_id"`
	AssignedAt time.Time `gorm:"column:assigned_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (AssignedDrill) TableName() string {
	return "assigned_drills"
}
