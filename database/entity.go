package database

import (
	"time"

	"campus/consts"
)

// User account table. One role per account; students and lecturers
// additionally hang off Course through CourseStudent / Course.LecturerID.
type User struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`  // Login name (unique)
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`     // Email (unique)
	Password     string     `gorm:"not null" json:"-"`                     // bcrypt hash, never serialized
	FullName     string     `gorm:"not null" json:"full_name"`             // Display name
	Phone        string     `json:"phone,omitempty"`                       // Phone number (optional)
	Avatar       string     `json:"avatar,omitempty"`                      // Avatar URL on the media host
	RoleID       int        `gorm:"not null;index" json:"role_id"`         // Account role
	DepartmentID *int       `gorm:"index" json:"department_id,omitempty"`  // Home department (optional)
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`   // Login allowed
	IsDeleted    bool       `gorm:"default:false;index" json:"is_deleted"` // Soft delete flag
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Role       *Role       `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// Role table. Rows are seeded from consts.ValidRoles at startup.
type Role struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        consts.RoleName `gorm:"uniqueIndex;not null" json:"name"` // Stable machine name
	DisplayName string          `gorm:"not null" json:"display_name"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type Department struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"uniqueIndex;not null" json:"code"` // Short code, e.g. CS
	Name      string    `gorm:"not null;index" json:"name"`
	IsDeleted bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Major struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code         string    `gorm:"uniqueIndex;not null" json:"code"`
	Name         string    `gorm:"not null;index" json:"name"`
	DepartmentID int       `gorm:"not null;index" json:"department_id"`
	IsDeleted    bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

type AcademicYear struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"uniqueIndex;not null" json:"code"` // e.g. 2025-2026
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsDeleted bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Semester struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AcademicYearID int       `gorm:"not null;index:idx_semester_year_term,unique" json:"academic_year_id"`
	Term           int       `gorm:"not null;index:idx_semester_year_term,unique" json:"term"` // 1, 2 or summer
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	IsDeleted      bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	AcademicYear *AcademicYear `gorm:"foreignKey:AcademicYearID" json:"academic_year,omitempty"`
}

// Course table. LecturerID stays nil until a lecturer is assigned.
type Course struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string    `gorm:"uniqueIndex;not null" json:"code"` // Natural key, e.g. CS101
	Name        string    `gorm:"not null;index" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Credits     int       `gorm:"default:3" json:"credits"`
	MajorID     int       `gorm:"not null;index" json:"major_id"`
	SemesterID  int       `gorm:"not null;index" json:"semester_id"`
	LecturerID  *int      `gorm:"index" json:"lecturer_id,omitempty"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	IsDeleted   bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Major    *Major    `gorm:"foreignKey:MajorID" json:"major,omitempty"`
	Semester *Semester `gorm:"foreignKey:SemesterID" json:"semester,omitempty"`
	Lecturer *User     `gorm:"foreignKey:LecturerID" json:"lecturer,omitempty"`
	Chapters []Chapter `gorm:"foreignKey:CourseID" json:"chapters,omitempty"`
}

// CourseStudent is the enrollment join table. Rows survive course or user
// soft deletion so grade history stays referentially valid.
type CourseStudent struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID   int       `gorm:"not null;index:idx_course_student_unique,unique" json:"course_id"`
	StudentID  int       `gorm:"not null;index:idx_course_student_unique,unique" json:"student_id"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`

	Course  *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Student *User   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

type Chapter struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID    int       `gorm:"not null;index" json:"course_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	SortOrder   int       `gorm:"default:0;index" json:"sort_order"`
	IsDeleted   bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Course   *Course         `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Contents []CourseContent `gorm:"foreignKey:ChapterID" json:"contents,omitempty"`
}

// CourseContent is the shared row of the table-per-type content mapping.
// ContentType selects exactly one of the Lesson/Quiz/Assignment variants,
// joined on ContentID.
type CourseContent struct {
	ID          int                `gorm:"primaryKey;autoIncrement" json:"id"`
	ChapterID   int                `gorm:"not null;index" json:"chapter_id"`
	Title       string             `gorm:"not null" json:"title"`
	ContentType consts.ContentType `gorm:"not null;index" json:"content_type"`
	SortOrder   int                `gorm:"default:0;index" json:"sort_order"`
	IsDeleted   bool               `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	Chapter    *Chapter    `gorm:"foreignKey:ChapterID" json:"chapter,omitempty"`
	Lesson     *Lesson     `gorm:"foreignKey:ContentID" json:"lesson,omitempty"`
	Quiz       *Quiz       `gorm:"foreignKey:ContentID" json:"quiz,omitempty"`
	Assignment *Assignment `gorm:"foreignKey:ContentID" json:"assignment,omitempty"`
}

type Lesson struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentID       int       `gorm:"not null;uniqueIndex" json:"content_id"`
	Body            string    `gorm:"type:text" json:"body"`
	VideoURL        string    `json:"video_url,omitempty"` // Durable URL on the media host
	DurationMinutes int       `gorm:"default:0" json:"duration_minutes"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Quiz struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentID       int       `gorm:"not null;uniqueIndex" json:"content_id"`
	DurationMinutes int       `gorm:"default:30" json:"duration_minutes"`
	TotalPoints     int       `gorm:"default:0" json:"total_points"`
	Shuffle         bool      `gorm:"default:false" json:"shuffle"` // Shuffle question order per attempt
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

type Assignment struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentID    int        `gorm:"not null;uniqueIndex" json:"content_id"`
	Instructions string     `gorm:"type:text" json:"instructions"`
	DueAt        *time.Time `gorm:"index" json:"due_at,omitempty"`
	MaxPoints    int        `gorm:"default:100" json:"max_points"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type QuestionTopic struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	IsDeleted bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Question struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	TopicID     int       `gorm:"not null;index" json:"topic_id"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Explanation string    `gorm:"type:text" json:"explanation"`
	IsDeleted   bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Topic   *QuestionTopic `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
	Answers []Answer       `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

type Answer struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID int       `gorm:"not null;index" json:"question_id"`
	Text       string    `gorm:"not null" json:"text"`
	IsCorrect  bool      `gorm:"default:false" json:"is_correct"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// QuizQuestion attaches a bank question to a quiz with a point value.
type QuizQuestion struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID     int       `gorm:"not null;index:idx_quiz_question_unique,unique" json:"quiz_id"`
	QuestionID int       `gorm:"not null;index:idx_quiz_question_unique,unique" json:"question_id"`
	Points     int       `gorm:"default:1" json:"points"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Quiz     *Quiz     `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	Question *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

type LessonProgress struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	LessonID    int       `gorm:"not null;index:idx_lesson_progress_unique,unique" json:"lesson_id"`
	StudentID   int       `gorm:"not null;index:idx_lesson_progress_unique,unique" json:"student_id"`
	CompletedAt time.Time `gorm:"autoCreateTime" json:"completed_at"`

	Lesson  *Lesson `gorm:"foreignKey:LessonID" json:"lesson,omitempty"`
	Student *User   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// QuizSubmission records one graded attempt. The unique index enforces the
// one-attempt-per-student rule at the store level.
type QuizSubmission struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Receipt     string    `gorm:"uniqueIndex;not null" json:"receipt"` // Opaque submission identifier
	QuizID      int       `gorm:"not null;index:idx_quiz_submission_unique,unique" json:"quiz_id"`
	StudentID   int       `gorm:"not null;index:idx_quiz_submission_unique,unique" json:"student_id"`
	Score       int       `gorm:"default:0" json:"score"`
	MaxScore    int       `gorm:"default:0" json:"max_score"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`

	Quiz    *Quiz                  `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	Student *User                  `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Answers []QuizSubmissionAnswer `gorm:"foreignKey:SubmissionID" json:"answers,omitempty"`
}

type QuizSubmissionAnswer struct {
	ID           int  `gorm:"primaryKey;autoIncrement" json:"id"`
	SubmissionID int  `gorm:"not null;index:idx_submission_answer_unique,unique" json:"submission_id"`
	QuestionID   int  `gorm:"not null;index:idx_submission_answer_unique,unique" json:"question_id"`
	AnswerID     int  `gorm:"not null" json:"answer_id"`
	IsCorrect    bool `gorm:"default:false" json:"is_correct"`
	PointsEarned int  `gorm:"default:0" json:"points_earned"`
}

type AssignmentSubmission struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	AssignmentID int        `gorm:"not null;index:idx_assignment_submission_unique,unique" json:"assignment_id"`
	StudentID    int        `gorm:"not null;index:idx_assignment_submission_unique,unique" json:"student_id"`
	FileURL      string     `gorm:"not null" json:"file_url"` // URL returned by the media host
	Note         string     `gorm:"type:text" json:"note"`
	Grade        *int       `json:"grade,omitempty"` // Nil until graded
	Feedback     string     `gorm:"type:text" json:"feedback"`
	SubmittedAt  time.Time  `gorm:"autoCreateTime" json:"submitted_at"`
	GradedAt     *time.Time `json:"graded_at,omitempty"`

	Assignment *Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	Student    *User       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// SystemConfig holds runtime-tunable key/value settings.
type SystemConfig struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Key         string    `gorm:"uniqueIndex;not null" json:"key"`
	Value       string    `gorm:"type:text" json:"value"`
	Description string    `gorm:"type:text" json:"description"`
	IsPublic    bool      `gorm:"default:false" json:"is_public"` // Readable without admin role
	IsDeleted   bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
