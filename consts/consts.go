package consts

// URL path parameter names shared by the router and handlers
const (
	URLPathID        = "id"
	URLPathKey       = "key"
	URLPathStudentID = "student_id"
)

// Pagination bounds for list endpoints
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// RoleName is the closed set of account roles. The rows behind these names
// are seeded at startup; business logic resolves role IDs through the seed,
// never through literal IDs.
type RoleName string

const (
	RoleAdmin    RoleName = "admin"
	RoleLecturer RoleName = "lecturer"
	RoleStudent  RoleName = "student"
)

// ValidRoles enumerates every assignable role
var ValidRoles = map[RoleName]struct{}{
	RoleAdmin:    {},
	RoleLecturer: {},
	RoleStudent:  {},
}

func (r RoleName) String() string {
	return string(r)
}

// ContentType discriminates the course-content variants. Each value owns a
// dedicated table joined on the shared content row.
type ContentType string

const (
	ContentLesson     ContentType = "lesson"
	ContentQuiz       ContentType = "quiz"
	ContentAssignment ContentType = "assignment"
)

var ValidContentTypes = map[ContentType]struct{}{
	ContentLesson:     {},
	ContentQuiz:       {},
	ContentAssignment: {},
}

func (t ContentType) String() string {
	return string(t)
}

// Semester term numbers
const (
	TermFirst  = 1
	TermSecond = 2
	TermSummer = 3
)
