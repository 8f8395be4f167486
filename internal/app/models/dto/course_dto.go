package dto

// CreateCourseRequest represents a new course
type CreateCourseRequest struct {
	CourseName   string  `json:"courseName" binding:"required"`
	InstructorID *int64  `json:"instructorId,omitempty"`
	Schedule     *string `json:"schedule,omitempty"`
	Credits      int     `json:"credits" binding:"required,min=1,max=12"`
}

// UpdateCourseRequest represents course changes
type UpdateCourseRequest struct {
	CourseName   string  `json:"courseName" binding:"required"`
	InstructorID *int64  `json:"instructorId,omitempty"`
	Schedule     *string `json:"schedule,omitempty"`
	Credits      int     `json:"credits" binding:"required,min=1,max=12"`
}

// EnrollRequest enrolls a student into a course
type EnrollRequest struct {
	StudentID int64   `json:"studentId" binding:"required,min=1"`
	CourseID  int64   `json:"courseId" binding:"required,min=1"`
	Semester  *string `json:"semester,omitempty"`
}

// GradeRequest sets the grade on an enrollment
type GradeRequest struct {
	Grade string `json:"grade" binding:"required"`
}
