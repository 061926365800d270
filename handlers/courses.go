package handlers

import (
	"net/http"

	"campus/consts"
	"campus/dto"
	"campus/middleware"
	"campus/service"

	"github.com/gin-gonic/gin"
)

// CreateCourse handles course creation
//
//	@Summary		Create a course
//	@Description	Create a course tied to a major and semester
//	@Tags			Courses
//	@ID				create_course
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateCourseReq				true	"Course creation request"
//	@Success		201		{object}	dto.APIResponse[dto.CourseResp]	"Course created"
//	@Failure		400		{object}	dto.APIResponse[any]			"Invalid request or code taken"
//	@Failure		500		{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/courses [post]
func CreateCourse(c *gin.Context) {
	var req dto.CreateCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.CreateCourse(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.CreatedResponse(c, "Course created", "/api/v1/courses", resp)
}

// GetCourse handles fetching one course with its chapter tree
//
//	@Summary		Get course by ID
//	@Description	Get a course with nested chapters and content summaries
//	@Tags			Courses
//	@ID				get_course
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int										true	"Course ID"
//	@Success		200	{object}	dto.APIResponse[dto.CourseDetailResp]	"Course detail"
//	@Failure		404	{object}	dto.APIResponse[any]					"Course not found"
//	@Failure		500	{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/courses/{id} [get]
func GetCourse(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	resp, err := service.GetCourse(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Course retrieved", resp)
}

// ListCourses handles the paginated, filterable course list
//
//	@Summary		List courses
//	@Description	List courses with pagination, search and filters
//	@Tags			Courses
//	@ID				list_courses
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pageNumber	query	int		false	"Page number (default 1)"
//	@Param			pageSize	query	int		false	"Page size (default 10, max 100)"
//	@Param			searchTerm	query	string	false	"Substring match over code and name"
//	@Param			majorId		query	int		false	"Filter by major"
//	@Param			semesterId	query	int		false	"Filter by semester"
//	@Param			lecturerId	query	int		false	"Filter by lecturer"
//	@Param			academicYearId	query	int	false	"Filter by academic year"
//	@Param			isActive	query	bool	false	"Filter by active flag"
//	@Success		200	{object}	dto.APIResponse[dto.PagedResult[dto.CourseResp]]	"Course page"
//	@Failure		500	{object}	dto.APIResponse[any]								"Internal server error"
//	@Router			/api/v1/courses [get]
func ListCourses(c *gin.Context) {
	var req dto.ListCourseReq
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := service.ListCourses(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Courses retrieved", resp)
}

// ListMyCourses handles the calling student's enrollment list
//
//	@Summary		List my courses
//	@Description	List the courses the authenticated student is enrolled in
//	@Tags			Courses
//	@ID				list_my_courses
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pageNumber	query	int		false	"Page number (default 1)"
//	@Param			pageSize	query	int		false	"Page size (default 10, max 100)"
//	@Param			searchTerm	query	string	false	"Substring match over code and name"
//	@Success		200	{object}	dto.APIResponse[dto.PagedResult[dto.CourseResp]]	"Course page"
//	@Failure		401	{object}	dto.APIResponse[any]								"Authentication required"
//	@Failure		500	{object}	dto.APIResponse[any]								"Internal server error"
//	@Router			/api/v1/courses/mine [get]
func ListMyCourses(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
		return
	}

	var req dto.PaginationReq
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := service.ListMyCourses(userID, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Courses retrieved", resp)
}

// UpdateCourse handles a partial course update
//
//	@Summary		Update course
//	@Description	Apply a partial update; omitted fields stay unchanged
//	@Tags			Courses
//	@ID				update_course
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"Course ID"
//	@Param			request	body		dto.UpdateCourseReq				true	"Partial update"
//	@Success		200		{object}	dto.APIResponse[dto.CourseResp]	"Course updated"
//	@Failure		400		{object}	dto.APIResponse[any]			"Invalid request"
//	@Failure		404		{object}	dto.APIResponse[any]			"Course not found"
//	@Failure		500		{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/courses/{id} [put]
func UpdateCourse(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.UpdateCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.UpdateCourse(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Course updated", resp)
}

// DeleteCourse handles course soft deletion
//
//	@Summary		Delete course
//	@Description	Soft-delete a course; enrollments stay for history
//	@Tags			Courses
//	@ID				delete_course
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int						true	"Course ID"
//	@Success		200	{object}	dto.APIResponse[any]	"Course deleted"
//	@Failure		404	{object}	dto.APIResponse[any]	"Course not found"
//	@Failure		500	{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/courses/{id} [delete]
func DeleteCourse(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	err := service.DeleteCourse(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Course deleted", nil)
}

// AssignLecturer handles lecturer assignment
//
//	@Summary		Assign lecturer
//	@Description	Set a course's lecturer; the user must hold the lecturer role
//	@Tags			Courses
//	@ID				assign_lecturer
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"Course ID"
//	@Param			request	body		dto.AssignLecturerReq			true	"Lecturer assignment"
//	@Success		200		{object}	dto.APIResponse[dto.CourseResp]	"Lecturer assigned"
//	@Failure		400		{object}	dto.APIResponse[any]			"User is not a lecturer"
//	@Failure		404		{object}	dto.APIResponse[any]			"Course not found"
//	@Failure		500		{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/courses/{id}/lecturer [put]
func AssignLecturer(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.AssignLecturerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.AssignLecturer(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Lecturer assigned", resp)
}

// EnrollStudent handles roster enrollment
//
//	@Summary		Enroll student
//	@Description	Add a student to the course roster
//	@Tags			Courses
//	@ID				enroll_student
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int										true	"Course ID"
//	@Param			request	body		dto.EnrollStudentReq					true	"Enrollment request"
//	@Success		201		{object}	dto.APIResponse[dto.EnrolledStudentResp]	"Student enrolled"
//	@Failure		400		{object}	dto.APIResponse[any]					"Invalid request or already enrolled"
//	@Failure		404		{object}	dto.APIResponse[any]					"Course not found"
//	@Failure		500		{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/courses/{id}/students [post]
func EnrollStudent(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.EnrollStudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.EnrollStudent(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Student enrolled", resp)
}

// UnenrollStudent handles roster removal
//
//	@Summary		Unenroll student
//	@Description	Remove a student from the course roster
//	@Tags			Courses
//	@ID				unenroll_student
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		int						true	"Course ID"
//	@Param			student_id	path		int						true	"Student ID"
//	@Success		200			{object}	dto.APIResponse[any]	"Student unenrolled"
//	@Failure		404			{object}	dto.APIResponse[any]	"Course or enrollment not found"
//	@Failure		500			{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/courses/{id}/students/{student_id} [delete]
func UnenrollStudent(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}
	studentID, ok := parseIDParam(c, consts.URLPathStudentID)
	if !ok {
		return
	}

	err := service.UnenrollStudent(id, studentID)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Student unenrolled", nil)
}

// ListEnrolledStudents handles the course roster list
//
//	@Summary		List enrolled students
//	@Description	List a course's roster with pagination
//	@Tags			Courses
//	@ID				list_enrolled_students
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path	int	true	"Course ID"
//	@Param			pageNumber	query	int	false	"Page number (default 1)"
//	@Param			pageSize	query	int	false	"Page size (default 10, max 100)"
//	@Success		200	{object}	dto.APIResponse[dto.PagedResult[dto.EnrolledStudentResp]]	"Roster page"
//	@Failure		404	{object}	dto.APIResponse[any]										"Course not found"
//	@Failure		500	{object}	dto.APIResponse[any]										"Internal server error"
//	@Router			/api/v1/courses/{id}/students [get]
func ListEnrolledStudents(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.PaginationReq
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := service.ListEnrolledStudents(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Students retrieved", resp)
}

// GetCourseProgress handles the per-student completion summary
//
//	@Summary		Get course progress
//	@Description	Summarise the authenticated student's completion in a course
//	@Tags			Courses
//	@ID				get_course_progress
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int										true	"Course ID"
//	@Success		200	{object}	dto.APIResponse[dto.CourseProgressResp]	"Progress summary"
//	@Failure		401	{object}	dto.APIResponse[any]					"Authentication required"
//	@Failure		404	{object}	dto.APIResponse[any]					"Course not found"
//	@Failure		500	{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/courses/{id}/progress [get]
func GetCourseProgress(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
		return
	}

	resp, err := service.GetCourseProgress(id, userID)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Progress retrieved", resp)
}
