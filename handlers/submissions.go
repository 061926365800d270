package handlers

import (
	"net/http"

	"campus/consts"
	"campus/dto"
	"campus/middleware"
	"campus/service"

	"github.com/gin-gonic/gin"
)

// SubmitQuiz handles a graded quiz submission
//
//	@Summary		Submit quiz
//	@Description	Grade the student's answers server-side and store the attempt
//	@Tags			Submissions
//	@ID				submit_quiz
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int											true	"Quiz ID"
//	@Param			request	body		dto.SubmitQuizReq							true	"Answer selections"
//	@Success		201		{object}	dto.APIResponse[dto.QuizSubmissionResp]		"Graded attempt"
//	@Failure		400		{object}	dto.APIResponse[any]						"Invalid answers or already submitted"
//	@Failure		401		{object}	dto.APIResponse[any]						"Authentication required"
//	@Failure		404		{object}	dto.APIResponse[any]						"Quiz not found"
//	@Failure		500		{object}	dto.APIResponse[any]						"Internal server error"
//	@Router			/api/v1/quizzes/{id}/submissions [post]
func SubmitQuiz(c *gin.Context) {
	quizID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
		return
	}

	var req dto.SubmitQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.SubmitQuiz(quizID, userID, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Quiz submitted", resp)
}

// GetMyQuizSubmission handles the student's own attempt lookup
//
//	@Summary		Get my quiz submission
//	@Description	Get the authenticated student's graded attempt for a quiz
//	@Tags			Submissions
//	@ID				get_my_quiz_submission
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int										true	"Quiz ID"
//	@Success		200	{object}	dto.APIResponse[dto.QuizSubmissionResp]	"Graded attempt"
//	@Failure		401	{object}	dto.APIResponse[any]					"Authentication required"
//	@Failure		404	{object}	dto.APIResponse[any]					"No attempt found"
//	@Failure		500	{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/quizzes/{id}/submissions/mine [get]
func GetMyQuizSubmission(c *gin.Context) {
	quizID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
		return
	}

	resp, err := service.GetMyQuizSubmission(quizID, userID)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Submission retrieved", resp)
}

// GetQuizSubmissionByReceipt handles attempt lookup by receipt
//
//	@Summary		Get quiz submission by receipt
//	@Description	Resolve a graded attempt from its submission receipt
//	@Tags			Submissions
//	@ID				get_quiz_submission_by_receipt
//	@Produce		json
//	@Security		BearerAuth
//	@Param			receipt	path		string									true	"Submission receipt"
//	@Success		200		{object}	dto.APIResponse[dto.QuizSubmissionResp]	"Graded attempt"
//	@Failure		404		{object}	dto.APIResponse[any]					"No attempt found"
//	@Failure		500		{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/submissions/receipt/{receipt} [get]
func GetQuizSubmissionByReceipt(c *gin.Context) {
	receipt := c.Param("receipt")
	if receipt == "" {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid receipt parameter")
		return
	}

	resp, err := service.GetQuizSubmissionByReceipt(receipt)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Submission retrieved", resp)
}

// ListQuizSubmissions handles the lecturer view of a quiz's attempts
//
//	@Summary		List quiz submissions
//	@Description	List graded attempts for a quiz with pagination
//	@Tags			Submissions
//	@ID				list_quiz_submissions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path	int	true	"Quiz ID"
//	@Param			pageNumber	query	int	false	"Page number (default 1)"
//	@Param			pageSize	query	int	false	"Page size (default 10, max 100)"
//	@Success		200	{object}	dto.APIResponse[dto.PagedResult[dto.QuizSubmissionResp]]	"Attempt page"
//	@Failure		404	{object}	dto.APIResponse[any]										"Quiz not found"
//	@Failure		500	{object}	dto.APIResponse[any]										"Internal server error"
//	@Router			/api/v1/quizzes/{id}/submissions [get]
func ListQuizSubmissions(c *gin.Context) {
	quizID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.PaginationReq
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := service.ListQuizSubmissions(quizID, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Submissions retrieved", resp)
}

// CompleteLesson handles idempotent lesson completion
//
//	@Summary		Complete lesson
//	@Description	Mark a lesson done for the authenticated student; repeat calls return the original mark
//	@Tags			Progress
//	@ID				complete_lesson
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int										true	"Content ID"
//	@Success		200	{object}	dto.APIResponse[dto.LessonProgressResp]	"Completion mark"
//	@Failure		401	{object}	dto.APIResponse[any]					"Authentication required"
//	@Failure		404	{object}	dto.APIResponse[any]					"Lesson not found"
//	@Failure		500	{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/contents/{id}/complete [post]
func CompleteLesson(c *gin.Context) {
	contentID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
		return
	}

	resp, err := service.CompleteLesson(contentID, userID)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Lesson completed", resp)
}

// SubmitAssignment handles an assignment file submission
//
//	@Summary		Submit assignment
//	@Description	Record the student's single submission before the due date
//	@Tags			Submissions
//	@ID				submit_assignment
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int												true	"Content ID"
//	@Param			request	body		dto.SubmitAssignmentReq							true	"Submission payload"
//	@Success		201		{object}	dto.APIResponse[dto.AssignmentSubmissionResp]	"Submission recorded"
//	@Failure		400		{object}	dto.APIResponse[any]							"Past due or already submitted"
//	@Failure		401		{object}	dto.APIResponse[any]							"Authentication required"
//	@Failure		404		{object}	dto.APIResponse[any]							"Assignment not found"
//	@Failure		500		{object}	dto.APIResponse[any]							"Internal server error"
//	@Router			/api/v1/contents/{id}/submissions [post]
func SubmitAssignment(c *gin.Context) {
	contentID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
		return
	}

	var req dto.SubmitAssignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.SubmitAssignment(contentID, userID, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Assignment submitted", resp)
}

// ListAssignmentSubmissions handles the lecturer view of assignment submissions
//
//	@Summary		List assignment submissions
//	@Description	List submissions for an assignment with pagination
//	@Tags			Submissions
//	@ID				list_assignment_submissions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path	int	true	"Content ID"
//	@Param			pageNumber	query	int	false	"Page number (default 1)"
//	@Param			pageSize	query	int	false	"Page size (default 10, max 100)"
//	@Success		200	{object}	dto.APIResponse[dto.PagedResult[dto.AssignmentSubmissionResp]]	"Submission page"
//	@Failure		404	{object}	dto.APIResponse[any]											"Assignment not found"
//	@Failure		500	{object}	dto.APIResponse[any]											"Internal server error"
//	@Router			/api/v1/contents/{id}/submissions [get]
func ListAssignmentSubmissions(c *gin.Context) {
	contentID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.PaginationReq
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := service.ListAssignmentSubmissions(contentID, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Submissions retrieved", resp)
}

// GetMyAssignmentSubmission handles the student's own submission lookup
//
//	@Summary		Get my assignment submission
//	@Description	Get the authenticated student's submission for an assignment
//	@Tags			Submissions
//	@ID				get_my_assignment_submission
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int												true	"Content ID"
//	@Success		200	{object}	dto.APIResponse[dto.AssignmentSubmissionResp]	"Submission"
//	@Failure		401	{object}	dto.APIResponse[any]							"Authentication required"
//	@Failure		404	{object}	dto.APIResponse[any]							"No submission found"
//	@Failure		500	{object}	dto.APIResponse[any]							"Internal server error"
//	@Router			/api/v1/contents/{id}/submissions/mine [get]
func GetMyAssignmentSubmission(c *gin.Context) {
	contentID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		dto.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: authentication required")
		return
	}

	resp, err := service.GetMyAssignmentSubmission(contentID, userID)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Submission retrieved", resp)
}

// GradeAssignmentSubmission handles lecturer grading
//
//	@Summary		Grade assignment submission
//	@Description	Record a grade and feedback on a submission
//	@Tags			Submissions
//	@ID				grade_assignment_submission
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int												true	"Submission ID"
//	@Param			request	body		dto.GradeAssignmentReq							true	"Grade and feedback"
//	@Success		200		{object}	dto.APIResponse[dto.AssignmentSubmissionResp]	"Submission graded"
//	@Failure		400		{object}	dto.APIResponse[any]							"Grade exceeds maximum points"
//	@Failure		404		{object}	dto.APIResponse[any]							"Submission not found"
//	@Failure		500		{object}	dto.APIResponse[any]							"Internal server error"
//	@Router			/api/v1/submissions/{id}/grade [put]
func GradeAssignmentSubmission(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.GradeAssignmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.GradeAssignmentSubmission(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Submission graded", resp)
}
