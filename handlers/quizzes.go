package handlers

import (
	"net/http"
	"strconv"

	"campus/consts"
	"campus/dto"
	"campus/service"

	"github.com/gin-gonic/gin"
)

// CreateTopic handles question topic creation
//
//	@Summary		Create question topic
//	@Description	Create a topic for grouping questions in the bank
//	@Tags			QuestionBank
//	@ID				create_topic
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateTopicReq				true	"Topic creation request"
//	@Success		201		{object}	dto.APIResponse[dto.TopicResp]	"Topic created"
//	@Failure		400		{object}	dto.APIResponse[any]			"Invalid request or name taken"
//	@Failure		500		{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/topics [post]
func CreateTopic(c *gin.Context) {
	var req dto.CreateTopicReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.CreateTopic(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Topic created", resp)
}

// ListTopics handles listing all question topics
//
//	@Summary		List question topics
//	@Description	List topics with their question counts
//	@Tags			QuestionBank
//	@ID				list_topics
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.APIResponse[[]dto.TopicResp]	"Topic list"
//	@Failure		500	{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/topics [get]
func ListTopics(c *gin.Context) {
	resp, err := service.ListTopics()
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Topics retrieved", resp)
}

// UpdateTopic handles a topic rename
//
//	@Summary		Update question topic
//	@Description	Rename a topic; the new name must stay unique
//	@Tags			QuestionBank
//	@ID				update_topic
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int								true	"Topic ID"
//	@Param			request	body		dto.UpdateTopicReq				true	"Topic update request"
//	@Success		200		{object}	dto.APIResponse[dto.TopicResp]	"Topic updated"
//	@Failure		400		{object}	dto.APIResponse[any]			"Name empty or taken"
//	@Failure		404		{object}	dto.APIResponse[any]			"Topic not found"
//	@Failure		500		{object}	dto.APIResponse[any]			"Internal server error"
//	@Router			/api/v1/topics/{id} [put]
func UpdateTopic(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.UpdateTopicReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	resp, err := service.UpdateTopic(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Topic updated", resp)
}

// DeleteTopic handles topic deletion
//
//	@Summary		Delete question topic
//	@Description	Delete a topic that has no live questions left
//	@Tags			QuestionBank
//	@ID				delete_topic
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int						true	"Topic ID"
//	@Success		200	{object}	dto.APIResponse[any]	"Topic deleted"
//	@Failure		400	{object}	dto.APIResponse[any]	"Topic still has questions"
//	@Failure		404	{object}	dto.APIResponse[any]	"Topic not found"
//	@Failure		500	{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/topics/{id} [delete]
func DeleteTopic(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	err := service.DeleteTopic(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Topic deleted", nil)
}

// CreateQuestion handles question bank creation
//
//	@Summary		Create question
//	@Description	Create a question with its answer options
//	@Tags			QuestionBank
//	@ID				create_question
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateQuestionReq				true	"Question creation request"
//	@Success		201		{object}	dto.APIResponse[dto.QuestionResp]	"Question created"
//	@Failure		400		{object}	dto.APIResponse[any]				"Invalid request or no correct answer"
//	@Failure		404		{object}	dto.APIResponse[any]				"Topic not found"
//	@Failure		500		{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/questions [post]
func CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.CreateQuestion(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Question created", resp)
}

// GetQuestion handles fetching one question with answers
//
//	@Summary		Get question by ID
//	@Description	Get a question with its answers and correctness flags
//	@Tags			QuestionBank
//	@ID				get_question
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int									true	"Question ID"
//	@Success		200	{object}	dto.APIResponse[dto.QuestionResp]	"Question detail"
//	@Failure		404	{object}	dto.APIResponse[any]				"Question not found"
//	@Failure		500	{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/questions/{id} [get]
func GetQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	resp, err := service.GetQuestion(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Question retrieved", resp)
}

// ListQuestions handles the paginated question bank list
//
//	@Summary		List questions
//	@Description	List questions with pagination, search and topic filter
//	@Tags			QuestionBank
//	@ID				list_questions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pageNumber	query	int		false	"Page number (default 1)"
//	@Param			pageSize	query	int		false	"Page size (default 10, max 100)"
//	@Param			searchTerm	query	string	false	"Substring match over question text"
//	@Param			topicId		query	int		false	"Filter by topic"
//	@Success		200	{object}	dto.APIResponse[dto.PagedResult[dto.QuestionResp]]	"Question page"
//	@Failure		500	{object}	dto.APIResponse[any]								"Internal server error"
//	@Router			/api/v1/questions [get]
func ListQuestions(c *gin.Context) {
	var req dto.ListQuestionReq
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	resp, err := service.ListQuestions(&req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Questions retrieved", resp)
}

// UpdateQuestion handles a question update with full answer replacement
//
//	@Summary		Update question
//	@Description	Patch question fields; when answers are given they replace the old set
//	@Tags			QuestionBank
//	@ID				update_question
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int									true	"Question ID"
//	@Param			request	body		dto.UpdateQuestionReq				true	"Partial update"
//	@Success		200		{object}	dto.APIResponse[dto.QuestionResp]	"Question updated"
//	@Failure		400		{object}	dto.APIResponse[any]				"Invalid request"
//	@Failure		404		{object}	dto.APIResponse[any]				"Question not found"
//	@Failure		500		{object}	dto.APIResponse[any]				"Internal server error"
//	@Router			/api/v1/questions/{id} [put]
func UpdateQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.UpdateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.UpdateQuestion(id, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Question updated", resp)
}

// DeleteQuestion handles question soft deletion
//
//	@Summary		Delete question
//	@Description	Soft-delete a question; past submissions keep their answers
//	@Tags			QuestionBank
//	@ID				delete_question
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int						true	"Question ID"
//	@Success		200	{object}	dto.APIResponse[any]	"Question deleted"
//	@Failure		404	{object}	dto.APIResponse[any]	"Question not found"
//	@Failure		500	{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/questions/{id} [delete]
func DeleteQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	err := service.DeleteQuestion(id)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Question deleted", nil)
}

// AttachQuestion handles linking a bank question to a quiz
//
//	@Summary		Attach question to quiz
//	@Description	Link a question into a quiz with a point value
//	@Tags			Quizzes
//	@ID				attach_question
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int										true	"Quiz ID"
//	@Param			request	body		dto.AttachQuestionReq					true	"Attachment request"
//	@Success		201		{object}	dto.APIResponse[dto.QuizQuestionResp]	"Question attached"
//	@Failure		400		{object}	dto.APIResponse[any]					"Invalid request or already attached"
//	@Failure		404		{object}	dto.APIResponse[any]					"Quiz or question not found"
//	@Failure		500		{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/quizzes/{id}/questions [post]
func AttachQuestion(c *gin.Context) {
	quizID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	var req dto.AttachQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid request parameters: "+err.Error())
		return
	}

	resp, err := service.AttachQuestion(quizID, &req)
	if HandleServiceError(c, err) {
		return
	}

	dto.JSONResponse(c, http.StatusCreated, "Question attached", resp)
}

// DetachQuestion handles unlinking a question from a quiz
//
//	@Summary		Detach question from quiz
//	@Description	Remove a question link and recompute the quiz total
//	@Tags			Quizzes
//	@ID				detach_question
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		int						true	"Quiz ID"
//	@Param			question_id	path		int						true	"Question ID"
//	@Success		200			{object}	dto.APIResponse[any]	"Question detached"
//	@Failure		404			{object}	dto.APIResponse[any]	"Quiz or link not found"
//	@Failure		500			{object}	dto.APIResponse[any]	"Internal server error"
//	@Router			/api/v1/quizzes/{id}/questions/{question_id} [delete]
func DetachQuestion(c *gin.Context) {
	quizID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	questionID, err := strconv.Atoi(c.Param("question_id"))
	if err != nil || questionID <= 0 {
		dto.ErrorResponse(c, http.StatusBadRequest, "Invalid question_id parameter")
		return
	}

	if err := service.DetachQuestion(quizID, questionID); HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse[any](c, "Question detached", nil)
}

// ListQuizQuestions handles the lecturer view of a quiz's question links
//
//	@Summary		List quiz questions
//	@Description	List a quiz's question links with answers and correctness
//	@Tags			Quizzes
//	@ID				list_quiz_questions
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int										true	"Quiz ID"
//	@Success		200	{object}	dto.APIResponse[[]dto.QuizQuestionResp]	"Question links"
//	@Failure		404	{object}	dto.APIResponse[any]					"Quiz not found"
//	@Failure		500	{object}	dto.APIResponse[any]					"Internal server error"
//	@Router			/api/v1/quizzes/{id}/questions [get]
func ListQuizQuestions(c *gin.Context) {
	quizID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	resp, err := service.ListQuizQuestions(quizID)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Quiz questions retrieved", resp)
}

// GetQuizForTaking handles the student-facing quiz view
//
//	@Summary		Get quiz for taking
//	@Description	Get a quiz's questions without correctness flags, shuffled when the quiz says so
//	@Tags			Quizzes
//	@ID				get_quiz_for_taking
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int											true	"Quiz ID"
//	@Success		200	{object}	dto.APIResponse[[]dto.StudentQuestionResp]	"Questions for taking"
//	@Failure		404	{object}	dto.APIResponse[any]						"Quiz not found"
//	@Failure		500	{object}	dto.APIResponse[any]						"Internal server error"
//	@Router			/api/v1/quizzes/{id}/take [get]
func GetQuizForTaking(c *gin.Context) {
	quizID, ok := parseIDParam(c, consts.URLPathID)
	if !ok {
		return
	}

	resp, err := service.GetQuizForTaking(quizID)
	if HandleServiceError(c, err) {
		return
	}

	dto.SuccessResponse(c, "Quiz retrieved", resp)
}
