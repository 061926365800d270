package repository

import (
	"fmt"

	"campus/database"
	"campus/dto"

	"gorm.io/gorm"
)

// CreateTopic creates a question topic
func CreateTopic(db *gorm.DB, topic *database.QuestionTopic) error {
	if err := db.Create(topic).Error; err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	return nil
}

// GetTopicByID gets a live topic
func GetTopicByID(db *gorm.DB, id int) (*database.QuestionTopic, error) {
	var topic database.QuestionTopic
	if err := db.Scopes(database.NotDeleted).
		First(&topic, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get topic %d: %w", id, err)
	}
	return &topic, nil
}

// ListTopics returns all live topics name-ascending
func ListTopics(db *gorm.DB) ([]database.QuestionTopic, error) {
	var topics []database.QuestionTopic
	if err := db.Scopes(database.NotDeleted).
		Order("name").
		Find(&topics).Error; err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}

// CountQuestionsByTopics batch-counts live questions per topic
func CountQuestionsByTopics(db *gorm.DB, topicIDs []int) (map[int]int64, error) {
	counts := make(map[int]int64, len(topicIDs))
	if len(topicIDs) == 0 {
		return counts, nil
	}

	type row struct {
		TopicID int
		Total   int64
	}
	var rows []row
	if err := db.Model(&database.Question{}).
		Scopes(database.NotDeleted).
		Select("topic_id, COUNT(*) AS total").
		Where("topic_id IN ?", topicIDs).
		Group("topic_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	for _, r := range rows {
		counts[r.TopicID] = r.Total
	}
	return counts, nil
}

// UpdateTopic persists changes to a topic row
func UpdateTopic(db *gorm.DB, topic *database.QuestionTopic) error {
	if err := db.Save(topic).Error; err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}
	return nil
}

// SoftDeleteTopic marks a topic deleted
func SoftDeleteTopic(db *gorm.DB, id int) error {
	result := db.Model(&database.QuestionTopic{}).
		Scopes(database.NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete topic %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete topic %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// CreateQuestion creates a question together with its answer options
func CreateQuestion(db *gorm.DB, question *database.Question) error {
	if err := db.Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// GetQuestionByID gets a live question with topic and answers preloaded
func GetQuestionByID(db *gorm.DB, id int) (*database.Question, error) {
	var question database.Question
	if err := db.Scopes(database.NotDeleted).
		Preload("Topic").
		Preload("Answers").
		First(&question, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return &question, nil
}

// ListQuestions returns a filtered page of live questions
func ListQuestions(db *gorm.DB, req *dto.ListQuestionReq) (int64, []database.Question, error) {
	builder := func(query *gorm.DB) *gorm.DB {
		query = query.Scopes(
			database.NotDeleted,
			database.KeywordSearch(req.SearchTerm, "text"),
		)
		if req.TopicID != nil {
			query = query.Where("topic_id = ?", *req.TopicID)
		}
		return query
	}

	return genericQueryWithBuilder[database.Question](&genericQueryParams{
		db:       db,
		builder:  builder,
		pageNum:  req.PageNumber,
		pageSize: req.PageSize,
		preloads: []string{"Topic", "Answers"},
	})
}

// UpdateQuestion persists changes to a question row
func UpdateQuestion(db *gorm.DB, question *database.Question) error {
	if err := db.Save(question).Error; err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	return nil
}

// ReplaceAnswers swaps a question's answer options inside a transaction
func ReplaceAnswers(db *gorm.DB, questionID int, answers []database.Answer) error {
	if err := db.Where("question_id = ?", questionID).
		Delete(&database.Answer{}).Error; err != nil {
		return fmt.Errorf("failed to clear answers: %w", err)
	}
	for i := range answers {
		answers[i].QuestionID = questionID
	}
	if err := db.Create(&answers).Error; err != nil {
		return fmt.Errorf("failed to replace answers: %w", err)
	}
	return nil
}

// SoftDeleteQuestion marks a question deleted. Quizzes referencing it keep
// their links so past submissions still resolve.
func SoftDeleteQuestion(db *gorm.DB, id int) error {
	result := db.Model(&database.Question{}).
		Scopes(database.NotDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete question %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// CreateQuizQuestion attaches a question to a quiz. The unique index
// rejects duplicate attachments.
func CreateQuizQuestion(db *gorm.DB, link *database.QuizQuestion) error {
	if err := db.Create(link).Error; err != nil {
		return fmt.Errorf("failed to attach question: %w", err)
	}
	return nil
}

// DeleteQuizQuestion detaches a question from a quiz
func DeleteQuizQuestion(db *gorm.DB, quizID, questionID int) error {
	result := db.Where("quiz_id = ? AND question_id = ?", quizID, questionID).
		Delete(&database.QuizQuestion{})
	if result.Error != nil {
		return fmt.Errorf("failed to detach question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to detach question: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

// ListQuizQuestions returns a quiz's question links with full questions
func ListQuizQuestions(db *gorm.DB, quizID int) ([]database.QuizQuestion, error) {
	var links []database.QuizQuestion
	if err := db.Preload("Question.Topic").
		Preload("Question.Answers").
		Where("quiz_id = ?", quizID).
		Order("id").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list quiz questions: %w", err)
	}
	return links, nil
}

// SumQuizPoints recomputes a quiz's total attainable points
func SumQuizPoints(db *gorm.DB, quizID int) (int, error) {
	var total *int
	if err := db.Model(&database.QuizQuestion{}).
		Where("quiz_id = ?", quizID).
		Select("SUM(points)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum quiz points: %w", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
