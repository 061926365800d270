package service

import (
	"errors"
	"fmt"
	"math/rand"

	"campus/consts"
	"campus/database"
	"campus/dto"
	"campus/repository"

	"gorm.io/gorm"
)

// CreateTopic creates a question-bank topic
func CreateTopic(req *dto.CreateTopicReq) (*dto.TopicResp, error) {
	topic := &database.QuestionTopic{Name: req.Name}
	if err := repository.CreateTopic(database.DB, topic); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: topic '%s' already exists", consts.ErrConflict, req.Name)
		}
		return nil, err
	}
	return dto.NewTopicResp(topic, 0), nil
}

// ListTopics returns every live topic with its question count
func ListTopics() ([]dto.TopicResp, error) {
	topics, err := repository.ListTopics(database.DB)
	if err != nil {
		return nil, err
	}

	topicIDs := make([]int, 0, len(topics))
	for i := range topics {
		topicIDs = append(topicIDs, topics[i].ID)
	}
	counts, err := repository.CountQuestionsByTopics(database.DB, topicIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TopicResp, 0, len(topics))
	for i := range topics {
		items = append(items, *dto.NewTopicResp(&topics[i], counts[topics[i].ID]))
	}
	return items, nil
}

// UpdateTopic applies a partial topic update
func UpdateTopic(id int, req *dto.UpdateTopicReq) (*dto.TopicResp, error) {
	var topic *database.QuestionTopic
	var questionCount int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		topic, err = repository.GetTopicByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: topic not found", consts.ErrNotFound)
			}
			return err
		}

		req.Patch(topic)
		if topic.Name == "" {
			return fmt.Errorf("%w: topic name cannot be empty", consts.ErrValidation)
		}

		if err := repository.UpdateTopic(tx, topic); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: topic '%s' already exists", consts.ErrConflict, topic.Name)
			}
			return err
		}

		counts, err := repository.CountQuestionsByTopics(tx, []int{id})
		if err != nil {
			return err
		}
		questionCount = counts[id]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.NewTopicResp(topic, questionCount), nil
}

// DeleteTopic soft-deletes a topic. Topics still holding live questions
// cannot be removed.
func DeleteTopic(id int) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		counts, err := repository.CountQuestionsByTopics(tx, []int{id})
		if err != nil {
			return err
		}
		if counts[id] > 0 {
			return fmt.Errorf("%w: topic still has %d questions", consts.ErrConflict, counts[id])
		}

		if err := repository.SoftDeleteTopic(tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: topic not found", consts.ErrNotFound)
			}
			return err
		}
		return nil
	})
}

// CreateQuestion creates a bank question with its answer options
func CreateQuestion(req *dto.CreateQuestionReq) (*dto.QuestionResp, error) {
	var question *database.Question
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		topic, err := repository.GetTopicByID(tx, req.TopicID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: topic not found", consts.ErrValidation)
			}
			return err
		}

		answers := make([]database.Answer, 0, len(req.Answers))
		for _, a := range req.Answers {
			answers = append(answers, database.Answer{Text: a.Text, IsCorrect: a.IsCorrect})
		}

		question = &database.Question{
			TopicID:     topic.ID,
			Text:        req.Text,
			Explanation: req.Explanation,
			Topic:       topic,
			Answers:     answers,
		}
		return repository.CreateQuestion(tx, question)
	})
	if err != nil {
		return nil, err
	}

	return dto.NewQuestionResp(question), nil
}

// GetQuestion returns one bank question with answers
func GetQuestion(id int) (*dto.QuestionResp, error) {
	question, err := repository.GetQuestionByID(database.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question not found", consts.ErrNotFound)
		}
		return nil, err
	}
	return dto.NewQuestionResp(question), nil
}

// ListQuestions returns a filtered page of bank questions
func ListQuestions(req *dto.ListQuestionReq) (*dto.PagedResult[dto.QuestionResp], error) {
	req.Normalize()

	total, questions, err := repository.ListQuestions(database.DB, req)
	if err != nil {
		return nil, err
	}

	items := make([]dto.QuestionResp, 0, len(questions))
	for i := range questions {
		items = append(items, *dto.NewQuestionResp(&questions[i]))
	}
	return dto.NewPagedResult(items, total, &req.PaginationReq), nil
}

// UpdateQuestion patches a question and, when provided, swaps its answers
func UpdateQuestion(id int, req *dto.UpdateQuestionReq) (*dto.QuestionResp, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		question, err := repository.GetQuestionByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: question not found", consts.ErrNotFound)
			}
			return err
		}

		if req.TopicID != nil {
			if _, err := repository.GetTopicByID(tx, *req.TopicID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: topic not found", consts.ErrValidation)
				}
				return err
			}
		}

		req.Patch(question)
		question.Answers = nil
		if err := repository.UpdateQuestion(tx, question); err != nil {
			return err
		}

		if req.Answers != nil {
			answers := make([]database.Answer, 0, len(req.Answers))
			for _, a := range req.Answers {
				answers = append(answers, database.Answer{Text: a.Text, IsCorrect: a.IsCorrect})
			}
			return repository.ReplaceAnswers(tx, id, answers)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetQuestion(id)
}

// DeleteQuestion soft-deletes a bank question
func DeleteQuestion(id int) error {
	if err := repository.SoftDeleteQuestion(database.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: question not found", consts.ErrNotFound)
		}
		return err
	}
	return nil
}

// AttachQuestion links a bank question to a quiz and recomputes the
// quiz's attainable points
func AttachQuestion(quizID int, req *dto.AttachQuestionReq) (*dto.QuizQuestionResp, error) {
	var link *database.QuizQuestion
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		quiz, err := repository.GetQuizByID(tx, quizID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: quiz not found", consts.ErrNotFound)
			}
			return err
		}

		question, err := repository.GetQuestionByID(tx, req.QuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: question not found", consts.ErrValidation)
			}
			return err
		}

		link = &database.QuizQuestion{
			QuizID:     quiz.ID,
			QuestionID: question.ID,
			Points:     req.Points,
			Question:   question,
		}
		if err := repository.CreateQuizQuestion(tx, link); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: question is already on this quiz", consts.ErrConflict)
			}
			return err
		}

		return recomputeQuizPoints(tx, quiz)
	})
	if err != nil {
		return nil, err
	}

	return dto.NewQuizQuestionResp(link), nil
}

// DetachQuestion unlinks a question from a quiz and recomputes points
func DetachQuestion(quizID, questionID int) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		quiz, err := repository.GetQuizByID(tx, quizID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: quiz not found", consts.ErrNotFound)
			}
			return err
		}

		if err := repository.DeleteQuizQuestion(tx, quizID, questionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: question is not on this quiz", consts.ErrNotFound)
			}
			return err
		}

		return recomputeQuizPoints(tx, quiz)
	})
}

// ListQuizQuestions returns a quiz's questions with correctness flags,
// for lecturers and admins
func ListQuizQuestions(quizID int) ([]dto.QuizQuestionResp, error) {
	if _, err := repository.GetQuizByID(database.DB, quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quiz not found", consts.ErrNotFound)
		}
		return nil, err
	}

	links, err := repository.ListQuizQuestions(database.DB, quizID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.QuizQuestionResp, 0, len(links))
	for i := range links {
		items = append(items, *dto.NewQuizQuestionResp(&links[i]))
	}
	return items, nil
}

// GetQuizForTaking returns the student view of a quiz: questions without
// correctness flags, shuffled when the quiz asks for it
func GetQuizForTaking(quizID int) ([]dto.StudentQuestionResp, error) {
	quiz, err := repository.GetQuizByID(database.DB, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quiz not found", consts.ErrNotFound)
		}
		return nil, err
	}

	links, err := repository.ListQuizQuestions(database.DB, quizID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StudentQuestionResp, 0, len(links))
	for i := range links {
		items = append(items, *dto.NewStudentQuestionResp(&links[i]))
	}

	if quiz.Shuffle {
		rand.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	}
	return items, nil
}

func recomputeQuizPoints(tx *gorm.DB, quiz *database.Quiz) error {
	total, err := repository.SumQuizPoints(tx, quiz.ID)
	if err != nil {
		return err
	}
	quiz.TotalPoints = total
	quiz.Questions = nil
	return repository.UpdateQuiz(tx, quiz)
}
