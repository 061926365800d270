package router

import (
	"fmt"

	"campus/consts"
	"campus/handlers"
	"campus/middleware"

	"github.com/gin-gonic/gin"
)

func staffOnly() gin.HandlerFunc {
	return middleware.RequireRoles(consts.RoleAdmin, consts.RoleLecturer)
}

func adminOnly() gin.HandlerFunc {
	return middleware.RequireRoles(consts.RoleAdmin)
}

func studentOnly() gin.HandlerFunc {
	return middleware.RequireRoles(consts.RoleStudent)
}

// SetupV1Routes Setup API v1 routes
func SetupV1Routes(router *gin.Engine) {
	r := router.Group("/api/v1")

	auth := r.Group("/auth")
	{
		auth.POST("/login", handlers.Login)
		auth.POST("/register", handlers.Register)
		auth.POST("/refresh", handlers.RefreshToken)

		authed := auth.Group("", middleware.JWTAuth())
		{
			authed.POST("/logout", handlers.Logout)
			authed.GET("/profile", handlers.GetProfile)
			authed.PUT("/profile", handlers.UpdateProfile)
			authed.PUT("/password", handlers.ChangePassword)
		}
	}

	public := r.Group("/public")
	{
		public.GET("/configs", handlers.ListPublicConfigs)
		public.GET(fmt.Sprintf("/configs/:%s", consts.URLPathKey), handlers.GetPublicConfig)
	}

	users := r.Group("/users", middleware.JWTAuth())
	{
		users.POST("", adminOnly(), handlers.CreateUser)
		users.GET("", adminOnly(), handlers.ListUsers)

		usersWithID := users.Group(fmt.Sprintf("/:%s", consts.URLPathID))
		{
			// accounts can read their own record, everything else is admin
			usersWithID.GET("", middleware.RequireSelfOrRoles(consts.URLPathID, consts.RoleAdmin), handlers.GetUser)
			usersWithID.PUT("", adminOnly(), handlers.UpdateUser)
			usersWithID.DELETE("", adminOnly(), handlers.DeleteUser)
			usersWithID.PUT("/active", adminOnly(), handlers.SetUserActive)
			usersWithID.PUT("/password", adminOnly(), handlers.ResetUserPassword)
		}
	}

	r.GET("/roles", middleware.JWTAuth(), adminOnly(), handlers.ListRoles)

	departments := r.Group("/departments", middleware.JWTAuth())
	{
		departments.GET("", handlers.ListDepartments)
		departments.POST("", adminOnly(), handlers.CreateDepartment)
		departments.PUT(fmt.Sprintf("/:%s", consts.URLPathID), adminOnly(), handlers.UpdateDepartment)
		departments.DELETE(fmt.Sprintf("/:%s", consts.URLPathID), adminOnly(), handlers.DeleteDepartment)
	}

	majors := r.Group("/majors", middleware.JWTAuth())
	{
		majors.GET("", handlers.ListMajors)
		majors.POST("", adminOnly(), handlers.CreateMajor)
		majors.PUT(fmt.Sprintf("/:%s", consts.URLPathID), adminOnly(), handlers.UpdateMajor)
		majors.DELETE(fmt.Sprintf("/:%s", consts.URLPathID), adminOnly(), handlers.DeleteMajor)
	}

	years := r.Group("/academic-years", middleware.JWTAuth())
	{
		years.GET("", handlers.ListAcademicYears)
		years.POST("", adminOnly(), handlers.CreateAcademicYear)
		years.PUT(fmt.Sprintf("/:%s", consts.URLPathID), adminOnly(), handlers.UpdateAcademicYear)
		years.DELETE(fmt.Sprintf("/:%s", consts.URLPathID), adminOnly(), handlers.DeleteAcademicYear)
	}

	semesters := r.Group("/semesters", middleware.JWTAuth())
	{
		semesters.GET("", handlers.ListSemesters)
		semesters.POST("", adminOnly(), handlers.CreateSemester)
		semesters.PUT(fmt.Sprintf("/:%s", consts.URLPathID), adminOnly(), handlers.UpdateSemester)
		semesters.DELETE(fmt.Sprintf("/:%s", consts.URLPathID), adminOnly(), handlers.DeleteSemester)
	}

	courses := r.Group("/courses", middleware.JWTAuth())
	{
		courses.GET("", handlers.ListCourses)
		courses.GET("/mine", studentOnly(), handlers.ListMyCourses)
		courses.POST("", adminOnly(), handlers.CreateCourse)

		coursesWithID := courses.Group(fmt.Sprintf("/:%s", consts.URLPathID))
		{
			coursesWithID.GET("", handlers.GetCourse)
			coursesWithID.PUT("", staffOnly(), handlers.UpdateCourse)
			coursesWithID.DELETE("", adminOnly(), handlers.DeleteCourse)
			coursesWithID.PUT("/lecturer", adminOnly(), handlers.AssignLecturer)
			coursesWithID.GET("/progress", studentOnly(), handlers.GetCourseProgress)

			students := coursesWithID.Group("/students")
			{
				students.GET("", staffOnly(), handlers.ListEnrolledStudents)
				students.POST("", staffOnly(), handlers.EnrollStudent)
				students.DELETE(fmt.Sprintf("/:%s", consts.URLPathStudentID), staffOnly(), handlers.UnenrollStudent)
			}

			chapterCollection := coursesWithID.Group("/chapters")
			{
				chapterCollection.GET("", handlers.ListChapters)
				chapterCollection.POST("", staffOnly(), handlers.CreateChapter)
				chapterCollection.PUT("/reorder", staffOnly(), handlers.ReorderChapters)
			}
		}
	}

	chapters := r.Group("/chapters", middleware.JWTAuth())
	{
		chaptersWithID := chapters.Group(fmt.Sprintf("/:%s", consts.URLPathID))
		{
			chaptersWithID.GET("", handlers.GetChapter)
			chaptersWithID.PUT("", staffOnly(), handlers.UpdateChapter)
			chaptersWithID.DELETE("", staffOnly(), handlers.DeleteChapter)

			chaptersWithID.GET("/contents", handlers.ListChapterContents)
			chaptersWithID.POST("/contents", staffOnly(), handlers.CreateContent)
		}
	}

	contents := r.Group("/contents", middleware.JWTAuth())
	{
		contentsWithID := contents.Group(fmt.Sprintf("/:%s", consts.URLPathID))
		{
			contentsWithID.GET("", handlers.GetContent)
			contentsWithID.PUT("", staffOnly(), handlers.UpdateContent)
			contentsWithID.DELETE("", staffOnly(), handlers.DeleteContent)

			contentsWithID.POST("/complete", studentOnly(), handlers.CompleteLesson)
			contentsWithID.POST("/submissions", studentOnly(), handlers.SubmitAssignment)
			contentsWithID.GET("/submissions", staffOnly(), handlers.ListAssignmentSubmissions)
			contentsWithID.GET("/submissions/mine", studentOnly(), handlers.GetMyAssignmentSubmission)
		}
	}

	topics := r.Group("/topics", middleware.JWTAuth(), staffOnly())
	{
		topics.GET("", handlers.ListTopics)
		topics.POST("", handlers.CreateTopic)
		topics.PUT(fmt.Sprintf("/:%s", consts.URLPathID), handlers.UpdateTopic)
		topics.DELETE(fmt.Sprintf("/:%s", consts.URLPathID), handlers.DeleteTopic)
	}

	questions := r.Group("/questions", middleware.JWTAuth(), staffOnly())
	{
		questions.GET("", handlers.ListQuestions)
		questions.POST("", handlers.CreateQuestion)

		questionsWithID := questions.Group(fmt.Sprintf("/:%s", consts.URLPathID))
		{
			questionsWithID.GET("", handlers.GetQuestion)
			questionsWithID.PUT("", handlers.UpdateQuestion)
			questionsWithID.DELETE("", handlers.DeleteQuestion)
		}
	}

	quizzes := r.Group("/quizzes", middleware.JWTAuth())
	{
		quizzesWithID := quizzes.Group(fmt.Sprintf("/:%s", consts.URLPathID))
		{
			quizzesWithID.GET("/questions", staffOnly(), handlers.ListQuizQuestions)
			quizzesWithID.POST("/questions", staffOnly(), handlers.AttachQuestion)
			quizzesWithID.DELETE("/questions/:question_id", staffOnly(), handlers.DetachQuestion)

			quizzesWithID.GET("/take", studentOnly(), handlers.GetQuizForTaking)
			quizzesWithID.POST("/submissions", studentOnly(), handlers.SubmitQuiz)
			quizzesWithID.GET("/submissions", staffOnly(), handlers.ListQuizSubmissions)
			quizzesWithID.GET("/submissions/mine", studentOnly(), handlers.GetMyQuizSubmission)
		}
	}

	submissions := r.Group("/submissions", middleware.JWTAuth())
	{
		submissions.GET("/receipt/:receipt", handlers.GetQuizSubmissionByReceipt)
		submissions.PUT(fmt.Sprintf("/:%s/grade", consts.URLPathID), staffOnly(), handlers.GradeAssignmentSubmission)
	}

	configs := r.Group("/configs", middleware.JWTAuth(), adminOnly())
	{
		configs.GET("", handlers.ListConfigs)

		configsWithKey := configs.Group(fmt.Sprintf("/:%s", consts.URLPathKey))
		{
			configsWithKey.GET("", handlers.GetConfig)
			configsWithKey.PUT("", handlers.UpsertConfig)
			configsWithKey.DELETE("", handlers.DeleteConfig)
		}
	}
}
