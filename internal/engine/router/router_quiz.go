package router

import (
	"time"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	httpx "github.com/go-quizhub/quizhub/pkg/http"
	"github.com/go-quizhub/quizhub/pkg/http/middleware"
	"github.com/gofiber/fiber/v2"
)

/**
 * @file: router_quiz.go
 * @description: quiz authoring, submission and score router
 */

func (rt *Router) quizRouter(r fiber.Router, auth fiber.Handler) {
	quizGroup := r.Group("/quiz")
	{
		quizGroup.Post("/answer/create", auth, rt.createAnswer)
		quizGroup.Post("/question/create", auth, rt.createQuestion)

		quizGroup.Post("/create", auth, rt.createQuiz)
		quizGroup.Get("/list/:companyId", auth, rt.listQuizzes)
		quizGroup.Get("/:quizId", auth, rt.getQuiz)
		quizGroup.Post("/:quizId/update", auth, rt.updateQuiz)
		quizGroup.Post("/:quizId/delete", auth, rt.deleteQuiz)

		quizGroup.Post("/:quizId/submit", auth, rt.submitQuiz)
		quizGroup.Get("/results/recent/:companyId", auth, rt.recentResults)
	}

	scoreGroup := r.Group("/score")
	{
		scoreGroup.Get("/system", auth, rt.systemScore)
		scoreGroup.Get("/company/:companyId", auth, rt.companyScore)
		scoreGroup.Get("/quiz/:quizId", auth, rt.quizScore)
		scoreGroup.Get("/my", auth, rt.myScore)
		scoreGroup.Get("/range", auth, rt.rangeScore)
	}
}

func (rt *Router) createAnswer(c *fiber.Ctx) error {
	var req *model.CreateAnswerReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	answer, err := rt.Quiz.CreateAnswer(currentUserId(c), req)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, answer)
	return nil
}

func (rt *Router) createQuestion(c *fiber.Ctx) error {
	var req *model.CreateQuestionReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	question, err := rt.Quiz.CreateQuestion(currentUserId(c), req)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, question)
	return nil
}

func (rt *Router) createQuiz(c *fiber.Ctx) error {
	var req *model.CreateQuizReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	quiz, err := rt.Quiz.CreateQuiz(currentUserId(c), req)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, quiz)
	return nil
}

func (rt *Router) getQuiz(c *fiber.Ctx) error {
	quiz, err := rt.Quiz.GetQuiz(currentUserId(c), c.Params("quizId"))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, quiz)
	return nil
}

func (rt *Router) listQuizzes(c *fiber.Ctx) error {
	quizzes, err := rt.Quiz.ListQuizzes(currentUserId(c), c.Params("companyId"))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, quizzes)
	return nil
}

func (rt *Router) updateQuiz(c *fiber.Ctx) error {
	var req *model.UpdateQuizReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	if err := rt.Quiz.UpdateQuiz(currentUserId(c), c.Params("quizId"), req); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) deleteQuiz(c *fiber.Ctx) error {
	if err := rt.Quiz.DeleteQuiz(currentUserId(c), c.Params("quizId")); err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.OPERATION, "")
	return nil
}

func (rt *Router) submitQuiz(c *fiber.Ctx) error {
	var req *model.SubmitQuizReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	record, err := rt.Submission.RecordSubmission(c.Context(), currentUserId(c), c.Params("quizId"), req)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, record)
	return nil
}

func (rt *Router) recentResults(c *fiber.Ctx) error {
	results, err := rt.Submission.RecentResults(c.Context(), currentUserId(c), c.Params("companyId"))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, results)
	return nil
}

func (rt *Router) systemScore(c *fiber.Ctx) error {
	score, err := rt.Score.SystemAverage()
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, fiber.Map{"averageScore": score})
	return nil
}

func (rt *Router) companyScore(c *fiber.Ctx) error {
	score, err := rt.Score.CompanyAverage(currentUserId(c), c.Params("companyId"))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, fiber.Map{"averageScore": score})
	return nil
}

func (rt *Router) quizScore(c *fiber.Ctx) error {
	score, err := rt.Score.QuizAverage(c.Params("quizId"))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, fiber.Map{"averageScore": score})
	return nil
}

func (rt *Router) myScore(c *fiber.Ctx) error {
	score, err := rt.Score.UserAverage(currentUserId(c))
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, fiber.Map{"averageScore": score})
	return nil
}

func (rt *Router) rangeScore(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, "invalid from time", c.Path())
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, "invalid to time", c.Path())
	}

	score, err := rt.Score.RangeAverage(from, to)
	if err != nil {
		return repErr(c, err)
	}

	c.Locals(middleware.DETAIL, fiber.Map{"averageScore": score})
	return nil
}
