package routes

import (
	"github.com/gofiber/fiber/v2"

	"smartscholar/internal/controllers"
)

func SetupCoursesPublic(app *fiber.App, d Deps) {
	app.Get("/courses", controllers.ListCoursesHandler(d.Courses))
	app.Get("/courses/:course_id", controllers.GetCourseHandler(d.Courses))
	app.Get("/colleges", controllers.ListCollegesHandler(d.Users))
}

func SetupCourses(app *fiber.App, d Deps) {
	courses := app.Group("/courses")
	courses.Post("/", controllers.CreateCourseHandler(d.Courses))
	courses.Patch("/:course_id", controllers.UpdateCourseHandler(d.Courses))
	courses.Delete("/:course_id", controllers.DeleteCourseHandler(d.Courses))
}
