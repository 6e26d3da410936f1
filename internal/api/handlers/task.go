package handlers

import (
	"net/http"

	"sysmayal-backend/internal/scheduler"
	"sysmayal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler lists and triggers maintenance jobs
type TaskHandler struct {
	runner scheduler.TaskRunnerInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(runner scheduler.TaskRunnerInterface) *TaskHandler {
	return &TaskHandler{
		runner: runner,
	}
}

// ListTasks handles GET /tasks
// @Summary List maintenance jobs
// @Tags tasks
// @Produce json
// @Success 200 {array} scheduler.JobStatus
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.runner.Jobs())
}

// RunTask handles POST /tasks/:name/run
// @Summary Run a maintenance job now
// @Description Runs the job synchronously. A job that is already running is not started twice.
// @Tags tasks
// @Produce json
// @Param name path string true "Job name"
// @Success 200 {object} service.MessageResponse
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 409 {object} map[string]interface{} "Task is already running"
// @Failure 500 {object} map[string]interface{} "Task failed"
// @Security BearerAuth
// @Router /tasks/{name}/run [post]
func (h *TaskHandler) RunTask(c *gin.Context) {
	name := c.Param("name")
	if err := h.runner.RunNow(c.Request.Context(), name); err != nil {
		respondError(c, err, "run task "+name)
		return
	}

	c.JSON(http.StatusOK, service.MessageResponse{Message: "Task " + name + " completed"})
}
