package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/apperr"
	"github.com/langschool/contentapi/internal/scheduler"
	"github.com/langschool/contentapi/internal/tasks"
)

// TasksController exposes the task queue to administrators.
type TasksController struct {
	client      *tasks.Client
	maintenance *scheduler.MaintenanceScheduler
}

func NewTasksController(client *tasks.Client, maintenance *scheduler.MaintenanceScheduler) *TasksController {
	return &TasksController{client: client, maintenance: maintenance}
}

// GetTaskStatus handles GET /api/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	name := tasks.StatusName(status)
	if name == "not_found" {
		respondError(c, apperr.NotFound("Task", taskID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": name,
	})
}

// RunMaintenance handles POST /api/tasks/maintenance/run
func (tc *TasksController) RunMaintenance(c *gin.Context) {
	if tc.maintenance == nil {
		respondError(c, apperr.Conflict("maintenance_disabled", "maintenance scheduler is not running"))
		return
	}
	ids, err := tc.maintenance.RunNow()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"taskIds": ids})
}
