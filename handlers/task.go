package handlers

import (
	"net/http"

	"pulsecrm/models"

	"github.com/gin-gonic/gin"
)

// ListTasksHandler returns all tasks.
func (h *CRMHandler) ListTasksHandler(c *gin.Context) {
	tasks, err := h.Service.ListTasks()
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GetTaskHandler returns a single task by ID.
func (h *CRMHandler) GetTaskHandler(c *gin.Context) {
	task, err := h.Service.GetTask(c.Param("id"))
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTaskHandler creates a new task assigned to the caller unless an
// assignee is given.
func (h *CRMHandler) CreateTaskHandler(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if task.AssigneeID == "" {
		task.AssigneeID = c.GetString("userID")
	}

	created, err := h.Service.CreateTask(&task)
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTaskHandler replaces a task's mutable fields.
func (h *CRMHandler) UpdateTaskHandler(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	task.ID = c.Param("id")

	updated, err := h.Service.UpdateTask(&task)
	if err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CompleteTaskHandler marks a task done.
func (h *CRMHandler) CompleteTaskHandler(c *gin.Context) {
	if err := h.Service.CompleteTask(c.Param("id")); err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task completed"})
}

// DeleteTaskHandler removes a task.
func (h *CRMHandler) DeleteTaskHandler(c *gin.Context) {
	if err := h.Service.DeleteTask(c.Param("id")); err != nil {
		crmError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
