package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/BenjaminLindeen/RoomHub/internal/api/shared"
	"github.com/BenjaminLindeen/RoomHub/internal/service"
)

// Form field names used by the task assignment page.
const (
	formFieldTaskName = "task-name"
	formFieldAssignee = "person"
	formFieldDueDate  = "task-due-date"
)

// TaskHandler handles task assignment, editing, and calendar API requests.
type TaskHandler struct {
	taskService  service.TaskService
	houseService service.HouseService
	validator    *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService, houseService service.HouseService) *TaskHandler {
	return &TaskHandler{
		taskService:  taskService,
		houseService: houseService,
		validator:    validator.New(),
	}
}

// AssignTaskForm handles GET /assign-task/{houseID}: the data the
// assignment form needs, which is the list of members to assign to.
func (h *TaskHandler) AssignTaskForm(w http.ResponseWriter, r *http.Request) {
	_, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	members, err := h.houseService.ListMembers(r.Context(), houseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, memberResponses(members))
}

// AssignTask handles POST /assign-task/{houseID}. The body is the
// form-encoded submission from the assignment page (task-name, person,
// task-due-date). On success the client is redirected to the house page.
func (h *TaskHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	_, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid form data")
		return
	}

	name := r.PostFormValue(formFieldTaskName)
	dueDate := r.PostFormValue(formFieldDueDate)

	assigneeID, err := strconv.ParseInt(r.PostFormValue(formFieldAssignee), 10, 64)
	if err != nil || assigneeID <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Assignee must be a valid member ID")
		return
	}

	if _, err := h.taskService.AssignTask(r.Context(), houseID, name, assigneeID, dueDate); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/house/%d", houseID), http.StatusSeeOther)
}

// GetTasks handles GET /get-tasks/{houseID}: the house's tasks shaped as
// calendar events.
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	_, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	events, err := h.taskService.CalendarEvents(r.Context(), houseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, calendarEventResponses(events))
}

// EditTask handles POST /edit-task/{houseID}/{taskID}.
func (h *TaskHandler) EditTask(w http.ResponseWriter, r *http.Request) {
	_, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	taskID, err := getPathID(r, "taskID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req EditTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.taskService.EditTask(r.Context(), houseID, taskID, req.Name, req.AssigneeID, req.DueDate); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteTask handles POST /delete-task/{houseID}/{taskID}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	_, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	taskID, err := getPathID(r, "taskID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), houseID, taskID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
