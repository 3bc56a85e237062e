package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ferrobarbershop/booking-api/internal/audit"
	domain "github.com/ferrobarbershop/booking-api/internal/domain/booking"
	"github.com/ferrobarbershop/booking-api/internal/domain/schedule"
	"github.com/ferrobarbershop/booking-api/internal/httperr"
	"github.com/ferrobarbershop/booking-api/internal/middleware"
	"github.com/ferrobarbershop/booking-api/internal/models"
	usecase "github.com/ferrobarbershop/booking-api/internal/usecase/booking"
	"github.com/ferrobarbershop/booking-api/internal/timezone"
	"github.com/ferrobarbershop/booking-api/internal/validators"
)

type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache usecase.SlotCache
}

func NewAdminHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, cache usecase.SlotCache) *AdminHandler {
	return &AdminHandler{db: db, audit: auditDispatcher, cache: cache}
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	status := c.Query("status")
	barberIDStr := c.Query("barber_id")
	dateStr := c.Query("date")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.Appointment{})

	if status != "" {
		q = q.Where("status = ?", status)
	}

	if barberIDStr != "" {
		if barberID, err := strconv.ParseUint(barberIDStr, 10, 32); err == nil {
			q = q.Where("barber_id = ?", uint(barberID))
		}
	}

	if dateStr != "" {
		day, err := parseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
			return
		}
		q = q.Where("start_time >= ? AND start_time < ?", day, day.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "appointments_count_failed", "Could not count appointments.")
		return
	}

	var apps []models.Appointment
	if err := q.
		Preload("User").
		Preload("Barber").
		Preload("Service").
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&apps).Error; err != nil {

		httperr.Internal(c, "appointments_list_failed", "Could not list appointments.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":         page,
		"limit":        limit,
		"total":        total,
		"appointments": apps,
	})
}

func (h *AdminHandler) getAppointment(c *gin.Context) (*models.Appointment, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer.")
		return nil, false
	}

	var ap models.Appointment
	if err := h.db.First(&ap, uint(id)).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return nil, false
	}

	return &ap, true
}

func (h *AdminHandler) invalidateDay(c *gin.Context, ap *models.Appointment) {
	if h.cache == nil {
		return
	}
	day := ap.StartTime.In(timezone.Location()).Format(schedule.DateKey)
	h.cache.Invalidate(c.Request.Context(), ap.BarberID, day)
}

func (h *AdminHandler) CancelAppointment(c *gin.Context) {
	ap, ok := h.getAppointment(c)
	if !ok {
		return
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		writeBusinessError(c, err)
		return
	}

	if err := h.db.Save(ap).Error; err != nil {
		httperr.Internal(c, "appointment_update_failed", "Could not update appointment.")
		return
	}

	h.invalidateDay(c, ap)

	actorID := c.GetUint(middleware.ContextUserID)
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_cancelled_by_staff",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, gin.H{"id": ap.ID, "status": ap.Status})
}

func (h *AdminHandler) CompleteAppointment(c *gin.Context) {
	ap, ok := h.getAppointment(c)
	if !ok {
		return
	}

	if err := domain.Complete(ap, timezone.Now()); err != nil {
		writeBusinessError(c, err)
		return
	}

	if err := h.db.Save(ap).Error; err != nil {
		httperr.Internal(c, "appointment_update_failed", "Could not update appointment.")
		return
	}

	// Completion leaves the upcoming set too, so the cached day is stale.
	h.invalidateDay(c, ap)

	actorID := c.GetUint(middleware.ContextUserID)
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, gin.H{"id": ap.ID, "status": ap.Status})
}

func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	ap, ok := h.getAppointment(c)
	if !ok {
		return
	}

	if err := h.db.Delete(ap).Error; err != nil {
		httperr.Internal(c, "appointment_delete_failed", "Could not delete appointment.")
		return
	}

	h.invalidateDay(c, ap)

	actorID := c.GetUint(middleware.ContextUserID)
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (h *AdminHandler) ListStaff(c *gin.Context) {
	var staff []models.User
	if err := h.db.
		Where("role IN ?", []string{models.RoleStaff, models.RoleAdmin}).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "staff_list_failed", "Could not list staff.")
		return
	}

	out := make([]gin.H, 0, len(staff))
	for i := range staff {
		out = append(out, userPayload(&staff[i]))
	}

	c.JSON(http.StatusOK, gin.H{"staff": out, "total": len(out)})
}

type CreateStaffRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required,oneof=staff admin"`
}

func (h *AdminHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not hash password.")
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         req.Role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create staff user.")
		return
	}

	actorID := c.GetUint(middleware.ContextUserID)
	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "staff_created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"user": userPayload(&user)})
}

func (h *AdminHandler) DeleteStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer.")
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(id)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	if user.Role == models.RoleClient {
		httperr.BadRequest(c, "not_staff", "The user is not a staff member.")
		return
	}

	actorID := c.GetUint(middleware.ContextUserID)
	if user.ID == actorID {
		httperr.BadRequest(c, "cannot_delete_self", "You cannot delete your own account here.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Could not delete staff user.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "staff_deleted",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.Status(http.StatusNoContent)
}
