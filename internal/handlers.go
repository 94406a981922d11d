package internal

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ------------------- Registrations (public) -------------------

// POST /api/registrations
func CreateRegistration(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in RegistrationInput
		if err := c.BindJSON(&in); err != nil {
			c.JSON(400, gin.H{"message": "Ошибка валидации данных", "errors": []FieldError{}})
			return
		}

		rec, fieldErrs := ValidateRegistration(in)
		if fieldErrs != nil {
			// every violated field, nothing persisted
			c.JSON(400, gin.H{"message": "Ошибка валидации данных", "errors": fieldErrs})
			return
		}

		created, err := store.CreateRegistration(c.Request.Context(), rec)
		if err != nil {
			c.JSON(500, gin.H{"message": "Внутренняя ошибка сервера"})
			return
		}
		c.JSON(200, gin.H{"message": "Регистрация успешно отправлена!", "registration": created})
	}
}

// GET /api/registrations/stats — slot availability for the landing page.
func GetRegistrationStats(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		regs, err := store.ListRegistrations(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		c.JSON(200, ComputeStats(regs))
	}
}

// ------------------- Registrations (admin) -------------------

// GET /api/registrations — the list carries emails, phones and addresses,
// so it sits behind the admin session.
func ListRegistrations(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		regs, err := store.ListRegistrations(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		if regs == nil {
			regs = []Registration{}
		}
		c.JSON(200, regs)
	}
}

// PUT /api/registrations/:id — partial update, absent fields stay unchanged.
func UpdateRegistration(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		var upd RegistrationUpdate
		if err := c.BindJSON(&upd); err != nil {
			c.JSON(400, gin.H{"message": "Ошибка валидации данных", "errors": []FieldError{}})
			return
		}
		if fieldErrs := upd.Validate(); fieldErrs != nil {
			c.JSON(400, gin.H{"message": "Ошибка валидации данных", "errors": fieldErrs})
			return
		}

		ctx := c.Request.Context()
		rec, err := store.GetRegistration(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "registration not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		upd.Apply(&rec)
		updated, err := store.UpdateRegistration(ctx, rec)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "registration not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		logAction(store, adminName(c), "update_registration", "id="+strconv.Itoa(id))
		c.JSON(200, updated)
	}
}

// DELETE /api/registrations/:id — 404 on a missing id, not a silent no-op.
func DeleteRegistration(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("id"))

		err := store.DeleteRegistration(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(404, gin.H{"error": "registration not found"})
				return
			}
			c.JSON(500, gin.H{"error": "db"})
			return
		}

		logAction(store, adminName(c), "delete_registration", "id="+strconv.Itoa(id))
		c.JSON(200, gin.H{"success": true})
	}
}

// ------------------- Admin: logs -------------------

// GET /api/admin/logs
func AdminLogs(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := store.ListLogs(c.Request.Context(), 200)
		if err != nil {
			c.JSON(500, gin.H{"error": "db"})
			return
		}
		if entries == nil {
			entries = []LogEntry{}
		}
		c.JSON(200, entries)
	}
}
