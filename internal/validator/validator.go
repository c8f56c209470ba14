// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// projectDateRegex enforces the zero-padded YYYY/MM/DD date shape. Ledger
// filtering compares these strings lexically, so any other format would
// break filtering silently.
var projectDateRegex = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("project_date", validateProjectDate)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("transaction_status", validateTransactionStatus)
		_ = v.RegisterValidation("report_status", validateReportStatus)
		_ = v.RegisterValidation("inventory_category", validateInventoryCategory)
		_ = v.RegisterValidation("urgency", validateUrgency)
		_ = v.RegisterValidation("request_status", validateRequestStatus)
	}
}

func validateProjectDate(fl validator.FieldLevel) bool {
	return projectDateRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "deposit", "expense", "debt":
		return true
	}
	return false
}

func validateTransactionStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "paid", "pending", "overdue":
		return true
	}
	return false
}

func validateReportStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "approved", "rejected":
		return true
	}
	return false
}

func validateInventoryCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "materials", "tools", "equipment":
		return true
	}
	return false
}

func validateUrgency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}

func validateRequestStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "approved", "purchased", "rejected":
		return true
	}
	return false
}
