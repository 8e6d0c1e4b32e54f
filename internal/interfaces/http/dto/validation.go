package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom binding tags shared by request DTOs. Registered once at package
// load so every handler (and handler test) that links this package gets
// them.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("datestr", isDateString)
	_ = v.RegisterValidation("monthstr", isMonthString)
}

// isDateString accepts calendar dates in YYYY-MM-DD form.
func isDateString(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// isMonthString accepts month tokens in YYYY-MM form.
func isMonthString(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01", fl.Field().String())
	return err == nil
}
