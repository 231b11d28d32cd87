package utils

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var Validate *validator.Validate

// InitValidator registers custom rules on gin's binding validator so request
// structs can use them in binding tags.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Validate = v
	} else {
		Validate = validator.New()
	}
	_ = Validate.RegisterValidation("dateonly", IsDateOnly)
}

// IsDateOnly accepts calendar dates in YYYY-MM-DD form.
func IsDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
