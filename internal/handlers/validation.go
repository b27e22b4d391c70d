package handlers

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	barcodePattern = regexp.MustCompile(`^[0-9A-Za-z-]{1,32}$`)
	registerOnce   sync.Once
	registerErr    error
)

// barcodeRule accepts EAN/UPC codes and the alphanumeric labels some shops print.
func barcodeRule(fl validator.FieldLevel) bool {
	return barcodePattern.MatchString(fl.Field().String())
}

// RegisterValidators adds the custom binding rules used by the request DTOs
// to gin's validator. Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerErr = v.RegisterValidation("barcode", barcodeRule)
		}
	})
	return registerErr
}
