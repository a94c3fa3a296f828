package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate разделяется всеми хендлерами; потокобезопасен
var validate = validator.New()

// DecodeJSON декодирует тело запроса в dst и отклоняет неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return nil
}

// DecodeAndValidateJSON декодирует тело запроса и проверяет validate-теги
func DecodeAndValidateJSON(r *http.Request, dst interface{}) error {
	if err := DecodeJSON(r, dst); err != nil {
		return err
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			fe := validationErrs[0]
			return fmt.Errorf("field %q failed validation on %q", fe.Field(), fe.Tag())
		}
		return err
	}

	return nil
}
