package handlers

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON binds the body into out and, on failure, answers 400 with the
// complete list of violation messages. Validator reports all failed rules,
// not just the first, so the fail-all policy holds.
func BindJSON(ctx *gin.Context, out interface{}) bool {
	err := ctx.ShouldBindJSON(out)

	if err != nil {
		RespondValidation(ctx, bindErrorMessages(err, out))

		return false
	}

	return true
}

func bindErrorMessages(err error, out interface{}) []string {
	rootType := baseStructType(out)

	// validator errors (struct bind tags)

	var validatorErrors validator.ValidationErrors

	if errors.As(err, &validatorErrors) {
		messages := make([]string, 0, len(validatorErrors))

		for _, fieldError := range validatorErrors {
			field := jsonFieldName(rootType, fieldError.StructField())
			messages = append(messages, field+" "+validationMessage(rootType, fieldError.Tag(), fieldError.Param()))
		}

		return messages
	}

	// type mismatch on a single field

	var typeError *json.UnmarshalTypeError

	if errors.As(err, &typeError) {
		field := strings.TrimSpace(typeError.Field)

		if field == "" {
			return []string{"request body must be a JSON object"}
		}

		return []string{field + " must be of type " + typeError.Type.String()}
	}

	// bad JSON syntax or anything else undecipherable
	return []string{"invalid request body"}
}

func baseStructType(v interface{}) reflect.Type {
	t := reflect.TypeOf(v)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t != nil && t.Kind() == reflect.Struct {
		return t
	}

	return nil
}

// jsonFieldName maps a struct field name to its json tag name so messages
// speak the wire format, not Go.
func jsonFieldName(rootType reflect.Type, fieldName string) string {
	if rootType == nil {
		return fieldName
	}

	sf, ok := rootType.FieldByName(fieldName)

	if !ok {
		return fieldName
	}

	tag := sf.Tag.Get("json")

	if tag == "" {
		return fieldName
	}

	name, _, _ := strings.Cut(tag, ",")

	if name == "" || name == "-" {
		return fieldName
	}

	return name
}

func validationMessage(rootType reflect.Type, rule, param string) string {
	switch rule {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + param + " characters long"
	case "max":
		return "must be at most " + param + " characters long"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	case "eqfield":
		return "must match " + jsonFieldName(rootType, param)
	case "required_with":
		return "is required when " + jsonFieldName(rootType, param) + " is provided"
	default:
		if param != "" {
			return "failed " + rule + " validation (" + param + ")"
		}
		return "failed " + rule + " validation"
	}
}
