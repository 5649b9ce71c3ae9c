package domain

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError 指定されたIDのリソースが存在しない
type NotFoundError struct {
	Resource string
	ID       int64
}

// NewNotFoundError 新しいNotFoundErrorを作成
func NewNotFoundError(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// FieldError 入力フィールド単位の検証エラー
type FieldError struct {
	Field   string
	Message string
}

// ValidationError 入力値の検証エラー
type ValidationError struct {
	Fields []FieldError
}

// Add フィールドエラーを追加
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors エラーが1件以上あるか
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil エラーがなければnilを返す
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InfrastructureError ストレージなど下位層の障害
type InfrastructureError struct {
	Op  string
	Err error
}

// NewInfrastructureError 新しいInfrastructureErrorを作成
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// IsNotFound errがNotFoundErrorかどうか
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation errがValidationErrorかどうか
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInfrastructure errがInfrastructureErrorかどうか
func IsInfrastructure(err error) bool {
	var ie *InfrastructureError
	return errors.As(err, &ie)
}
