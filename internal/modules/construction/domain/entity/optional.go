package entity

import (
	"bytes"
	"encoding/json"
)

// Optional 部分更新用のフィールド
//
// Set=false は「指定なし（変更しない）」、Set=true かつ Value=nil は「null を設定」、
// それ以外は「値を設定」を表す。
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some 値が指定されたOptionalを作成
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null nullが指定されたOptionalを作成
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// IsNull nullが明示的に指定されたか
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// UnmarshalJSON JSONのnullと未指定を区別してデコード
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON 値またはnullをエンコード
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// applyValue 必須フィールドに値を反映（nullは無視）
func applyValue[T any](dst *T, o Optional[T]) {
	if o.Set && o.Value != nil {
		*dst = *o.Value
	}
}

// applyNullable nullableフィールドに値またはnullを反映
func applyNullable[T any](dst **T, o Optional[T]) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = nil
		return
	}
	v := *o.Value
	*dst = &v
}
