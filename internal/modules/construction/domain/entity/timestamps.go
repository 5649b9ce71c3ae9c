package entity

import "time"

// TimestampPrecision 永続化するタイムスタンプの精度
const TimestampPrecision = time.Microsecond

// NormalizeTime ストレージの精度に丸めたUTC時刻を返す
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(TimestampPrecision)
}

// nextUpdatedAt 直前のupdated_atより必ず後になる時刻を返す
func nextUpdatedAt(prev, now time.Time) time.Time {
	now = NormalizeTime(now)
	if now.After(prev) {
		return now
	}
	return prev.Add(TimestampPrecision)
}

// normalizeDate 日付を丸めたコピーを返す（nilはnilのまま）
func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := NormalizeTime(*t)
	return &n
}
