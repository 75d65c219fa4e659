// Package timex 提供数据库与 JSON 友好的时间类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const timeFormat = "2006-01-02 15:04:05"

// Time 本地时间类型，序列化为 "2006-01-02 15:04:05"
type Time time.Time

// Now 获取当前时间
func Now() Time {
	return Time(time.Now())
}

// MarshalJSON 实现 json.Marshaler 接口
func (t Time) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, len(timeFormat)+2)
	b = append(b, '"')
	b = time.Time(t).AppendFormat(b, timeFormat)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON 实现 json.Unmarshaler 接口
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}
	now, err := time.ParseInLocation(`"`+timeFormat+`"`, string(data), time.Local)
	if err != nil {
		return err
	}
	*t = Time(now)
	return nil
}

// Value 实现 driver.Valuer 接口
func (t Time) Value() (driver.Value, error) {
	var zeroTime time.Time
	ti := time.Time(t)
	if ti.UnixNano() == zeroTime.UnixNano() {
		return nil, nil
	}
	return ti, nil
}

// Scan 实现 sql.Scanner 接口
func (t *Time) Scan(v interface{}) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time(value)
		return nil
	case string:
		parsed, err := time.ParseInLocation(timeFormat, value, time.Local)
		if err != nil {
			return err
		}
		*t = Time(parsed)
		return nil
	case nil:
		*t = Time(time.Time{})
		return nil
	}
	return fmt.Errorf("can not convert %v to timex.Time", v)
}

// String 实现 fmt.Stringer 接口
func (t Time) String() string {
	return time.Time(t).Format(timeFormat)
}

// IsZero 判断是否为零值时间
func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

// Unix 返回 Unix 时间戳（秒）
func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

// UnixMilli 返回 Unix 时间戳（毫秒）
func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

// UnixMicro 返回 Unix 时间戳（微秒）
func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

// UnixNano 返回 Unix 时间戳（纳秒）
func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}
